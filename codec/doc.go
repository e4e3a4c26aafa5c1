// Package codec decodes and encodes schedule.Grid rows from/to a compact
// headerless CSV-like text format. Each record is one row; each field is one
// event written as:
//
//	name                 event with no leader, len = 1
//	name:leader          event with leader, len = 1
//	name[n]              event with no leader, len = n >= 1
//	name:leader[n]       event with leader, len = n
//
// Whitespace around name, leader, and n is trimmed. Encoding is the inverse
// of decoding; len == 1 omits the trailing "[1]".
package codec
