// Package frontend is the command surface a desktop shell drives: select an
// input schedule, optimize it, and download the result. It is the Go
// counterpart of the reference Tauri command (which folds select, optimize,
// and save into a single work_with call); this package splits that into
// three commands so a shell can show progress and let the user re-select
// input independently of when they choose to download, per §6/§7.
//
// Session holds at most one cached *schedule.Grid, keyed implicitly by the
// last SelectInput call: a new SelectInput invalidates whatever was there
// before. Optimize and Download both require a prior successful
// SelectInput; Download additionally requires a prior Optimize. Neither
// requirement is enforced by the type system (there is no GUI toolkit in
// the retrieval pack to host real file-dialog/window-chrome integration),
// so both are Precondition errors surfaced to the caller.
package frontend
