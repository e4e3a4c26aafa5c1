package schedule

// collKey identifies one event by (row, index-within-row).
type collKey struct {
	Row int
	Idx int
}

// collisionIndex is an insertion-ordered map from collKey to a positive
// collision contribution, supporting O(1) positional indexing (so the
// annealer can sample a uniformly-random entry by index) and O(1)
// amortized insert/update/remove by key.
//
// Internally this is an order-preserving map with swap-remove deletion:
// keys and vals are parallel slices; removing an entry swaps it with the
// last one and truncates, so no entry ever needs to shift. Order of the
// remaining entries is not otherwise meaningful — only Len/At's positional
// contract matters.
type collisionIndex struct {
	keys []collKey
	vals []int
	pos  map[collKey]int
}

// newCollisionIndex allocates a collisionIndex with capacity reserved
// up-front, per the no-hot-path-allocation requirement: callers should
// size it to the total number of leader-bearing events at construction.
func newCollisionIndex(capacity int) *collisionIndex {
	if capacity < 0 {
		capacity = 0
	}
	return &collisionIndex{
		keys: make([]collKey, 0, capacity),
		vals: make([]int, 0, capacity),
		pos:  make(map[collKey]int, capacity),
	}
}

// Len returns the number of entries currently present.
func (c *collisionIndex) Len() int {
	return len(c.keys)
}

// Get returns the contribution stored for k, if any.
func (c *collisionIndex) Get(k collKey) (int, bool) {
	i, ok := c.pos[k]
	if !ok {
		return 0, false
	}
	return c.vals[i], true
}

// Set inserts or overwrites the contribution stored for k.
func (c *collisionIndex) Set(k collKey, v int) {
	if i, ok := c.pos[k]; ok {
		c.vals[i] = v
		return
	}
	c.pos[k] = len(c.keys)
	c.keys = append(c.keys, k)
	c.vals = append(c.vals, v)
}

// Remove deletes k if present; a no-op otherwise. O(1) via swap-remove.
func (c *collisionIndex) Remove(k collKey) {
	i, ok := c.pos[k]
	if !ok {
		return
	}
	last := len(c.keys) - 1
	if i != last {
		movedKey := c.keys[last]
		c.keys[i] = movedKey
		c.vals[i] = c.vals[last]
		c.pos[movedKey] = i
	}
	c.keys = c.keys[:last]
	c.vals = c.vals[:last]
	delete(c.pos, k)
}

// At returns the key/value pair at positional index i. i must be in
// [0, Len()); callers (the annealer's biased sampler) are expected to
// draw i from that range themselves.
func (c *collisionIndex) At(i int) (collKey, int) {
	return c.keys[i], c.vals[i]
}

// Reset empties the index while keeping its backing capacity, so a full
// recompute (Grid.Update) never needs to reallocate.
func (c *collisionIndex) Reset() {
	c.keys = c.keys[:0]
	c.vals = c.vals[:0]
	for k := range c.pos {
		delete(c.pos, k)
	}
}
