package expr

// evalBuffer stores the last argument value and argument derivative written
// at each evaluation position, so backward-mode calls can reuse forward
// results without recomputation. Each buffer is exclusively owned by its
// node; callers sharing one graph across logical epochs must partition the
// position range.
//
// Growth policy: ensure grows the buffer to exactly pos+1 slots. The
// original engine grew by the requested position's worth of extra slots,
// which over-allocates after the first growth; pos+1 is the documented
// replacement. The buffer never shrinks except through clear.
type evalBuffer struct {
	val   []float64
	dval  []float64
	seen  []bool // val written at this position
	dseen []bool // dval written at this position
}

func (b *evalBuffer) ensure(pos int) {
	if pos < len(b.val) {
		return
	}
	n := pos + 1
	val := make([]float64, n)
	dval := make([]float64, n)
	seen := make([]bool, n)
	dseen := make([]bool, n)
	copy(val, b.val)
	copy(dval, b.dval)
	copy(seen, b.seen)
	copy(dseen, b.dseen)
	b.val, b.dval, b.seen, b.dseen = val, dval, seen, dseen
}

func (b *evalBuffer) setVal(pos int, v float64) {
	b.val[pos] = v
	b.seen[pos] = true
}

func (b *evalBuffer) setDval(pos int, v float64) {
	b.dval[pos] = v
	b.dseen[pos] = true
}

func (b *evalBuffer) hasVal(pos int) bool {
	return pos >= 0 && pos < len(b.seen) && b.seen[pos]
}

func (b *evalBuffer) hasDval(pos int) bool {
	return pos >= 0 && pos < len(b.dseen) && b.dseen[pos]
}

func (b *evalBuffer) size() int {
	return len(b.val)
}

// clear resets the buffer to size one, keeping slot zero.
func (b *evalBuffer) clear() {
	if len(b.val) <= 1 {
		return
	}
	b.val = b.val[:1]
	b.dval = b.dval[:1]
	b.seen = b.seen[:1]
	b.dseen = b.dseen[:1]
}
