package expr

// IndexList is the ordered, deduplicated registry mapping each distinct
// variable identity in a graph to one evaluation slot. Registration is
// keyed by VarID lookup in the list itself, so two structurally distinct
// graphs sharing sub-nodes can each load their variables without dropping
// any. Use one IndexList per independent top-level expression set; never
// share one across unrelated traversals.
type IndexList struct {
	entries []VarID
	slots   map[VarID]int
}

// NewIndexList creates an empty index list.
func NewIndexList() *IndexList {
	return &IndexList{slots: make(map[VarID]int)}
}

// Assign registers the variable identity if it is new and returns its
// evaluation slot. Registering an already-known identity returns the
// existing slot.
func (l *IndexList) Assign(id VarID) int {
	if slot, ok := l.slots[id]; ok {
		return slot
	}
	slot := len(l.entries)
	l.entries = append(l.entries, id)
	l.slots[id] = slot
	return slot
}

// Register records the variable identity without reporting a slot. It is
// the read-side counterpart of Assign used by EnumerateVariables.
func (l *IndexList) Register(id VarID) {
	l.Assign(id)
}

// Len returns the number of registered variables.
func (l *IndexList) Len() int { return len(l.entries) }

// Variables returns the registered identities in slot order.
func (l *IndexList) Variables() []VarID {
	out := make([]VarID, len(l.entries))
	copy(out, l.entries)
	return out
}

// SlotOf returns the evaluation slot of a registered identity.
func (l *IndexList) SlotOf(id VarID) (int, bool) {
	slot, ok := l.slots[id]
	return slot, ok
}
