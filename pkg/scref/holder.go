package scref

// Holder couples a value with its own guard slot so the value can bind
// itself to a cell for as long as the holder stays open.
//
// Lock binds a cell to the address of the held value; from then until
// Close the cell resolves to the holder's value, including any writes
// made through Set or Value. Close releases the internal guard, which
// clears the cell. The held value stays readable and writable through
// the holder regardless of binding state.
//
// Holder is NOT safe for concurrent use.
type Holder[T any] struct {
	value T
	guard *Guard
}

// NewHolder creates a holder owning value, with an empty guard slot.
func NewHolder[T any](value T) *Holder[T] {
	return &Holder[T]{value: value}
}

// Lock binds cell to the holder's value. The binding lasts until Close
// is called on the holder. Returns ErrAlreadyLocked if the holder's
// guard is still live, or ErrAlreadyBound if the cell is governed by
// someone else.
func (h *Holder[T]) Lock(cell *Cell[*T]) error {
	if h.Locked() {
		return ErrAlreadyLocked
	}
	guard, err := cell.Bind(&h.value)
	if err != nil {
		return err
	}
	h.guard = guard
	return nil
}

// Value returns a pointer to the held value for direct read/write
// access. Writes are visible through any cell currently locked to this
// holder.
func (h *Holder[T]) Value() *T {
	return &h.value
}

// Set replaces the held value. The binding, if any, is unaffected.
func (h *Holder[T]) Set(v T) {
	h.value = v
}

// Locked reports whether the holder currently governs a cell binding.
func (h *Holder[T]) Locked() bool {
	return h.guard != nil && !h.guard.Released()
}

// Close releases the internal guard, clearing the locked cell.
// Idempotent; a holder that was never locked closes cleanly. The
// holder can be locked again afterwards.
func (h *Holder[T]) Close() {
	if h.guard != nil {
		h.guard.Release()
	}
}
