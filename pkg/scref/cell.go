package scref

// Cell is a single reference slot, either empty or bound.
//
// T is the reference type the caller chooses to store, conventionally
// a pointer (*Config, *bytes.Buffer) or an interface value. The cell
// itself says nothing about how long the referent lives; that contract
// is carried by the Guard returned from Bind.
//
// The zero value is not usable; create cells with NewCell. Cell is NOT
// safe for concurrent use.
type Cell[T any] struct {
	val   T
	bound bool

	// gen increments on every successful Bind. A guard clears the
	// cell only if its stamp matches, so a stale guard cannot clear
	// a binding it does not govern.
	gen uint64
}

// NewCell creates an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Bind stores v in the cell and returns the guard governing the
// binding. The cell reports Bound until the guard is released.
//
// Binding an already-bound cell fails with ErrAlreadyBound; there is
// no overwrite. Callers should pair every successful Bind with a
// deferred Release:
//
//	guard, err := cell.Bind(v)
//	if err != nil {
//	    return err
//	}
//	defer guard.Release()
func (c *Cell[T]) Bind(v T) (*Guard, error) {
	if c.bound {
		return nil, ErrAlreadyBound
	}
	c.gen++
	c.val = v
	c.bound = true
	return newGuard(c, c.gen), nil
}

// IsBound reports whether the cell currently holds a reference.
func (c *Cell[T]) IsBound() bool {
	return c.bound
}

// With invokes fn on the stored reference and returns true, or returns
// false without invoking fn if the cell is empty.
//
// The reference must not escape fn; retaining it past the guard's
// release defeats the liveness protocol and is unsupported misuse.
func (c *Cell[T]) With(fn func(T)) bool {
	if !c.bound {
		return false
	}
	fn(c.val)
	return true
}

// Map invokes fn on the cell's stored reference and returns its result
// with ok=true, or the zero U with ok=false if the cell is empty.
//
// It is a package-level function because Go methods cannot introduce
// their own type parameters.
func Map[T, U any](c *Cell[T], fn func(T) U) (U, bool) {
	if !c.bound {
		var zero U
		return zero, false
	}
	return fn(c.val), true
}

// clear empties the cell if gen matches the live binding.
// Called by Guard.Release.
func (c *Cell[T]) clear(gen uint64) {
	if !c.bound || c.gen != gen {
		return
	}
	var zero T
	c.val = zero
	c.bound = false
}
