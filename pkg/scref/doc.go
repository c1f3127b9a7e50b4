/*
Package scref provides scoped reference cells: slots that hold a
non-owning reference to a value whose lifetime is shorter than the
slot's own.

# Overview

A Cell[T] stores a reference without tying the cell's type to the
referent's lifetime. Go has no lifetimes to encode, so the contract is
enforced at runtime instead: every successful Bind returns a Guard, and
the cell reports Bound only while that guard is live. Releasing the
guard clears the cell, immediately and synchronously. Reads go through
Cell.With or Map, which re-check the binding state on every call, so a
cleared cell simply reports absence.

T is the reference type chosen by the caller, conventionally a pointer
or an interface value. The cell never hands the stored reference back
out; the closure passed to With/Map is the only sanctioned access path.

# Basic Usage

	cell := scref.NewCell[*bytes.Buffer]()
	fmt.Println(cell.IsBound()) // false

	{
	    buf := bytes.NewBufferString("hello")
	    guard, err := cell.Bind(buf)
	    if err != nil {
	        log.Fatal(err)
	    }
	    defer guard.Release()

	    cell.With(func(b *bytes.Buffer) {
	        fmt.Println(b.String()) // "hello"
	    })
	}
	// After Release the cell is empty again.

Pair Bind with a deferred Release on every path. Release is idempotent,
so releasing early and again via defer is safe.

# Binding Policy

Bind on an already-bound cell fails with ErrAlreadyBound. Exactly one
live guard governs a cell at any time; there is no silent overwrite.
Combined with the generation stamp carried by each guard, a released
guard can never clear a binding it does not govern.

# Self-Binding Holders

Holder[T] couples a value with its own guard slot. Holder.Lock binds a
cell to the held value until the holder is closed, and the value stays
readable and writable through the holder the whole time. See Holder.

# Thread Safety

  - Cell, Guard, and Holder are NOT safe for concurrent use. The
    liveness protocol is single-threaded by design; callers that share
    cells across goroutines must supply their own locking.
  - Journal stores (see the journal subpackage) ARE safe for concurrent
    use, like any other storage backend.

# Subpackages

  - registry: fixed-capacity publish/notify fan-out built on cells
  - journal: append-only audit log of registry lifecycle events
  - config: file-backed configuration maps
  - observability: logging, metrics, and tracing helpers
*/
package scref
