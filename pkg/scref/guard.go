package scref

import (
	"fmt"

	"github.com/google/uuid"
)

// binder is the view of a cell a guard needs to clear it.
type binder interface {
	clear(gen uint64)
}

// Guard owns the single future "unbind" action for one cell binding.
//
// Guards are created only by Cell.Bind (directly or through
// registry.Register and Holder.Lock) and are used via pointer; copying
// a Guard value has no useful meaning. Release the guard on every exit
// path, normally with defer. Abandoning a guard to the garbage
// collector without calling Release leaves the cell bound and is
// unsupported misuse, not a feature.
//
// Guard is NOT safe for concurrent use.
type Guard struct {
	id       string
	cell     binder
	gen      uint64
	released bool
	hooks    []func()
}

func newGuard(cell binder, gen uint64) *Guard {
	return &Guard{
		id:   fmt.Sprintf("grd-%s", uuid.New().String()[:8]),
		cell: cell,
		gen:  gen,
	}
}

// ID returns the guard's unique identifier, used in logs and journal
// entries.
func (g *Guard) ID() string {
	return g.id
}

// Released reports whether Release has already run.
func (g *Guard) Released() bool {
	return g.released
}

// Release clears the governed cell and runs any OnRelease hooks in
// LIFO order. The first call wins; subsequent calls are no-ops, so
// releasing early and again via defer is safe.
//
// After Release the cell reports empty until a new Bind, and a new
// binding of the same cell is out of this guard's reach: the guard
// only ever clears the generation it was created for.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.clear(g.gen)

	for i := len(g.hooks) - 1; i >= 0; i-- {
		g.hooks[i]()
	}
	g.hooks = nil
}

// OnRelease registers fn to run after the cell is cleared. Hooks run
// exactly once, in LIFO order, on the first Release call. If the guard
// is already released, fn runs immediately.
//
// The registry uses hooks to observe unsubscription for logging,
// metrics, and journaling.
func (g *Guard) OnRelease(fn func()) {
	if fn == nil {
		return
	}
	if g.released {
		fn()
		return
	}
	g.hooks = append(g.hooks, fn)
}
