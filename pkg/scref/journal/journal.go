// Package journal provides an append-only audit log for registry
// lifecycle events: registrations, releases, rejected registrations,
// and notification sweeps.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Op identifies the kind of lifecycle event an entry records.
type Op string

// Journal operations.
const (
	OpRegister Op = "register"
	OpRelease  Op = "release"
	OpNotify   Op = "notify"
	OpReject   Op = "reject"
)

// Entry is a single recorded lifecycle event.
type Entry struct {
	// ID uniquely identifies this entry.
	ID string `json:"id"`

	// Time is when the event occurred (UTC).
	Time time.Time `json:"time"`

	// Op is the recorded operation.
	Op Op `json:"op"`

	// Slot is the registry slot index, or -1 when no slot applies
	// (rejected registrations, notification sweeps).
	Slot int `json:"slot"`

	// GuardID identifies the guard involved, if any.
	GuardID string `json:"guard_id,omitempty"`

	// Detail carries operation-specific context, e.g. the delivery
	// count of a notification sweep.
	Detail string `json:"detail,omitempty"`
}

// NewEntry creates an entry stamped with a fresh ID and the current
// UTC time.
func NewEntry(op Op, slot int, guardID, detail string) Entry {
	return Entry{
		ID:      fmt.Sprintf("jnl-%s", uuid.New().String()[:8]),
		Time:    time.Now().UTC(),
		Op:      op,
		Slot:    slot,
		GuardID: guardID,
		Detail:  detail,
	}
}

// Store persists journal entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append records an entry. Entries are immutable once appended.
	Append(ctx context.Context, e Entry) error

	// List returns entries in append order. A limit of 0 or less
	// returns all entries.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Count returns the number of recorded entries.
	Count(ctx context.Context) (int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("journal store closed")
