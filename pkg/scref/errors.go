package scref

import "errors"

// Sentinel errors for binding operations.
var (
	// ErrAlreadyBound indicates Bind was called on a cell that is
	// currently governed by a live guard. Release the existing guard
	// before binding again.
	ErrAlreadyBound = errors.New("cell already bound")

	// ErrAlreadyLocked indicates Lock was called on a holder whose
	// internal guard is still live.
	ErrAlreadyLocked = errors.New("holder already locked")
)
