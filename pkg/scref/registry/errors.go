package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrFull indicates all slots are bound. This is a recoverable
	// condition: releasing any outstanding guard frees a slot for
	// the next Register call.
	ErrFull = errors.New("registry full")

	// ErrInvalidCapacity indicates New was called with a capacity
	// below one.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrNilCapability indicates Register was called with a nil
	// capability.
	ErrNilCapability = errors.New("capability is required")
)
