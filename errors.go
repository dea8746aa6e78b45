package nereval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidMode indicates an unrecognized matching mode.
	ErrInvalidMode = errors.New("nereval: invalid mode")
)
