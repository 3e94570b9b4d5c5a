package textstate

import "errors"

// Sentinel errors returned by Manager operations. Test with errors.Is.
var (
	// ErrDuplicateID is returned by Create when a state already exists
	// under the given ID. Use CreateOrReplace to overwrite instead.
	ErrDuplicateID = errors.New("textstate: duplicate id")

	// ErrNotFound is returned when no state exists under the given ID.
	ErrNotFound = errors.New("textstate: state not found")
)
