package search

import "errors"

var (
	// ErrNoPath is reported by callers that treat an empty path as a failure.
	// The searches themselves signal it with an empty Result.Path.
	ErrNoPath = errors.New("search: no path between start and destination")
	// ErrMalformedChain indicates a predecessor walk that never reaches start.
	ErrMalformedChain = errors.New("search: malformed predecessor chain")
	// ErrInvalidPath indicates a path that fails ValidatePath.
	ErrInvalidPath = errors.New("search: invalid path")
	// ErrUnknownStrategy indicates a strategy string that cannot be parsed.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)
