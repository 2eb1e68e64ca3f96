package engine

import "errors"

// Engine errors are recoverable: they terminate the current command's effect
// without partial mutation; none are fatal to the run. Account-level failures
// (insufficient funds, spending limits, split rejections) are not errors at
// all, they land in the output stream or account history as descriptions.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
)
