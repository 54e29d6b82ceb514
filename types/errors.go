package types

import "errors"

var (
	// ErrStorage marks failures of the persisted document store medium.
	ErrStorage = errors.New("storage failure")
	// ErrCompletion marks completion service errors, timeouts, and output
	// that fails schema validation.
	ErrCompletion = errors.New("completion failure")
	// ErrValidation marks rejected ingestion input.
	ErrValidation = errors.New("validation failure")
)
