package monitor

import "errors"

var (
	ErrEmptyMessage  = errors.New("message has no text")
	ErrEmptySender   = errors.New("sender is required")
	ErrMissingField  = errors.New("required field not specified")
	ErrInvalidFormat = errors.New("invalid request format")
	ErrOracleFailure = errors.New("oracle call failed")
)
