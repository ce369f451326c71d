package gemini

import (
	"errors"
	"time"
)

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrNoCandidates is returned when the API answers without any candidate
	ErrNoCandidates = errors.New("gemini: response has no candidates")
)
