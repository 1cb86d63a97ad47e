package generation

import "errors"

// Common errors returned by the generation package. The split between
// ErrServiceFailure and ErrParseFailed matters: both are recoverable and
// absorbed by the fallback synthesizer, but they select different fallback
// inputs. Only validation errors (domain.ErrValidation) ever reach the
// caller.
var (
	// ErrServiceFailure is returned when the text-generation endpoint cannot
	// be reached, responds with a non-success status, or returns an
	// unexpected response envelope.
	ErrServiceFailure = errors.New("text generation service failure")

	// ErrParseFailed is returned when the service's response text does not
	// yield a valid slide payload.
	ErrParseFailed = errors.New("failed to parse generated content")

	// ErrInvalidConfig is returned when a generator or client configuration
	// is invalid.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)
