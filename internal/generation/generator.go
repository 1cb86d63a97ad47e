package generation

import (
	"context"

	"github.com/phrazzld/slidegen-api/internal/domain"
)

// Completer defines the interface to an external text-generation service.
// This interface serves as a boundary between the application core and
// LLM providers, following the hexagonal architecture pattern.
//
// Implementations make exactly one attempt per call under a fixed timeout;
// any transport, status, or envelope problem is reported as an error
// wrapping ErrServiceFailure.
type Completer interface {
	// Complete sends a single instruction to the service and returns the
	// generated text verbatim.
	Complete(ctx context.Context, instruction string) (string, error)
}

// Generator defines the interface for acquiring slide content.
type Generator interface {
	// GenerateSlides produces an ordered slide sequence for the topic, plus
	// citations when requested and available.
	//
	// Once the inputs pass validation the call cannot fail: every
	// downstream problem (service, parse, schema) degrades into
	// deterministic fallback content. The only error returned wraps
	// domain.ErrValidation.
	GenerateSlides(
		ctx context.Context,
		topic string,
		slideCount int,
		includeCitations bool,
	) ([]domain.SlideRecord, []domain.Citation, error)
}
