package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/domain"
)

// fallbackTopic replaces the caller's topic when the service responded but
// its output could not be parsed into valid slides. A service that never
// answered keeps the original topic; one that answered garbage does not,
// since the garbage may have been about anything.
const fallbackTopic = "Generated Content"

// Service orchestrates content acquisition: validate inputs, call the
// text-generation service once, parse the response, and degrade into
// deterministic fallback content on any recoverable failure. Availability
// is prioritized over fidelity: once inputs pass validation the caller
// always receives a usable slide sequence.
type Service struct {
	// completer is the external text-generation client, or nil when no
	// service credential is configured.
	completer Completer

	// slides holds the configured slide count bounds.
	slides config.SlidesConfig

	// logger is used for structured logging.
	logger *slog.Logger
}

// Ensure Service implements the Generator interface.
var _ Generator = (*Service)(nil)

// NewService creates a content acquisition Service.
//
// completer may be nil, in which case every request is served by the
// fallback synthesizer. Returns an error if the slide bounds are not usable.
func NewService(completer Completer, slidesCfg config.SlidesConfig, logger *slog.Logger) (*Service, error) {
	if slidesCfg.MinSlides < 1 || slidesCfg.MaxSlides < slidesCfg.MinSlides {
		return nil, fmt.Errorf("%w: slide bounds [%d,%d] are not usable",
			ErrInvalidConfig, slidesCfg.MinSlides, slidesCfg.MaxSlides)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		completer: completer,
		slides:    slidesCfg,
		logger:    logger.With("component", "content_service"),
	}, nil
}

// GenerateSlides implements the Generator interface.
//
// Failure handling follows a strict kind distinction:
//   - bad caller input -> error wrapping domain.ErrValidation, nothing else
//     is attempted
//   - service failure (transport, status, envelope) -> fallback content for
//     the original topic, citation preference dropped
//   - parse or schema failure -> fallback content for a neutral topic,
//     citation preference dropped
func (s *Service) GenerateSlides(
	ctx context.Context,
	topic string,
	slideCount int,
	includeCitations bool,
) ([]domain.SlideRecord, []domain.Citation, error) {
	if err := s.validateInputs(topic, slideCount); err != nil {
		return nil, nil, err
	}

	if s.completer == nil {
		s.logger.InfoContext(ctx, "no generation service configured, using fallback synthesis",
			"topic", topic,
			"slide_count", slideCount)
		slides, citations := Synthesize(topic, slideCount, includeCitations)
		return slides, citations, nil
	}

	instruction := BuildInstruction(topic, slideCount, includeCitations)
	s.logger.DebugContext(ctx, "calling text generation service",
		"topic", topic,
		"slide_count", slideCount,
		"instruction_length", len(instruction))

	raw, err := s.completer.Complete(ctx, instruction)
	if err != nil {
		// Single attempt, no retry: a service failure degrades into
		// fallback content for the original topic. The citation
		// preference is dropped on every fallback after a service call.
		s.logger.WarnContext(ctx, "generation service call failed, using fallback synthesis",
			"error", err,
			"topic", topic)
		slides, citations := Synthesize(topic, slideCount, false)
		return slides, citations, nil
	}

	slides, citations, err := ParseResponse(raw, slideCount)
	if err != nil {
		// The service answered but not with usable content. The original
		// topic is replaced by a neutral one and the citation preference
		// is dropped.
		s.logger.WarnContext(ctx, "generated content unusable, using fallback synthesis",
			"error", err,
			"topic", topic,
			"response_length", len(raw))
		slides, citations := Synthesize(fallbackTopic, slideCount, false)
		return slides, citations, nil
	}

	s.logger.InfoContext(ctx, "slide content generated",
		"topic", topic,
		"slide_count", len(slides),
		"citation_count", len(citations))

	return slides, citations, nil
}

// validateInputs enforces the caller-facing preconditions. These are the
// only failures GenerateSlides ever surfaces.
func (s *Service) validateInputs(topic string, slideCount int) error {
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("%w: topic must be a non-empty string", domain.ErrValidation)
	}

	if slideCount < s.slides.MinSlides || slideCount > s.slides.MaxSlides {
		return fmt.Errorf("%w: number of slides must be between %d and %d",
			domain.ErrValidation, s.slides.MinSlides, s.slides.MaxSlides)
	}

	return nil
}
