package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/slidegen-api/internal/domain"
	"github.com/phrazzld/slidegen-api/internal/generation"
	"github.com/phrazzld/slidegen-api/internal/render"
	"github.com/phrazzld/slidegen-api/internal/storage"
)

// PresentationServiceError is a custom error type for presentation service errors.
type PresentationServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PresentationServiceError.
func (e *PresentationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("presentation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("presentation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PresentationServiceError) Unwrap() error {
	return e.Err
}

// NewPresentationServiceError creates a new PresentationServiceError.
func NewPresentationServiceError(operation, message string, err error) *PresentationServiceError {
	return &PresentationServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CreateRequest carries everything needed to build one presentation.
//
// When CustomSlides is non-empty the content acquisition step is skipped
// entirely and the given slides are used as-is after schema validation;
// Topic, SlideCount, and IncludeCitations are ignored in that case.
type CreateRequest struct {
	Topic            string
	SlideCount       int
	IncludeCitations bool
	CustomSlides     []domain.SlideRecord
	Theme            domain.ThemeConfig
	Aspect           domain.AspectRatio
}

// Presentation describes a stored presentation package.
type Presentation struct {
	ID            uuid.UUID
	Topic         string
	SlideCount    int
	CitationCount int
	CreatedAt     time.Time
	Duration      time.Duration
}

// PresentationService provides presentation lifecycle operations.
type PresentationService interface {
	// Create builds a presentation end to end: acquire slide content,
	// render it, serialize the package, and persist it under a fresh ID.
	// Returns an error wrapping domain.ErrValidation for bad input; any
	// other failure is a PresentationServiceError.
	Create(ctx context.Context, req CreateRequest) (*Presentation, error)

	// GetPackage retrieves the stored package bytes for a presentation.
	// Returns an error wrapping storage.ErrNotFound if the ID is unknown.
	GetPackage(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Delete removes a stored presentation.
	// Returns an error wrapping storage.ErrNotFound if the ID is unknown.
	Delete(ctx context.Context, id uuid.UUID) error
}

// presentationServiceImpl implements the PresentationService interface.
type presentationServiceImpl struct {
	generator generation.Generator
	store     storage.Storage
	logger    *slog.Logger
}

// NewPresentationService creates a new PresentationService.
// It returns an error if any of the required dependencies are nil.
func NewPresentationService(
	generator generation.Generator,
	store storage.Storage,
	logger *slog.Logger,
) (PresentationService, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &presentationServiceImpl{
		generator: generator,
		store:     store,
		logger:    logger.With("component", "presentation_service"),
	}, nil
}

// Create implements PresentationService.Create.
func (s *presentationServiceImpl) Create(ctx context.Context, req CreateRequest) (*Presentation, error) {
	start := time.Now()

	slides, citations, err := s.acquireContent(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := req.Theme.Validate(); err != nil {
		return nil, err
	}

	doc, err := render.Render(slides, citations, req.Theme, req.Aspect)
	if err != nil {
		return nil, NewPresentationServiceError("create", "rendering failed", err)
	}

	data, err := render.Serialize(doc)
	if err != nil {
		return nil, NewPresentationServiceError("create", "serialization failed", err)
	}

	id := uuid.New()
	if err := s.store.Save(ctx, id, data); err != nil {
		return nil, NewPresentationServiceError("create", "saving package failed", err)
	}

	result := &Presentation{
		ID:            id,
		Topic:         req.Topic,
		SlideCount:    len(slides),
		CitationCount: len(citations),
		CreatedAt:     start.UTC(),
		Duration:      time.Since(start),
	}

	s.logger.InfoContext(ctx, "presentation created",
		"presentation_id", id,
		"topic", req.Topic,
		"slide_count", result.SlideCount,
		"citation_count", result.CitationCount,
		"package_bytes", len(data),
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

// acquireContent returns the slide sequence for the request: the caller's
// own slides when provided, otherwise generated content.
func (s *presentationServiceImpl) acquireContent(
	ctx context.Context,
	req CreateRequest,
) ([]domain.SlideRecord, []domain.Citation, error) {
	if len(req.CustomSlides) > 0 {
		if err := domain.ValidateSlides(req.CustomSlides); err != nil {
			return nil, nil, err
		}
		s.logger.DebugContext(ctx, "using caller-provided slides",
			"slide_count", len(req.CustomSlides))
		return req.CustomSlides, nil, nil
	}

	return s.generator.GenerateSlides(ctx, req.Topic, req.SlideCount, req.IncludeCitations)
}

// GetPackage implements PresentationService.GetPackage.
func (s *presentationServiceImpl) GetPackage(ctx context.Context, id uuid.UUID) ([]byte, error) {
	data, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, NewPresentationServiceError("get", "retrieving package failed", err)
	}
	return data, nil
}

// Delete implements PresentationService.Delete.
func (s *presentationServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return NewPresentationServiceError("delete", "deleting package failed", err)
	}

	s.logger.InfoContext(ctx, "presentation deleted", "presentation_id", id)
	return nil
}
