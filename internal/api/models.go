package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/slidegen-api/internal/domain"
)

// GeneratePresentationRequest defines the payload for the presentation
// creation endpoint.
//
// Topic drives content generation and is required unless CustomSlides is
// given, in which case generation is skipped and the provided slides are
// used directly. Omitted optional fields fall back to server defaults:
// the configured default slide count, citations on, the default theme,
// and a 16:9 aspect ratio.
//
// Theme is kept raw so a partial theme merges over the default: only the
// fields the caller sets are overridden, the rest keep their defaults.
type GeneratePresentationRequest struct {
	Topic            string               `json:"topic"             validate:"required_without=CustomSlides,omitempty,min=3,max=500"`
	NumSlides        int                  `json:"num_slides"        validate:"omitempty,gte=1,lte=20"`
	CustomSlides     []domain.SlideRecord `json:"custom_slides"     validate:"omitempty,min=1"`
	Theme            json.RawMessage      `json:"theme"`
	IncludeCitations *bool                `json:"include_citations"`
	AspectRatio      string               `json:"aspect_ratio"      validate:"omitempty,oneof=16:9 4:3"`
}

// PresentationResponse defines the successful response for the presentation
// creation endpoint.
type PresentationResponse struct {
	ID               uuid.UUID `json:"id"`
	Topic            string    `json:"topic,omitempty"`
	SlideCount       int       `json:"slide_count"`
	CitationCount    int       `json:"citation_count"`
	CreatedAt        time.Time `json:"created_at"`
	GenerationTimeMS int64     `json:"generation_time_ms"`
	DownloadURL      string    `json:"download_url"`
}

// HealthResponse defines the response of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
