package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/slidegen-api/internal/api/shared"
	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/domain"
	"github.com/phrazzld/slidegen-api/internal/service"
	"github.com/phrazzld/slidegen-api/internal/storage"
)

// pptxContentType is the MIME type of a PowerPoint package.
const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// PresentationHandler handles presentation-related HTTP requests.
type PresentationHandler struct {
	presentationService service.PresentationService
	slidesCfg           config.SlidesConfig
	validator           *validator.Validate
}

// NewPresentationHandler creates a new PresentationHandler.
func NewPresentationHandler(
	presentationService service.PresentationService,
	slidesCfg config.SlidesConfig,
) *PresentationHandler {
	return &PresentationHandler{
		presentationService: presentationService,
		slidesCfg:           slidesCfg,
		validator:           validator.New(),
	}
}

// CreatePresentation handles POST /api/v1/presentations requests.
func (h *PresentationHandler) CreatePresentation(w http.ResponseWriter, r *http.Request) {
	var req GeneratePresentationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	theme, err := resolveTheme(req.Theme)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid theme format")
		return
	}

	result, err := h.presentationService.Create(r.Context(), h.toCreateRequest(req, theme))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create presentation", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, PresentationResponse{
		ID:               result.ID,
		Topic:            result.Topic,
		SlideCount:       result.SlideCount,
		CitationCount:    result.CitationCount,
		CreatedAt:        result.CreatedAt,
		GenerationTimeMS: result.Duration.Milliseconds(),
		DownloadURL:      fmt.Sprintf("/api/v1/presentations/%s/download", result.ID),
	})
}

// resolveTheme merges a caller-supplied theme over the default theme.
// Decoding into a pre-defaulted value means only the fields present in the
// payload are overridden; an absent or null theme yields the default as-is.
func resolveTheme(raw json.RawMessage) (domain.ThemeConfig, error) {
	theme := domain.DefaultTheme()
	if len(raw) == 0 || string(raw) == "null" {
		return theme, nil
	}
	if err := json.Unmarshal(raw, &theme); err != nil {
		return domain.ThemeConfig{}, err
	}
	return theme, nil
}

// toCreateRequest applies request defaults and converts to the service model.
func (h *PresentationHandler) toCreateRequest(
	req GeneratePresentationRequest,
	theme domain.ThemeConfig,
) service.CreateRequest {
	slideCount := req.NumSlides
	if slideCount == 0 {
		slideCount = h.slidesCfg.DefaultSlides
	}

	includeCitations := true
	if req.IncludeCitations != nil {
		includeCitations = *req.IncludeCitations
	}

	aspect := domain.AspectRatio16x9
	if req.AspectRatio != "" {
		aspect = domain.AspectRatio(req.AspectRatio)
	}

	return service.CreateRequest{
		Topic:            req.Topic,
		SlideCount:       slideCount,
		IncludeCitations: includeCitations,
		CustomSlides:     req.CustomSlides,
		Theme:            theme,
		Aspect:           aspect,
	}
}

// DownloadPresentation handles GET /api/v1/presentations/{id}/download requests.
func (h *PresentationHandler) DownloadPresentation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid presentation ID")
		return
	}

	data, err := h.presentationService.GetPackage(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Presentation not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to retrieve presentation", err)
		return
	}

	w.Header().Set("Content-Type", pptxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.pptx"`, id))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Headers are already sent; the failure can only be logged.
		slog.Error("failed to write presentation package",
			"error", err,
			"presentation_id", id,
			"trace_id", shared.GetTraceID(r.Context()))
	}
}

// DeletePresentation handles DELETE /api/v1/presentations/{id} requests.
func (h *PresentationHandler) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid presentation ID")
		return
	}

	if err := h.presentationService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Presentation not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete presentation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
