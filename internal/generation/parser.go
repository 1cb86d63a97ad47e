package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/slidegen-api/internal/domain"
)

// slidePayload is the structured document the parser extracts from the
// service's free-form response text.
type slidePayload struct {
	Slides    []domain.SlideRecord `json:"slides"`
	Citations []domain.Citation    `json:"citations"`
}

// ParseResponse extracts the slide payload embedded in raw generated text.
//
// Generative output routinely wraps the structured block in prose, so the
// parser takes the substring from the first '{' to the last '}' as the
// payload and decodes it. Slides beyond maxSlides are dropped before
// validation. The parse is atomic: if no block is found, decoding fails, or
// any kept slide or citation fails schema validation, the whole parse fails
// with an error wrapping ErrParseFailed and nothing is returned.
//
// Citations are returned only when the payload carries a non-empty list.
func ParseResponse(raw string, maxSlides int) ([]domain.SlideRecord, []domain.Citation, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, nil, fmt.Errorf("%w: no JSON object found in response", ErrParseFailed)
	}

	var payload slidePayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if len(payload.Slides) == 0 {
		return nil, nil, fmt.Errorf("%w: payload contains no slides", ErrParseFailed)
	}

	slides := payload.Slides
	if len(slides) > maxSlides {
		slides = slides[:maxSlides]
	}

	if err := domain.ValidateSlides(slides); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	var citations []domain.Citation
	if len(payload.Citations) > 0 {
		for i := range payload.Citations {
			if err := payload.Citations[i].Validate(); err != nil {
				return nil, nil, fmt.Errorf("%w: citation %d: %v", ErrParseFailed, i+1, err)
			}
		}
		citations = payload.Citations
	}

	return slides, citations, nil
}
