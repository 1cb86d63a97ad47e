package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Slide content limits.
const (
	SlideTitleMaxLength = 200
	BulletPointsMin     = 3
	BulletPointsMax     = 5
)

// Slide-specific validation errors.
var (
	// ErrSlideLayoutInvalid is returned when a slide's layout is not a supported value.
	ErrSlideLayoutInvalid = errors.New("slide layout is not supported")

	// ErrSlideTitleEmpty is returned when a slide's title is empty.
	ErrSlideTitleEmpty = errors.New("slide title cannot be empty")

	// ErrSlideTitleTooLong is returned when a slide's title exceeds the maximum length.
	ErrSlideTitleTooLong = errors.New("slide title exceeds maximum length")

	// ErrBulletPointCount is returned when a bullet_points slide does not
	// carry between 3 and 5 bullet points.
	ErrBulletPointCount = errors.New("bullet_points layout requires 3-5 bullet points")
)

// SlideRecord holds the content of a single slide. Fields irrelevant to the
// chosen layout may be present but are ignored by the renderer; fields the
// layout requires must be populated and within bounds.
type SlideRecord struct {
	Layout       SlideLayout `json:"layout"`
	Title        string      `json:"title"`
	BodyText     string      `json:"body_text,omitempty"`
	BulletPoints []string    `json:"bullet_points,omitempty"`
	LeftText     string      `json:"left_text,omitempty"`
	RightText    string      `json:"right_text,omitempty"`
	ImageRef     string      `json:"image_ref,omitempty"`
	ImageCaption string      `json:"image_caption,omitempty"`
	SpeakerNotes string      `json:"speaker_notes,omitempty"`
}

// Validate checks the SlideRecord against the layout schema.
// Returns an error wrapping ErrValidation if any field fails validation.
func (s *SlideRecord) Validate() error {
	if !s.Layout.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrSlideLayoutInvalid, s.Layout)
	}

	if s.Title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrSlideTitleEmpty)
	}

	// The title bound counts characters, not bytes, so multi-byte text is
	// measured the same as ASCII.
	if n := utf8.RuneCountInString(s.Title); n > SlideTitleMaxLength {
		return fmt.Errorf("%w: %w (%d > %d)",
			ErrValidation, ErrSlideTitleTooLong, n, SlideTitleMaxLength)
	}

	if s.Layout == LayoutBulletPoints {
		if n := len(s.BulletPoints); n < BulletPointsMin || n > BulletPointsMax {
			return fmt.Errorf("%w: %w (got %d)", ErrValidation, ErrBulletPointCount, n)
		}
	}

	return nil
}

// ValidateSlides validates an ordered slide sequence, reporting the position
// of the first invalid slide.
func ValidateSlides(slides []SlideRecord) error {
	for i := range slides {
		if err := slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}
