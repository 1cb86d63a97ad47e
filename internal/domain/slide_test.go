package domain

import (
	"errors"
	"strings"
	"testing"
)

func validBulletSlide() SlideRecord {
	return SlideRecord{
		Layout: LayoutBulletPoints,
		Title:  "Key Points",
		BulletPoints: []string{
			"First point",
			"Second point",
			"Third point",
		},
	}
}

func TestSlideRecordValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Valid slide for each layout
	valid := []SlideRecord{
		{Layout: LayoutTitle, Title: "Welcome", BodyText: "An overview"},
		validBulletSlide(),
		{Layout: LayoutTwoColumn, Title: "Comparison", LeftText: "old", RightText: "new"},
		{Layout: LayoutContentWithImage, Title: "Visuals", BodyText: "text", ImageCaption: "a diagram"},
	}
	for _, slide := range valid {
		if err := slide.Validate(); err != nil {
			t.Errorf("Expected no error for layout %s, got %v", slide.Layout, err)
		}
	}

	// Unknown layout
	slide := validBulletSlide()
	slide.Layout = SlideLayout("freeform")
	if err := slide.Validate(); !errors.Is(err, ErrSlideLayoutInvalid) {
		t.Errorf("Expected ErrSlideLayoutInvalid, got %v", err)
	}

	// Empty title
	slide = validBulletSlide()
	slide.Title = ""
	if err := slide.Validate(); !errors.Is(err, ErrSlideTitleEmpty) {
		t.Errorf("Expected ErrSlideTitleEmpty, got %v", err)
	}

	// Title over the 200-character bound
	slide = validBulletSlide()
	slide.Title = strings.Repeat("x", SlideTitleMaxLength+1)
	if err := slide.Validate(); !errors.Is(err, ErrSlideTitleTooLong) {
		t.Errorf("Expected ErrSlideTitleTooLong, got %v", err)
	}

	// The bound counts characters, not bytes: 150 three-byte runes are
	// 450 bytes but well within 200 characters.
	slide = validBulletSlide()
	slide.Title = strings.Repeat("日", 150)
	if err := slide.Validate(); err != nil {
		t.Errorf("Expected multi-byte title within the bound to pass, got %v", err)
	}

	// And 201 multi-byte characters are over it.
	slide = validBulletSlide()
	slide.Title = strings.Repeat("日", SlideTitleMaxLength+1)
	if err := slide.Validate(); !errors.Is(err, ErrSlideTitleTooLong) {
		t.Errorf("Expected ErrSlideTitleTooLong for 201 characters, got %v", err)
	}

	// Every slide validation error wraps ErrValidation
	if err := slide.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error to wrap ErrValidation, got %v", err)
	}
}

func TestSlideRecordValidateBulletPoints(t *testing.T) {
	t.Parallel() // Enable parallel execution

	tests := []struct {
		name    string
		bullets int
		wantErr bool
	}{
		{"two_bullets_rejected", 2, true},
		{"three_bullets_accepted", 3, false},
		{"five_bullets_accepted", 5, false},
		{"six_bullets_rejected", 6, true},
		{"no_bullets_rejected", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide := SlideRecord{Layout: LayoutBulletPoints, Title: "Points"}
			for i := 0; i < tt.bullets; i++ {
				slide.BulletPoints = append(slide.BulletPoints, "point")
			}

			err := slide.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrBulletPointCount) {
					t.Errorf("Expected ErrBulletPointCount, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSlideRecordValidateIgnoresIrrelevantFields(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Fields that do not belong to the chosen layout may still be present.
	slide := SlideRecord{
		Layout:       LayoutTitle,
		Title:        "Welcome",
		LeftText:     "ignored",
		RightText:    "ignored",
		ImageCaption: "ignored",
		BulletPoints: []string{"one"}, // no count constraint outside bullet_points
	}

	if err := slide.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestValidateSlides(t *testing.T) {
	t.Parallel() // Enable parallel execution

	slides := []SlideRecord{
		{Layout: LayoutTitle, Title: "Welcome"},
		{Layout: LayoutBulletPoints, Title: "Points"}, // invalid: no bullets
	}

	err := ValidateSlides(slides)
	if !errors.Is(err, ErrBulletPointCount) {
		t.Fatalf("Expected ErrBulletPointCount, got %v", err)
	}
	if !strings.Contains(err.Error(), "slide 2") {
		t.Errorf("Expected error to name the failing slide position, got %q", err.Error())
	}

	if err := ValidateSlides(nil); err != nil {
		t.Errorf("Expected no error for empty sequence, got %v", err)
	}
}

func TestCitationValidateAndFormat(t *testing.T) {
	t.Parallel() // Enable parallel execution

	citation := Citation{}
	if err := citation.Validate(); !errors.Is(err, ErrCitationSourceEmpty) {
		t.Errorf("Expected ErrCitationSourceEmpty, got %v", err)
	}

	tests := []struct {
		name     string
		citation Citation
		want     string
	}{
		{
			name:     "source_only",
			citation: Citation{Source: "Journal of Things"},
			want:     "Journal of Things",
		},
		{
			name:     "source_and_title",
			citation: Citation{Source: "Journal of Things", Title: "On Stuff"},
			want:     "Journal of Things - On Stuff",
		},
		{
			name:     "source_title_date",
			citation: Citation{Source: "Journal of Things", Title: "On Stuff", Date: "2024"},
			want:     "Journal of Things - On Stuff (2024)",
		},
		{
			name:     "source_and_date",
			citation: Citation{Source: "Journal of Things", Date: "2024"},
			want:     "Journal of Things (2024)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.citation.FormatReference(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
