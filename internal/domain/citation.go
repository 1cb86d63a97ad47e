package domain

import (
	"errors"
	"fmt"
)

// ErrCitationSourceEmpty is returned when a citation has no source.
var ErrCitationSourceEmpty = errors.New("citation source cannot be empty")

// Citation identifies a source referenced by generated content. Title and
// Date are optional free text; Date is not parsed or validated.
type Citation struct {
	Source string `json:"source"`
	Title  string `json:"title,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Validate checks that the citation carries a source.
func (c *Citation) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrCitationSourceEmpty)
	}
	return nil
}

// FormatReference renders the citation the way the References page shows it:
// the source, followed by " - title" when a title is present and " (date)"
// when a date is present.
func (c *Citation) FormatReference() string {
	text := c.Source
	if c.Title != "" {
		text += " - " + c.Title
	}
	if c.Date != "" {
		text += " (" + c.Date + ")"
	}
	return text
}
