package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Theme font size bounds.
const (
	TitleFontSizeMin = 20
	TitleFontSizeMax = 72
	BodyFontSizeMin  = 10
	BodyFontSizeMax  = 36
)

// Theme-specific validation errors.
var (
	// ErrThemeColorInvalid is returned when a color is not a 7-character
	// #RRGGBB hex string.
	ErrThemeColorInvalid = errors.New("color must be a 7-character hex string (e.g. #1F4788)")

	// ErrThemeFontSizeRange is returned when a font size is outside its bounds.
	ErrThemeFontSizeRange = errors.New("font size out of range")
)

// ThemeConfig controls the typography and colors of a rendered deck.
type ThemeConfig struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontName       string `json:"font_name"`
	TitleFontSize  int    `json:"title_font_size"`
	BodyFontSize   int    `json:"body_font_size"`
}

// DefaultTheme returns the theme used when a request does not supply one.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		PrimaryColor:   "#1F4788",
		SecondaryColor: "#FFFFFF",
		FontName:       "Calibri",
		TitleFontSize:  44,
		BodyFontSize:   18,
	}
}

// NewThemeConfig constructs a validated ThemeConfig.
func NewThemeConfig(primary, secondary, fontName string, titleSize, bodySize int) (ThemeConfig, error) {
	theme := ThemeConfig{
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		FontName:       fontName,
		TitleFontSize:  titleSize,
		BodyFontSize:   bodySize,
	}

	if err := theme.Validate(); err != nil {
		return ThemeConfig{}, err
	}

	return theme, nil
}

// Validate checks the theme's colors and font sizes.
// Returns an error wrapping ErrValidation if any field fails validation.
func (t *ThemeConfig) Validate() error {
	if _, err := ParseHexColor(t.PrimaryColor); err != nil {
		return fmt.Errorf("%w: primary_color: %w", ErrValidation, err)
	}

	if _, err := ParseHexColor(t.SecondaryColor); err != nil {
		return fmt.Errorf("%w: secondary_color: %w", ErrValidation, err)
	}

	if t.TitleFontSize < TitleFontSizeMin || t.TitleFontSize > TitleFontSizeMax {
		return fmt.Errorf("%w: %w: title_font_size %d not in [%d,%d]",
			ErrValidation, ErrThemeFontSizeRange, t.TitleFontSize, TitleFontSizeMin, TitleFontSizeMax)
	}

	if t.BodyFontSize < BodyFontSizeMin || t.BodyFontSize > BodyFontSizeMax {
		return fmt.Errorf("%w: %w: body_font_size %d not in [%d,%d]",
			ErrValidation, ErrThemeFontSizeRange, t.BodyFontSize, BodyFontSizeMin, BodyFontSizeMax)
	}

	return nil
}

// RGB is a decoded color triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string without the leading #.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor decodes a #RRGGBB string into an RGB triple. Anything that
// is not a # followed by exactly six hex digits fails with
// ErrThemeColorInvalid.
func ParseHexColor(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrThemeColorInvalid, hex)
	}

	var parts [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrThemeColorInvalid, hex)
		}
		parts[i] = uint8(v)
	}

	return RGB{R: parts[0], G: parts[1], B: parts[2]}, nil
}
