package render

import (
	"fmt"

	"github.com/phrazzld/slidegen-api/internal/domain"
)

// placeholderFill is the neutral gray of the image placeholder rectangle.
var placeholderFill = domain.RGB{R: 220, G: 220, B: 220}

// titleSizeReduction is subtracted from the theme title size on content
// slides, which carry their title as a header rather than centerpiece.
const titleSizeReduction = 8

// Render builds a Document from a validated slide sequence. One page is
// produced per slide, dispatched on the slide's layout; a trailing
// References page is appended when citations is non-empty.
//
// Rendering is atomic: the first invariant violation (unknown layout or
// aspect ratio, malformed theme color) aborts with an error wrapping
// ErrRenderFailed and no document is returned.
func Render(
	slides []domain.SlideRecord,
	citations []domain.Citation,
	theme domain.ThemeConfig,
	aspect domain.AspectRatio,
) (*Document, error) {
	var geometry Geometry
	switch aspect {
	case domain.AspectRatio16x9:
		geometry = geometry16x9
	case domain.AspectRatio4x3:
		geometry = geometry4x3
	default:
		return nil, fmt.Errorf("%w: unknown aspect ratio %q", ErrRenderFailed, aspect)
	}

	// Theme colors were validated at construction; a failure here means a
	// ThemeConfig bypassed validation.
	primary, err := domain.ParseHexColor(theme.PrimaryColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	doc := &Document{
		Geometry: geometry,
		FontName: theme.FontName,
		Pages:    make([]Page, 0, len(slides)+1),
	}

	for i := range slides {
		page, err := renderSlide(&slides[i], theme, primary)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		doc.Pages = append(doc.Pages, page)
	}

	if len(citations) > 0 {
		doc.Pages = append(doc.Pages, renderReferences(citations, theme, primary))
	}

	return doc, nil
}

// renderSlide dispatches on the slide layout. The switch is exhaustive
// over the closed layout set; anything else is a contract breach.
func renderSlide(slide *domain.SlideRecord, theme domain.ThemeConfig, primary domain.RGB) (Page, error) {
	switch slide.Layout {
	case domain.LayoutTitle:
		return renderTitle(slide, theme, primary), nil
	case domain.LayoutBulletPoints:
		return renderBulletPoints(slide, theme, primary), nil
	case domain.LayoutTwoColumn:
		return renderTwoColumn(slide, theme, primary), nil
	case domain.LayoutContentWithImage:
		return renderContentWithImage(slide, theme, primary), nil
	default:
		return Page{}, fmt.Errorf("%w: unknown layout %q", ErrRenderFailed, slide.Layout)
	}
}

// headerTitle is the shared top title block of the non-title layouts.
func headerTitle(text string, theme domain.ThemeConfig, primary domain.RGB) TextBox {
	return TextBox{
		Frame: Box{X: inches(0.5), Y: inches(0.5), W: inches(9), H: inches(0.8)},
		Paragraphs: []Paragraph{{
			Text:     text,
			FontSize: theme.TitleFontSize - titleSizeReduction,
			Bold:     true,
			Color:    &primary,
			Align:    AlignLeft,
		}},
	}
}

func renderTitle(slide *domain.SlideRecord, theme domain.ThemeConfig, primary domain.RGB) Page {
	shapes := []Shape{
		TextBox{
			Frame: Box{X: inches(1), Y: inches(2), W: inches(8), H: inches(1)},
			Paragraphs: []Paragraph{{
				Text:     slide.Title,
				FontSize: theme.TitleFontSize,
				Bold:     true,
				Color:    &primary,
				Align:    AlignCenter,
			}},
		},
	}

	if slide.BodyText != "" {
		shapes = append(shapes, TextBox{
			Frame: Box{X: inches(1), Y: inches(3.2), W: inches(8), H: inches(0.8)},
			Paragraphs: []Paragraph{{
				Text:     slide.BodyText,
				FontSize: theme.BodyFontSize,
				Align:    AlignCenter,
			}},
		})
	}

	return Page{Shapes: shapes}
}

func renderBulletPoints(slide *domain.SlideRecord, theme domain.ThemeConfig, primary domain.RGB) Page {
	paragraphs := make([]Paragraph, 0, len(slide.BulletPoints))
	for _, bullet := range slide.BulletPoints {
		paragraphs = append(paragraphs, Paragraph{
			Text:        bullet,
			FontSize:    theme.BodyFontSize,
			Align:       AlignLeft,
			SpaceBefore: 12,
		})
	}

	return Page{Shapes: []Shape{
		headerTitle(slide.Title, theme, primary),
		TextBox{
			Frame:      Box{X: inches(1), Y: inches(1.8), W: inches(8), H: inches(3.5)},
			Paragraphs: paragraphs,
			WordWrap:   true,
		},
	}}
}

func renderTwoColumn(slide *domain.SlideRecord, theme domain.ThemeConfig, primary domain.RGB) Page {
	column := func(text string, x float64) TextBox {
		return TextBox{
			Frame: Box{X: inches(x), Y: inches(1.8), W: inches(4.5), H: inches(3.5)},
			Paragraphs: []Paragraph{{
				Text:     text,
				FontSize: theme.BodyFontSize,
				Align:    AlignLeft,
			}},
			WordWrap: true,
		}
	}

	return Page{Shapes: []Shape{
		headerTitle(slide.Title, theme, primary),
		column(slide.LeftText, 0.5),
		column(slide.RightText, 5.2),
	}}
}

func renderContentWithImage(slide *domain.SlideRecord, theme domain.ThemeConfig, primary domain.RGB) Page {
	rect := Rect{
		Frame: Box{X: inches(6), Y: inches(1.8), W: inches(3.5), H: inches(3)},
		Fill:  placeholderFill,
	}

	// No image is fetched or embedded; the caption names the intended
	// image inside the placeholder.
	if slide.ImageCaption != "" {
		rect.Caption = &Paragraph{
			Text:     fmt.Sprintf("[Image: %s]", slide.ImageCaption),
			FontSize: 12,
			Italic:   true,
			Align:    AlignCenter,
		}
	}

	return Page{Shapes: []Shape{
		headerTitle(slide.Title, theme, primary),
		TextBox{
			Frame: Box{X: inches(0.5), Y: inches(1.8), W: inches(5), H: inches(3.5)},
			Paragraphs: []Paragraph{{
				Text:     slide.BodyText,
				FontSize: theme.BodyFontSize,
				Align:    AlignLeft,
			}},
			WordWrap: true,
		},
		rect,
	}}
}

// renderReferences builds the trailing References page: one paragraph per
// citation, in input order.
func renderReferences(citations []domain.Citation, theme domain.ThemeConfig, primary domain.RGB) Page {
	paragraphs := make([]Paragraph, 0, len(citations))
	for i := range citations {
		paragraphs = append(paragraphs, Paragraph{
			Text:        citations[i].FormatReference(),
			FontSize:    theme.BodyFontSize - 2,
			Align:       AlignLeft,
			SpaceBefore: 8,
		})
	}

	return Page{Shapes: []Shape{
		headerTitle("References", theme, primary),
		TextBox{
			Frame:      Box{X: inches(0.5), Y: inches(1.8), W: inches(9), H: inches(3.5)},
			Paragraphs: paragraphs,
			WordWrap:   true,
		},
	}}
}
