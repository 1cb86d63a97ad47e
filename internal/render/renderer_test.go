package render_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/slidegen-api/internal/domain"
	"github.com/phrazzld/slidegen-api/internal/render"
)

func bulletSlide(title string, points ...string) domain.SlideRecord {
	return domain.SlideRecord{
		Layout:       domain.LayoutBulletPoints,
		Title:        title,
		BulletPoints: points,
	}
}

func TestRender_BulletSlide4x3(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		bulletSlide("Key Points", "First", "Second", "Third"),
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio4x3)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if doc.Geometry.Height != 6858000 {
		t.Errorf("expected 4:3 page height 6858000 EMU, got %d", doc.Geometry.Height)
	}
	if doc.Geometry.Width != 9144000 {
		t.Errorf("expected page width 9144000 EMU, got %d", doc.Geometry.Width)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	page := doc.Pages[0]
	if len(page.Shapes) != 2 {
		t.Fatalf("expected 2 shapes (header and body), got %d", len(page.Shapes))
	}

	header, ok := page.Shapes[0].(render.TextBox)
	if !ok {
		t.Fatalf("expected first shape to be a TextBox, got %T", page.Shapes[0])
	}
	if len(header.Paragraphs) != 1 || header.Paragraphs[0].Text != "Key Points" {
		t.Errorf("expected header paragraph %q, got %+v", "Key Points", header.Paragraphs)
	}
	if !header.Paragraphs[0].Bold {
		t.Error("expected header paragraph to be bold")
	}

	body, ok := page.Shapes[1].(render.TextBox)
	if !ok {
		t.Fatalf("expected second shape to be a TextBox, got %T", page.Shapes[1])
	}
	if len(body.Paragraphs) != 3 {
		t.Fatalf("expected 3 bullet paragraphs, got %d", len(body.Paragraphs))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if body.Paragraphs[i].Text != want {
			t.Errorf("paragraph %d: expected %q, got %q", i, want, body.Paragraphs[i].Text)
		}
	}
}

func TestRender_Geometry16x9(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Overview"},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if doc.Geometry.Width != 9144000 || doc.Geometry.Height != 5143500 {
		t.Errorf("expected 9144000x5143500 EMU, got %dx%d", doc.Geometry.Width, doc.Geometry.Height)
	}
}

func TestRender_TitleSlideWithSubtitle(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Cats", BodyText: "A comprehensive overview of Cats"},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	page := doc.Pages[0]
	if len(page.Shapes) != 2 {
		t.Fatalf("expected title and subtitle shapes, got %d", len(page.Shapes))
	}

	title := page.Shapes[0].(render.TextBox)
	if title.Paragraphs[0].Align != render.AlignCenter {
		t.Errorf("expected centered title, got align %q", title.Paragraphs[0].Align)
	}
	if title.Paragraphs[0].FontSize != domain.DefaultTheme().TitleFontSize {
		t.Errorf("expected title font size %d, got %d",
			domain.DefaultTheme().TitleFontSize, title.Paragraphs[0].FontSize)
	}

	subtitle := page.Shapes[1].(render.TextBox)
	if subtitle.Paragraphs[0].Text != "A comprehensive overview of Cats" {
		t.Errorf("unexpected subtitle text %q", subtitle.Paragraphs[0].Text)
	}
}

func TestRender_TitleSlideWithoutSubtitle(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Cats"},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(doc.Pages[0].Shapes) != 1 {
		t.Errorf("expected a single title shape, got %d", len(doc.Pages[0].Shapes))
	}
}

func TestRender_ContentWithImagePlaceholder(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{
			Layout:       domain.LayoutContentWithImage,
			Title:        "Visual Overview",
			BodyText:     "Body",
			ImageCaption: "A cat on a roof",
		},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	page := doc.Pages[0]
	if len(page.Shapes) != 3 {
		t.Fatalf("expected header, body, and placeholder shapes, got %d", len(page.Shapes))
	}

	rect, ok := page.Shapes[2].(render.Rect)
	if !ok {
		t.Fatalf("expected third shape to be a Rect, got %T", page.Shapes[2])
	}
	if rect.Fill != (domain.RGB{R: 220, G: 220, B: 220}) {
		t.Errorf("expected gray placeholder fill, got %+v", rect.Fill)
	}
	if rect.Caption == nil {
		t.Fatal("expected a placeholder caption")
	}
	if rect.Caption.Text != "[Image: A cat on a roof]" {
		t.Errorf("unexpected caption %q", rect.Caption.Text)
	}
	if !rect.Caption.Italic {
		t.Error("expected italic caption")
	}
}

func TestRender_TwoColumn(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{
			Layout:    domain.LayoutTwoColumn,
			Title:     "Comparing",
			LeftText:  "left side",
			RightText: "right side",
		},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	page := doc.Pages[0]
	if len(page.Shapes) != 3 {
		t.Fatalf("expected header and two columns, got %d shapes", len(page.Shapes))
	}
	left := page.Shapes[1].(render.TextBox)
	right := page.Shapes[2].(render.TextBox)
	if left.Paragraphs[0].Text != "left side" || right.Paragraphs[0].Text != "right side" {
		t.Errorf("unexpected column texts %q / %q",
			left.Paragraphs[0].Text, right.Paragraphs[0].Text)
	}
	if left.Frame.X >= right.Frame.X {
		t.Errorf("expected left column left of right column, got x=%d and x=%d",
			left.Frame.X, right.Frame.X)
	}
}

func TestRender_ReferencesPage(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Cats"},
	}
	citations := []domain.Citation{
		{Source: "Academic Research Database", Title: "Cats", Date: "2024"},
		{Source: "Industry Publications"},
	}

	doc, err := render.Render(slides, citations, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected a references page to be appended, got %d pages", len(doc.Pages))
	}

	refs := doc.Pages[1]
	header := refs.Shapes[0].(render.TextBox)
	if header.Paragraphs[0].Text != "References" {
		t.Errorf("expected references header, got %q", header.Paragraphs[0].Text)
	}

	body := refs.Shapes[1].(render.TextBox)
	if len(body.Paragraphs) != 2 {
		t.Fatalf("expected 2 citation paragraphs, got %d", len(body.Paragraphs))
	}
	if body.Paragraphs[0].Text != "Academic Research Database - Cats (2024)" {
		t.Errorf("unexpected citation line %q", body.Paragraphs[0].Text)
	}
	if body.Paragraphs[1].Text != "Industry Publications" {
		t.Errorf("unexpected citation line %q", body.Paragraphs[1].Text)
	}
}

func TestRender_NoCitationsNoReferencesPage(t *testing.T) {
	t.Parallel()

	slides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Cats"},
	}

	doc, err := render.Render(slides, nil, domain.DefaultTheme(), domain.AspectRatio16x9)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected no references page, got %d pages", len(doc.Pages))
	}
}

func TestRender_Failures(t *testing.T) {
	t.Parallel()

	validSlides := []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "Cats"},
	}

	tests := []struct {
		name   string
		slides []domain.SlideRecord
		theme  domain.ThemeConfig
		aspect domain.AspectRatio
	}{
		{
			name:   "unknown layout",
			slides: []domain.SlideRecord{{Layout: "pie_chart", Title: "Cats"}},
			theme:  domain.DefaultTheme(),
			aspect: domain.AspectRatio16x9,
		},
		{
			name:   "unknown aspect ratio",
			slides: validSlides,
			theme:  domain.DefaultTheme(),
			aspect: "21:9",
		},
		{
			name:   "malformed theme color",
			slides: validSlides,
			theme: domain.ThemeConfig{
				PrimaryColor:   "#XYZXYZ",
				SecondaryColor: "#FFFFFF",
				FontName:       "Calibri",
				TitleFontSize:  44,
				BodyFontSize:   18,
			},
			aspect: domain.AspectRatio16x9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := render.Render(tc.slides, nil, tc.theme, tc.aspect)
			if !errors.Is(err, render.ErrRenderFailed) {
				t.Errorf("expected ErrRenderFailed, got %v", err)
			}
			if doc != nil {
				t.Error("expected no document on failure")
			}
		})
	}
}
