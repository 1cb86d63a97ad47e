package render

import (
	"github.com/phrazzld/slidegen-api/internal/domain"
)

// EMUPerInch is the number of English Metric Units per inch, the length
// unit used throughout OOXML drawing markup.
const EMUPerInch = 914400

// Geometry is the page size of a deck in EMU.
type Geometry struct {
	Width  int64
	Height int64
}

// Fixed page sizes. Both ratios keep the original 10-inch width.
var (
	// geometry16x9 is 10 x 5.625 inches.
	geometry16x9 = Geometry{Width: 10 * EMUPerInch, Height: 5143500}

	// geometry4x3 is 10 x 7.5 inches.
	geometry4x3 = Geometry{Width: 10 * EMUPerInch, Height: 7*EMUPerInch + EMUPerInch/2}
)

// Align is a paragraph alignment value.
type Align string

// Paragraph alignments used by the layouts.
const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
)

// Box is a shape frame: offset and extent in EMU.
type Box struct {
	X, Y, W, H int64
}

// Paragraph is one styled line of text inside a text box.
type Paragraph struct {
	Text string

	// FontSize is in points.
	FontSize int

	Bold   bool
	Italic bool

	// Color is the run color; nil means the default text color.
	Color *domain.RGB

	Align Align

	// SpaceBefore is vertical spacing above the paragraph in points.
	SpaceBefore int
}

// Shape is a visual element placed on a page. The set is closed: TextBox
// and Rect are the only implementations.
type Shape interface {
	shape()
}

// TextBox is a positioned block of paragraphs.
type TextBox struct {
	Frame      Box
	Paragraphs []Paragraph
	WordWrap   bool
}

func (TextBox) shape() {}

// Rect is a filled placeholder rectangle with an optional caption.
type Rect struct {
	Frame   Box
	Fill    domain.RGB
	Caption *Paragraph
}

func (Rect) shape() {}

// Page is one rendered slide: an ordered list of shapes.
type Page struct {
	Shapes []Shape
}

// Document is a fully rendered deck. It is built within a single Render
// call and frozen afterwards; Serialize never mutates it.
type Document struct {
	Geometry Geometry

	// FontName is the deck-wide font family from the theme.
	FontName string

	Pages []Page
}

// inches converts a length in inches to EMU.
func inches(v float64) int64 {
	return int64(v * EMUPerInch)
}
