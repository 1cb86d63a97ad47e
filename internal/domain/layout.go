package domain

// SlideLayout identifies the structural template of a slide. The set is
// closed: the renderer dispatches exhaustively on these values and treats
// anything else as a contract breach.
type SlideLayout string

// Supported slide layout types.
const (
	LayoutTitle            SlideLayout = "title"
	LayoutBulletPoints     SlideLayout = "bullet_points"
	LayoutTwoColumn        SlideLayout = "two_column"
	LayoutContentWithImage SlideLayout = "content_with_image"
)

// Valid reports whether the layout is one of the supported values.
func (l SlideLayout) Valid() bool {
	switch l {
	case LayoutTitle, LayoutBulletPoints, LayoutTwoColumn, LayoutContentWithImage:
		return true
	default:
		return false
	}
}

// AspectRatio selects the page geometry of the rendered deck.
type AspectRatio string

// Supported aspect ratios.
const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio4x3  AspectRatio = "4:3"
)

// Valid reports whether the aspect ratio is one of the supported values.
func (a AspectRatio) Valid() bool {
	return a == AspectRatio16x9 || a == AspectRatio4x3
}
