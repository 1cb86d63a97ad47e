package generation

import (
	"fmt"

	"github.com/phrazzld/slidegen-api/internal/domain"
)

// fallbackLayouts is the fixed cycle used for slides after the title slide,
// indexed by (position-1) mod 4.
var fallbackLayouts = [4]domain.SlideLayout{
	domain.LayoutBulletPoints,
	domain.LayoutTwoColumn,
	domain.LayoutContentWithImage,
	domain.LayoutBulletPoints,
}

// Synthesize deterministically produces a schema-valid slide sequence for
// the topic without any external call. It is total for validated inputs:
// exactly slideCount slides, the first always a title slide, the rest
// cycling through the fixed layout sequence with templated placeholder
// text. When includeCitations is set, two fixed-pattern citations are
// returned.
func Synthesize(topic string, slideCount int, includeCitations bool) ([]domain.SlideRecord, []domain.Citation) {
	slides := make([]domain.SlideRecord, 0, slideCount)

	slides = append(slides, domain.SlideRecord{
		Layout:   domain.LayoutTitle,
		Title:    topic,
		BodyText: fmt.Sprintf("A comprehensive overview of %s", topic),
	})

	for i := 1; i < slideCount; i++ {
		switch fallbackLayouts[(i-1)%len(fallbackLayouts)] {
		case domain.LayoutBulletPoints:
			slides = append(slides, domain.SlideRecord{
				Layout: domain.LayoutBulletPoints,
				Title:  fmt.Sprintf("Key Points About %s (%d)", topic, i),
				BulletPoints: []string{
					fmt.Sprintf("Important aspect %d.1 of %s", i, topic),
					fmt.Sprintf("Critical consideration %d.2 for understanding", i),
					fmt.Sprintf("Essential element %d.3 to remember", i),
					fmt.Sprintf("Notable feature %d.4 worth exploring", i),
				},
			})
		case domain.LayoutTwoColumn:
			slides = append(slides, domain.SlideRecord{
				Layout: domain.LayoutTwoColumn,
				Title:  fmt.Sprintf("Comparing Aspects of %s", topic),
				LeftText: fmt.Sprintf(
					"Traditional approaches to %s include established methods and proven techniques.", topic),
				RightText: fmt.Sprintf(
					"Modern innovations in %s bring new perspectives and advanced solutions.", topic),
			})
		case domain.LayoutContentWithImage:
			slides = append(slides, domain.SlideRecord{
				Layout: domain.LayoutContentWithImage,
				Title:  fmt.Sprintf("Visual Overview of %s", topic),
				BodyText: fmt.Sprintf(
					"This section provides a detailed exploration of %s, highlighting its significance "+
						"and practical applications in real-world scenarios.", topic),
				ImageCaption: fmt.Sprintf("Illustration showing key concepts of %s", topic),
			})
		}
	}

	var citations []domain.Citation
	if includeCitations {
		citations = []domain.Citation{
			{
				Source: "Academic Research Database",
				Title:  fmt.Sprintf("Comprehensive Study on %s", topic),
				Date:   "2024",
			},
			{
				Source: "Industry Publications",
				Title:  fmt.Sprintf("Latest Trends in %s", topic),
				Date:   "2024",
			},
		}
	}

	return slides[:slideCount], citations
}
