package generation

import (
	"fmt"
	"strings"
)

// systemInstruction primes the model before the per-request instruction.
const systemInstruction = "You are an expert presentation designer. " +
	"Create engaging, well-structured presentation content."

// citationsRequirement is appended to the instruction when the caller asked
// for citations.
const citationsRequirement = "\n- Include 2-3 source citations in JSON format at the end."

// instructionTemplate describes the slide payload the parser expects. The
// JSON keys here must stay in sync with the domain.SlideRecord field tags.
const instructionTemplate = `Create a %d-slide presentation about: %s

Requirements:
- Slide 1 must be a title slide with a catchy title and subtitle
- Use a variety of layouts: bullet_points, two_column, and content_with_image
- For bullet_points slides: provide exactly 3-5 bullet points
- For two_column slides: provide content for left and right columns
- For content_with_image slides: provide body text and an image caption
- Make content engaging, informative, and well-structured%s

Return the response in the following JSON format:
{
  "slides": [
    {
      "layout": "title",
      "title": "Main Title",
      "body_text": "Subtitle or tagline"
    },
    {
      "layout": "bullet_points",
      "title": "Key Points",
      "bullet_points": ["Point 1", "Point 2", "Point 3"]
    },
    {
      "layout": "two_column",
      "title": "Comparison",
      "left_text": "Left content",
      "right_text": "Right content"
    },
    {
      "layout": "content_with_image",
      "title": "Visual Section",
      "body_text": "Descriptive text",
      "image_caption": "Description of relevant image"
    }
  ],
  "citations": [
    {"source": "Source name", "title": "Article title", "date": "2024"}
  ]
}

Ensure valid JSON format. Be creative and informative!`

// BuildInstruction assembles the full instruction text sent to the
// text-generation service: the system priming followed by the formatted
// per-request template.
func BuildInstruction(topic string, slideCount int, includeCitations bool) string {
	requirement := ""
	if includeCitations {
		requirement = citationsRequirement
	}

	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, instructionTemplate, slideCount, topic, requirement)
	return b.String()
}
