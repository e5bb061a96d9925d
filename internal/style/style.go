// Package style derives structured visual-style descriptors from reference
// images and validates them against the extraction schema.
package style

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/Eluskie/Orlando/internal/model"
)

// Extractor produces an ExtractedStyle from one or more image URLs. The mock
// and real implementations satisfy the same schema, so callers never
// special-case the mode beyond selecting an implementation.
type Extractor interface {
	Extract(ctx context.Context, imageURLs []string) (*model.ExtractedStyle, error)
}

// ExtractionPrompt is the fixed instruction sent alongside the images on the
// real path.
const ExtractionPrompt = `Analyze this reference image(s) and extract the visual style characteristics.

Return a JSON object with:
1. colors: Extract dominant colors as precise hex codes (#RRGGBB format)
   - primary: The main brand/dominant color
   - secondary: A supporting color
   - accent: A highlight or call-to-action color
   - neutral: Background or text-suitable color

2. typography: Infer the typography style that would complement this visual
   - style: serif, sans-serif, display, handwritten, or monospace
   - weight: light, regular, medium, bold, or heavy
   - mood: A word describing the typography feel

3. mood: The emotional and stylistic impression
   - primary: Main mood descriptor
   - keywords: 3-5 words capturing the brand essence
   - tone: warm, cool, or neutral

4. visualStyle: Technical visual characteristics
   - complexity: minimal, moderate, detailed, or ornate
   - contrast: low, medium, or high
   - texture: A word describing the texture quality

5. confidence: Your confidence in this extraction (0-1)

Be specific and precise. When analyzing multiple images, find common threads.`

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	typographyStyles  = []string{"serif", "sans-serif", "display", "handwritten", "monospace"}
	typographyWeights = []string{"light", "regular", "medium", "bold", "heavy"}
	moodTones         = []string{"warm", "cool", "neutral"}
	complexities      = []string{"minimal", "moderate", "detailed", "ornate"}
	contrasts         = []string{"low", "medium", "high"}
)

// Validate checks an extraction against the schema: four hex colors,
// enumerated typography and visual-style values, 3-5 mood keywords and a
// confidence in [0,1]. A failing response is an extraction error, never
// silently coerced.
func Validate(s *model.ExtractedStyle) error {
	if s == nil {
		return fmt.Errorf("extraction is empty")
	}
	for name, color := range map[string]string{
		"primary":   s.Colors.Primary,
		"secondary": s.Colors.Secondary,
		"accent":    s.Colors.Accent,
		"neutral":   s.Colors.Neutral,
	} {
		if !hexColorPattern.MatchString(color) {
			return fmt.Errorf("colors.%s %q is not a #RRGGBB hex string", name, color)
		}
	}
	if !slices.Contains(typographyStyles, s.Typography.Style) {
		return fmt.Errorf("typography.style %q is not one of %v", s.Typography.Style, typographyStyles)
	}
	if !slices.Contains(typographyWeights, s.Typography.Weight) {
		return fmt.Errorf("typography.weight %q is not one of %v", s.Typography.Weight, typographyWeights)
	}
	if !slices.Contains(moodTones, s.Mood.Tone) {
		return fmt.Errorf("mood.tone %q is not one of %v", s.Mood.Tone, moodTones)
	}
	if len(s.Mood.Keywords) < 3 || len(s.Mood.Keywords) > 5 {
		return fmt.Errorf("mood.keywords has %d entries, want 3-5", len(s.Mood.Keywords))
	}
	if !slices.Contains(complexities, s.VisualStyle.Complexity) {
		return fmt.Errorf("visualStyle.complexity %q is not one of %v", s.VisualStyle.Complexity, complexities)
	}
	if !slices.Contains(contrasts, s.VisualStyle.Contrast) {
		return fmt.Errorf("visualStyle.contrast %q is not one of %v", s.VisualStyle.Contrast, contrasts)
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("confidence %v is outside [0,1]", s.Confidence)
	}
	return nil
}
