package model

import (
	"slices"
	"time"
)

// MergeExtraction folds a fresh extraction into an existing brand style.
// Merges, never replaces: referenceImages becomes a URL-set union,
// extractedStyle is overwritten wholesale with sourceImages pinned to the
// triggering batch, and the top-level convenience fields are refreshed from
// the extraction. The receiver is not mutated.
func (s BrandStyle) MergeExtraction(extracted ExtractedStyle, sourceImages []string, at time.Time) BrandStyle {
	merged := s

	extracted.ExtractedAt = &at
	extracted.SourceImages = append([]string(nil), sourceImages...)
	merged.ExtractedStyle = &extracted

	merged.ReferenceImages = slices.Clone(s.ReferenceImages)
	for _, url := range sourceImages {
		if !slices.Contains(merged.ReferenceImages, url) {
			merged.ReferenceImages = append(merged.ReferenceImages, url)
		}
	}

	merged.PrimaryColor = extracted.Colors.Primary
	merged.SecondaryColor = extracted.Colors.Secondary
	merged.AccentColor = extracted.Colors.Accent
	merged.Keywords = append([]string(nil), extracted.Mood.Keywords...)
	merged.Tone = extracted.Mood.Primary

	return merged
}
