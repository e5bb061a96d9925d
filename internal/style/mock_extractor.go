package style

import (
	"context"
	"sync/atomic"

	"github.com/Eluskie/Orlando/internal/model"
)

// mockPalettes are the fixed plausible extractions the mock rotates through,
// all satisfying the extraction schema.
var mockPalettes = []model.ExtractedStyle{
	{
		Colors: model.StyleColors{Primary: "#2563EB", Secondary: "#1E40AF", Accent: "#F59E0B", Neutral: "#F3F4F6"},
		Typography: model.Typography{Style: "sans-serif", Weight: "medium", Mood: "modern"},
		Mood: model.Mood{Primary: "modern", Keywords: []string{"clean", "professional", "trustworthy", "innovative"}, Tone: "cool"},
		VisualStyle: model.VisualStyle{Complexity: "moderate", Contrast: "medium", Texture: "smooth"},
		Confidence:  0.92,
	},
	{
		Colors: model.StyleColors{Primary: "#059669", Secondary: "#047857", Accent: "#EC4899", Neutral: "#ECFDF5"},
		Typography: model.Typography{Style: "display", Weight: "bold", Mood: "playful"},
		Mood: model.Mood{Primary: "energetic", Keywords: []string{"vibrant", "energetic", "youthful", "dynamic"}, Tone: "warm"},
		VisualStyle: model.VisualStyle{Complexity: "detailed", Contrast: "high", Texture: "organic"},
		Confidence:  0.88,
	},
	{
		Colors: model.StyleColors{Primary: "#7C3AED", Secondary: "#5B21B6", Accent: "#10B981", Neutral: "#F5F3FF"},
		Typography: model.Typography{Style: "serif", Weight: "regular", Mood: "elegant"},
		Mood: model.Mood{Primary: "luxurious", Keywords: []string{"luxurious", "sophisticated", "premium", "refined"}, Tone: "neutral"},
		VisualStyle: model.VisualStyle{Complexity: "minimal", Contrast: "low", Texture: "smooth"},
		Confidence:  0.90,
	},
}

type mockExtractor struct {
	calls atomic.Uint64
}

// NewMockExtractor returns a deterministic Extractor that cycles through a
// small fixed set of palettes, seeded by call count. Downstream code sees the
// same schema as the real path.
func NewMockExtractor() Extractor {
	return &mockExtractor{}
}

func (e *mockExtractor) Extract(_ context.Context, imageURLs []string) (*model.ExtractedStyle, error) {
	n := e.calls.Add(1) - 1
	extracted := mockPalettes[int(n)%len(mockPalettes)]
	// SourceImages always reflects the triggering batch.
	extracted.SourceImages = append([]string(nil), imageURLs...)
	return &extracted, nil
}
