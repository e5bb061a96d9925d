package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/prompt"
)

func sampleStyle() *model.ExtractedStyle {
	return &model.ExtractedStyle{
		Colors: model.StyleColors{
			Primary:   "#2563EB",
			Secondary: "#1E40AF",
			Accent:    "#F59E0B",
			Neutral:   "#F3F4F6",
		},
		Typography: model.Typography{
			Style:  "sans-serif",
			Weight: "medium",
			Mood:   "modern",
		},
		Mood: model.Mood{
			Primary:  "confident",
			Keywords: []string{"clean", "bold", "modern"},
			Tone:     "cool",
		},
		VisualStyle: model.VisualStyle{
			Complexity: "minimal",
			Contrast:   "high",
			Texture:    "flat",
		},
		Confidence: 0.92,
	}
}

func TestBuildStyledPrompt(t *testing.T) {
	t.Run("nil style returns the prompt unchanged", func(t *testing.T) {
		assert.Equal(t, "a fox logo", prompt.BuildStyledPrompt("a fox logo", nil))
	})

	t.Run("style descriptors are appended in fixed order", func(t *testing.T) {
		got := prompt.BuildStyledPrompt("a fox logo", sampleStyle())

		want := "a fox logo. Style: clean, bold, modern. Color palette: cool tones with primary #2563EB. minimal design, high contrast. confident mood."
		assert.Equal(t, want, got)
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		style := sampleStyle()
		first := prompt.BuildStyledPrompt("poster", style)
		second := prompt.BuildStyledPrompt("poster", style)
		assert.Equal(t, first, second)
	})
}

func TestSystemPromptWithStyle(t *testing.T) {
	t.Run("nil style yields the base instructions", func(t *testing.T) {
		assert.Equal(t, prompt.SystemPrompt, prompt.SystemPromptWithStyle(nil))
	})

	t.Run("extracted style block is appended", func(t *testing.T) {
		got := prompt.SystemPromptWithStyle(sampleStyle())

		assert.Contains(t, got, prompt.SystemPrompt)
		assert.Contains(t, got, "[EXTRACTED STYLE]")
		assert.Contains(t, got, "primary #2563EB")
		assert.Contains(t, got, "Confidence: 0.92")
	})
}

func TestSystemPrompt_BrandMarkerContract(t *testing.T) {
	// The UI detects brand creation by scanning the assistant's output for
	// this literal marker syntax, so the instructions must spell it out.
	assert.Contains(t, prompt.SystemPrompt, "[CREATE_BRAND:")
}
