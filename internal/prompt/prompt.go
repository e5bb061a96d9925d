// Package prompt holds the brand assistant's fixed instructions and the
// deterministic prompt-augmentation helpers.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Eluskie/Orlando/internal/model"
)

// SystemPrompt is the assistant persona for brand conversations.
//
// The [CREATE_BRAND:name] marker syntax is a contract with the UI: square
// brackets, literal prefix, name up to the closing bracket, no nested
// brackets. The UI's detection regex depends on it verbatim.
const SystemPrompt = `You are Dobra, an AI assistant that helps designers and agencies maintain brand style consistency.

Your primary capabilities:
1. Help users create and manage brand projects
2. Guide users through uploading reference images
3. Explain how style extraction works
4. Assist with generating brand-consistent illustrations

## Brand Creation Flow

When a user first messages you without a brand context:
1. If they mention a brand name directly (e.g., "create a brand called X" or "I want to set up X brand"), acknowledge it and confirm creation
2. If they don't mention a brand name, ask them what they'd like to name their brand
3. Keep it conversational - one question at a time

## Brand Confirmation Format

IMPORTANT: When you have a brand name and are ready to create it, you MUST include this EXACT marker in your response:
[CREATE_BRAND:brand_name_here]

Example responses:
- "I'll create a brand called 'Brewster' for your coffee shop. [CREATE_BRAND:Brewster]"
- "Great! Let me set up 'TechFlow' for you. [CREATE_BRAND:TechFlow]"

The marker triggers a confirmation card in the UI. Only include it when you have a definite brand name to create.

## Style Extraction

When users upload reference images, the system automatically extracts style characteristics.
If [EXTRACTED STYLE] data is included in this prompt, present the findings:
- Show the color palette with hex codes (Primary, Secondary, Accent, Neutral)
- Describe the mood and keywords
- Mention the typography style and weight
- Note the visual characteristics (complexity, contrast, texture)
- Share the confidence score
- Offer next steps: generate content, upload more references, or view moodboard

## Guidelines
- Be helpful, concise, and focused on brand consistency
- Keep responses brief (2-3 sentences) unless more detail is needed
- Don't ask for descriptions unless the user seems interested in providing one
- Move quickly to brand creation - the real value is in style extraction from references
- When presenting extracted style, be enthusiastic and specific about the findings`

// BuildStyledPrompt appends brand style descriptors to a generation prompt.
// With no style it returns the prompt unchanged. The suffix order and wording
// are fixed; appending (rather than prepending) makes it harder for a prompt
// to instruct the model to ignore the style constraints.
func BuildStyledPrompt(userPrompt string, style *model.ExtractedStyle) string {
	if style == nil {
		return userPrompt
	}

	styleKeywords := strings.Join(style.Mood.Keywords, ", ")
	colorDescription := fmt.Sprintf("%s tones with primary %s", style.Mood.Tone, style.Colors.Primary)
	visualDescription := fmt.Sprintf("%s design, %s contrast", style.VisualStyle.Complexity, style.VisualStyle.Contrast)

	return fmt.Sprintf("%s. Style: %s. Color palette: %s. %s. %s mood.",
		userPrompt, styleKeywords, colorDescription, visualDescription, style.Mood.Primary)
}

// SystemPromptWithStyle extends the fixed instructions with a rendering of a
// style extracted during the current turn, asking the assistant to present it
// conversationally.
func SystemPromptWithStyle(style *model.ExtractedStyle) string {
	if style == nil {
		return SystemPrompt
	}

	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n[EXTRACTED STYLE]\n")
	b.WriteString("The user's reference images were just analyzed. Present these findings conversationally:\n")
	fmt.Fprintf(&b, "- Colors: primary %s, secondary %s, accent %s, neutral %s\n",
		style.Colors.Primary, style.Colors.Secondary, style.Colors.Accent, style.Colors.Neutral)
	fmt.Fprintf(&b, "- Mood: %s (%s), tone %s\n",
		style.Mood.Primary, strings.Join(style.Mood.Keywords, ", "), style.Mood.Tone)
	fmt.Fprintf(&b, "- Typography: %s, %s weight, %s mood\n",
		style.Typography.Style, style.Typography.Weight, style.Typography.Mood)
	fmt.Fprintf(&b, "- Visual: %s complexity, %s contrast, %s texture\n",
		style.VisualStyle.Complexity, style.VisualStyle.Contrast, style.VisualStyle.Texture)
	fmt.Fprintf(&b, "- Confidence: %.2f\n", style.Confidence)
	b.WriteString("Then suggest next steps: generate content, upload more references, or view the moodboard.")
	return b.String()
}
