package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Eluskie/Orlando/internal/model"
)

// mockGateway yields deterministic fakes with the same event and image shapes
// as the real gateway, so the orchestrators exercise identical consumer code.
type mockGateway struct {
	wordDelay time.Duration
	calls     atomic.Uint64
}

// NewMockGateway returns the deterministic local ModelGateway. wordDelay is
// inserted between chat deltas to exercise real streaming consumption; tests
// pass zero.
func NewMockGateway(wordDelay time.Duration) ModelGateway {
	return &mockGateway{wordDelay: wordDelay}
}

func (g *mockGateway) StreamChat(ctx context.Context, systemPrompt string, history []model.UIMessage, ch chan<- model.StreamEvent) error {
	defer close(ch)

	lastUserText := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			lastUserText = history[i].Text()
			break
		}
	}

	reply := mockReply(lastUserText, strings.Contains(systemPrompt, "[EXTRACTED STYLE]"))

	words := strings.Split(reply, " ")
	completion := 0
	for i, word := range words {
		if i > 0 {
			word = " " + word
		}
		if !sendEvent(ctx, ch, model.StreamEvent{Delta: word}) {
			return ctx.Err()
		}
		completion++
		if g.wordDelay > 0 {
			select {
			case <-time.After(g.wordDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	sendEvent(ctx, ch, model.StreamEvent{
		Done:         true,
		FinishReason: "stop",
		Usage:        model.Usage{PromptTokens: len(history), CompletionTokens: completion},
	})
	return nil
}

var (
	calledPattern = regexp.MustCompile(`(?i)(?:called|named)\s+["']?([A-Za-z][A-Za-z0-9 ]{1,30})["']?`)
	forPattern    = regexp.MustCompile(`(?i)brand\s+for\s+["']?([A-Za-z][A-Za-z0-9 ]{1,30})["']?`)
	quotedPattern = regexp.MustCompile(`["']([A-Za-z][A-Za-z0-9 ]{1,30})["']`)
	nonAlnum      = regexp.MustCompile(`[^A-Za-z0-9 ]`)
)

var nameStopWords = map[string]bool{
	"for": true, "the": true, "a": true, "an": true, "my": true, "our": true, "new": true,
}

// mockReply mirrors the assistant contract: it presents freshly extracted
// style when the turn carried one, detects brand-creation intent, and emits
// the exact [CREATE_BRAND:name] marker the UI's regex depends on.
func mockReply(userText string, styleExtracted bool) string {
	if styleExtracted {
		return "I analyzed your reference images and extracted the visual style. " +
			"The palette leans on a strong primary with supporting secondary and accent colors, " +
			"and the mood reads as cohesive and intentional. " +
			"Want me to generate some on-brand illustrations, or would you like to upload more references?"
	}

	lower := strings.ToLower(userText)
	hasBrandIntent := strings.Contains(lower, "brand") || strings.Contains(lower, "create")
	if hasBrandIntent {
		name := detectBrandName(userText)
		if len(name) < 2 {
			return `I'd love to help you create a brand! What would you like to name it? ` +
				`You can say something like "Create a brand called MyBrandName" or just tell me the name.`
		}
		return fmt.Sprintf(`Great! I'll help you create a brand called "%s". `+
			`This will set up a new workspace where we can define your brand's visual identity, `+
			`colors, typography, and generate on-brand content. [CREATE_BRAND:%s]`, name, name)
	}

	return "Hi! I'm Dobra, your brand consistency assistant. " +
		"I can help you create a brand, extract a visual style from reference images, " +
		"and generate brand-consistent illustrations. What would you like to work on?"
}

func detectBrandName(text string) string {
	name := ""
	if m := calledPattern.FindStringSubmatch(text); m != nil {
		name = strings.TrimSpace(m[1])
	}
	if name == "" {
		if m := forPattern.FindStringSubmatch(text); m != nil {
			// The subject becomes the brand: TitleCase the words and join.
			var parts []string
			for _, w := range strings.Fields(m[1]) {
				parts = append(parts, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
			}
			name = strings.Join(parts, "")
		}
	}
	if name == "" {
		if m := quotedPattern.FindStringSubmatch(text); m != nil {
			name = strings.TrimSpace(m[1])
		}
	}

	name = strings.TrimSpace(nonAlnum.ReplaceAllString(name, ""))
	if nameStopWords[strings.ToLower(name)] {
		return ""
	}
	return name
}

var placeholderColors = []string{"6366f1", "8b5cf6", "ec4899", "f97316", "10b981"}

func (g *mockGateway) GenerateImages(ctx context.Context, prompt string, count int, aspectRatio string) ([]model.GeneratedImage, error) {
	width, height := Dimensions(aspectRatio)

	label := prompt
	// Cut on rune boundaries so multi-byte prompts stay valid UTF-8.
	if runes := []rune(label); len(runes) > 30 {
		label = string(runes[:30])
	}
	if label == "" {
		label = "Generated"
	}

	images := make([]model.GeneratedImage, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		color := placeholderColors[int(g.calls.Add(1)-1)%len(placeholderColors)]
		svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
  <rect width="100%%" height="100%%" fill="#%s"/>
  <text x="50%%" y="50%%" font-family="sans-serif" font-size="24" fill="white" text-anchor="middle" dominant-baseline="middle">%s</text>
</svg>`, width, height, color, svgEscape(label))
		images = append(images, model.GeneratedImage{
			Data:      []byte(svg),
			MediaType: "image/svg+xml",
			Width:     width,
			Height:    height,
		})
	}
	return images, nil
}

func svgEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
