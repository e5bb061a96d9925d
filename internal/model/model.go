package model

import (
	"time"
)

// Brand is the tenant-like entity owning a style profile, conversations,
// generations and assets.
type Brand struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Style       BrandStyle `json:"style"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BrandStyle is the embedded style value object. It is always present on a
// brand (possibly empty) and is only ever updated by merging, never replaced.
type BrandStyle struct {
	PrimaryColor    string          `json:"primaryColor,omitempty"`
	SecondaryColor  string          `json:"secondaryColor,omitempty"`
	AccentColor     string          `json:"accentColor,omitempty"`
	FontFamily      string          `json:"fontFamily,omitempty"`
	HeadingFont     string          `json:"headingFont,omitempty"`
	Tone            string          `json:"tone,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	ReferenceImages []string        `json:"referenceImages,omitempty"`
	ExtractedStyle  *ExtractedStyle `json:"extractedStyle,omitempty"`
}

// ExtractedStyle is the structured style descriptor produced by the style
// extractor. It is never hand-edited.
type ExtractedStyle struct {
	Colors       StyleColors `json:"colors"`
	Typography   Typography  `json:"typography"`
	Mood         Mood        `json:"mood"`
	VisualStyle  VisualStyle `json:"visualStyle"`
	Confidence   float64     `json:"confidence"`
	ExtractedAt  *time.Time  `json:"extractedAt,omitempty"`
	SourceImages []string    `json:"sourceImages,omitempty"`
}

// StyleColors holds the extracted palette as hex strings (#RRGGBB).
type StyleColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Neutral   string `json:"neutral"`
}

// Typography describes the inferred typography direction.
// Style is one of: serif, sans-serif, display, handwritten, monospace.
// Weight is one of: light, regular, medium, bold, heavy.
type Typography struct {
	Style  string `json:"style"`
	Weight string `json:"weight"`
	Mood   string `json:"mood"`
}

// Mood captures the emotional impression. Tone is warm, cool or neutral;
// Keywords carries 3-5 descriptors.
type Mood struct {
	Primary  string   `json:"primary"`
	Keywords []string `json:"keywords"`
	Tone     string   `json:"tone"`
}

// VisualStyle captures technical characteristics. Complexity is one of
// minimal, moderate, detailed, ornate; Contrast is low, medium or high.
type VisualStyle struct {
	Complexity string `json:"complexity"`
	Contrast   string `json:"contrast"`
	Texture    string `json:"texture"`
}

// Conversation groups messages under an optional owning brand. A nil BrandID
// marks a transient chat that predates brand creation.
type Conversation struct {
	ID        string    `json:"id"`
	BrandID   *string   `json:"brand_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single persisted chat message with flattened text content.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"` // user, assistant or system
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Generation statuses. Transitions: pending -> processing -> completed|failed.
// In this system creation and dispatch are atomic, so rows are born processing.
const (
	GenerationPending    = "pending"
	GenerationProcessing = "processing"
	GenerationCompleted  = "completed"
	GenerationFailed     = "failed"
)

// Generation tracks one image-generation request for a brand.
type Generation struct {
	ID             string             `json:"id"`
	BrandID        string             `json:"brand_id"`
	ConversationID *string            `json:"conversation_id,omitempty"`
	Prompt         string             `json:"prompt"`
	Status         string             `json:"status"`
	Metadata       GenerationMetadata `json:"metadata"`
	ErrorMessage   *string            `json:"error_message,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	Assets         []Asset            `json:"assets,omitempty"`
}

// GenerationMetadata records how a generation was produced.
type GenerationMetadata struct {
	Model        string `json:"model,omitempty"`
	AspectRatio  string `json:"aspectRatio,omitempty"`
	StyledPrompt string `json:"styledPrompt,omitempty"`
	Count        int    `json:"count,omitempty"`
}

// Asset types.
const (
	AssetLogo         = "logo"
	AssetBanner       = "banner"
	AssetSocial       = "social"
	AssetIllustration = "illustration"
	AssetCustom       = "custom"
)

// Asset is a stored image, either uploaded (type custom, no generation) or
// produced by a generation (type illustration). Canvas fields are written by
// the UI after placement and absent on creation.
type Asset struct {
	ID           string    `json:"id"`
	BrandID      string    `json:"brand_id"`
	GenerationID *string   `json:"generation_id,omitempty"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Name         string    `json:"name"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
	CanvasX      *float64  `json:"canvas_x,omitempty"`
	CanvasY      *float64  `json:"canvas_y,omitempty"`
	CanvasScale  *float64  `json:"canvas_scale,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UIMessage is the wire shape of a chat message as the UI sends and receives
// it: content is a list of typed parts rather than flat text.
type UIMessage struct {
	ID        string        `json:"id,omitempty"`
	Role      string        `json:"role"`
	Parts     []MessagePart `json:"parts"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
}

// MessagePart is one part of a UI message: either {type:"text", text} or
// {type:"file", mediaType, url}.
type MessagePart struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Text flattens the text parts of a message, newline-joined.
func (m UIMessage) Text() string {
	out := ""
	for _, p := range m.Parts {
		if p.Type == "text" && p.Text != "" {
			if out != "" {
				out += "\n"
			}
			out += p.Text
		}
	}
	return out
}

// StreamEvent is one chunk of a streaming chat turn. Exactly one event in a
// well-formed stream has Done set; it carries the finish reason and usage.
type StreamEvent struct {
	Delta        string `json:"delta,omitempty"`
	Done         bool   `json:"done,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
	Error        string `json:"error,omitempty"`
}

// Usage mirrors the token counters reported at stream finish.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

// GeneratedImage is one image returned by the model gateway.
type GeneratedImage struct {
	Data      []byte
	MediaType string
	Width     int
	Height    int
}
