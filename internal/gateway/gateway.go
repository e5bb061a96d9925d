// Package gateway is the capability switch in front of the hosted models.
// ModelGateway has two concrete implementations, real and mock, selected once
// per request; call sites are oblivious to the mode.
package gateway

import (
	"context"

	"github.com/Eluskie/Orlando/internal/model"
)

// ModelGateway exposes the text and image capabilities the orchestrators
// need. Both implementations converge on the same delta/finish event shape
// and the same image-list shape.
type ModelGateway interface {
	// StreamChat sends the system prompt plus message history and writes
	// text deltas to ch, terminated by a single finish event. The channel is
	// closed when the stream ends. Implementations must keep producing until
	// the model finishes or ctx is cancelled.
	StreamChat(ctx context.Context, systemPrompt string, history []model.UIMessage, ch chan<- model.StreamEvent) error

	// GenerateImages produces exactly count images for the prompt at the
	// given aspect ratio.
	GenerateImages(ctx context.Context, prompt string, count int, aspectRatio string) ([]model.GeneratedImage, error)
}

// AspectRatios enumerates the supported aspect ratios.
var AspectRatios = []string{"1:1", "3:4", "4:3", "9:16", "16:9"}

// Dimensions returns pixel dimensions for an aspect ratio. Unknown ratios
// fall back to square.
func Dimensions(aspectRatio string) (width, height int) {
	switch aspectRatio {
	case "3:4", "9:16":
		return 1024, 1792
	case "4:3", "16:9":
		return 1792, 1024
	default:
		return 1024, 1024
	}
}
