package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/model"
)

type openaiGateway struct {
	client     *openai.Client
	chatModel  string
	imageModel string
}

// NewOpenAIGateway returns the real ModelGateway backed by hosted models.
func NewOpenAIGateway(client *openai.Client, chatModel, imageModel string) ModelGateway {
	return &openaiGateway{client: client, chatModel: chatModel, imageModel: imageModel}
}

func (g *openaiGateway) StreamChat(ctx context.Context, systemPrompt string, history []model.UIMessage, ch chan<- model.StreamEvent) error {
	defer close(ch)

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		messages = append(messages, toChatMessage(msg))
	}

	stream, err := g.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    g.chatModel,
		Messages: messages,
		Stream:   true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	})
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", app_errors.ErrModelInvocation, err)
		sendEvent(ctx, ch, model.StreamEvent{Error: wrapped.Error()})
		return wrapped
	}
	defer stream.Close()

	finishReason := "stop"
	var usage model.Usage
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			wrapped := fmt.Errorf("%w: %v", app_errors.ErrModelInvocation, err)
			sendEvent(ctx, ch, model.StreamEvent{Error: wrapped.Error()})
			return wrapped
		}
		if resp.Usage != nil {
			usage = model.Usage{
				PromptTokens:     resp.Usage.PromptTokens,
				CompletionTokens: resp.Usage.CompletionTokens,
			}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		choice := resp.Choices[0]
		if choice.FinishReason != "" {
			finishReason = string(choice.FinishReason)
		}
		if choice.Delta.Content != "" {
			if !sendEvent(ctx, ch, model.StreamEvent{Delta: choice.Delta.Content}) {
				return ctx.Err()
			}
		}
	}

	sendEvent(ctx, ch, model.StreamEvent{Done: true, FinishReason: finishReason, Usage: usage})
	return nil
}

// toChatMessage converts a UI message to the completion shape. Messages with
// image parts become multi-content so vision models can see them.
func toChatMessage(msg model.UIMessage) openai.ChatCompletionMessage {
	hasImage := false
	for _, p := range msg.Parts {
		if p.Type == "file" {
			hasImage = true
			break
		}
	}
	if !hasImage {
		return openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Text()}
	}

	var parts []openai.ChatMessagePart
	for _, p := range msg.Parts {
		switch p.Type {
		case "text":
			if p.Text != "" {
				parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: p.Text})
			}
		case "file":
			parts = append(parts, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: p.URL},
			})
		}
	}
	return openai.ChatCompletionMessage{Role: msg.Role, MultiContent: parts}
}

func (g *openaiGateway) GenerateImages(ctx context.Context, prompt string, count int, aspectRatio string) ([]model.GeneratedImage, error) {
	width, height := Dimensions(aspectRatio)
	size := fmt.Sprintf("%dx%d", width, height)

	// DALL-E 3 caps N at 1, so issue one request per image.
	images := make([]model.GeneratedImage, 0, count)
	for i := 0; i < count; i++ {
		resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
			Model:          g.imageModel,
			Prompt:         prompt,
			Size:           size,
			N:              1,
			ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", app_errors.ErrModelInvocation, err)
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("%w: no image returned", app_errors.ErrModelInvocation)
		}
		data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed image payload: %v", app_errors.ErrModelInvocation, err)
		}
		images = append(images, model.GeneratedImage{
			Data:      data,
			MediaType: "image/png",
			Width:     width,
			Height:    height,
		})
	}
	return images, nil
}

// sendEvent writes to ch unless ctx is done. Returns false on cancellation.
func sendEvent(ctx context.Context, ch chan<- model.StreamEvent, ev model.StreamEvent) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
