package style

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/model"
)

type openaiExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIExtractor returns an Extractor backed by a vision-capable chat
// model with JSON output.
func NewOpenAIExtractor(client *openai.Client, visionModel string) Extractor {
	return &openaiExtractor{client: client, model: visionModel}
}

func (e *openaiExtractor) Extract(ctx context.Context, imageURLs []string) (*model.ExtractedStyle, error) {
	if len(imageURLs) == 0 {
		return nil, fmt.Errorf("%w: no image URLs provided", app_errors.ErrExtraction)
	}

	parts := make([]openai.ChatMessagePart, 0, len(imageURLs)+1)
	for _, url := range imageURLs {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: url},
		})
	}
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: ExtractionPrompt,
	})

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: vision call failed: %v", app_errors.ErrExtraction, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: vision call returned no choices", app_errors.ErrExtraction)
	}

	var extracted model.ExtractedStyle
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &extracted); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", app_errors.ErrExtraction, err)
	}
	if err := Validate(&extracted); err != nil {
		return nil, fmt.Errorf("%w: response failed schema validation: %v", app_errors.ErrExtraction, err)
	}

	return &extracted, nil
}
