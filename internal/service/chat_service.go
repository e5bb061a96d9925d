package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Eluskie/Orlando/internal/gateway"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/prompt"
	"github.com/Eluskie/Orlando/internal/repository"
	"github.com/Eluskie/Orlando/internal/style"
)

// ChatService orchestrates one chat turn: image detection, style extraction,
// prompt assembly, streaming relay and end-of-turn persistence.
type ChatService struct {
	repo      repository.Repository
	gateway   gateway.ModelGateway
	extractor style.Extractor

	// sideWrites tracks fire-and-forget style persistence so a graceful
	// shutdown can let them complete-or-log.
	sideWrites sync.WaitGroup
}

// ChatRequest is the structure for a chat turn from the client.
type ChatRequest struct {
	Messages       []model.UIMessage `json:"messages"`
	BrandID        string            `json:"brandId,omitempty"`
	ConversationID string            `json:"conversationId,omitempty"`
}

func NewChatService(repo repository.Repository, gw gateway.ModelGateway, extractor style.Extractor) *ChatService {
	return &ChatService{repo: repo, gateway: gw, extractor: extractor}
}

// HandleChatRequest processes a chat turn and relays stream events to
// streamChan, which it closes when the turn ends.
//
// The caller's disconnection must not abort the turn: the model stream and
// end-of-turn persistence run on a context detached from cancellation, and
// the HTTP layer is expected to keep draining streamChan after the client
// goes away.
func (s *ChatService) HandleChatRequest(ctx context.Context, req *ChatRequest, streamChan chan<- model.StreamEvent) {
	defer close(streamChan)

	// Keep upstream work alive past client detachment.
	turnCtx := context.WithoutCancel(ctx)

	// Image detection: collect file parts with an image media type across
	// all messages, preserving encounter order.
	imageURLs := collectImageURLs(req.Messages)

	// Style extraction is best effort: a vision failure must not hang or
	// abort the user's message.
	var extracted *model.ExtractedStyle
	if len(imageURLs) > 0 {
		var err error
		extracted, err = s.extractor.Extract(turnCtx, imageURLs)
		if err != nil {
			slog.Warn("Style extraction failed, continuing chat without style context",
				"error", err, "image_count", len(imageURLs))
			extracted = nil
		} else if req.BrandID != "" {
			s.persistStyleAsync(req.BrandID, *extracted, imageURLs)
		}
	}

	systemPrompt := prompt.SystemPromptWithStyle(extracted)

	gatewayChan := make(chan model.StreamEvent)
	go func() {
		if err := s.gateway.StreamChat(turnCtx, systemPrompt, req.Messages, gatewayChan); err != nil {
			slog.Error("Chat stream ended with error", "error", err)
		}
	}()

	var fullResponse strings.Builder
	sawFinish := false
	for event := range gatewayChan {
		streamChan <- event
		if event.Error != "" {
			return
		}
		fullResponse.WriteString(event.Delta)
		if event.Done {
			sawFinish = true
		}
	}
	if !sawFinish {
		return
	}

	// Transient chats (no conversation yet) are intentionally not persisted:
	// there is no brand to own them.
	if req.ConversationID == "" {
		return
	}

	now := time.Now().UTC()
	userText := lastUserText(req.Messages)
	batch := []model.Message{
		{ID: uuid.NewString(), ConversationID: req.ConversationID, Role: "user", Content: userText, CreatedAt: now},
		{ID: uuid.NewString(), ConversationID: req.ConversationID, Role: "assistant", Content: fullResponse.String(), CreatedAt: now},
	}
	if err := s.repo.AppendMessages(turnCtx, req.ConversationID, batch); err != nil {
		slog.Error("Failed to persist chat exchange", "conversation_id", req.ConversationID, "error", err)
	}
}

// persistStyleAsync merges an extraction into the brand record off the
// primary path. Failures are logged, never surfaced: style enrichment is a
// bonus, not a precondition for chatting.
func (s *ChatService) persistStyleAsync(brandID string, extracted model.ExtractedStyle, sourceImages []string) {
	s.sideWrites.Add(1)
	go func() {
		defer s.sideWrites.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		brand, err := s.repo.GetBrand(ctx, brandID)
		if err != nil {
			slog.Warn("Could not load brand for style persistence", "brand_id", brandID, "error", err)
			return
		}
		merged := brand.Style.MergeExtraction(extracted, sourceImages, time.Now().UTC())
		if err := s.repo.UpdateBrandStyle(ctx, brandID, merged); err != nil {
			slog.Warn("Could not persist extracted style", "brand_id", brandID, "error", err)
		}
	}()
}

// Drain blocks until in-flight style side-writes finish. Called on shutdown.
func (s *ChatService) Drain() {
	s.sideWrites.Wait()
}

func collectImageURLs(messages []model.UIMessage) []string {
	var urls []string
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if part.Type == "file" && strings.HasPrefix(part.MediaType, "image/") && part.URL != "" {
				urls = append(urls, part.URL)
			}
		}
	}
	return urls
}

func lastUserText(messages []model.UIMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Text()
		}
	}
	return ""
}
