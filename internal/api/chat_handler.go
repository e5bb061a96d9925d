package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/interfaces"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/service"
)

// ChatHandler handles the streaming chat endpoint and conversation messages.
type ChatHandler struct {
	chat   interfaces.ChatService
	brands interfaces.BrandService
}

func NewChatHandler(chat interfaces.ChatService, brands interfaces.BrandService) *ChatHandler {
	return &ChatHandler{chat: chat, brands: brands}
}

// HandleChat godoc
// @Summary      Stream a chat turn
// @Description  Runs one assistant turn and streams text deltas back using the line-oriented `<tag>:<json>` format.
// @Tags         Chat
// @Accept       json
// @Produce      plain
// @Param        request  body  service.ChatRequest  true  "Message history with optional brand and conversation ids"
// @Success      200  {string}  string  "line-framed stream"
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req service.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if req.Messages == nil {
		respondWithError(w, fmt.Errorf("%w: messages array is required", app_errors.ErrValidation))
		return
	}

	streamChan := make(chan model.StreamEvent)
	go h.chat.HandleChatRequest(r.Context(), &req, streamChan)

	sw := newStreamWriter(w)
	clientGone := false
	for event := range streamChan {
		// A detached client must not stop the turn: keep draining so the
		// orchestrator reaches its persistence step, just stop writing.
		if clientGone || r.Context().Err() != nil {
			clientGone = true
			continue
		}

		var writeErr error
		switch {
		case event.Error != "":
			writeErr = sw.writeError(event.Error)
		case event.Done:
			writeErr = sw.writeFinish(event.FinishReason, event.Usage.PromptTokens, event.Usage.CompletionTokens)
		default:
			writeErr = sw.writeDelta(event.Delta)
		}
		if writeErr != nil {
			slog.Debug("Client disconnected mid-stream, draining remainder", "error", writeErr)
			clientGone = true
		}
	}
}

// HandleGetMessages godoc
// @Summary      List conversation messages
// @Description  Returns a conversation's messages in UI message form.
// @Tags         Chat
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  MessagesResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/messages [get]
func (h *ChatHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	messages, err := h.brands.GetMessages(r.Context(), conversationID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessagesResponse{Messages: messages})
}

// HandleClearMessages godoc
// @Summary      Clear conversation messages
// @Description  Bulk-deletes a conversation's messages, keeping the conversation itself.
// @Tags         Chat
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/messages [delete]
func (h *ChatHandler) HandleClearMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if err := h.brands.ClearMessages(r.Context(), conversationID); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MessagesResponse wraps a conversation's messages.
type MessagesResponse struct {
	Messages []model.UIMessage `json:"messages"`
}
