package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Chat responses stream over a line-oriented wire format: each line is
// <tag>:<JSON payload>\n. Tag "0" carries a text delta (a JSON string), tag
// "d" the finish event. Consumers treat unknown tags as no-ops, which keeps
// the framing forward-compatible.

type finishPayload struct {
	FinishReason string      `json:"finishReason"`
	Usage        finishUsage `json:"usage"`
}

type finishUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

// streamWriter frames stream events onto an HTTP response. Write failures
// signal client disconnection; the caller is expected to keep draining its
// event source regardless.
type streamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newStreamWriter(w http.ResponseWriter) *streamWriter {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	flusher, _ := w.(http.Flusher)
	return &streamWriter{w: w, flusher: flusher}
}

func (s *streamWriter) writeDelta(delta string) error {
	payload, err := json.Marshal(delta)
	if err != nil {
		return err
	}
	return s.writeLine("0", payload)
}

func (s *streamWriter) writeFinish(finishReason string, promptTokens, completionTokens int) error {
	payload, err := json.Marshal(finishPayload{
		FinishReason: finishReason,
		Usage:        finishUsage{PromptTokens: promptTokens, CompletionTokens: completionTokens},
	})
	if err != nil {
		return err
	}
	return s.writeLine("d", payload)
}

func (s *streamWriter) writeError(message string) error {
	payload, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		return err
	}
	return s.writeLine("3", payload)
}

func (s *streamWriter) writeLine(tag string, payload []byte) error {
	if _, err := fmt.Fprintf(s.w, "%s:%s\n", tag, payload); err != nil {
		return fmt.Errorf("failed to write stream line: %w", err)
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}
