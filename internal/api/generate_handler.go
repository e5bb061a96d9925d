package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/interfaces"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/service"
)

// GenerateHandler handles image generation endpoints.
type GenerateHandler struct {
	generation interfaces.GenerationService
}

func NewGenerateHandler(generation interfaces.GenerationService) *GenerateHandler {
	return &GenerateHandler{generation: generation}
}

// GenerateResponse is the payload returned for a completed generation.
type GenerateResponse struct {
	GenerationID string        `json:"generationId"`
	Assets       []model.Asset `json:"assets"`
	Mode         string        `json:"mode,omitempty"`
}

// GenerateStatusResponse reports per-client rate limit state and the
// service's generation configuration.
type GenerateStatusResponse struct {
	RateLimit rateLimitInfo `json:"rateLimit"`
	Config    configInfo    `json:"config"`
}

type rateLimitInfo struct {
	Limited   bool      `json:"limited"`
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resetsAt"`
}

type configInfo struct {
	MockMode    bool  `json:"mockMode"`
	MaxRequests int   `json:"maxRequests"`
	WindowMs    int64 `json:"windowMs"`
	DailyLimit  int   `json:"dailyLimit"`
}

// GenerationsResponse wraps a brand's generation history.
type GenerationsResponse struct {
	Generations []*model.Generation `json:"generations"`
}

// HandleGenerate godoc
// @Summary      Generate brand images
// @Description  Generates a batch of images for a brand, styled by the brand's extracted style when present. Rate limited per client and capped per day.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body  service.GenerateRequest  true  "Prompt, brand and batch options"
// @Success      200  {object}  GenerateResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      501  {object}  ErrorResponse
// @Router       /v1/generate [post]
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}

	result, err := h.generation.HandleGenerateRequest(r.Context(), clientID(r), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, GenerateResponse{
		GenerationID: result.GenerationID,
		Assets:       result.Assets,
		Mode:         result.Mode,
	})
}

// HandleGenerateStatus godoc
// @Summary      Generation status
// @Description  Returns the caller's current rate-limit window and the generation configuration.
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  GenerateStatusResponse
// @Router       /v1/generate [get]
func (h *GenerateHandler) HandleGenerateStatus(w http.ResponseWriter, r *http.Request) {
	status := h.generation.Status(clientID(r))
	cfg := h.generation.Config()

	respondWithJSON(w, http.StatusOK, GenerateStatusResponse{
		RateLimit: rateLimitInfo{
			Limited:   status.Limited,
			Remaining: status.Remaining,
			ResetsAt:  status.ResetsAt,
		},
		Config: configInfo{
			MockMode:    cfg.MockMode,
			MaxRequests: cfg.RateLimit.MaxRequests,
			WindowMs:    cfg.RateLimit.Window.Milliseconds(),
			DailyLimit:  cfg.DailyLimit,
		},
	})
}

// HandleListGenerations godoc
// @Summary      Generation history
// @Description  Returns a brand's generations, newest first, with their assets attached.
// @Tags         Generation
// @Produce      json
// @Param        brandID  path   string  true   "Brand ID"
// @Param        limit    query  int     false  "Maximum records to return (default 50)"
// @Success      200  {object}  GenerationsResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/generations/{brandID} [get]
func (h *GenerateHandler) HandleListGenerations(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	generations, err := h.generation.ListHistory(r.Context(), chi.URLParam(r, "brandID"), limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if generations == nil {
		generations = []*model.Generation{}
	}
	respondWithJSON(w, http.StatusOK, GenerationsResponse{Generations: generations})
}

// clientID identifies the caller for rate limiting. RealIP middleware has
// already folded X-Forwarded-For / X-Real-IP into RemoteAddr.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
