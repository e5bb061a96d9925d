package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/gateway"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/prompt"
	"github.com/Eluskie/Orlando/internal/ratelimit"
	"github.com/Eluskie/Orlando/internal/repository"
	"github.com/Eluskie/Orlando/internal/storage"
)

// GenerationConfig carries the limits the orchestrator enforces.
type GenerationConfig struct {
	RateLimit       ratelimit.Config
	DailyLimit      int
	MaxPromptLength int
	ImageModel      string
	MockMode        bool
}

// GenerationService orchestrates styled image generation: limits, prompt
// augmentation, gateway invocation, asset storage and the generation ledger.
type GenerationService struct {
	repo    repository.Repository
	gateway gateway.ModelGateway
	limiter *ratelimit.Limiter
	store   storage.Store
	cfg     GenerationConfig
}

// GenerateRequest is the client payload for one generation.
type GenerateRequest struct {
	Prompt         string `json:"prompt"`
	BrandID        string `json:"brandId"`
	Count          int    `json:"count,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	Image          string `json:"image,omitempty"` // base64 init image, not yet supported
	ConversationID string `json:"conversationId,omitempty"`
}

// GenerateResult is returned on success.
type GenerateResult struct {
	GenerationID string        `json:"generationId"`
	Assets       []model.Asset `json:"assets"`
	Mode         string        `json:"mode,omitempty"`
}

// RateLimitStatus is the non-consuming view for status checks.
type RateLimitStatus struct {
	Limited   bool      `json:"limited"`
	Remaining int       `json:"remaining"`
	ResetsAt  time.Time `json:"resetsAt"`
}

func NewGenerationService(repo repository.Repository, gw gateway.ModelGateway, limiter *ratelimit.Limiter, store storage.Store, cfg GenerationConfig) *GenerationService {
	return &GenerationService{repo: repo, gateway: gw, limiter: limiter, store: store, cfg: cfg}
}

const defaultCount = 4

// HandleGenerateRequest runs the full generation flow for one client request.
func (s *GenerationService) HandleGenerateRequest(ctx context.Context, clientID string, req *GenerateRequest) (*GenerateResult, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", app_errors.ErrValidation)
	}
	if len(req.Prompt) > s.cfg.MaxPromptLength {
		return nil, fmt.Errorf("%w: prompt exceeds maximum length of %d characters", app_errors.ErrValidation, s.cfg.MaxPromptLength)
	}
	if req.BrandID == "" {
		return nil, fmt.Errorf("%w: brandId is required", app_errors.ErrValidation)
	}
	count := req.Count
	if count == 0 {
		count = defaultCount
	}
	count = min(max(count, 1), defaultCount)
	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	if !slices.Contains(gateway.AspectRatios, aspectRatio) {
		return nil, fmt.Errorf("%w: aspectRatio must be one of %v", app_errors.ErrValidation, gateway.AspectRatios)
	}
	if req.Image != "" {
		return nil, fmt.Errorf("%w: image-conditioned generation is not yet available", app_errors.ErrNotImplemented)
	}

	// Per-client fixed window.
	if _, err := s.limiter.Consume(clientID, s.cfg.RateLimit); err != nil {
		var limitErr *ratelimit.LimitExceededError
		if errors.As(err, &limitErr) {
			return nil, &app_errors.RateLimitedError{RetryAfter: limitErr.RetryAfter}
		}
		return nil, err
	}

	// Per-brand daily quota, independent of the client limiter.
	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	dailyCount, err := s.repo.CountGenerationsSince(ctx, req.BrandID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("could not check daily quota: %w", err)
	}
	if dailyCount >= s.cfg.DailyLimit {
		return nil, fmt.Errorf("%w: brand reached %d generations today", app_errors.ErrQuotaExceeded, s.cfg.DailyLimit)
	}

	brand, err := s.repo.GetBrand(ctx, req.BrandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: brand %q", app_errors.ErrNotFound, req.BrandID)
		}
		return nil, fmt.Errorf("could not load brand: %w", err)
	}

	styledPrompt := prompt.BuildStyledPrompt(req.Prompt, brand.Style.ExtractedStyle)

	// Created directly in processing: creation and dispatch are atomic from
	// the caller's perspective.
	generation := &model.Generation{
		ID:      uuid.NewString(),
		BrandID: req.BrandID,
		Prompt:  req.Prompt,
		Status:  model.GenerationProcessing,
		Metadata: model.GenerationMetadata{
			Model:        s.cfg.ImageModel,
			AspectRatio:  aspectRatio,
			StyledPrompt: styledPrompt,
			Count:        count,
		},
		CreatedAt: time.Now().UTC(),
	}
	if req.ConversationID != "" {
		generation.ConversationID = &req.ConversationID
	}
	if err := s.repo.CreateGeneration(ctx, generation); err != nil {
		return nil, fmt.Errorf("could not create generation: %w", err)
	}

	images, err := s.gateway.GenerateImages(ctx, styledPrompt, count, aspectRatio)
	if err != nil {
		s.markFailed(ctx, generation.ID, err)
		if errors.Is(err, app_errors.ErrModelInvocation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", app_errors.ErrModelInvocation, err)
	}

	now := time.Now().UTC()
	assets := make([]model.Asset, 0, len(images))
	for i, img := range images {
		name := assetName(req.Prompt, i+1)
		url, err := s.store.Save(name, img.MediaType, img.Data)
		if err != nil {
			s.markFailed(ctx, generation.ID, err)
			return nil, fmt.Errorf("could not store generated image: %w", err)
		}
		width, height := img.Width, img.Height
		assets = append(assets, model.Asset{
			ID:           uuid.NewString(),
			BrandID:      req.BrandID,
			GenerationID: &generation.ID,
			Type:         model.AssetIllustration,
			URL:          url,
			Name:         name,
			Width:        &width,
			Height:       &height,
			CreatedAt:    now,
		})
	}

	// Asset rows and the completed transition commit together, so a failure
	// anywhere leaves the ledger without partial asset rows.
	if err := s.repo.CompleteGeneration(ctx, generation.ID, now, assets); err != nil {
		s.markFailed(ctx, generation.ID, err)
		return nil, fmt.Errorf("could not record generated assets: %w", err)
	}

	result := &GenerateResult{GenerationID: generation.ID, Assets: assets}
	if s.cfg.MockMode {
		result.Mode = "mock"
	}
	return result, nil
}

// markFailed records a terminal failure; its own errors are only logged.
func (s *GenerationService) markFailed(ctx context.Context, generationID string, cause error) {
	if err := s.repo.FailGeneration(context.WithoutCancel(ctx), generationID, cause.Error()); err != nil {
		slog.Error("Could not mark generation failed", "generation_id", generationID, "error", err)
	}
}

// Status reports the client's rate-limit window without consuming quota.
func (s *GenerationService) Status(clientID string) RateLimitStatus {
	st := s.limiter.Peek(clientID, s.cfg.RateLimit)
	return RateLimitStatus{Limited: st.Limited, Remaining: st.Remaining, ResetsAt: st.ResetAt}
}

// Config exposes the limits for the status endpoint.
func (s *GenerationService) Config() GenerationConfig {
	return s.cfg
}

// ListHistory returns up to limit most recent generations with nested assets.
func (s *GenerationService) ListHistory(ctx context.Context, brandID string, limit int) ([]*model.Generation, error) {
	if brandID == "" {
		return nil, fmt.Errorf("%w: brandId is required", app_errors.ErrValidation)
	}
	return s.repo.ListGenerations(ctx, brandID, limit)
}

func assetName(originalPrompt string, variation int) string {
	name := originalPrompt
	// Cut on rune boundaries so multi-byte prompts stay valid UTF-8.
	if runes := []rune(name); len(runes) > 40 {
		name = string(runes[:40])
	}
	return fmt.Sprintf("%s - Variation %d", name, variation)
}
