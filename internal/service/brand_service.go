package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/repository"
	"github.com/Eluskie/Orlando/internal/storage"
	"github.com/Eluskie/Orlando/internal/style"
)

// BrandService owns the brand, conversation and asset CRUD surface.
type BrandService struct {
	repo  repository.Repository
	store storage.Store
}

func NewBrandService(repo repository.Repository, store storage.Store) *BrandService {
	return &BrandService{repo: repo, store: store}
}

// CreateBrand creates a brand together with its default conversation,
// atomically. Returns the brand and the new conversation's id.
func (s *BrandService) CreateBrand(ctx context.Context, name, description string) (*model.Brand, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: brand name is required", app_errors.ErrValidation)
	}

	now := time.Now().UTC()
	brand := &model.Brand{
		ID:        uuid.NewString(),
		Name:      name,
		Style:     model.BrandStyle{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if d := strings.TrimSpace(description); d != "" {
		brand.Description = &d
	}
	conversation := &model.Conversation{
		ID:        uuid.NewString(),
		BrandID:   &brand.ID,
		Title:     name + " Chat",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateBrandWithConversation(ctx, brand, conversation); err != nil {
		return nil, "", fmt.Errorf("could not create brand: %w", err)
	}
	return brand, conversation.ID, nil
}

func (s *BrandService) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *BrandService) GetBrand(ctx context.Context, brandID string) (*model.Brand, error) {
	brand, err := s.repo.GetBrand(ctx, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: brand %q", app_errors.ErrNotFound, brandID)
		}
		return nil, err
	}
	return brand, nil
}

// GetStyle returns a brand's current style.
func (s *BrandService) GetStyle(ctx context.Context, brandID string) (*model.BrandStyle, error) {
	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	return &brand.Style, nil
}

// MergeStyle merges an extraction plus its reference images into the brand's
// style record. The extraction must satisfy the schema.
func (s *BrandService) MergeStyle(ctx context.Context, brandID string, extracted model.ExtractedStyle, referenceImages []string) (*model.BrandStyle, error) {
	if err := style.Validate(&extracted); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	}

	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	merged := brand.Style.MergeExtraction(extracted, referenceImages, time.Now().UTC())
	if err := s.repo.UpdateBrandStyle(ctx, brandID, merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: brand %q", app_errors.ErrNotFound, brandID)
		}
		return nil, fmt.Errorf("could not update brand style: %w", err)
	}
	return &merged, nil
}

func (s *BrandService) ListAssets(ctx context.Context, brandID string) ([]model.Asset, error) {
	if _, err := s.GetBrand(ctx, brandID); err != nil {
		return nil, err
	}
	return s.repo.ListAssetsByBrand(ctx, brandID)
}

// GetMessages returns a conversation's messages re-shaped into the UI form:
// each one carries a single text part.
func (s *BrandService) GetMessages(ctx context.Context, conversationID string) ([]model.UIMessage, error) {
	if _, err := s.repo.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %q", app_errors.ErrNotFound, conversationID)
		}
		return nil, err
	}

	messages, err := s.repo.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	uiMessages := make([]model.UIMessage, 0, len(messages))
	for _, msg := range messages {
		createdAt := msg.CreatedAt
		uiMessages = append(uiMessages, model.UIMessage{
			ID:        msg.ID,
			Role:      msg.Role,
			Parts:     []model.MessagePart{{Type: "text", Text: msg.Content}},
			CreatedAt: &createdAt,
		})
	}
	return uiMessages, nil
}

// ClearMessages bulk-deletes a conversation's messages, keeping the
// conversation record.
func (s *BrandService) ClearMessages(ctx context.Context, conversationID string) error {
	if _, err := s.repo.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: conversation %q", app_errors.ErrNotFound, conversationID)
		}
		return err
	}
	return s.repo.ClearMessages(ctx, conversationID)
}

// UploadResult is returned by UploadAsset.
type UploadResult struct {
	URL     string  `json:"url"`
	AssetID *string `json:"assetId,omitempty"`
}

const maxUploadBytes = 10 * 1024 * 1024

// UploadAsset stores an uploaded image and, when a brand is given, records a
// custom asset for it. The asset write is best effort: the image is already
// stored, so a bookkeeping failure only logs.
func (s *BrandService) UploadAsset(ctx context.Context, brandID, fileName, mediaType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no file provided", app_errors.ErrValidation)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: only image files are allowed", app_errors.ErrValidation)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("%w: file size exceeds 10MB limit", app_errors.ErrValidation)
	}

	url, err := s.store.Save(fileName, mediaType, data)
	if err != nil {
		return nil, fmt.Errorf("could not store upload: %w", err)
	}

	result := &UploadResult{URL: url}
	if brandID != "" {
		name := fileName
		if name == "" {
			name = "Uploaded image"
		}
		asset := &model.Asset{
			ID:        uuid.NewString(),
			BrandID:   brandID,
			Type:      model.AssetCustom,
			URL:       url,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.CreateAsset(ctx, asset); err != nil {
			slog.Warn("Could not record uploaded asset", "brand_id", brandID, "error", err)
		} else {
			result.AssetID = &asset.ID
		}
	}
	return result, nil
}
