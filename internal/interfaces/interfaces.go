package interfaces

import (
	"context"

	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows
// for decoupling (e.g., API layer from Service layer) and easier testing via
// mocking.

// ChatService defines the contract for chat orchestration.
type ChatService interface {
	HandleChatRequest(ctx context.Context, req *service.ChatRequest, streamChan chan<- model.StreamEvent)
}

// GenerationService defines the contract for image-generation orchestration.
type GenerationService interface {
	HandleGenerateRequest(ctx context.Context, clientID string, req *service.GenerateRequest) (*service.GenerateResult, error)
	Status(clientID string) service.RateLimitStatus
	Config() service.GenerationConfig
	ListHistory(ctx context.Context, brandID string, limit int) ([]*model.Generation, error)
}

// BrandService defines the contract for brand, conversation and asset
// management.
type BrandService interface {
	CreateBrand(ctx context.Context, name, description string) (*model.Brand, string, error)
	ListBrands(ctx context.Context) ([]*model.Brand, error)
	GetBrand(ctx context.Context, brandID string) (*model.Brand, error)
	GetStyle(ctx context.Context, brandID string) (*model.BrandStyle, error)
	MergeStyle(ctx context.Context, brandID string, extracted model.ExtractedStyle, referenceImages []string) (*model.BrandStyle, error)
	ListAssets(ctx context.Context, brandID string) ([]model.Asset, error)
	GetMessages(ctx context.Context, conversationID string) ([]model.UIMessage, error)
	ClearMessages(ctx context.Context, conversationID string) error
	UploadAsset(ctx context.Context, brandID, fileName, mediaType string, data []byte) (*service.UploadResult, error)
}
