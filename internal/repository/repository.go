package repository

import (
	"context"
	"time"

	"github.com/Eluskie/Orlando/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	// CreateBrandWithConversation inserts a brand and its default conversation
	// in one transaction.
	CreateBrandWithConversation(ctx context.Context, brand *model.Brand, conversation *model.Conversation) error
	GetBrand(ctx context.Context, brandID string) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]*model.Brand, error)
	UpdateBrandStyle(ctx context.Context, brandID string, style model.BrandStyle) error

	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)

	// AppendMessages batch-inserts messages and bumps the owning
	// conversation's updated_at, all in one transaction.
	AppendMessages(ctx context.Context, conversationID string, messages []model.Message) error
	GetMessages(ctx context.Context, conversationID string) ([]model.Message, error)
	ClearMessages(ctx context.Context, conversationID string) error

	CreateGeneration(ctx context.Context, generation *model.Generation) error
	// CompleteGeneration inserts the generation's assets and marks it
	// completed in one transaction, so a failure leaves no partial rows.
	CompleteGeneration(ctx context.Context, generationID string, completedAt time.Time, assets []model.Asset) error
	FailGeneration(ctx context.Context, generationID string, errorMessage string) error
	ListGenerations(ctx context.Context, brandID string, limit int) ([]*model.Generation, error)
	CountGenerationsSince(ctx context.Context, brandID string, since time.Time) (int, error)

	CreateAsset(ctx context.Context, asset *model.Asset) error
	ListAssetsByBrand(ctx context.Context, brandID string) ([]model.Asset, error)
}
