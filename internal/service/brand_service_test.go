package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/repository"
	repo_mocks "github.com/Eluskie/Orlando/internal/repository/mocks"
	"github.com/Eluskie/Orlando/internal/service"
	storage_mocks "github.com/Eluskie/Orlando/internal/storage/mocks"
)

func setupBrandService(t *testing.T) (*service.BrandService, *repo_mocks.MockRepository, *storage_mocks.MockStore) {
	mockRepo := repo_mocks.NewMockRepository(t)
	mockStore := storage_mocks.NewMockStore(t)
	svc := service.NewBrandService(mockRepo, mockStore)
	return svc, mockRepo, mockStore
}

func TestBrandService_CreateBrand(t *testing.T) {
	t.Run("creates the brand with its default conversation", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)

		mockRepo.On("CreateBrandWithConversation", mock.Anything,
			mock.MatchedBy(func(b *model.Brand) bool {
				return b.Name == "Brewster" && b.ID != ""
			}),
			mock.MatchedBy(func(c *model.Conversation) bool {
				return c.Title == "Brewster Chat" && c.BrandID != nil
			}),
		).Return(nil).Once()

		brand, conversationID, err := svc.CreateBrand(context.Background(), "  Brewster  ", "")

		require.NoError(t, err)
		assert.Equal(t, "Brewster", brand.Name)
		assert.Nil(t, brand.Description)
		assert.NotEmpty(t, conversationID)
	})

	t.Run("keeps a non-empty description", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)
		mockRepo.On("CreateBrandWithConversation", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		brand, _, err := svc.CreateBrand(context.Background(), "Brewster", "a coffee brand")

		require.NoError(t, err)
		require.NotNil(t, brand.Description)
		assert.Equal(t, "a coffee brand", *brand.Description)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)

		_, _, err := svc.CreateBrand(context.Background(), "   ", "")

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		mockRepo.AssertNotCalled(t, "CreateBrandWithConversation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBrandService_GetBrand(t *testing.T) {
	t.Run("translates repository not-found", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)
		mockRepo.On("GetBrand", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetBrand(context.Background(), "missing")

		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestBrandService_MergeStyle(t *testing.T) {
	valid := model.ExtractedStyle{
		Colors:      model.StyleColors{Primary: "#2563EB", Secondary: "#1E40AF", Accent: "#F59E0B", Neutral: "#F3F4F6"},
		Typography:  model.Typography{Style: "sans-serif", Weight: "medium", Mood: "modern"},
		Mood:        model.Mood{Primary: "confident", Keywords: []string{"clean", "bold", "modern"}, Tone: "cool"},
		VisualStyle: model.VisualStyle{Complexity: "minimal", Contrast: "high", Texture: "flat"},
		Confidence:  0.9,
	}

	t.Run("merges and persists", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)

		existing := &model.Brand{
			ID:    "brand-1",
			Name:  "Brewster",
			Style: model.BrandStyle{ReferenceImages: []string{"/uploads/old.png"}},
		}
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(existing, nil).Once()
		mockRepo.On("UpdateBrandStyle", mock.Anything, "brand-1", mock.MatchedBy(func(s model.BrandStyle) bool {
			return len(s.ReferenceImages) == 2 && s.PrimaryColor == "#2563EB"
		})).Return(nil).Once()

		merged, err := svc.MergeStyle(context.Background(), "brand-1", valid, []string{"/uploads/new.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"/uploads/old.png", "/uploads/new.png"}, merged.ReferenceImages)
		require.NotNil(t, merged.ExtractedStyle)
		assert.NotNil(t, merged.ExtractedStyle.ExtractedAt)
	})

	t.Run("rejects an extraction that fails the schema", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)

		bad := valid
		bad.Colors.Primary = "blue"
		_, err := svc.MergeStyle(context.Background(), "brand-1", bad, nil)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		mockRepo.AssertNotCalled(t, "UpdateBrandStyle", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBrandService_GetMessages(t *testing.T) {
	t.Run("reshapes stored messages into UI form", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)
		now := time.Now().UTC()

		mockRepo.On("GetConversation", mock.Anything, "conv-1").
			Return(&model.Conversation{ID: "conv-1"}, nil).Once()
		mockRepo.On("GetMessages", mock.Anything, "conv-1").Return([]model.Message{
			{ID: "m1", Role: "user", Content: "Hi", CreatedAt: now},
			{ID: "m2", Role: "assistant", Content: "Hello!", CreatedAt: now},
		}, nil).Once()

		messages, err := svc.GetMessages(context.Background(), "conv-1")

		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "user", messages[0].Role)
		require.Len(t, messages[0].Parts, 1)
		assert.Equal(t, "text", messages[0].Parts[0].Type)
		assert.Equal(t, "Hi", messages[0].Parts[0].Text)
	})

	t.Run("unknown conversation maps to not found", func(t *testing.T) {
		svc, mockRepo, _ := setupBrandService(t)
		mockRepo.On("GetConversation", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetMessages(context.Background(), "missing")

		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestBrandService_ClearMessages(t *testing.T) {
	svc, mockRepo, _ := setupBrandService(t)

	mockRepo.On("GetConversation", mock.Anything, "conv-1").
		Return(&model.Conversation{ID: "conv-1"}, nil).Once()
	mockRepo.On("ClearMessages", mock.Anything, "conv-1").Return(nil).Once()

	require.NoError(t, svc.ClearMessages(context.Background(), "conv-1"))
}

func TestBrandService_UploadAsset(t *testing.T) {
	pngData := bytes.Repeat([]byte{0x89}, 128)

	t.Run("stores the image and records a custom asset", func(t *testing.T) {
		svc, mockRepo, mockStore := setupBrandService(t)

		mockStore.On("Save", "logo.png", "image/png", pngData).Return("/uploads/logo-abc123.png", nil).Once()
		mockRepo.On("CreateAsset", mock.Anything, mock.MatchedBy(func(a *model.Asset) bool {
			return a.BrandID == "brand-1" && a.Type == model.AssetCustom && a.URL == "/uploads/logo-abc123.png"
		})).Return(nil).Once()

		result, err := svc.UploadAsset(context.Background(), "brand-1", "logo.png", "image/png", pngData)

		require.NoError(t, err)
		assert.Equal(t, "/uploads/logo-abc123.png", result.URL)
		assert.NotNil(t, result.AssetID)
	})

	t.Run("skips asset bookkeeping without a brand", func(t *testing.T) {
		svc, mockRepo, mockStore := setupBrandService(t)

		mockStore.On("Save", "logo.png", "image/png", pngData).Return("/uploads/logo-abc123.png", nil).Once()

		result, err := svc.UploadAsset(context.Background(), "", "logo.png", "image/png", pngData)

		require.NoError(t, err)
		assert.Nil(t, result.AssetID)
		mockRepo.AssertNotCalled(t, "CreateAsset", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-image uploads", func(t *testing.T) {
		svc, _, _ := setupBrandService(t)

		_, err := svc.UploadAsset(context.Background(), "", "doc.pdf", "application/pdf", pngData)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("rejects oversized uploads", func(t *testing.T) {
		svc, _, _ := setupBrandService(t)
		huge := make([]byte, 10*1024*1024+1)

		_, err := svc.UploadAsset(context.Background(), "", "big.png", "image/png", huge)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		svc, _, _ := setupBrandService(t)

		_, err := svc.UploadAsset(context.Background(), "", "empty.png", "image/png", nil)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}
