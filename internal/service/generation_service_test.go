package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "github.com/Eluskie/Orlando/internal/errors"
	gateway_mocks "github.com/Eluskie/Orlando/internal/gateway/mocks"
	"github.com/Eluskie/Orlando/internal/model"
	"github.com/Eluskie/Orlando/internal/ratelimit"
	"github.com/Eluskie/Orlando/internal/repository"
	repo_mocks "github.com/Eluskie/Orlando/internal/repository/mocks"
	"github.com/Eluskie/Orlando/internal/service"
	storage_mocks "github.com/Eluskie/Orlando/internal/storage/mocks"
)

func defaultGenerationConfig() service.GenerationConfig {
	return service.GenerationConfig{
		RateLimit:       ratelimit.Config{MaxRequests: 10, Window: time.Minute},
		DailyLimit:      50,
		MaxPromptLength: 2000,
		ImageModel:      "dall-e-3",
	}
}

func setupGenerationService(t *testing.T, cfg service.GenerationConfig) (*service.GenerationService, *repo_mocks.MockRepository, *gateway_mocks.MockModelGateway, *storage_mocks.MockStore) {
	mockRepo := repo_mocks.NewMockRepository(t)
	mockGateway := gateway_mocks.NewMockModelGateway(t)
	mockStore := storage_mocks.NewMockStore(t)
	svc := service.NewGenerationService(mockRepo, mockGateway, ratelimit.NewLimiter(), mockStore, cfg)
	return svc, mockRepo, mockGateway, mockStore
}

func styledBrand() *model.Brand {
	return &model.Brand{
		ID:   "brand-1",
		Name: "Brewster",
		Style: model.BrandStyle{
			ExtractedStyle: &model.ExtractedStyle{
				Colors:      model.StyleColors{Primary: "#2563EB", Secondary: "#1E40AF", Accent: "#F59E0B", Neutral: "#F3F4F6"},
				Mood:        model.Mood{Primary: "confident", Keywords: []string{"clean", "bold", "modern"}, Tone: "cool"},
				VisualStyle: model.VisualStyle{Complexity: "minimal", Contrast: "high", Texture: "flat"},
			},
		},
	}
}

func generatedImages(n int) []model.GeneratedImage {
	images := make([]model.GeneratedImage, n)
	for i := range images {
		images[i] = model.GeneratedImage{Data: []byte("png-bytes"), MediaType: "image/png", Width: 1024, Height: 1024}
	}
	return images
}

func TestGenerationService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     service.GenerateRequest
		wantErr error
	}{
		{"empty prompt", service.GenerateRequest{BrandID: "brand-1"}, app_errors.ErrValidation},
		{"prompt too long", service.GenerateRequest{Prompt: strings.Repeat("x", 2001), BrandID: "brand-1"}, app_errors.ErrValidation},
		{"missing brand", service.GenerateRequest{Prompt: "a fox"}, app_errors.ErrValidation},
		{"unknown aspect ratio", service.GenerateRequest{Prompt: "a fox", BrandID: "brand-1", AspectRatio: "2:1"}, app_errors.ErrValidation},
		{"init image unsupported", service.GenerateRequest{Prompt: "a fox", BrandID: "brand-1", Image: "base64data"}, app_errors.ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockGateway, _ := setupGenerationService(t, defaultGenerationConfig())

			_, err := svc.HandleGenerateRequest(context.Background(), "client-1", &tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			mockRepo.AssertNotCalled(t, "CreateGeneration", mock.Anything, mock.Anything)
			mockGateway.AssertNotCalled(t, "GenerateImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerationService_HandleGenerateRequest(t *testing.T) {
	req := func() *service.GenerateRequest {
		return &service.GenerateRequest{Prompt: "a fox logo", BrandID: "brand-1", Count: 2}
	}

	t.Run("full flow stores assets and completes the generation", func(t *testing.T) {
		svc, mockRepo, mockGateway, mockStore := setupGenerationService(t, defaultGenerationConfig())

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(3, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(styledBrand(), nil).Once()

		var createdID string
		mockRepo.On("CreateGeneration", mock.Anything, mock.MatchedBy(func(g *model.Generation) bool {
			createdID = g.ID
			return g.BrandID == "brand-1" &&
				g.Status == model.GenerationProcessing &&
				g.Metadata.Count == 2 &&
				g.Metadata.AspectRatio == "1:1" &&
				strings.Contains(g.Metadata.StyledPrompt, "Color palette: cool tones with primary #2563EB")
		})).Return(nil).Once()

		mockGateway.On("GenerateImages", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "a fox logo. Style: clean, bold, modern.")
		}), 2, "1:1").Return(generatedImages(2), nil).Once()

		mockStore.On("Save", "a fox logo - Variation 1", "image/png", mock.Anything).Return("/uploads/gen-1.png", nil).Once()
		mockStore.On("Save", "a fox logo - Variation 2", "image/png", mock.Anything).Return("/uploads/gen-2.png", nil).Once()

		mockRepo.On("CompleteGeneration", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(assets []model.Asset) bool {
			return len(assets) == 2 &&
				assets[0].Type == model.AssetIllustration &&
				assets[0].URL == "/uploads/gen-1.png" &&
				assets[1].URL == "/uploads/gen-2.png"
		})).Return(nil).Once()

		result, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())

		require.NoError(t, err)
		assert.Equal(t, createdID, result.GenerationID)
		assert.Len(t, result.Assets, 2)
		assert.Empty(t, result.Mode)
	})

	t.Run("multi-byte prompts keep asset names valid UTF-8", func(t *testing.T) {
		svc, mockRepo, mockGateway, mockStore := setupGenerationService(t, defaultGenerationConfig())

		longPrompt := strings.Repeat("狐", 45)
		wantName := strings.Repeat("狐", 40) + " - Variation 1"

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").
			Return(&model.Brand{ID: "brand-1", Name: "Brewster"}, nil).Once()
		mockRepo.On("CreateGeneration", mock.Anything, mock.Anything).Return(nil).Once()
		mockGateway.On("GenerateImages", mock.Anything, longPrompt, 1, "1:1").Return(generatedImages(1), nil).Once()
		mockStore.On("Save", mock.MatchedBy(func(name string) bool {
			return name == wantName && utf8.ValidString(name)
		}), "image/png", mock.Anything).Return("/uploads/gen-1.png", nil).Once()
		mockRepo.On("CompleteGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", &service.GenerateRequest{
			Prompt:  longPrompt,
			BrandID: "brand-1",
			Count:   1,
		})
		require.NoError(t, err)
	})

	t.Run("mock mode is reported in the result", func(t *testing.T) {
		cfg := defaultGenerationConfig()
		cfg.MockMode = true
		svc, mockRepo, mockGateway, mockStore := setupGenerationService(t, cfg)

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(styledBrand(), nil).Once()
		mockRepo.On("CreateGeneration", mock.Anything, mock.Anything).Return(nil).Once()
		mockGateway.On("GenerateImages", mock.Anything, mock.Anything, 2, "1:1").Return(generatedImages(2), nil).Once()
		mockStore.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("/uploads/gen.svg", nil).Twice()
		mockRepo.On("CompleteGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())

		require.NoError(t, err)
		assert.Equal(t, "mock", result.Mode)
	})

	t.Run("count is clamped to the batch maximum", func(t *testing.T) {
		svc, mockRepo, mockGateway, mockStore := setupGenerationService(t, defaultGenerationConfig())

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(styledBrand(), nil).Once()
		mockRepo.On("CreateGeneration", mock.Anything, mock.Anything).Return(nil).Once()
		mockGateway.On("GenerateImages", mock.Anything, mock.Anything, 4, "1:1").Return(generatedImages(4), nil).Once()
		mockStore.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("/uploads/gen.png", nil).Times(4)
		mockRepo.On("CompleteGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		oversized := req()
		oversized.Count = 10
		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", oversized)

		require.NoError(t, err)
	})

	t.Run("over the rate limit returns retry seconds without touching the gateway", func(t *testing.T) {
		cfg := defaultGenerationConfig()
		cfg.RateLimit = ratelimit.Config{MaxRequests: 1, Window: time.Minute}
		svc, mockRepo, mockGateway, mockStore := setupGenerationService(t, cfg)

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(styledBrand(), nil).Once()
		mockRepo.On("CreateGeneration", mock.Anything, mock.Anything).Return(nil).Once()
		mockGateway.On("GenerateImages", mock.Anything, mock.Anything, 2, "1:1").Return(generatedImages(2), nil).Once()
		mockStore.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("/uploads/gen.png", nil).Twice()
		mockRepo.On("CompleteGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())
		require.NoError(t, err)

		_, err = svc.HandleGenerateRequest(context.Background(), "client-1", req())
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrRateLimited)

		var rateErr *app_errors.RateLimitedError
		require.True(t, errors.As(err, &rateErr))
		assert.GreaterOrEqual(t, rateErr.RetryAfter, 1)
	})

	t.Run("daily quota rejects before any model call", func(t *testing.T) {
		cfg := defaultGenerationConfig()
		cfg.DailyLimit = 5
		svc, mockRepo, mockGateway, _ := setupGenerationService(t, cfg)

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(5, nil).Once()

		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrQuotaExceeded)
		mockGateway.AssertNotCalled(t, "GenerateImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown brand maps to not found", func(t *testing.T) {
		svc, mockRepo, _, _ := setupGenerationService(t, defaultGenerationConfig())

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("gateway failure marks the generation failed", func(t *testing.T) {
		svc, mockRepo, mockGateway, _ := setupGenerationService(t, defaultGenerationConfig())

		mockRepo.On("CountGenerationsSince", mock.Anything, "brand-1", mock.Anything).Return(0, nil).Once()
		mockRepo.On("GetBrand", mock.Anything, "brand-1").Return(styledBrand(), nil).Once()

		var createdID string
		mockRepo.On("CreateGeneration", mock.Anything, mock.MatchedBy(func(g *model.Generation) bool {
			createdID = g.ID
			return true
		})).Return(nil).Once()

		mockGateway.On("GenerateImages", mock.Anything, mock.Anything, 2, "1:1").
			Return(nil, errors.New("image model overloaded")).Once()

		mockRepo.On("FailGeneration", mock.Anything, mock.MatchedBy(func(id string) bool {
			return id == createdID
		}), "image model overloaded").Return(nil).Once()

		_, err := svc.HandleGenerateRequest(context.Background(), "client-1", req())

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrModelInvocation)
	})
}

func TestGenerationService_Status(t *testing.T) {
	cfg := defaultGenerationConfig()
	cfg.RateLimit = ratelimit.Config{MaxRequests: 3, Window: time.Minute}
	svc, _, _, _ := setupGenerationService(t, cfg)

	status := svc.Status("client-1")

	assert.False(t, status.Limited)
	assert.Equal(t, 3, status.Remaining)
}

func TestGenerationService_ListHistory(t *testing.T) {
	t.Run("requires a brand", func(t *testing.T) {
		svc, _, _, _ := setupGenerationService(t, defaultGenerationConfig())

		_, err := svc.ListHistory(context.Background(), "", 20)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		svc, mockRepo, _, _ := setupGenerationService(t, defaultGenerationConfig())
		expected := []*model.Generation{{ID: "gen-1", BrandID: "brand-1"}}
		mockRepo.On("ListGenerations", mock.Anything, "brand-1", 20).Return(expected, nil).Once()

		got, err := svc.ListHistory(context.Background(), "brand-1", 20)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}
