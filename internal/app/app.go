package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"

	"github.com/Eluskie/Orlando/internal/api"
	"github.com/Eluskie/Orlando/internal/config"
	"github.com/Eluskie/Orlando/internal/database"
	"github.com/Eluskie/Orlando/internal/gateway"
	"github.com/Eluskie/Orlando/internal/ratelimit"
	"github.com/Eluskie/Orlando/internal/repository"
	"github.com/Eluskie/Orlando/internal/service"
	"github.com/Eluskie/Orlando/internal/storage"
	"github.com/Eluskie/Orlando/internal/style"
)

// mockWordDelay paces the fake chat stream so the frontend's typing
// animation looks the same in mock and real mode.
const mockWordDelay = 30 * time.Millisecond

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)

	store, err := storage.NewDiskStore(cfg.UploadDir, "/uploads")
	if err != nil {
		slog.Error("Failed to initialize upload storage", "error", err, "dir", cfg.UploadDir)
		return 1
	}

	var (
		modelGateway gateway.ModelGateway
		extractor    style.Extractor
	)
	if cfg.MockAIMode {
		slog.Info("Mock AI mode enabled, all model calls will return deterministic fakes")
		modelGateway = gateway.NewMockGateway(mockWordDelay)
		extractor = style.NewMockExtractor()
	} else {
		if cfg.OpenAIAPIKey == "" {
			slog.Error("OPENAI_API_KEY is required unless MOCK_AI_MODE is set")
			return 1
		}
		client := openai.NewClient(cfg.OpenAIAPIKey)
		modelGateway = gateway.NewOpenAIGateway(client, cfg.ChatModel, cfg.ImageModel)
		extractor = style.NewOpenAIExtractor(client, cfg.VisionModel)
	}

	limiter := ratelimit.NewLimiter()
	limiter.StartSweeper(time.Minute)
	defer limiter.StopSweeper()

	chatService := service.NewChatService(repo, modelGateway, extractor)
	brandService := service.NewBrandService(repo, store)
	generationService := service.NewGenerationService(repo, modelGateway, limiter, store, service.GenerationConfig{
		RateLimit: ratelimit.Config{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      time.Duration(cfg.RateLimitWindowMs) * time.Millisecond,
		},
		DailyLimit:      cfg.DailyGenerationLimit,
		MaxPromptLength: cfg.MaxPromptLength,
		ImageModel:      cfg.ImageModel,
		MockMode:        cfg.MockAIMode,
	})

	chatHandler := api.NewChatHandler(chatService, brandService)
	brandHandler := api.NewBrandHandler(brandService)
	generateHandler := api.NewGenerateHandler(generationService)
	router := api.NewRouter(chatHandler, brandHandler, generateHandler, cfg.UploadDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "mock_ai_mode", cfg.MockAIMode)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received, draining connections...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
		// Background persistence from in-flight chat turns must land before
		// the database handle closes.
		chatService.Drain()
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
