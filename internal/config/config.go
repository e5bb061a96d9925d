package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	UploadDir    string `mapstructure:"UPLOAD_DIR"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// MockAIMode substitutes deterministic fakes for every model call (chat,
	// style extraction, image generation). The gateway and extractor pair is
	// selected once at startup and applies to all three together; mixing mock
	// and real is not supported.
	MockAIMode bool `mapstructure:"MOCK_AI_MODE"`

	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	ChatModel    string `mapstructure:"CHAT_MODEL"`
	VisionModel  string `mapstructure:"VISION_MODEL"`
	ImageModel   string `mapstructure:"IMAGE_MODEL"`

	RateLimitMaxRequests int `mapstructure:"RATE_LIMIT_MAX_REQUESTS"`
	RateLimitWindowMs    int `mapstructure:"RATE_LIMIT_WINDOW_MS"`
	DailyGenerationLimit int `mapstructure:"DAILY_GENERATION_LIMIT"`
	MaxPromptLength      int `mapstructure:"MAX_PROMPT_LENGTH"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/dobra.db")
	viper.SetDefault("UPLOAD_DIR", "/data/uploads")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("MOCK_AI_MODE", false)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("CHAT_MODEL", "gpt-4o")
	viper.SetDefault("VISION_MODEL", "gpt-4o")
	viper.SetDefault("IMAGE_MODEL", "dall-e-3")
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_MS", 60_000)
	viper.SetDefault("DAILY_GENERATION_LIMIT", 50)
	viper.SetDefault("MAX_PROMPT_LENGTH", 2000)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
