package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/auralis/pkg/log"
)

const DefaultAuralisBaseURL = "https://auralis.pythonanywhere.com/auralis/default"

type AppConfig struct {
	RuntimePath string `env:"AURALIS_RUNTIME_PATH" envDefault:".auralis"`

	Auralis  AuralisConfig
	Provider ProviderConfig
	Telegram TelegramConfig
	HTTP     HTTPConfig
	Sessions SessionConfig
}

// AuralisConfig points at the remote memory and identity service.
type AuralisConfig struct {
	BaseURL            string        `env:"AURALIS_API_BASE_URL" envDefault:"https://auralis.pythonanywhere.com/auralis/default" validate:"required,url"`
	Timeout            time.Duration `env:"AURALIS_API_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	RecentMemories     int           `env:"AURALIS_RECENT_MEMORIES" envDefault:"5" validate:"min=1,max=50"`
	MemoryWriteTimeout time.Duration `env:"AURALIS_MEMORY_WRITE_TIMEOUT" envDefault:"15s" validate:"gt=0"`
}

// SessionConfig bounds the in-memory chat sessions kept by long-running
// surfaces.
type SessionConfig struct {
	Max     int           `env:"AURALIS_MAX_SESSIONS" envDefault:"1000" validate:"min=1"`
	IdleTTL time.Duration `env:"AURALIS_SESSION_IDLE_TTL" envDefault:"24h" validate:"gt=0"`
}

type TelegramConfig struct {
	Enabled bool   `env:"ENABLE_TELEGRAM" envDefault:"false"`
	Token   string `env:"TELEGRAM_TOKEN" secret:"true"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID"`
}

type HTTPConfig struct {
	Enabled     bool     `env:"ENABLE_HTTP" envDefault:"false"`
	Addr        string   `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	CORSOrigins []string `env:"HTTP_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the process environment. Callers load the runtime .env first.
func Load() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	c.RuntimePath = GetRuntimePath()
	return c, nil
}

// NewAppConfig loads and validates the configuration, exiting on failure.
func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := Load()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	if err := c.Validate(); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("invalid app config")
	}
	return c
}

func (c *AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c *AppConfig) IsTelegramSelected() bool {
	return c.Telegram.Enabled
}

func (c *AppConfig) IsHTTPSelected() bool {
	return c.HTTP.Enabled
}
