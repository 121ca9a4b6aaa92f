package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/set-night/rsvpbot/internal/domain"
)

var validate = validator.New()

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN"`
	GroupID  int64  `env:"GROUP_ID"`

	// Superadmin: numeric user id or @handle
	Admin string `env:"ADMIN"`

	// Storage
	DataDir         string `env:"DATA_DIR" envDefault:"data" validate:"required"`
	GuestLogFile    string `env:"GUEST_LOG_FILE" envDefault:"rsvps.jsonl" validate:"required"`
	GroupAdminsFile string `env:"GROUP_ADMINS_FILE" envDefault:"group_admins.json" validate:"required"`

	// Party info content
	PartyInfoTextPath  string `env:"PARTY_INFO_TEXT_PATH"`
	PartyInfoImagePath string `env:"PARTY_INFO_IMAGE_PATH"`

	// Outbound pacing
	BroadcastDelay     time.Duration `env:"BROADCAST_DELAY" envDefault:"40ms" validate:"gte=0"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30" validate:"gte=0"`

	// Logging
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogTelegramChatID int64  `env:"LOG_TELEGRAM_CHAT_ID"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ValidateBot checks the settings only the running bot needs.
func (c *Config) ValidateBot() error {
	if err := validate.Var(c.BotToken, "required"); err != nil {
		return fmt.Errorf("BOT_TOKEN: %w", err)
	}
	if c.GroupID == 0 {
		return domain.ErrNoGroupConfigured
	}
	if c.Admin == "" {
		slog.Warn("no superadmin configured")
	}
	return nil
}

// SuperAdminID returns the superadmin's numeric id when ADMIN is a number.
func (c *Config) SuperAdminID() int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Admin), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SuperAdminHandle returns the canonical superadmin handle when ADMIN is
// not a number.
func (c *Config) SuperAdminHandle() string {
	if c.SuperAdminID() != 0 {
		return ""
	}
	return domain.CanonicalHandle(c.Admin)
}

func (c *Config) GuestLogPath() string {
	return c.dataPath(c.GuestLogFile)
}

func (c *Config) GroupAdminsPath() string {
	return c.dataPath(c.GroupAdminsFile)
}

func (c *Config) dataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
