// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Host modes.
const (
	ModeTUI     = "tui"
	ModeConsole = "console"
	ModeServe   = "serve"
)

// Config holds every tunable; defaults match the classic 6x5 game.
type Config struct {
	Mode     string `env:"TUIDLE_MODE" envDefault:"tui"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"TUIDLE_LOG_FILE"`

	WordLength  int    `env:"TUIDLE_WORD_LENGTH" envDefault:"5"`
	MaxAttempts int    `env:"TUIDLE_MAX_ATTEMPTS" envDefault:"6"`
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	Daily     bool   `env:"TUIDLE_DAILY" envDefault:"false"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	Port             string        `env:"PORT" envDefault:"5175"`
	RateLimitRPS     float64       `env:"TUIDLE_RATE_RPS" envDefault:"5"`
	RateLimitBurst   int           `env:"TUIDLE_RATE_BURST" envDefault:"10"`
	AllowFixedAnswer bool          `env:"TUIDLE_ALLOW_FIXED_ANSWER" envDefault:"false"`
	SessionTTL       time.Duration `env:"TUIDLE_SESSION_TTL" envDefault:"24h"`

	// CORSOrigins lists browser origins allowed to call the HTTP host.
	// "*" allows any origin; an empty list disables CORS headers.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and the mode name.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTUI, ModeConsole, ModeServe:
	default:
		return fmt.Errorf("config: unknown mode %q (want %s, %s or %s)", c.Mode, ModeTUI, ModeConsole, ModeServe)
	}
	if c.WordLength < 1 || c.WordLength > 32 {
		return fmt.Errorf("config: word length %d out of range 1..32", c.WordLength)
	}
	if c.MaxAttempts < 1 || c.MaxAttempts > 32 {
		return fmt.Errorf("config: max attempts %d out of range 1..32", c.MaxAttempts)
	}
	return nil
}
