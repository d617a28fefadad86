package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/logger"
)

// FileName is the config file kept in the book directory.
const FileName = "ledgerbook.yaml"

// Config represents the top-level ledgerbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Currency string         `yaml:"currency"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Log      LogConfig      `yaml:"log"`
	Render   RenderConfig   `yaml:"render"`
	Server   ServerConfig   `yaml:"server"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business the book is kept for.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// LedgerConfig locates the ledger document.
type LedgerConfig struct {
	File string `yaml:"file"` // relative to the book directory unless absolute
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// RenderConfig controls terminal output of reports.
type RenderConfig struct {
	Style string `yaml:"style"` // glamour style name or path, "auto" by default
	Width int    `yaml:"width"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second per client
	RateBurst       int           `yaml:"rate_burst"`
	TrustProxy      bool          `yaml:"trust_proxy"` // behind a reverse proxy that sets X-Forwarded-For
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerbook.yaml file from disk. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, or returns Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Currency: "INR",
		Ledger:   LedgerConfig{File: ledger.DefaultFile},
		Log:      LogConfig{Level: "info", Format: logger.FormatText},
		Render:   RenderConfig{Style: "auto", Width: 100},
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"*"},
			RateLimit:       100,
			RateBurst:       20,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Ledgerbook",
			AuthorEmail: "ledgerbook@localhost",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var problems []string
	if money.GetCurrency(strings.ToUpper(c.Currency)) == nil {
		problems = append(problems, fmt.Sprintf("currency: unknown code %q", c.Currency))
	}
	if strings.TrimSpace(c.Ledger.File) == "" {
		problems = append(problems, "ledger.file: must not be empty")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		problems = append(problems, "server: rate_limit and rate_burst must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LedgerPath resolves the ledger file against the book directory.
func (c *Config) LedgerPath(dir string) string {
	if filepath.IsAbs(c.Ledger.File) {
		return c.Ledger.File
	}
	return filepath.Join(dir, c.Ledger.File)
}
