// Package config loads coursemap settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/store"
)

const (
	// EnvConfigFile names the YAML config file when --config is not given.
	EnvConfigFile = "COURSEMAP_CONFIG"

	envDB        = "COURSEMAP_DB"
	envCatalog   = "COURSEMAP_CATALOG"
	envResources = "COURSEMAP_RESOURCES"
	envHTTPAddr  = "COURSEMAP_HTTP_ADDR"
	envLogMode   = "COURSEMAP_LOG_MODE"
)

// Config is the complete runtime configuration.
type Config struct {
	DB         DBConfig         `yaml:"db"`
	Data       DataConfig       `yaml:"data"`
	HTTP       HTTPConfig       `yaml:"http"`
	Log        LogConfig        `yaml:"log"`
	Summarizer SummarizerConfig `yaml:"summarizer"`

	// LLM comes from the environment only so keys never sit in YAML files.
	LLM llm.Config `yaml:"-"`

	// LLMErr is why no provider is configured, nil when one is.
	LLMErr error `yaml:"-"`
}

type DBConfig struct {
	// Path is the SQLite database file.
	Path string `yaml:"path"`
}

type DataConfig struct {
	// Catalog and Resources are optional YAML/JSON files replacing the
	// built-in course.
	Catalog   string `yaml:"catalog"`
	Resources string `yaml:"resources"`

	// Strict turns consistency findings into load errors.
	Strict bool `yaml:"strict"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	// Mode is "dev" or "prod".
	Mode string `yaml:"mode"`
	// File receives logs instead of stderr when set. The TUI always logs
	// to a file.
	File string `yaml:"file"`
}

type SummarizerConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Default returns the built-in configuration.
func Default() *Config {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		dbPath = "coursemap.db"
	}
	return &Config{
		DB: DBConfig{Path: dbPath},
		HTTP: HTTPConfig{
			Addr:            "127.0.0.1:8080",
			CORSOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000"},
			ShutdownTimeout: 10 * time.Second,
		},
		Log:        LogConfig{Mode: "dev"},
		Summarizer: SummarizerConfig{MaxTokens: 1024, Temperature: 0.3},
		LLM:        llm.DefaultConfig(),
	}
}

// Load builds the configuration in layers: .env file, defaults, the YAML
// file at path (or $COURSEMAP_CONFIG), then COURSEMAP_* overrides. A
// missing .env is fine; a missing explicit config file is not.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.applyEnv()

	cfg.LLM, cfg.LLMErr = llm.ResolveConfig()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile parses a YAML config file. Unset fields stay zero so Merge
// can tell them apart from defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &c, nil
}

// SaveToFile writes c as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge copies the non-zero fields of other over c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DB.Path != "" {
		c.DB.Path = other.DB.Path
	}
	if other.Data.Catalog != "" {
		c.Data.Catalog = other.Data.Catalog
	}
	if other.Data.Resources != "" {
		c.Data.Resources = other.Data.Resources
	}
	if other.Data.Strict {
		c.Data.Strict = true
	}
	if other.HTTP.Addr != "" {
		c.HTTP.Addr = other.HTTP.Addr
	}
	if len(other.HTTP.CORSOrigins) > 0 {
		c.HTTP.CORSOrigins = other.HTTP.CORSOrigins
	}
	if other.HTTP.ShutdownTimeout != 0 {
		c.HTTP.ShutdownTimeout = other.HTTP.ShutdownTimeout
	}
	if other.Log.Mode != "" {
		c.Log.Mode = other.Log.Mode
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
	if other.Summarizer.MaxTokens != 0 {
		c.Summarizer.MaxTokens = other.Summarizer.MaxTokens
	}
	if other.Summarizer.Temperature != 0 {
		c.Summarizer.Temperature = other.Summarizer.Temperature
	}
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		envDB:        &c.DB.Path,
		envCatalog:   &c.Data.Catalog,
		envResources: &c.Data.Resources,
		envHTTPAddr:  &c.HTTP.Addr,
		envLogMode:   &c.Log.Mode,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*field = v
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string
	if c.DB.Path == "" {
		problems = append(problems, "db.path is required")
	}
	if _, _, err := net.SplitHostPort(c.HTTP.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("http.addr %q: %v", c.HTTP.Addr, err))
	}
	if c.HTTP.ShutdownTimeout < 0 {
		problems = append(problems, "http.shutdown_timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Mode) {
	case "dev", "development", "prod", "production":
	default:
		problems = append(problems, fmt.Sprintf("log.mode must be dev or prod, got %q", c.Log.Mode))
	}
	if c.Summarizer.MaxTokens <= 0 {
		problems = append(problems, "summarizer.max_tokens must be positive")
	}
	if c.Summarizer.Temperature < 0 || c.Summarizer.Temperature > 1 {
		problems = append(problems, "summarizer.temperature must be between 0 and 1")
	}
	for _, p := range []struct{ name, path string }{
		{"data.catalog", c.Data.Catalog},
		{"data.resources", c.Data.Resources},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", p.name, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LLMConfigured reports whether a provider can be built.
func (c *Config) LLMConfigured() bool {
	return c.LLMErr == nil
}
