package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	hclog "github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	fileName = "config.yaml"
)

type Config struct {
	DataDir  string
	Backend  string
	DBPath   string
	LogPath  string
	LogLevel string
	Notify   bool
}

// fileConfig mirrors config.yaml. Unset keys keep their defaults.
type fileConfig struct {
	Backend  string `yaml:"backend"`
	LogLevel string `yaml:"log_level"`
	Notify   *bool  `yaml:"notify"`
}

type envConfig struct {
	DataDir  string `env:"FOCUSTRACKER_DATA_DIR"`
	Backend  string `env:"FOCUSTRACKER_BACKEND"`
	LogLevel string `env:"FOCUSTRACKER_LOG_LEVEL"`
	Notify   *bool  `env:"FOCUSTRACKER_NOTIFY"`
}

// New returns the defaults for a data directory.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:  dataDir,
		Backend:  BackendFile,
		DBPath:   filepath.Join(dataDir, "focustracker.db"),
		LogPath:  filepath.Join(dataDir, "focustracker.log"),
		LogLevel: "warn",
		Notify:   true,
	}, nil
}

// Load layers config.yaml from the data dir and FOCUSTRACKER_* variables
// over the defaults.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(filepath.Join(dataDir, fileName)); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// DefaultDataDir resolves FOCUSTRACKER_DATA_DIR, then ~/.focustracker.
func DefaultDataDir() string {
	raw := envConfig{}
	if err := env.Parse(&raw); err == nil && strings.TrimSpace(raw.DataDir) != "" {
		return raw.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".focustracker"
	}
	return filepath.Join(home, ".focustracker")
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unsupported backend %q (want %s|%s)", c.Backend, BackendFile, BackendSQLite)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	raw := fileConfig{}
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if raw.Backend != "" {
		c.Backend = strings.ToLower(raw.Backend)
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	if raw.Notify != nil {
		c.Notify = *raw.Notify
	}
	return nil
}

func (c *Config) applyEnv() error {
	raw := envConfig{}
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if raw.Backend != "" {
		c.Backend = strings.ToLower(raw.Backend)
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	if raw.Notify != nil {
		c.Notify = *raw.Notify
	}
	return nil
}
