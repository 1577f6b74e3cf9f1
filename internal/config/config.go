package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrNotConfigured indicates that the configuration file does not exist yet.
var ErrNotConfigured = errors.New("configuration file not found")

const (
	DefaultTitle    = "Test"
	DefaultBody     = "This is a test notification"
	DefaultHold     = 10 * time.Second
	DefaultLogLevel = "info"
)

// Settings holds the demo notification and logging configuration.
type Settings struct {
	Title    string        `yaml:"title"`
	Body     string        `yaml:"body"`
	Hold     time.Duration `yaml:"hold"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Title:    DefaultTitle,
		Body:     DefaultBody,
		Hold:     DefaultHold,
		LogLevel: DefaultLogLevel,
	}
}

// Validate ensures the settings are ready to use.
func (s Settings) Validate() error {
	if s.Hold <= 0 {
		return fmt.Errorf("hold must be positive, got %s", s.Hold)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return nil
}

func (s Settings) withDefaults() Settings {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = DefaultTitle
	}
	if strings.TrimSpace(s.Body) == "" {
		s.Body = DefaultBody
	}
	if s.Hold == 0 {
		s.Hold = DefaultHold
	}
	if strings.TrimSpace(s.LogLevel) == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}

// Path returns the absolute path to the default configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "notify-balloon", "config.yaml"), nil
}

// Load reads the settings at path. Missing fields take their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, ErrNotConfigured
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}

	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Save persists settings to path.
func Save(path string, settings Settings) error {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
