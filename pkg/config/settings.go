package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where the config file is looked up when none is given
	DefaultPath = "~/.config/lineedit/config.yaml"

	DefaultPrompt      = "> "
	DefaultHistorySize = 50
	DefaultBackend     = BackendANSI

	BackendANSI  = "ansi"
	BackendTcell = "tcell"

	// Keys read through Manager
	KeyPrompt      = "prompt"
	KeyHistorySize = "history_size"
	KeyBackend     = "backend"
	KeyConfigFile  = "config"
)

// Settings is the resolved editor configuration
type Settings struct {
	Prompt      string            `yaml:"prompt"`
	HistorySize int               `yaml:"history_size"`
	Backend     string            `yaml:"backend"`
	Bindings    map[string]string `yaml:"bindings"`
}

// Defaults returns the settings used when nothing overrides them
func Defaults() Settings {
	return Settings{
		Prompt:      DefaultPrompt,
		HistorySize: DefaultHistorySize,
		Backend:     DefaultBackend,
	}
}

// Validate checks values a file or variable may have set badly
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", s.Backend, BackendANSI, BackendTcell)
	}
	if s.HistorySize < 1 {
		return fmt.Errorf("history size must be at least 1, got %d", s.HistorySize)
	}
	return nil
}

// Loader layers settings: defaults, then the YAML file, then .env files,
// then environment variables.
type Loader struct {
	env      Manager
	envFiles []string
}

// NewLoader creates a loader reading variables through env after loading
// envFiles. Missing .env files are skipped.
func NewLoader(env Manager, envFiles ...string) *Loader {
	return &Loader{env: env, envFiles: envFiles}
}

// Load resolves settings with the process environment and ./.env
func Load(path string) (Settings, error) {
	return NewLoader(NewConfigManager(), ".env").Load(path)
}

// Load resolves settings. path may start with ~; when empty the
// LINEEDIT_CONFIG variable is used, then DefaultPath. Only an explicitly
// named file has to exist.
func (l *Loader) Load(path string) (Settings, error) {
	s := Defaults()

	if err := l.loadEnvFiles(); err != nil {
		return s, err
	}

	explicit := path != ""
	if !explicit {
		path = l.env.GetStringWithDefault(KeyConfigFile, "")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}
	if err := s.readFile(path, explicit); err != nil {
		return s, err
	}

	s.Prompt = l.env.GetStringWithDefault(KeyPrompt, s.Prompt)
	s.Backend = strings.ToLower(l.env.GetStringWithDefault(KeyBackend, s.Backend))
	if _, err := l.env.GetString(KeyHistorySize); err == nil {
		if _, err := l.env.GetInt(KeyHistorySize); err != nil {
			return s, err
		}
	}
	s.HistorySize = l.env.GetIntWithDefault(KeyHistorySize, s.HistorySize)

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// loadEnvFiles exports variables from the .env files. Variables already set
// in the environment win.
func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

func (s *Settings) readFile(path string, required bool) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path %s: %w", path, err)
	}

	content, err := os.ReadFile(expanded)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, s); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", expanded, err)
	}
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	return nil
}
