package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the process-level runtime configuration. Everything the user
// changes from inside the app (durations, language, theme, assistant
// identity) lives in the state store instead; this covers only what must
// exist before the app starts.
type Config struct {
	DBPath  string `yaml:"db_path"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Audio   bool   `yaml:"audio"`
	Speech  bool   `yaml:"speech"`
}

func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath: filepath.Join(home, ".flowpomodoro", "flowpomodoro.db"),
		Audio:  true,
		Speech: true,
	}
}

// LoadConfig layers the YAML file at path (if any) over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultConfig().DBPath
	}
	return cfg, nil
}

// FromEnv applies FLOWPOMODORO_* environment overrides on top of base.
// The remote service credential also honors GEMINI_API_KEY.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("FLOWPOMODORO_DB")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("FLOWPOMODORO_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if v := strings.TrimSpace(os.Getenv("FLOWPOMODORO_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("FLOWPOMODORO_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v, ok := getEnvBool("FLOWPOMODORO_AUDIO"); ok {
		cfg.Audio = v
	}
	if v, ok := getEnvBool("FLOWPOMODORO_SPEECH"); ok {
		cfg.Speech = v
	}
	return cfg
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
