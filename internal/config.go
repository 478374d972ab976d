package internal

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProductionURL = "https://conquest-of-infinity.onrender.com"
	DefaultLocalURL      = "http://localhost:8001"
	DefaultListenAddr    = "localhost:8080"

	EnvAPIBaseURL = "DIARY_API_URL"
	EnvListenAddr = "DIARY_LISTEN_ADDR"
)

type Config struct {
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	Origin     string `yaml:"origin,omitempty"`
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	return &cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// DefaultConfigPath is ~/.config/diary/config.yaml (per-OS equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "diary", "config.yaml"), nil
}

// DefaultSessionPath is ~/.config/diary/session.yaml (per-OS equivalent).
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "diary", "session.yaml"), nil
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveBaseURL picks the API base URL for a given page origin. Resolution
// order: explicit override, file: origins and localhost hosts fall back to
// the fixed local port, github.io hosting and everything else resolve to the
// production URL.
func ResolveBaseURL(override, origin string) string {
	if override != "" {
		return override
	}

	if origin != "" {
		u, err := url.Parse(origin)
		if err == nil {
			if u.Scheme == "file" {
				return DefaultLocalURL
			}
			host := u.Hostname()
			if host == "localhost" || host == "127.0.0.1" {
				return DefaultLocalURL
			}
			if strings.Contains(host, "github.io") {
				return DefaultProductionURL
			}
		}
	}

	return DefaultProductionURL
}

// ResolveAPIBase applies the full override chain: command-line flag, then
// the DIARY_API_URL environment variable, then the config file, then the
// origin heuristics.
func (c *Config) ResolveAPIBase(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	if env := os.Getenv(EnvAPIBaseURL); env != "" {
		return env
	}
	return ResolveBaseURL(c.APIBaseURL, c.Origin)
}

// ResolveListenAddr applies the serve address override chain.
func (c *Config) ResolveListenAddr(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	if env := os.Getenv(EnvListenAddr); env != "" {
		return env
	}
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return DefaultListenAddr
}
