package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultBaseURL = "http://localhost:8080/api"
const defaultPageSize = 50
const defaultTimeoutSeconds = 10

type Config struct {
	Server  ServerConfig  `toml:"server"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	BaseURL        string `toml:"base_url"`
	PageSize       int    `toml:"page_size"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type UIConfig struct {
	StartPage string `toml:"start_page"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:        defaultBaseURL,
			PageSize:       defaultPageSize,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		UI: UIConfig{
			StartPage: "notes",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the settings file, falling back to defaults when it does not
// exist. A malformed file is an error, not a silent fallback.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c Config) BaseURL() string {
	url := strings.TrimSpace(c.Server.BaseURL)
	if url == "" {
		return defaultBaseURL
	}
	return url
}

func (c Config) PageSize() int {
	if c.Server.PageSize <= 0 {
		return defaultPageSize
	}
	return c.Server.PageSize
}

func (c Config) Timeout() time.Duration {
	seconds := c.Server.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
