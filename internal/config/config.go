package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appDir = "forja"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Log     LogConfig     `toml:"log"`
	Remote  RemoteConfig  `toml:"remote"`
	Session SessionConfig `toml:"session"`
}

type DBConfig struct {
	URL        string `toml:"url"`        // libsql://, https:// or a local file path.
	AuthToken  string `toml:"auth_token"` // Turso only.
	QuotaBytes int    `toml:"quota_bytes"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	JSON  bool   `toml:"json"`
}

type RemoteConfig struct {
	ExerciseAPIURL string `toml:"exercise_api_url"`
	ExerciseAPIKey string `toml:"exercise_api_key"`
	QuoteAPIURL    string `toml:"quote_api_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheMegabytes int    `toml:"cache_megabytes"`
}

type SessionConfig struct {
	TickMillis int `toml:"tick_millis"`
}

// Returns the directory holding config, database and logs.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appDir), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default is what you get with no config file at all.
func Default() *Config {
	cfg := &Config{
		Log: LogConfig{Level: "warn"},
		Remote: RemoteConfig{
			TimeoutSeconds: 5,
			CacheMegabytes: 1,
		},
		Session: SessionConfig{TickMillis: 1000},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.DB.URL = filepath.Join(dir, "forja.db")
	}
	return cfg
}

// Reads the configuration from path (the default location when empty).
// A missing file is not an error, env overrides are applied on top.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// A .env next to the binary is optional.
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.DB.URL = url
	}
	if token := os.Getenv("TURSO_AUTH_TOKEN"); token != "" {
		cfg.DB.AuthToken = token
	}
	if url := os.Getenv("FORJA_DATABASE_URL"); url != "" {
		cfg.DB.URL = url
	}
	if lvl := os.Getenv("FORJA_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}
	if key := os.Getenv("FORJA_EXERCISE_API_KEY"); key != "" {
		cfg.Remote.ExerciseAPIKey = key
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.URL = "./local.db"
	}
}

// Write dumps cfg as TOML, creating the parent directory.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
