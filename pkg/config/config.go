package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STEPWISE_"

// Config is the full service configuration. Defaults come from Default();
// every field can be overridden through STEPWISE_-prefixed environment
// variables (STEPWISE_SERVER_PORT, STEPWISE_LLM_API_KEY, ...).
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Store       StoreConfig       `koanf:"store"`
	Identity    IdentityConfig    `koanf:"identity"`
	LLM         LLMConfig         `koanf:"llm"`
	Recognition RecognitionConfig `koanf:"recognition"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"             validate:"gt=0,lte=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver    string `koanf:"driver" validate:"oneof=memory surreal"`
	URL       string `koanf:"url"`
	Namespace string `koanf:"namespace"`
	Database  string `koanf:"database"`
	Username  string `koanf:"username"`
	Password  string `koanf:"password"`
}

// IdentityConfig points at the external identity provider.
type IdentityConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

type LLMConfig struct {
	APIKey      string  `koanf:"api_key"`
	Model       string  `koanf:"model"`
	BaseURL     string  `koanf:"base_url"`
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=2"`
}

type RecognitionConfig struct {
	PassThreshold int `koanf:"pass_threshold" validate:"gte=0,lte=100"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info", JSON: false},
		Store: StoreConfig{
			Driver:    "surreal",
			URL:       "ws://localhost:8000/rpc",
			Namespace: "stepwise",
			Database:  "stepwise",
			Username:  "root",
			Password:  "root",
		},
		Identity: IdentityConfig{
			BaseURL: "https://identitytoolkit.googleapis.com",
			Timeout: 15 * time.Second,
		},
		LLM: LLMConfig{
			Model:       "gpt-4o",
			Temperature: 0.2,
		},
		Recognition: RecognitionConfig{PassThreshold: 60},
	}
}

// Load assembles the configuration from defaults and environment variables
// and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// transformEnvKey converts environment variable names to koanf paths.
// STEPWISE_IDENTITY_API_KEY -> identity.api_key: the first segment selects
// the section, the remainder keeps its underscores as the field name.
func transformEnvKey(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + strings.Join(parts[1:], "_")
}
