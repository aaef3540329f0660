// Package config handles loading the samvaad configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the samvaad server.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Recognizer RecognizerConfig `mapstructure:"recognizer"`
	History    HistoryConfig    `mapstructure:"history"`
	Composer   ComposerConfig   `mapstructure:"composer"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecognizerConfig locates the gesture model and its worker process.
type RecognizerConfig struct {
	ModelPath  string `mapstructure:"model_path"`
	ScriptPath string `mapstructure:"script_path"` // empty: search the usual locations
	Python     string `mapstructure:"python"`      // empty: venv python, then python3
}

// HistoryConfig sizes the gesture context kept for sentence composition.
type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// ComposerConfig holds the chat completion settings.
type ComposerConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int64         `mapstructure:"max_tokens"`
	TopP        float64       `mapstructure:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// TranslatorConfig holds the translation service settings.
type TranslatorConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Source  string        `mapstructure:"source"`
	Target  string        `mapstructure:"target"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the search order is
// ./samvaad.yaml, ./configs/samvaad.yaml, /etc/samvaad/samvaad.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("recognizer.model_path", "gesture_recognizer.task")
	v.SetDefault("recognizer.script_path", "")
	v.SetDefault("recognizer.python", "")
	v.SetDefault("history.capacity", 5)
	v.SetDefault("composer.api_key", "")
	v.SetDefault("composer.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("composer.model", "llama-3.1-8b-instant")
	v.SetDefault("composer.temperature", 0.4)
	v.SetDefault("composer.max_tokens", 50)
	v.SetDefault("composer.top_p", 1.0)
	v.SetDefault("composer.timeout", "60s")
	v.SetDefault("translator.base_url", "https://translate.googleapis.com")
	v.SetDefault("translator.source", "en")
	v.SetDefault("translator.target", "hi")
	v.SetDefault("translator.timeout", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("metrics.enabled", true)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("samvaad")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/samvaad")
	}

	// SAMVAAD_SERVER_ADDR, SAMVAAD_HISTORY_CAPACITY, etc.
	v.SetEnvPrefix("SAMVAAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("composer.api_key", "SAMVAAD_COMPOSER_API_KEY", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding api key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Composer.APIKey = resolveEnvRef(cfg.Composer.APIKey)

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" with the value of VAR_NAME when it is set.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		envKey := val[2 : len(val)-1]
		if envVal := os.Getenv(envKey); envVal != "" {
			return envVal
		}
	}
	return val
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
