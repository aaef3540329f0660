package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":5000" {
		t.Errorf("expected addr :5000, got %s", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("expected allowed origins [*], got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Recognizer.ModelPath != "gesture_recognizer.task" {
		t.Errorf("expected default model path, got %s", cfg.Recognizer.ModelPath)
	}
	if cfg.History.Capacity != 5 {
		t.Errorf("expected capacity 5, got %d", cfg.History.Capacity)
	}
	if cfg.Composer.Model != "llama-3.1-8b-instant" {
		t.Errorf("expected default model, got %s", cfg.Composer.Model)
	}
	if cfg.Composer.Temperature != 0.4 || cfg.Composer.MaxTokens != 50 || cfg.Composer.TopP != 1.0 {
		t.Errorf("unexpected sampling defaults: %+v", cfg.Composer)
	}
	if cfg.Composer.Timeout != 60*time.Second {
		t.Errorf("expected composer timeout 60s, got %v", cfg.Composer.Timeout)
	}
	if cfg.Translator.Timeout != 0 {
		t.Errorf("expected no translator timeout, got %v", cfg.Translator.Timeout)
	}
	if cfg.Translator.Source != "en" || cfg.Translator.Target != "hi" {
		t.Errorf("expected en->hi, got %s->%s", cfg.Translator.Source, cfg.Translator.Target)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samvaad.yaml")
	content := `
server:
  addr: ":8080"
history:
  capacity: 3
translator:
  target: ta
  timeout: 2s
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.History.Capacity != 3 {
		t.Errorf("expected capacity 3, got %d", cfg.History.Capacity)
	}
	if cfg.Translator.Target != "ta" {
		t.Errorf("expected target ta, got %s", cfg.Translator.Target)
	}
	if cfg.Translator.Timeout != 2*time.Second {
		t.Errorf("expected timeout 2s, got %v", cfg.Translator.Timeout)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected text format, got %s", cfg.Logging.Format)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("prefixed keys", func(t *testing.T) {
		t.Setenv("SAMVAAD_HISTORY_CAPACITY", "7")
		t.Setenv("SAMVAAD_SERVER_ADDR", ":9000")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.History.Capacity != 7 {
			t.Errorf("expected capacity 7, got %d", cfg.History.Capacity)
		}
		if cfg.Server.Addr != ":9000" {
			t.Errorf("expected addr :9000, got %s", cfg.Server.Addr)
		}
	})

	t.Run("groq api key", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk-test")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Composer.APIKey != "gsk-test" {
			t.Errorf("expected api key from GROQ_API_KEY, got %q", cfg.Composer.APIKey)
		}
	})

	t.Run("env reference in file", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "")
		t.Setenv("MY_GROQ_KEY", "gsk-ref")
		path := filepath.Join(t.TempDir(), "samvaad.yaml")
		if err := os.WriteFile(path, []byte("composer:\n  api_key: ${MY_GROQ_KEY}\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Composer.APIKey != "gsk-ref" {
			t.Errorf("expected resolved key, got %q", cfg.Composer.APIKey)
		}
	})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
