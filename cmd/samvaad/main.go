// Samvaad serves webcam hand-gesture recognition, gesture-to-sentence
// composition and Hindi translation over HTTP.
//
// Usage:
//
//	samvaad [flags]
//	samvaad --config /path/to/samvaad.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/ayusman/samvaad/docs"
	"github.com/ayusman/samvaad/internal/app"
	"github.com/ayusman/samvaad/internal/composer"
	"github.com/ayusman/samvaad/internal/composer/groq"
	"github.com/ayusman/samvaad/internal/config"
	"github.com/ayusman/samvaad/internal/gesture"
	"github.com/ayusman/samvaad/internal/history"
	"github.com/ayusman/samvaad/internal/recognizer"
	"github.com/ayusman/samvaad/internal/server"
	"github.com/ayusman/samvaad/internal/translate"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/samvaad.yaml)")
	webDir := flag.String("web", "", "directory with the demo frontend (default: search ./web, ../web)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("samvaad %s\n", version)
		os.Exit(0)
	}

	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	config.SetupLogging(cfg.Logging)
	slog.Info("samvaad starting", "version", version)

	if cfg.Composer.APIKey == "" {
		slog.Warn("GROQ_API_KEY is not set, /context-translate will fail")
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Without the model /predict answers 500 with the load error.
	var rec recognizer.Recognizer
	mp, err := recognizer.NewMediaPipeRecognizer(recognizer.Config{
		ModelPath:  cfg.Recognizer.ModelPath,
		ScriptPath: cfg.Recognizer.ScriptPath,
		Python:     cfg.Recognizer.Python,
	})
	if err != nil {
		slog.Error("MediaPipe not available, /predict will fail", "error", err)
		rec = recognizer.Unavailable(err)
	} else {
		slog.Info("using MediaPipe gesture recognizer", "model", cfg.Recognizer.ModelPath)
		rec = mp
	}
	defer rec.Close()

	generator := groq.New(groq.Config{
		APIKey:      cfg.Composer.APIKey,
		BaseURL:     cfg.Composer.BaseURL,
		Model:       cfg.Composer.Model,
		Temperature: cfg.Composer.Temperature,
		MaxTokens:   cfg.Composer.MaxTokens,
		TopP:        cfg.Composer.TopP,
		Timeout:     cfg.Composer.Timeout,
	})

	translator := translate.NewGoogle(translate.GoogleConfig{
		BaseURL: cfg.Translator.BaseURL,
		Timeout: cfg.Translator.Timeout,
	})

	service := app.New(app.Config{
		Classifier: gesture.NewClassifier(rec, nil),
		Composer:   composer.New(history.New(cfg.History.Capacity), generator),
		Translator: translator,
		Source:     cfg.Translator.Source,
		Target:     cfg.Translator.Target,
	})

	staticDir := *webDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		slog.Info("serving static files", "dir", staticDir)
	}

	srv := server.New(server.Config{
		Pipeline:       service,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      staticDir,
		MetricsEnabled: cfg.Metrics.Enabled,
		SwaggerEnabled: true,
	})

	if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("samvaad stopped")
}

// findWebDir returns the first existing directory among "web", "../web" and
// ~/.samvaad/web, or "" when none exists.
func findWebDir() string {
	for _, p := range []string{"web", "../web"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	homeWebDir := filepath.Join(homeDir, ".samvaad", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}
	return ""
}
