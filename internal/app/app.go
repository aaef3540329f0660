// Package app wires the gesture pipeline: decode, classify, compose and translate.
package app

import (
	"context"
	"log/slog"

	"gocv.io/x/gocv"

	"github.com/ayusman/samvaad/internal/capture"
	"github.com/ayusman/samvaad/internal/composer"
	"github.com/ayusman/samvaad/internal/gesture"
	"github.com/ayusman/samvaad/internal/metrics"
	"github.com/ayusman/samvaad/internal/phrase"
	"github.com/ayusman/samvaad/internal/translate"
)

// Config holds the collaborators of a Service.
type Config struct {
	Classifier *gesture.Classifier
	Composer   *composer.Composer
	Translator translate.Translator

	// Source and Target are the translation languages. Empty values use en and hi.
	Source string
	Target string
}

// Prediction is the outcome of classifying a single frame.
type Prediction struct {
	Gesture       string
	TranslationEN string
	TranslationHI string
}

// ContextResult is the outcome of adding a gesture to the sentence context.
type ContextResult struct {
	// Waiting is set when the gesture was empty or NoGesture.
	Waiting     bool
	Gestures    []string
	Sentence    string
	Translation string
}

// Service runs the request pipelines. It is safe for concurrent use.
type Service struct {
	classifier *gesture.Classifier
	composer   *composer.Composer
	translator translate.Translator
	source     string
	target     string
}

// New creates a Service.
func New(config Config) *Service {
	if config.Source == "" {
		config.Source = translate.DefaultSource
	}
	if config.Target == "" {
		config.Target = translate.DefaultTarget
	}
	return &Service{
		classifier: config.Classifier,
		composer:   config.Composer,
		translator: config.Translator,
		source:     config.Source,
		target:     config.Target,
	}
}

// Predict decodes an image, classifies the gesture in it and translates the label.
// NoGesture is returned untranslated.
func (s *Service) Predict(ctx context.Context, image string) (*Prediction, error) {
	frame, err := observe(metrics.StageDecode, func() (*gocv.Mat, error) {
		return capture.Decode(image)
	})
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	label, err := observe(metrics.StageClassify, func() (phrase.Label, error) {
		return s.classifier.Classify(frame)
	})
	if err != nil {
		return nil, err
	}
	metrics.GesturesTotal.WithLabelValues(label).Inc()

	if !phrase.IsValid(label) {
		return &Prediction{Gesture: label, TranslationEN: label, TranslationHI: label}, nil
	}

	translated, err := s.translate(ctx, label)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		Gesture:       label,
		TranslationEN: label,
		TranslationHI: translated,
	}, nil
}

// ContextTranslate adds label to the shared context, composes a sentence for
// the whole context and translates it.
func (s *Service) ContextTranslate(ctx context.Context, label string) (*ContextResult, error) {
	composed, err := observe(metrics.StageCompose, func() (*composer.Result, error) {
		return s.composer.Compose(ctx, label)
	})
	if err != nil {
		metrics.ContextSize.Set(float64(len(s.composer.Context())))
		return nil, err
	}
	if composed.Waiting {
		return &ContextResult{Waiting: true}, nil
	}
	metrics.ContextSize.Set(float64(len(composed.Gestures)))
	slog.Debug("sentence composed", "gestures", composed.Gestures, "sentence", composed.Sentence)

	translated, err := s.translate(ctx, composed.Sentence)
	if err != nil {
		return nil, err
	}

	return &ContextResult{
		Gestures:    composed.Gestures,
		Sentence:    composed.Sentence,
		Translation: translated,
	}, nil
}

func (s *Service) translate(ctx context.Context, text string) (string, error) {
	result, err := observe(metrics.StageTranslate, func() (*translate.Result, error) {
		return s.translator.Translate(ctx, text, s.source, s.target)
	})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}
