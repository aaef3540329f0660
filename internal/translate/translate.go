// Package translate sends text to a hosted machine translation service.
package translate

import (
	"context"
	"errors"
)

// ErrTranslation is returned when the translation service fails.
var ErrTranslation = errors.New("translate text")

// Default language pair.
const (
	DefaultSource = "en"
	DefaultTarget = "hi"
)

// Result pairs the source text with its translation.
type Result struct {
	Source string
	Text   string
}

// Translator translates text between two ISO-639-1 languages.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (*Result, error)
}
