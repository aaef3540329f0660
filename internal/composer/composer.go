// Package composer expands a sequence of gestures into a natural sentence
// with a hosted text generation model.
package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/ayusman/samvaad/internal/history"
	"github.com/ayusman/samvaad/internal/phrase"
)

// ErrCompletion is returned when the text generation service fails.
var ErrCompletion = errors.New("generate sentence")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of composing a sentence for one gesture.
type Result struct {
	// Waiting is set when the input was not a valid gesture. Nothing else is filled in.
	Waiting bool

	// Gestures is the context the sentence was built from, oldest first.
	Gestures []string

	// Sentence is the generated English sentence.
	Sentence string
}

// Composer keeps the recent gesture context and turns it into sentences.
type Composer struct {
	buffer    *history.Buffer
	generator Generator
}

// New creates a Composer over the shared context buffer.
func New(buffer *history.Buffer, generator Generator) *Composer {
	return &Composer{
		buffer:    buffer,
		generator: generator,
	}
}

// Compose records label in the context and asks the generator for a sentence
// covering the whole context.
//
// Empty labels and phrase.NoGesture return a Waiting result and leave the
// context untouched. The label is recorded before the generator is called,
// so it stays in the context even if generation fails.
func (c *Composer) Compose(ctx context.Context, label phrase.Label) (*Result, error) {
	if !phrase.IsValid(label) {
		return &Result{Waiting: true}, nil
	}

	gestures := c.buffer.Push(label)
	slog.Debug("gesture context updated", "gestures", gestures)

	text, err := c.generator.Generate(ctx, BuildPrompt(gestures))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	return &Result{
		Gestures: gestures,
		Sentence: strings.TrimSpace(text),
	}, nil
}

// Context returns the current gesture context, oldest first.
func (c *Composer) Context() []string {
	return c.buffer.Snapshot()
}

// BuildPrompt renders the instruction sent to the generator for a gesture sequence.
func BuildPrompt(gestures []string) string {
	quoted := make([]string, len(gestures))
	for i, g := range gestures {
		quoted[i] = quoteLabel(g)
	}

	var sb strings.Builder
	sb.WriteString("You are an Indian Sign Language (ISL) translator.\n")
	sb.WriteString("These gestures were detected in sequence: [" + strings.Join(quoted, ", ") + "].\n")
	sb.WriteString("Write a short, natural English sentence (under 15 words) that expresses their meaning clearly.\n")
	sb.WriteString("Only output the sentence text.")
	return sb.String()
}

// quoteLabel renders a label as a repr-style string literal: single quotes
// unless the label holds a single quote and no double quote.
func quoteLabel(label string) string {
	quote := byte('\'')
	if strings.ContainsRune(label, '\'') && !strings.ContainsRune(label, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.WriteByte(quote)
	for _, r := range label {
		switch {
		case r == '\\' || r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x80 && !unicode.IsPrint(r):
			sb.WriteString(`\x`)
			if r < 0x10 {
				sb.WriteByte('0')
			}
			sb.WriteString(strconv.FormatInt(int64(r), 16))
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
