// Package api provides HTTP API handlers for the samvaad gesture pipeline.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ayusman/samvaad/internal/app"
)

// MaxBodyBytes bounds request bodies. Webcam frames arrive base64 encoded.
const MaxBodyBytes = 10 << 20

// ErrValidation marks malformed client input.
var ErrValidation = errors.New("validation")

// Predictor classifies a single image.
type Predictor interface {
	Predict(ctx context.Context, image string) (*app.Prediction, error)
}

// ContextTranslator turns a gesture sequence into a translated sentence.
type ContextTranslator interface {
	ContextTranslate(ctx context.Context, gesture string) (*app.ContextResult, error)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ctxKey struct{}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func logger(r *http.Request) *slog.Logger {
	return slog.Default().With("request_id", RequestID(r.Context()), "path", r.URL.Path)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads a JSON object from the request body into v.
// An empty body leaves v untouched. Failures are reported as 500 like every
// other pipeline error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
