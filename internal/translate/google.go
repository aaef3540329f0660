package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultGoogleURL is the public Google Translate endpoint used by browser widgets.
const DefaultGoogleURL = "https://translate.googleapis.com"

// GoogleConfig configures the Google translator.
type GoogleConfig struct {
	BaseURL string
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout time.Duration
}

// Google translates text with the translate_a/single endpoint.
type Google struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogle creates a Google translator.
func NewGoogle(cfg GoogleConfig) *Google {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultGoogleURL
	}
	return &Google{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Translate returns text translated from source to target.
// Blank text is returned unchanged without calling the service.
func (g *Google) Translate(ctx context.Context, text, source, target string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return &Result{Source: text, Text: text}, nil
	}
	if source == "" {
		source = DefaultSource
	}
	if target == "" {
		target = DefaultTarget
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/translate_a/single?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrTranslation, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranslation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTranslation, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %.200s", ErrTranslation, resp.StatusCode, body)
	}

	translated, err := parseSegments(body)
	if err != nil {
		return nil, err
	}

	return &Result{Source: text, Text: translated}, nil
}

// parseSegments joins the translated sentence segments of a response shaped
// like [[["translated","source",...],...],null,"en",...].
func parseSegments(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid response body", ErrTranslation)
	}

	segments := gjson.GetBytes(body, "0")
	if !segments.IsArray() {
		return "", fmt.Errorf("%w: unexpected response shape", ErrTranslation)
	}

	var sb strings.Builder
	segments.ForEach(func(_, segment gjson.Result) bool {
		sb.WriteString(segment.Get("0").String())
		return true
	})
	return sb.String(), nil
}
