// Package groq generates sentences with Groq's OpenAI-compatible chat API.
package groq

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
)

// Config holds the chat completion settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int64
	TopP        float64
	Timeout     time.Duration
}

// DefaultConfig returns the sampling settings used for short sentences.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: 0.4,
		MaxTokens:   50,
		TopP:        1.0,
		Timeout:     60 * time.Second,
	}
}

// Client implements composer.Generator.
type Client struct {
	client openai.Client
	config Config
}

// New creates a Client. Each request is attempted exactly once.
func New(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(config.BaseURL),
		option.WithMaxRetries(0),
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	return &Client{
		client: openai.NewClient(opts...),
		config: config,
	}
}

// Generate sends prompt as a single user message and returns the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.config.Temperature),
		MaxTokens:   openai.Int(c.config.MaxTokens),
		TopP:        openai.Float(c.config.TopP),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
