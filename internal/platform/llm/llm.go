package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
)

// Generator produces text from a prompt. Services depend on this interface so
// tests can substitute a stub and so a degraded or unconfigured client can be
// represented by a nil-safe implementation.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds the settings for the Anthropic-backed generator.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
}

// Client is a thin wrapper around the Anthropic Messages API.
type Client struct {
	client anthropic.Client
	cfg    Config
	logger zerolog.Logger
}

// NewClient creates a generator backed by the Anthropic API.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg:    cfg,
		logger: logger,
	}
}

// Generate sends the prompts to the model and returns the first text block of
// the response. Output length is bounded by MaxTokens and the temperature is
// fixed low so repeated reports stay consistent.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("anthropic api key not configured")
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: anthropic.Float(c.cfg.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("model", c.cfg.Model).Msg("llm call failed")
		return "", fmt.Errorf("anthropic api: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			c.logger.Debug().
				Str("model", c.cfg.Model).
				Int("response_size", len(block.Text)).
				Int64("tokens_in", message.Usage.InputTokens).
				Int64("tokens_out", message.Usage.OutputTokens).
				Msg("llm response")
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}
