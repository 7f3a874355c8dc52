// Package llm wraps the external chat-completion API used for vendor
// ranking, recommendations, and the planning assistant.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/config"
	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	httpclient "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/http"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
)

// Message is a chat turn passed to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions tune a single completion call.
type ChatOptions struct {
	MaxTokens   int
	Temperature float32
	JSONMode    bool
}

// Client is the interface the rest of the service depends on, so tests can
// substitute a scripted implementation.
type Client interface {
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error)
	ChatStream(ctx context.Context, messages []Message, opts ChatOptions, w io.Writer, flush func()) error
}

type client struct {
	api     *openai.Client
	model   string
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewClient builds a chat client against an OpenAI-compatible endpoint.
func NewClient(cfg config.APIsConfig, log logger.Logger) Client {
	apiCfg := openai.DefaultConfig(cfg.Chat.APIKey)
	if cfg.Chat.BaseURL != "" {
		apiCfg.BaseURL = cfg.Chat.BaseURL
	}
	apiCfg.HTTPClient = httpclient.NewClient(config.GetDuration(cfg.Chat.Timeout)).Unwrap()

	return &client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Chat.Model,
		limiter: rate.NewLimiter(rate.Limit(cfg.Chat.RatePerSecond), cfg.Chat.RateBurst),
		logger:  log,
	}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

// Chat performs a single non-streaming completion and returns the text of
// the first choice.
func (c *client) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.NewLLMTimeoutError()
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// ChatStream streams completion deltas to w in SSE framing
// ("data: {...}\n\n" chunks terminated by "data: [DONE]\n\n"), calling
// flush after each chunk so clients see tokens as they arrive.
func (c *client) ChatStream(ctx context.Context, messages []Message, opts ChatOptions, w io.Writer, flush func()) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Stream:      true,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.logger.WithError(err).Warn("Chat stream interrupted", nil)
			return err
		}

		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}

		if _, err := fmt.Fprintf(w, "data: {\"content\": %q}\n\n", delta); err != nil {
			return err
		}
		if flush != nil {
			flush()
		}
	}

	if _, err := io.WriteString(w, "data: [DONE]\n\n"); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}
	return nil
}
