package stylist

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/abhishek-0203/neural-thread-couture/internal/config"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

const maxCompletionTokens = 800

var ErrNotConfigured = errors.New("stylist: api key not configured")

// Turn is one prior exchange entry replayed to the model each request.
type Turn struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// Client wraps the chat-completion API. BaseURL is configurable so the
// same client can talk to any OpenAI-compatible gateway.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg *config.Config) *Client {
	if cfg.OpenAIAPIKey == "" {
		return &Client{model: cfg.OpenAIModel}
	}

	apiCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		apiCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(apiCfg),
		model: cfg.OpenAIModel,
	}
}

func (c *Client) buildRequest(profile *models.Profile, history []Turn, message string) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(profile),
	})
	for _, t := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    t.Role,
			Content: t.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	return openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxCompletionTokens,
	}
}

// Complete is the blocking request/reply variant.
func (c *Client) Complete(
	ctx context.Context,
	profile *models.Profile,
	history []Turn,
	message string,
) (string, openai.Usage, error) {

	if c.api == nil {
		return "", openai.Usage{}, ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, c.buildRequest(profile, history, message))
	if err != nil {
		return "", openai.Usage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", resp.Usage, errors.New("stylist: empty completion response")
	}

	return resp.Choices[0].Message.Content, resp.Usage, nil
}

// OpenStream starts a streaming completion. The caller owns the stream
// and must Close it.
func (c *Client) OpenStream(
	ctx context.Context,
	profile *models.Profile,
	history []Turn,
	message string,
) (*openai.ChatCompletionStream, error) {

	if c.api == nil {
		return nil, ErrNotConfigured
	}

	req := c.buildRequest(profile, history, message)
	req.Stream = true

	return c.api.CreateChatCompletionStream(ctx, req)
}
