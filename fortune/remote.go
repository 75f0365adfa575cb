package fortune

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// SystemPrompt instructs the model to answer like a fortune cookie.
const SystemPrompt = "You are a fortune cookie generator. Generate a short, wise, and insightful fortune " +
	"cookie message based on the user's thoughts. Keep it under 100 characters if possible, " +
	"and make it sound like a traditional fortune cookie."

const (
	DefaultModel     = openai.GPT3Dot5Turbo
	DefaultMaxTokens = 100
)

// OpenAIGenerator asks a chat-completion API for a fortune.
type OpenAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIGenerator builds a generator from cfg. An empty BaseURL keeps the
// library default endpoint.
func NewOpenAIGenerator(cfg Config) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &OpenAIGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Fortune sends the fixed system prompt plus thoughts and returns the trimmed
// first choice. Every failure comes back as a *GenerationError.
func (g *OpenAIGenerator) Fortune(ctx context.Context, thoughts string) (string, error) {
	if g == nil || g.client == nil {
		return "", &GenerationError{Err: errors.New("openai generator not initialized")}
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: thoughts},
		},
		MaxTokens: g.maxTokens,
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &GenerationError{Op: "create chat completion", Err: err}
	}
	log.WithFields(logrus.Fields{
		"model":    g.model,
		"choices":  len(resp.Choices),
		"duration": time.Since(start).String(),
	}).Debug("chat completion returned")

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Op: "read chat completion", Err: errors.New("model returned no choices")}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &GenerationError{Op: "read chat completion", Err: errors.New("model returned empty content")}
	}
	return content, nil
}
