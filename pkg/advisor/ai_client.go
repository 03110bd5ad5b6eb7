package advisor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

const (
	// DefaultAIModel matches the model the product shipped with.
	DefaultAIModel = "gemini-1.5-flash"

	aiRequestTimeout = 2 * time.Minute
)

// AIConfig is the immutable provider configuration constructed at startup
// and passed into the Core. An empty APIKey disables the AI path entirely.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Enabled reports whether a credential is configured.
func (c AIConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ModelOrDefault returns the configured model identifier.
func (c AIConfig) ModelOrDefault() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return DefaultAIModel
}

type aiCompletionRequest struct {
	Config AIConfig
	Prompt string
	Logger *slog.Logger
}

// aiCompletion is a seam for tests; production code always points at
// requestAICompletion.
var aiCompletion = requestAICompletion

// requestAICompletion sends one completion call and returns the raw reply
// text. Gemini models go through the native SDK, everything else through
// an OpenAI-compatible chat completion. No retries; a failed or empty
// reply propagates to the caller.
func requestAICompletion(ctx context.Context, req aiCompletionRequest) (string, error) {
	logger := req.Logger
	if logger == nil {
		logger = slog.Default()
	}
	model := req.Config.ModelOrDefault()

	logger.Debug("ai completion request", "model", model, "prompt_chars", len(req.Prompt))

	ctx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()

	if isGeminiModel(model) {
		return requestGeminiCompletion(ctx, req.Config, model, req.Prompt)
	}
	return requestOpenAICompletion(ctx, req.Config, model, req.Prompt)
}

func isGeminiModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(model)), "gemini")
}

func requestGeminiCompletion(ctx context.Context, cfg AIConfig, model, prompt string) (string, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", WrapError(ErrCodeProvider, "create gemini client failed", err)
	}

	response, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
	})
	if err != nil {
		return "", WrapError(ErrCodeProvider, "gemini generate content failed", err)
	}

	content := strings.TrimSpace(response.Text())
	if content == "" {
		return "", NewError(ErrCodeProvider, "ai response content is empty")
	}
	return content, nil
}

func requestOpenAICompletion(ctx context.Context, cfg AIConfig, model, prompt string) (string, error) {
	clientConfig := openai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	}
	client := openai.NewClientWithConfig(clientConfig)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", WrapError(ErrCodeProvider, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", NewError(ErrCodeProvider, "ai response has no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", NewError(ErrCodeProvider, "ai response content is empty")
	}
	return content, nil
}
