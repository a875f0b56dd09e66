package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const claudeBaseURL = "https://api.anthropic.com"

type ClaudeProvider struct {
	client      *resty.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewClaudeProvider(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *ClaudeProvider {
	if model == "" {
		model = DefaultModel(ProviderClaude)
	}
	if temperature == 0 {
		temperature = 0.7
	}
	if maxTokens == 0 {
		maxTokens = 150
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &ClaudeProvider{
		client: resty.New().
			SetBaseURL(claudeBaseURL).
			SetHeader("Content-Type", "application/json").
			SetHeader("x-api-key", apiKey).
			SetHeader("anthropic-version", "2023-06-01").
			SetTimeout(timeout),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *ClaudeProvider) GetProviderName() string {
	return "Anthropic Claude"
}

// Claude API request/response structures
type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float32         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
	System      string          `json:"system,omitempty"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateChat folds system turns from history into the top-level system
// field; Claude only accepts user and assistant messages.
func (p *ClaudeProvider) GenerateChat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	system := []string{}
	if systemPrompt != "" {
		system = append(system, systemPrompt)
	}

	messages := make([]claudeMessage, 0, len(history))
	for _, m := range history {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		role := RoleUser
		if m.Role == RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, claudeMessage{Role: role, Content: m.Content})
	}

	var out claudeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(claudeRequest{
			Model:       p.model,
			MaxTokens:   p.maxTokens,
			Temperature: p.temperature,
			Messages:    messages,
			System:      strings.Join(system, "\n\n"),
		}).
		SetResult(&out).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("claude request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("claude error (model: %s, status: %d): %s", p.model, resp.StatusCode(), resp.String())
	}

	if len(out.Content) == 0 {
		return "", fmt.Errorf("no response from Claude")
	}

	return out.Content[0].Text, nil
}
