package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

type GeminiProvider struct {
	client      *resty.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

func NewGeminiProvider(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *GeminiProvider {
	if model == "" {
		model = DefaultModel(ProviderGemini)
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

	return &GeminiProvider{
		client: resty.New().
			SetBaseURL(geminiBaseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *GeminiProvider) GetProviderName() string {
	return "Google Gemini"
}

// Gemini REST API request/response structures
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateChat maps assistant turns to Gemini's "model" role. The v1 API has
// no system field, so the system prompt is prepended to the first user turn.
func (p *GeminiProvider) GenerateChat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	contents := make([]geminiContent, 0, len(history))
	prefix := systemPrompt
	for _, m := range history {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		text := m.Content
		if role == "user" && prefix != "" {
			text = prefix + "\n\n" + text
			prefix = ""
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: text}}})
	}
	if prefix != "" {
		contents = append([]geminiContent{{Role: "user", Parts: []geminiPart{{Text: prefix}}}}, contents...)
	}

	var out geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(geminiRequest{
			Contents: contents,
			GenerationConfig: geminiGenerationConfig{
				Temperature:     p.temperature,
				MaxOutputTokens: p.maxTokens,
			},
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1/models/%s:generateContent", p.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("gemini error (model: %s, status: %d): %s", p.model, resp.StatusCode(), resp.String())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini (candidates: %d)", len(out.Candidates))
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
