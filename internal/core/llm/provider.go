package llm

import (
	"context"
	"fmt"
	"time"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LLMProvider interface untuk multiple AI providers
type LLMProvider interface {
	// GenerateChat sends systemPrompt followed by history and returns the
	// assistant's reply text.
	GenerateChat(ctx context.Context, systemPrompt string, history []Message) (string, error)
	GetProviderName() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGemini   ProviderType = "gemini"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderClaude   ProviderType = "claude"
)

// ProviderConfig untuk create provider
type ProviderConfig struct {
	Type ProviderType

	// API Keys
	OpenAIKey   string
	GeminiKey   string
	GroqKey     string
	DeepSeekKey string
	ClaudeKey   string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderOpenAI:
		return "gpt-4"
	case ProviderGemini:
		return "gemini-2.5-flash"
	case ProviderGroq:
		return "llama-3.1-70b-versatile"
	case ProviderDeepSeek:
		return "deepseek-chat"
	case ProviderClaude:
		return "claude-3-5-sonnet-20241022"
	}
	return ""
}

// NewProvider factory untuk create LLM provider
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel(cfg.Type)
	}

	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg.GeminiKey, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is required")
		}
		return NewDeepSeekProvider(cfg.DeepSeekKey, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required")
		}
		return NewClaudeProvider(cfg.ClaudeKey, model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
