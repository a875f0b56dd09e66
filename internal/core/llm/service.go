package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/metrics"
)

// Service wraps LLM provider untuk dependency injection
type Service struct {
	provider LLMProvider
}

// NewService creates the LLM service for the configured provider.
func NewService(cfg *ProviderConfig) (*Service, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Service{provider: provider}, nil
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider LLMProvider) *Service {
	return &Service{provider: provider}
}

// GenerateChat forwards one conversation to the provider and records the call.
func (s *Service) GenerateChat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	start := time.Now()
	reply, err := s.provider.GenerateChat(ctx, systemPrompt, history)
	metrics.RecordLLMRequest(s.provider.GetProviderName(), err, time.Since(start).Seconds())
	return reply, err
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
