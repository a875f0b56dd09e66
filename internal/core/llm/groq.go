package llm

import "time"

const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq uses OpenAI-compatible API with custom base URL
func NewGroqProvider(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAIProvider {
	if model == "" {
		model = DefaultModel(ProviderGroq)
	}
	return NewOpenAICompatibleProvider("Groq", apiKey, groqBaseURL, model, temperature, maxTokens, timeout)
}
