package llm

import "time"

const deepSeekBaseURL = "https://api.deepseek.com"

// DeepSeek uses OpenAI-compatible API with custom base URL
func NewDeepSeekProvider(apiKey, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAIProvider {
	if model == "" {
		model = DefaultModel(ProviderDeepSeek)
	}
	return NewOpenAICompatibleProvider("DeepSeek", apiKey, deepSeekBaseURL, model, temperature, maxTokens, timeout)
}
