package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderRequiresKey(t *testing.T) {
	cases := map[ProviderType]string{
		ProviderOpenAI:   "OPENAI_API_KEY",
		ProviderGroq:     "GROQ_API_KEY",
		ProviderDeepSeek: "DEEPSEEK_API_KEY",
		ProviderClaude:   "CLAUDE_API_KEY",
		ProviderGemini:   "GEMINI_API_KEY",
	}
	for typ, key := range cases {
		_, err := NewProvider(&ProviderConfig{Type: typ})
		assert.ErrorContains(t, err, key, string(typ))
	}

	_, err := NewProvider(&ProviderConfig{Type: "mystery"})
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestNewProviderNames(t *testing.T) {
	cfg := &ProviderConfig{
		OpenAIKey: "k", GroqKey: "k", DeepSeekKey: "k", ClaudeKey: "k", GeminiKey: "k",
	}
	want := map[ProviderType]string{
		ProviderOpenAI:   "OpenAI",
		ProviderGroq:     "Groq",
		ProviderDeepSeek: "DeepSeek",
		ProviderClaude:   "Anthropic Claude",
		ProviderGemini:   "Google Gemini",
	}
	for typ, name := range want {
		cfg.Type = typ
		p, err := NewProvider(cfg)
		require.NoError(t, err)
		assert.Equal(t, name, p.GetProviderName())
	}
}

func TestOpenAIProviderSendsSystemAndHistory(t *testing.T) {
	var got struct {
		Model     string    `json:"model"`
		MaxTokens int       `json:"max_tokens"`
		Messages  []Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"How long has it hurt?"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatibleProvider("OpenAI", "sk-test", srv.URL+"/v1", "gpt-4", 0.7, 150, time.Second)
	reply, err := p.GenerateChat(context.Background(), "be kind", []Message{
		{Role: RoleUser, Content: "Headache"},
	})
	require.NoError(t, err)
	assert.Equal(t, "How long has it hurt?", reply)

	assert.Equal(t, "gpt-4", got.Model)
	assert.Equal(t, 150, got.MaxTokens)
	assert.Equal(t, []Message{
		{Role: RoleSystem, Content: "be kind"},
		{Role: RoleUser, Content: "Headache"},
	}, got.Messages)
}

func TestOpenAIProviderNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatibleProvider("OpenAI", "sk-test", srv.URL+"/v1", "", 0, 0, time.Second)
	_, err := p.GenerateChat(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	assert.ErrorContains(t, err, "no response from OpenAI")
}

func TestClaudeProviderFoldsSystemTurns(t *testing.T) {
	var got claudeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer srv.Close()

	p := NewClaudeProvider("key", "", 0, 0, time.Second)
	p.client.SetBaseURL(srv.URL)

	reply, err := p.GenerateChat(context.Background(), "preamble", []Message{
		{Role: RoleSystem, Content: "extra"},
		{Role: RoleUser, Content: "Chest Pain"},
		{Role: RoleAssistant, Content: "How long?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, "preamble\n\nextra", got.System)
	assert.Equal(t, []claudeMessage{
		{Role: RoleUser, Content: "Chest Pain"},
		{Role: RoleAssistant, Content: "How long?"},
	}, got.Messages)
}

func TestClaudeProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer srv.Close()

	p := NewClaudeProvider("key", "", 0, 0, time.Second)
	p.client.SetBaseURL(srv.URL)

	_, err := p.GenerateChat(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	assert.ErrorContains(t, err, "status: 429")
}

func TestGeminiProviderPrependsSystemPrompt(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "gkey", r.URL.Query().Get("key"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("gkey", "", 0, 0, time.Second)
	p.client.SetBaseURL(srv.URL)

	reply, err := p.GenerateChat(context.Background(), "preamble", []Message{
		{Role: RoleUser, Content: "Headache"},
		{Role: RoleAssistant, Content: "Since when?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	require.Len(t, got.Contents, 2)
	assert.Equal(t, "preamble\n\nHeadache", got.Contents[0].Parts[0].Text)
	assert.Equal(t, "model", got.Contents[1].Role)
}

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) GenerateChat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) GetProviderName() string { return "stub" }

func TestServiceDelegates(t *testing.T) {
	svc := NewServiceWithProvider(&stubProvider{reply: "fine"})
	reply, err := svc.GenerateChat(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "fine", reply)
	assert.Equal(t, "stub", svc.GetProviderName())

	boom := errors.New("boom")
	svc = NewServiceWithProvider(&stubProvider{err: boom})
	_, err = svc.GenerateChat(context.Background(), "", nil)
	assert.ErrorIs(t, err, boom)
}
