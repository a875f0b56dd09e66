package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/catalog"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
)

const disclaimer = "\nThis is not medical advice. Consult a healthcare professional."

type fakeCompleter struct {
	reply   string
	err     error
	calls   int
	prompt  string
	history []llm.Message
}

func (f *fakeCompleter) GenerateChat(_ context.Context, systemPrompt string, history []llm.Message) (string, error) {
	f.calls++
	f.prompt = systemPrompt
	f.history = history
	return f.reply, f.err
}

type logged struct {
	prompt, response string
}

type fakeConsultations struct {
	rows []logged
	err  error
}

func (f *fakeConsultations) Log(_ context.Context, prompt, response string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, logged{prompt, response})
	return nil
}

type fakePlans struct {
	rows []models.PlanRow
	err  error
}

func (f *fakePlans) ListPlans(context.Context) ([]models.PlanRow, error) {
	return f.rows, f.err
}

func newChat(completer *fakeCompleter, repo *fakeConsultations, expose bool) *ChatService {
	return NewChatService(completer, repo, catalog.Default(), expose)
}

func request(count int, contents ...string) *models.ChatRequest {
	req := &models.ChatRequest{MessageCount: &count}
	for _, c := range contents {
		req.Messages = append(req.Messages, models.ChatMessage{Role: llm.RoleUser, Content: c})
	}
	return req
}

func TestReplyUpsellSkipsCompletion(t *testing.T) {
	for _, count := range []int{3, 4, 10} {
		completer := &fakeCompleter{reply: "unused"}
		repo := &fakeConsultations{}

		resp, err := newChat(completer, repo, false).Reply(context.Background(), request(count, "anything"))
		require.NoError(t, err)

		assert.Equal(t, 0, completer.calls)
		assert.Equal(t, catalog.Default().Chat.UpsellMessage, resp.Content)
		assert.Equal(t, []string{}, resp.Options)
		assert.True(t, resp.ShowSubscribe)
		assert.False(t, strings.HasSuffix(resp.Content, disclaimer))
		require.Len(t, repo.rows, 1)
	}
}

func TestReplyFirstTurnValidCategory(t *testing.T) {
	completer := &fakeCompleter{reply: "How long have you had it?"}
	repo := &fakeConsultations{}

	resp, err := newChat(completer, repo, false).Reply(context.Background(), request(0, "chest PAIN"))
	require.NoError(t, err)

	assert.Equal(t, 1, completer.calls)
	assert.Equal(t, "How long have you had it?"+disclaimer, resp.Content)
	assert.Equal(t, []string{"Less than a day", "1-3 days", "More than a week"}, resp.Options)
	assert.False(t, resp.ShowSubscribe)
	assert.Equal(t, []logged{{"chest PAIN", "How long have you had it?"}}, repo.rows)
}

func TestReplyFirstTurnInvalidCategory(t *testing.T) {
	completer := &fakeCompleter{reply: "ignored"}
	repo := &fakeConsultations{}

	resp, err := newChat(completer, repo, false).Reply(context.Background(), request(0, "banana"))
	require.NoError(t, err)

	assert.Equal(t, "Please select a valid pain category."+disclaimer, resp.Content)
	assert.Equal(t, []string{"Chest Pain", "Headache", "Joint Pain", "Breathing"}, resp.Options)
	assert.False(t, resp.ShowSubscribe)
	assert.Equal(t, "Please select a valid pain category.", repo.rows[0].response)
}

func TestReplySecondAndThirdTurns(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	repo := &fakeConsultations{}
	svc := newChat(completer, repo, false)

	resp, err := svc.Reply(context.Background(), request(1, "Headache", "1-3 days"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes, first time", "No, had it before"}, resp.Options)
	assert.False(t, resp.ShowSubscribe)
	assert.Equal(t, "ok"+disclaimer, resp.Content)

	resp, err = svc.Reply(context.Background(), request(2, "Headache", "1-3 days", "Yes, first time"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, resp.Options)
	assert.True(t, resp.ShowSubscribe)

	assert.Equal(t, 2, completer.calls)
	assert.Len(t, repo.rows, 2)
	assert.Equal(t, "Yes, first time", repo.rows[1].prompt)
}

func TestReplyForwardsWholeHistory(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	req := request(1, "Headache")
	req.Messages = append(req.Messages, models.ChatMessage{Role: llm.RoleAssistant, Content: "How long?"})

	_, err := newChat(completer, &fakeConsultations{}, false).Reply(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(completer.prompt, "You are Ez"))
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleUser, Content: "Headache"},
		{Role: llm.RoleAssistant, Content: "How long?"},
	}, completer.history)
}

func TestReplyCompletionFailureIsGeneric(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("invalid api key sk-123")}
	repo := &fakeConsultations{}

	resp, err := newChat(completer, repo, false).Reply(context.Background(), request(1, "Headache"))
	require.NoError(t, err)

	assert.Equal(t, "Error generating response. Please try again later."+disclaimer, resp.Content)
	assert.NotContains(t, resp.Content, "sk-123")
	assert.Equal(t, []string{"Yes, first time", "No, had it before"}, resp.Options)
	assert.Len(t, repo.rows, 1)
}

func TestReplyCompletionFailureExposed(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limited")}

	resp, err := newChat(completer, &fakeConsultations{}, true).Reply(context.Background(), request(2, "x"))
	require.NoError(t, err)
	assert.Equal(t, "Error generating response: rate limited"+disclaimer, resp.Content)
}

func TestReplyAuditFailureFailsRequest(t *testing.T) {
	repo := &fakeConsultations{err: errors.New("store down")}

	_, err := newChat(&fakeCompleter{reply: "ok"}, repo, false).Reply(context.Background(), request(1, "x"))
	assert.ErrorIs(t, err, repo.err)

	_, err = newChat(&fakeCompleter{}, repo, false).Reply(context.Background(), request(5, "x"))
	assert.ErrorIs(t, err, repo.err)
}

func TestGetPlansFallback(t *testing.T) {
	svc := NewPricingService(&fakePlans{}, catalog.Default().Pricing)

	plans, err := svc.GetPlans(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, []string{"Basic", "Plus", "Premium"}, []string{plans[0].Name, plans[1].Name, plans[2].Name})
	for _, p := range plans {
		assert.Equal(t, "/month, billed annually", p.Period)
	}

	plans, err = svc.GetPlans(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "/month", plans[0].Period)
	assert.Equal(t, 14.99, plans[0].Price.Monthly)
	assert.Equal(t, 9.99, plans[0].Price.Annual)
}

func TestGetPlansFallbackDoesNotShareCatalog(t *testing.T) {
	pricing := catalog.Default().Pricing
	svc := NewPricingService(&fakePlans{}, pricing)

	plans, err := svc.GetPlans(context.Background(), true)
	require.NoError(t, err)
	plans[0].Features[0] = "changed"

	again, err := svc.GetPlans(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Symptom checker", again[0].Features[0])
}

func TestGetPlansFromStore(t *testing.T) {
	monthly := 25.0
	svc := NewPricingService(&fakePlans{rows: []models.PlanRow{
		{Name: "Solo", PriceMonthly: &monthly, Features: []string{"chat"}},
	}}, catalog.Default().Pricing)

	plans, err := svc.GetPlans(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, models.Price{Monthly: 25, Annual: 25}, plans[0].Price)
	assert.Equal(t, "/month", plans[0].Period)
	assert.Equal(t, []string{}, plans[0].NotIncluded)
}

func TestGetPlansStoreError(t *testing.T) {
	svc := NewPricingService(&fakePlans{err: errors.New("boom")}, catalog.Default().Pricing)

	_, err := svc.GetPlans(context.Background(), true)
	assert.Error(t, err)
}
