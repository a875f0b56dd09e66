package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/catalog"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/repositories"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/metrics"
)

// Turns at or past this count get the subscription prompt instead of a reply.
const upsellTurn = 3

// ChatCompleter is the part of llm.Service the chat script needs.
type ChatCompleter interface {
	GenerateChat(ctx context.Context, systemPrompt string, history []llm.Message) (string, error)
}

type ChatService struct {
	completer        ChatCompleter
	consultationRepo repositories.ConsultationRepo
	catalog          *catalog.Catalog
	exposeLLMErrors  bool
}

func NewChatService(
	completer ChatCompleter,
	consultationRepo repositories.ConsultationRepo,
	cat *catalog.Catalog,
	exposeLLMErrors bool,
) *ChatService {
	return &ChatService{
		completer:        completer,
		consultationRepo: consultationRepo,
		catalog:          cat,
		exposeLLMErrors:  exposeLLMErrors,
	}
}

// Reply runs one turn of the scripted consultation. The turn number is the
// caller's message_count; every call writes exactly one consultation row.
func (s *ChatService) Reply(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	latest := req.Latest()
	turn := req.Turn()

	if turn >= upsellTurn {
		if err := s.consultationRepo.Log(ctx, latest.Content, s.catalog.Chat.UpsellMessage); err != nil {
			return nil, err
		}
		metrics.RecordChatTurn("upsell")
		return &models.ChatResponse{
			Content:       s.catalog.Chat.UpsellMessage,
			Options:       []string{},
			ShowSubscribe: true,
		}, nil
	}

	reply := s.complete(ctx, req.Messages)
	options := []string{}
	branch := fmt.Sprintf("turn_%d", turn)

	switch turn {
	case 0:
		if s.catalog.IsCategory(latest.Content) {
			options = append(options, s.catalog.Chat.DurationOptions...)
		} else {
			reply = s.catalog.Chat.InvalidCategoryMessage
			options = s.catalog.CategoryNames()
			branch = "invalid_category"
		}
	case 1:
		options = append(options, s.catalog.Chat.OccurrenceOptions...)
	}

	if err := s.consultationRepo.Log(ctx, latest.Content, reply); err != nil {
		return nil, err
	}
	metrics.RecordChatTurn(branch)

	return &models.ChatResponse{
		Content:       reply + s.catalog.Chat.Disclaimer,
		Options:       options,
		ShowSubscribe: turn == upsellTurn-1,
	}, nil
}

// complete asks the completion API for the next reply. A failed call is not
// an error for the caller: the reply text carries the failure instead.
func (s *ChatService) complete(ctx context.Context, messages []models.ChatMessage) string {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.completer.GenerateChat(ctx, strings.TrimSpace(s.catalog.Chat.SystemPrompt), history)
	if err != nil {
		log.Error().Err(err).Msg("❌ Completion request failed")
		if s.exposeLLMErrors {
			return "Error generating response: " + err.Error()
		}
		return s.catalog.Chat.LLMErrorMessage
	}
	return reply
}
