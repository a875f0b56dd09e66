package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/catalog"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/services"
)

type ChatHandler struct {
	chatService *services.ChatService
	catalog     *catalog.Catalog
	validate    *validator.Validate
}

func NewChatHandler(chatService *services.ChatService, cat *catalog.Catalog) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		catalog:     cat,
		validate:    newValidator(),
	}
}

// Chat godoc
// @Summary Run one chat turn
// @Description Scripted symptom consultation. message_count selects the turn; from 3 on the reply is a subscription prompt.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Conversation so far"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationDetail(err))
	}

	resp, err := h.chatService.Reply(c.UserContext(), &req)
	if err != nil {
		return storeFailure(c, "Failed to process chat message", err)
	}
	return c.JSON(resp)
}

// GetPainCategories godoc
// @Summary List pain categories
// @Tags Chat
// @Produce json
// @Success 200 {array} models.PainCategory
// @Router /pain-categories [get]
func (h *ChatHandler) GetPainCategories(c *fiber.Ctx) error {
	return c.JSON(h.catalog.PainCategories)
}
