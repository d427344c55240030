package handlers

import (
	"context"
	"errors"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type asanaFinder interface {
	GetByName(ctx context.Context, name string) (*models.Asana, error)
}

type chatCompleter interface {
	Chat(ctx context.Context, prompt string) string
}

type ChatHandler struct {
	asanaRepo asanaFinder
	chat      chatCompleter
}

func NewChatHandler(asanaRepo asanaFinder, chat chatCompleter) *ChatHandler {
	return &ChatHandler{asanaRepo: asanaRepo, chat: chat}
}

type chatRequest struct {
	AsanaName  string `json:"asana_name"`
	UserPrompt string `json:"user_prompt"`
}

// Chat gates off-topic prompts, enriches the prompt with the pose's
// knowledge block when the pose is known, and forwards to the chat API.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.AsanaName == "" && !services.PromptOnTopic(req.UserPrompt) {
		return c.JSON(fiber.Map{"message": services.RefusalMessage})
	}

	var asana *models.Asana
	if req.AsanaName != "" {
		found, err := h.asanaRepo.GetByName(c.Context(), req.AsanaName)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch asana"})
		}
		asana = found
	}

	prompt := services.BuildChatPrompt(req.AsanaName, asana, req.UserPrompt)
	answer := h.chat.Chat(c.Context(), prompt)
	return c.JSON(fiber.Map{"message": answer})
}
