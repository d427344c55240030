package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const asanaListLimit = 200

type asanaStore interface {
	GetByName(ctx context.Context, name string) (*models.Asana, error)
	List(ctx context.Context, limit int) ([]models.Asana, error)
}

type AsanaHandler struct {
	asanaRepo asanaStore
}

func NewAsanaHandler(asanaRepo asanaStore) *AsanaHandler {
	return &AsanaHandler{asanaRepo: asanaRepo}
}

// Search returns a single record for ?q= (case-insensitive exact name)
// or the first 200 records without a query.
func (h *AsanaHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q != "" {
		asana, err := h.asanaRepo.GetByName(c.Context(), q)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch asana"})
		}
		return c.JSON(asana)
	}

	asanas, err := h.asanaRepo.List(c.Context(), asanaListLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list asanas"})
	}
	return c.JSON(asanas)
}
