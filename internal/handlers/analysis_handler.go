package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const (
	defaultAnalysisLimit = 10
	maxAnalysisLimit     = 50
)

type analysisStore interface {
	ListRecent(ctx context.Context, limit int) ([]models.Analysis, error)
	GetByID(ctx context.Context, id int64) (*models.Analysis, error)
}

type AnalysisHandler struct {
	analysisRepo analysisStore
}

func NewAnalysisHandler(analysisRepo analysisStore) *AnalysisHandler {
	return &AnalysisHandler{analysisRepo: analysisRepo}
}

func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	limit := defaultAnalysisLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxAnalysisLimit {
		limit = maxAnalysisLimit
	}

	analyses, err := h.analysisRepo.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list analyses"})
	}
	return c.JSON(analyses)
}

func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	analysis, err := h.analysisRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch analysis"})
	}
	return c.JSON(analysis)
}
