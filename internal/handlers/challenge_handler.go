package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type profileFinder interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type ChallengeHandler struct {
	profileRepo profileFinder
}

func NewChallengeHandler(profileRepo profileFinder) *ChallengeHandler {
	return &ChallengeHandler{profileRepo: profileRepo}
}

type generateChallengeRequest struct {
	Conditions []string `json:"conditions"`
	PcosOrPcod bool     `json:"pcosOrPcod"`
}

// Generate builds the caller's 30-day plan from their stored profile.
func (h *ChallengeHandler) Generate(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req generateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Complete profile first"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	plan := services.BuildPlan(services.PlanInput{
		Gender:     profile.Gender,
		PcosOrPcod: req.PcosOrPcod,
		Level:      profile.Level,
		Conditions: req.Conditions,
	})

	return c.JSON(fiber.Map{
		"start": time.Now().Format("2006-01-02"),
		"plan":  plan,
	})
}
