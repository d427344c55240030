package handlers

import (
	"context"
	"errors"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Upsert(ctx context.Context, userID int64, req repository.UpsertProfileInput) (*models.Profile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type updateProfileRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Level       *string `json:"level"`
	Flexibility *string `json:"flexibility"`
	Goal        *string `json:"goal"`
	PcosOrPcod  *bool   `json:"pcosOrPcod"`
}

// GetMe never errors on a missing profile; it answers with the guest
// placeholder instead.
func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(models.DefaultProfile(userID))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(profile)
}

// UpdateMe merges only the supplied fields; omitted fields keep their
// stored values.
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.profileRepo.Upsert(c.Context(), userID, repository.UpsertProfileInput{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		Level:       req.Level,
		Flexibility: req.Flexibility,
		Goal:        req.Goal,
		PcosOrPcod:  req.PcosOrPcod,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(profile)
}
