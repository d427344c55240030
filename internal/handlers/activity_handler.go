package handlers

import (
	"context"
	"time"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/gofiber/fiber/v2"
)

const streakWindowDays = 30

type activityStore interface {
	Upsert(ctx context.Context, userID int64, activityType, date string, meta map[string]any) (*models.Activity, error)
	DatesSince(ctx context.Context, userID int64, fromDate string) (map[string]bool, error)
}

type ActivityHandler struct {
	activityRepo activityStore
}

func NewActivityHandler(activityRepo activityStore) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

type markActivityRequest struct {
	Type string         `json:"type"`
	Date string         `json:"date"`
	Meta map[string]any `json:"meta"`
}

type streakItem struct {
	Date string `json:"date"`
	Done bool   `json:"done"`
}

// Mark upserts one completion record; repeating a (type, date) pair
// only refreshes its meta.
func (h *ActivityHandler) Mark(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	req := markActivityRequest{}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Type == "" {
		req.Type = models.ActivityUpload
	}
	if req.Type != models.ActivityUpload && req.Type != models.ActivityChallenge {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity type"})
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if req.Meta == nil {
		req.Meta = map[string]any{}
	}

	activity, err := h.activityRepo.Upsert(c.Context(), userID, req.Type, req.Date, req.Meta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record activity"})
	}
	return c.JSON(activity)
}

// Streak answers the last 30 calendar days, oldest first, with a done
// flag per day.
func (h *ActivityHandler) Streak(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	start := time.Now().AddDate(0, 0, -(streakWindowDays - 1))
	done, err := h.activityRepo.DatesSince(c.Context(), userID, start.Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	items := make([]streakItem, streakWindowDays)
	for i := 0; i < streakWindowDays; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		items[i] = streakItem{Date: date, Done: done[date]}
	}
	return c.JSON(fiber.Map{"items": items})
}
