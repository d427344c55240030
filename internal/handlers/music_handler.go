package handlers

import (
	"strings"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MusicHandler struct {
	music *services.MusicService
}

func NewMusicHandler(music *services.MusicService) *MusicHandler {
	return &MusicHandler{music: music}
}

type addFavoriteRequest struct {
	Track *models.Track `json:"track"`
}

func (h *MusicHandler) Tracks(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	mood := strings.ToLower(c.Query("mood", "calm"))
	return c.JSON(fiber.Map{
		"tracks":    h.music.TracksForMood(mood),
		"favorites": h.music.Favorites(userID),
	})
}

func (h *MusicHandler) AddFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req addFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Track == nil || req.Track.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "track required"})
	}

	favorites := h.music.AddFavorite(userID, *req.Track)
	return c.JSON(fiber.Map{"favorites": favorites})
}
