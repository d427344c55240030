package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/services"
	"github.com/gofiber/fiber/v2"
)

func newMusicTestApp(handler *MusicHandler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/music/tracks", handler.Tracks)
	app.Post("/api/music/favorites", handler.AddFavorite)
	return app
}

func TestTracksReturnsMoodListAndFavorites(t *testing.T) {
	handler := NewMusicHandler(services.NewMusicService())
	app := newMusicTestApp(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/music/tracks?mood=FOCUSED", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Tracks    []models.Track `json:"tracks"`
		Favorites []models.Track `json:"favorites"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Tracks) != 1 || body.Tracks[0].Title != "Tanpura Drone" {
		t.Fatalf("unexpected tracks: %+v", body.Tracks)
	}
	if len(body.Favorites) != 0 {
		t.Fatalf("expected no favorites yet, got %+v", body.Favorites)
	}
}

func TestAddFavoriteRequiresTrack(t *testing.T) {
	handler := NewMusicHandler(services.NewMusicService())
	app := newMusicTestApp(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/music/favorites", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAddFavoriteReturnsUpdatedList(t *testing.T) {
	handler := NewMusicHandler(services.NewMusicService())
	app := newMusicTestApp(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/music/favorites",
		strings.NewReader(`{"track":{"title":"Ocean Breath","url":"https://example.com/audio/ocean-breath.mp3"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Favorites []models.Track `json:"favorites"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Favorites) != 1 || body.Favorites[0].Title != "Ocean Breath" {
		t.Fatalf("unexpected favorites: %+v", body.Favorites)
	}
}
