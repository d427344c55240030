package services

import (
	"testing"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

func TestTracksForMoodFallsBackToCalm(t *testing.T) {
	service := NewMusicService()

	calm := service.TracksForMood("calm")
	unknown := service.TracksForMood("sleepy")

	if len(calm) == 0 {
		t.Fatalf("expected calm tracks")
	}
	if len(unknown) != len(calm) || unknown[0].Title != calm[0].Title {
		t.Fatalf("expected fallback to calm list, got %+v", unknown)
	}
}

func TestAddFavoritePrependsAndDedupes(t *testing.T) {
	service := NewMusicService()
	first := models.Track{Title: "Ocean Breath", URL: "https://example.com/audio/ocean-breath.mp3"}
	second := models.Track{Title: "Evening Raga", URL: "https://example.com/audio/evening-raga.mp3"}

	service.AddFavorite("1", first)
	favorites := service.AddFavorite("1", second)

	if len(favorites) != 2 || favorites[0].URL != second.URL {
		t.Fatalf("expected newest favorite first, got %+v", favorites)
	}

	favorites = service.AddFavorite("1", second)
	if len(favorites) != 2 {
		t.Fatalf("expected duplicate URL to be ignored, got %+v", favorites)
	}
}

func TestFavoritesAreIsolatedPerUser(t *testing.T) {
	service := NewMusicService()
	track := models.Track{Title: "Tanpura Drone", URL: "https://example.com/audio/tanpura-drone.mp3"}

	service.AddFavorite("1", track)

	if got := service.Favorites("2"); len(got) != 0 {
		t.Fatalf("expected no favorites for other user, got %+v", got)
	}
	if got := service.Favorites("1"); len(got) != 1 {
		t.Fatalf("expected one favorite, got %+v", got)
	}
}
