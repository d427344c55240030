package services

import (
	"sync"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

var moodTracks = map[string][]models.Track{
	"calm": {
		{Title: "Ocean Breath", URL: "https://example.com/audio/ocean-breath.mp3"},
		{Title: "Evening Raga", URL: "https://example.com/audio/evening-raga.mp3"},
	},
	"focused": {
		{Title: "Tanpura Drone", URL: "https://example.com/audio/tanpura-drone.mp3"},
	},
	"energize": {
		{Title: "Sun Salute Beats", URL: "https://example.com/audio/sun-salute.mp3"},
	},
}

// MusicService serves the static mood catalog and holds per-user
// favorites in process memory. Favorites are advisory and cleared on
// restart.
type MusicService struct {
	mu        sync.Mutex
	favorites map[string][]models.Track
}

func NewMusicService() *MusicService {
	return &MusicService{
		favorites: make(map[string][]models.Track),
	}
}

// TracksForMood falls back to the calm list for unknown moods.
func (s *MusicService) TracksForMood(mood string) []models.Track {
	if tracks, ok := moodTracks[mood]; ok {
		return tracks
	}
	return moodTracks["calm"]
}

func (s *MusicService) Favorites(userID string) []models.Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.favorites[userID]
	out := make([]models.Track, len(list))
	copy(out, list)
	return out
}

// AddFavorite prepends the track, deduplicating by URL, and returns the
// caller's updated list.
func (s *MusicService) AddFavorite(userID string, track models.Track) []models.Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.favorites[userID]
	for _, t := range list {
		if t.URL == track.URL {
			out := make([]models.Track, len(list))
			copy(out, list)
			return out
		}
	}
	list = append([]models.Track{track}, list...)
	s.favorites[userID] = list

	out := make([]models.Track, len(list))
	copy(out, list)
	return out
}
