package models

import "time"

// Profile holds the demographic and practice attributes used by the
// challenge generator and the analyzer forward. One row per user.
type Profile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Level       string    `json:"level"`
	Flexibility string    `json:"flexibility"`
	Goal        string    `json:"goal"`
	PcosOrPcod  *bool     `json:"pcos_or_pcod"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultProfile is the placeholder returned when a user has not filled
// in a profile yet. It is never persisted.
func DefaultProfile(userID int64) *Profile {
	return &Profile{
		UserID:      userID,
		Name:        "Guest",
		Age:         30,
		Gender:      "other",
		Level:       "beginner",
		Flexibility: "medium",
		Goal:        "alignment",
	}
}
