package models

import "time"

const (
	ActivityUpload    = "upload"
	ActivityChallenge = "challenge"
)

// Activity marks one completed action per (user, type, calendar day).
// Date is a plain YYYY-MM-DD string to keep the uniqueness key
// timezone-free.
type Activity struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Type      string         `json:"type"`
	Date      string         `json:"date"`
	Meta      map[string]any `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
