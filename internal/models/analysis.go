package models

import "time"

// AnalysisProfile is the snapshot of the profile fields that were sent
// to the analyzer alongside the image.
type AnalysisProfile struct {
	Age         int    `json:"age"`
	Flexibility string `json:"flexibility"`
	Goal        string `json:"goal,omitempty"`
}

// Analysis is the persisted result of one analyzer call. Immutable once
// created.
type Analysis struct {
	ID          int64              `json:"id"`
	FileName    string             `json:"fileName"`
	FilePath    string             `json:"filePath"`
	AsanaName   string             `json:"asana_name"`
	Score       float64            `json:"score"`
	Angles      map[string]float64 `json:"angles"`
	Validation  map[string]any     `json:"validation"`
	Suggestions []string           `json:"suggestions"`
	Keypoints   map[string]any     `json:"keypoints"`
	Profile     AnalysisProfile    `json:"profile"`
	CreatedAt   time.Time          `json:"createdAt"`
}
