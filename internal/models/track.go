package models

// Track is an ambient audio track surfaced by the music endpoints.
type Track struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
