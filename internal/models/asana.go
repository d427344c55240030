package models

type AsanaQuote struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Asana is a read-only reference record seeded from a static dataset.
type Asana struct {
	ID          int64        `json:"id"`
	Name        string       `json:"asana_name"`
	Alignment   []string     `json:"alignment"`
	Mistakes    []string     `json:"mistakes"`
	Benefits    []string     `json:"benefits"`
	Precautions []string     `json:"precautions"`
	Quotes      []AsanaQuote `json:"quotes"`
	References  []string     `json:"references,omitempty"`
}
