package models

// Station describes one entry in the bundled radio catalog. Stations are
// loaded once at startup and never mutated.
type Station struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	City        string `json:"city"`
	State       string `json:"state"`
	StreamURL   string `json:"stream_url"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}
