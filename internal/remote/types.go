package remote

import "encoding/json"

// envelope wraps list responses from the catalog backend.
type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// GameRecord is a catalog entry as the backend serves it.
type GameRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	Languages   []string `json:"languages"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
}

// DetailPayload is the untouched detail body. It is loosely typed on purpose;
// shape checking happens in the detail repository.
type DetailPayload json.RawMessage
