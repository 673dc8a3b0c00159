package model

import "time"

type Listing struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"` // "movie" or "show"
	Year      int       `json:"year"`
	Synopsis  string    `json:"synopsis"`
	CreatedAt time.Time `json:"created_at"`
}
