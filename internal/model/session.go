package model

import "time"

// Session correlates an opaque browser-held token with an optional
// authenticated user. A nil UserID means the session is anonymous.
type Session struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	UserID    *int64    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type FlashMessage struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
