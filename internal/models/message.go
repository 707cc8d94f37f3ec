package models

// MaxMessageLength is the hard cap on chat message text.
const MaxMessageLength = 500

// ChatMessage is immutable once created. CreatedAt is assigned by the
// document store on write; it is 0 until the store acknowledges the write,
// and displays as "now" until then.
type ChatMessage struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	UserPhoto *string `json:"user_photo,omitempty"`
	CreatedAt int64   `json:"created_at"` // epoch millis, 0 = pending
}
