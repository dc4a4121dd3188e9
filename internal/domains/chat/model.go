package chat

import "time"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a visitor conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is a visitor's conversation history as stored in Redis.
type Session struct {
	VisitorID string    `json:"visitor_id"`
	Locale    string    `json:"locale"`
	Messages  []Message `json:"messages"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reply is the assistant's answer for one turn.
type Reply struct {
	Message Message `json:"message"`
	// Degraded is true when the conversation history could not be
	// loaded or saved and the turn was handled statelessly.
	Degraded bool `json:"degraded,omitempty"`
}

// GospelStep is one step of the guided gospel presentation.
type GospelStep struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Scripture string `json:"scripture"`
	Body      string `json:"body"`
}
