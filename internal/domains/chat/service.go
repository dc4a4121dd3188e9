package chat

import "context"

type Service interface {
	// Send forwards one visitor turn to the chat provider, threading in
	// the stored conversation history.
	Send(ctx context.Context, visitorID, countryCode, locale string, req SendMessageRequest) (*Reply, error)
	// History returns the visitor's stored conversation.
	History(ctx context.Context, visitorID string) (*Session, error)
	// Reset drops the visitor's stored conversation.
	Reset(ctx context.Context, visitorID string) error
}
