package domain

import "context"

// SessionStore resolves opaque session tokens to customer ids. The card
// endpoints are gated on an active session.
type SessionStore interface {
	Create(ctx context.Context, customerID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}
