package repository

import (
	"context"

	"invoice-assistant/internal/auth"
)

// Repository is the composed interface for the auth data store.
type Repository interface {
	UserRepository
	EventRepository
}

type UserRepository interface {
	// GetUser returns the zero User and false when username is unknown.
	GetUser(ctx context.Context, username string) (auth.User, bool)
	ListUsers(ctx context.Context) []auth.User
	UpdatePassword(ctx context.Context, username, hash string) error
}

// EventRepository is a bounded log of login events. The oldest event is
// evicted once it is full.
type EventRepository interface {
	AppendEvent(ctx context.Context, e auth.LoginEvent)
	// ListEvents returns the retained events, oldest first.
	ListEvents(ctx context.Context) []auth.LoginEvent
}
