// Package memory keeps accounts and the login log in process memory.
package memory

import (
	"sync"

	"invoice-assistant/internal/auth"
	"invoice-assistant/internal/auth/repository"
)

// DefaultEventCapacity is how many login events are retained.
const DefaultEventCapacity = 1000

type implRepository struct {
	mu    sync.RWMutex
	users []auth.User

	eventsMu sync.Mutex
	events   []auth.LoginEvent
	next     int
	full     bool
}

// New creates an in-memory Repository seeded with users. capacity bounds
// the login log; zero selects DefaultEventCapacity.
func New(users []auth.User, capacity int) repository.Repository {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	seeded := make([]auth.User, len(users))
	copy(seeded, users)
	return &implRepository{
		users:  seeded,
		events: make([]auth.LoginEvent, capacity),
	}
}
