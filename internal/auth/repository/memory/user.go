package memory

import (
	"context"

	"invoice-assistant/internal/auth"
	"invoice-assistant/internal/auth/repository"
)

func (r *implRepository) GetUser(ctx context.Context, username string) (auth.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return auth.User{}, false
}

func (r *implRepository) ListUsers(ctx context.Context) []auth.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]auth.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *implRepository) UpdatePassword(ctx context.Context, username, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Username == username {
			r.users[i].PasswordHash = hash
			return nil
		}
	}
	return repository.ErrUserNotFound
}
