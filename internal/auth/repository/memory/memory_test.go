package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-assistant/internal/auth"
	"invoice-assistant/internal/auth/repository"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	r := New([]auth.User{{Username: "admin", PasswordHash: "h1", Role: auth.RoleAdmin}}, 0)

	u, ok := r.GetUser(ctx, "admin")
	require.True(t, ok)
	assert.Equal(t, "h1", u.PasswordHash)

	_, ok = r.GetUser(ctx, "ghost")
	assert.False(t, ok)

	require.NoError(t, r.UpdatePassword(ctx, "admin", "h2"))
	u, _ = r.GetUser(ctx, "admin")
	assert.Equal(t, "h2", u.PasswordHash)

	err := r.UpdatePassword(ctx, "ghost", "x")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestListUsersIsACopy(t *testing.T) {
	ctx := context.Background()
	r := New([]auth.User{{Username: "user", Role: auth.RoleUser}}, 0)

	users := r.ListUsers(ctx)
	users[0].Role = auth.RoleAdmin

	u, _ := r.GetUser(ctx, "user")
	assert.Equal(t, auth.RoleUser, u.Role)
}

func TestEventsRingEvictsOldest(t *testing.T) {
	ctx := context.Background()
	r := New(nil, 3)

	assert.Empty(t, r.ListEvents(ctx))

	for i := 0; i < 5; i++ {
		r.AppendEvent(ctx, auth.LoginEvent{Username: fmt.Sprintf("u%d", i)})
	}

	got := r.ListEvents(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "u2", got[0].Username)
	assert.Equal(t, "u3", got[1].Username)
	assert.Equal(t, "u4", got[2].Username)
}

func TestEventsPartiallyFilled(t *testing.T) {
	ctx := context.Background()
	r := New(nil, 3)
	r.AppendEvent(ctx, auth.LoginEvent{Username: "a"})
	r.AppendEvent(ctx, auth.LoginEvent{Username: "b"})

	got := r.ListEvents(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Username)
}

func TestEventsConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	r := New(nil, DefaultEventCapacity)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 40; j++ {
				r.AppendEvent(ctx, auth.LoginEvent{Username: "x"})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, r.ListEvents(ctx), DefaultEventCapacity)
}
