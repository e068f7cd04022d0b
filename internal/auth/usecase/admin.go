package usecase

import (
	"context"
	"time"

	"invoice-assistant/internal/auth"
)

// suspiciousWindow is how far back Stats looks for repeated failures.
const suspiciousWindow = 5 * time.Minute

// LoginHistory returns matching events, most recent first.
func (uc *implUseCase) LoginHistory(ctx context.Context, input auth.LoginHistoryInput) ([]auth.LoginEvent, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	events := uc.repo.ListEvents(ctx)
	filtered := make([]auth.LoginEvent, 0, len(events))
	for _, e := range events {
		if input.Username != "" && e.Username != input.Username {
			continue
		}
		if input.Success != nil && e.Success != *input.Success {
			continue
		}
		filtered = append(filtered, e)
	}

	if len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}
	out := make([]auth.LoginEvent, len(filtered))
	for i, e := range filtered {
		out[len(filtered)-1-i] = e
	}
	return out, nil
}

// Users lists accounts. Password hashes are cleared.
func (uc *implUseCase) Users(ctx context.Context) ([]auth.User, error) {
	users := uc.repo.ListUsers(ctx)
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (uc *implUseCase) Stats(ctx context.Context) (auth.Stats, error) {
	events := uc.repo.ListEvents(ctx)
	st := auth.Stats{PotentiallyMaliciousIPs: map[string]int{}}
	if len(events) == 0 {
		return st, nil
	}

	users := map[string]struct{}{}
	ips := map[string]struct{}{}
	recentFailed := map[string]int{}
	cutoff := uc.now().UTC().Add(-suspiciousWindow)

	for _, e := range events {
		st.TotalAttempts++
		if e.Success {
			st.SuccessfulAttempts++
		} else if e.Timestamp.After(cutoff) {
			recentFailed[e.IPAddress]++
		}
		users[e.Username] = struct{}{}
		ips[e.IPAddress] = struct{}{}
	}
	st.FailedAttempts = st.TotalAttempts - st.SuccessfulAttempts
	st.UniqueUsers = len(users)
	st.UniqueIPs = len(ips)

	for ip, n := range recentFailed {
		if n >= uc.cfg.MaxAttempts {
			st.PotentiallyMaliciousIPs[ip] = n
		}
	}
	return st, nil
}
