package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// attemptTracker counts failed logins per client IP inside a sliding window
// and locks a username once an IP reaches the limit.
type attemptTracker struct {
	mu       sync.Mutex
	failures *expirable.LRU[string, []time.Time]
	lockouts *expirable.LRU[string, time.Time]
	window   time.Duration
	lockout  time.Duration
	max      int
	now      func() time.Time
}

func newAttemptTracker(size int, window, lockout time.Duration, max int, now func() time.Time) *attemptTracker {
	return &attemptTracker{
		failures: expirable.NewLRU[string, []time.Time](size, nil, window),
		lockouts: expirable.NewLRU[string, time.Time](size, nil, lockout),
		window:   window,
		lockout:  lockout,
		max:      max,
		now:      now,
	}
}

// recent drops failures older than the window. Caller holds mu.
func (t *attemptTracker) recent(ip string) []time.Time {
	list, _ := t.failures.Peek(ip)
	now := t.now()
	kept := list[:0:0]
	for _, at := range list {
		if now.Sub(at) < t.window {
			kept = append(kept, at)
		}
	}
	return kept
}

func (t *attemptTracker) rateLimited(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.recent(ip)) >= t.max
}

// lockedFor returns the remaining lockout of username, zero when unlocked.
func (t *attemptTracker) lockedFor(username string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	end, ok := t.lockouts.Peek(username)
	if !ok {
		return 0
	}
	if left := end.Sub(t.now()); left > 0 {
		return left
	}
	return 0
}

func (t *attemptTracker) fail(ip, username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := append(t.recent(ip), t.now())
	t.failures.Add(ip, list)
	if len(list) >= t.max {
		t.lockouts.Add(username, t.now().Add(t.lockout))
	}
}

func (t *attemptTracker) reset(ip, username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures.Remove(ip)
	t.lockouts.Remove(username)
}
