package memory

import (
	"context"

	"invoice-assistant/internal/auth"
)

// AppendEvent writes into a fixed ring; once full the oldest slot is reused.
func (r *implRepository) AppendEvent(ctx context.Context, e auth.LoginEvent) {
	r.eventsMu.Lock()
	defer r.eventsMu.Unlock()

	r.events[r.next] = e
	r.next = (r.next + 1) % len(r.events)
	if r.next == 0 {
		r.full = true
	}
}

func (r *implRepository) ListEvents(ctx context.Context) []auth.LoginEvent {
	r.eventsMu.Lock()
	defer r.eventsMu.Unlock()

	if !r.full {
		out := make([]auth.LoginEvent, r.next)
		copy(out, r.events[:r.next])
		return out
	}
	out := make([]auth.LoginEvent, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	out = append(out, r.events[:r.next]...)
	return out
}
