// Package session keeps per-session conversation state in process memory.
// Entries expire after a TTL of inactivity; there is no explicit teardown.
package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"invoice-assistant/internal/assistant"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

// State is what a session remembers between chat turns.
type State struct {
	SystemInstructions string
	History            []assistant.Turn
}

// turnLock serializes the chat turns of one session. It lives outside the
// expiring LRU so eviction never frees a lock that is still held.
type turnLock struct {
	mu   sync.Mutex
	refs int
}

// Store is a bounded, expiring map of session id to State with one turn lock
// per session. All methods are safe for concurrent use.
type Store struct {
	mu           sync.Mutex
	entries      *expirable.LRU[string, State]
	locks        map[string]*turnLock
	instructions string
}

type Config struct {
	MaxSessions int
	TTL         time.Duration
	// Instructions seeds SystemInstructions of every new session.
	Instructions string
}

func New(cfg Config) *Store {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Store{
		entries:      expirable.NewLRU[string, State](cfg.MaxSessions, nil, cfg.TTL),
		locks:        make(map[string]*turnLock),
		instructions: cfg.Instructions,
	}
}

// get returns the stored state, seeding it on first access. s.mu must be held.
func (s *Store) get(id string) State {
	if st, ok := s.entries.Get(id); ok {
		return st
	}
	st := State{SystemInstructions: s.instructions, History: []assistant.Turn{}}
	s.entries.Add(id, st)
	return st
}

// Lock serializes chat turns of one session. The returned func releases it.
// The lock survives eviction of the session state.
func (s *Store) Lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &turnLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			s.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(s.locks, id)
			}
			s.mu.Unlock()
		})
	}
}

// Load returns a copy of the session state, seeding it on first access.
// A read-modify-write cycle must hold Lock to avoid losing turns.
func (s *Store) Load(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.get(id)
	return State{SystemInstructions: st.SystemInstructions, History: copyTurns(st.History)}
}

// Save replaces the session history and refreshes its TTL.
// SystemInstructions are set once at creation and never overwritten.
func (s *Store) Save(id string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.get(id)
	cur.History = copyTurns(st.History)
	s.entries.Add(id, cur)
}

func copyTurns(in []assistant.Turn) []assistant.Turn {
	out := make([]assistant.Turn, len(in))
	copy(out, in)
	return out
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.entries.Len()
}
