package usecase

import (
	"invoice-assistant/internal/assistant"
	"invoice-assistant/internal/assistant/repository"
	"invoice-assistant/internal/report"
	"invoice-assistant/internal/session"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
)

// SessionStore is the slice of session.Store the chat flow needs.
type SessionStore interface {
	Lock(id string) func()
	Load(id string) session.State
	Save(id string, st session.State)
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	llm        llmprovider.Provider
	sessions   SessionStore
	reports    report.UseCase
	maxHistory int
}

// Option tunes the use case.
type Option func(*implUseCase)

// WithMaxHistory overrides how many turns are sent to the model.
func WithMaxHistory(n int) Option {
	return func(uc *implUseCase) {
		if n > 0 {
			uc.maxHistory = n
		}
	}
}

// New creates a new assistant UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	llm llmprovider.Provider,
	sessions SessionStore,
	reports report.UseCase,
	opts ...Option,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		repo:       repo,
		llm:        llm,
		sessions:   sessions,
		reports:    reports,
		maxHistory: assistant.MaxHistory,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
