package usecase

import (
	"time"

	"invoice-assistant/internal/auth/repository"
	"invoice-assistant/pkg/log"
)

// Defaults of the login policy.
const (
	DefaultJWTExpiry       = 24 * time.Hour
	DefaultRateLimitWindow = 5 * time.Minute
	DefaultMaxAttempts     = 5
	DefaultLockoutDuration = 15 * time.Minute
	DefaultHistoryLimit    = 50

	trackedClients = 10000
)

type Config struct {
	SecretKey       string
	PasswordSalt    string
	JWTExpiry       time.Duration
	RateLimitWindow time.Duration
	MaxAttempts     int
	LockoutDuration time.Duration
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	cfg      Config
	attempts *attemptTracker
	now      func() time.Time
}

// Option tunes the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config, opts ...Option) *implUseCase {
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = DefaultJWTExpiry
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = DefaultRateLimitWindow
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = DefaultLockoutDuration
	}

	uc := &implUseCase{
		repo: repo,
		l:    l,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.attempts = newAttemptTracker(trackedClients, cfg.RateLimitWindow, cfg.LockoutDuration, cfg.MaxAttempts, uc.now)
	return uc
}
