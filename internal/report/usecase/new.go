package usecase

import (
	"time"

	"invoice-assistant/internal/report/repository"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore"
)

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	repo  repository.Repository
	store objectstore.ObjectStore
	l     log.Logger
	now   func() time.Time
}

// New creates a new report UseCase implementation.
func New(repo repository.Repository, store objectstore.ObjectStore, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		store: store,
		l:     l,
		now:   time.Now,
	}
}
