package usecase

import (
	"invoice-assistant/internal/records/repository"
	"invoice-assistant/pkg/log"
)

// implUseCase is the private implementation of records.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new records UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
