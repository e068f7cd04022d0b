package usecase

import (
	"context"
	"errors"

	"invoice-assistant/internal/report"
	"invoice-assistant/pkg/objectstore"
)

func (uc *implUseCase) Open(ctx context.Context, filename string) (report.OpenOutput, error) {
	name := report.CleanFilename(filename)
	if name == "" {
		return report.OpenOutput{}, report.ErrFileNotFound
	}

	info, err := uc.store.Stat(ctx, name)
	if err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) || errors.Is(err, objectstore.ErrInvalidKey) {
			return report.OpenOutput{}, report.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Open stat %s: %v", name, err)
		return report.OpenOutput{}, err
	}

	body, err := uc.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) {
			return report.OpenOutput{}, report.ErrFileNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Open get %s: %v", name, err)
		return report.OpenOutput{}, err
	}

	return report.OpenOutput{
		Filename:     name,
		ContentType:  report.FormatFromFilename(name).ContentType(),
		Size:         info.Size,
		LastModified: info.LastModified,
		Body:         body,
	}, nil
}
