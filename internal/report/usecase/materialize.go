package usecase

import (
	"bytes"
	"context"
	"fmt"

	"invoice-assistant/internal/report"
	"invoice-assistant/internal/report/render"
	"invoice-assistant/pkg/metrics"
	"invoice-assistant/pkg/objectstore"
)

// Materialize renders a flat table (typically a query result from chat)
// and stores it under a timestamped name.
func (uc *implUseCase) Materialize(ctx context.Context, input report.MaterializeInput) (report.Artifact, error) {
	if len(input.Table.Columns) == 0 {
		return report.Artifact{}, report.ErrEmptyTable
	}
	kind := input.Kind
	if kind == "" {
		kind = report.KindChat
	}
	format := input.Format
	if format != report.FormatPDF {
		format = report.FormatXLSX
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case report.FormatPDF:
		err = render.WritePDF(&buf, fmt.Sprintf("%s report", kind), input.Table.Columns, input.Table.Rows)
	default:
		err = render.WriteXLSX(&buf, render.Sheet{
			Name:    sheetChat,
			Columns: input.Table.Columns,
			Rows:    input.Table.Rows,
			Header:  render.HeaderPlain,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Materialize render: %v", err)
		return report.Artifact{}, err
	}

	return uc.save(ctx, kind, format, &buf)
}

func (uc *implUseCase) save(ctx context.Context, kind string, format report.Format, buf *bytes.Buffer) (report.Artifact, error) {
	name := report.Filename(kind, format, uc.now())
	info, err := uc.store.Put(ctx, name, buf, int64(buf.Len()), objectstore.PutOptions{
		ContentType: format.ContentType(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.save %s: %v", name, err)
		return report.Artifact{}, err
	}

	metrics.ObserveReport(kind, string(format))
	uc.l.Infof(ctx, "report.usecase.save: wrote %s (%d bytes)", name, info.Size)

	return report.Artifact{
		Filename:    name,
		URL:         report.DownloadURL(name),
		ContentType: format.ContentType(),
		Size:        info.Size,
	}, nil
}
