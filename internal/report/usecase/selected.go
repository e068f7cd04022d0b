package usecase

import (
	"bytes"
	"context"

	"invoice-assistant/internal/report"
	"invoice-assistant/internal/report/render"
)

// DownloadSelected exports the chosen projects, invoices or elements.
// Elements get the nested layout with their subelements below each row.
func (uc *implUseCase) DownloadSelected(ctx context.Context, input report.DownloadSelectedInput) (report.Artifact, error) {
	if len(input.IDs) == 0 {
		return report.Artifact{}, report.ErrNoItemsSelected
	}

	var buf bytes.Buffer
	switch input.EntityType {
	case report.KindElements:
		if err := uc.renderElements(ctx, &buf, input.IDs); err != nil {
			return report.Artifact{}, err
		}

	case report.KindProjects, report.KindInvoices:
		var t report.Table
		var err error
		if input.EntityType == report.KindProjects {
			t, err = uc.repo.SelectedProjects(ctx, input.IDs)
		} else {
			t, err = uc.repo.SelectedInvoices(ctx, input.IDs)
		}
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.DownloadSelected %s: %v", input.EntityType, err)
			return report.Artifact{}, err
		}
		if len(t.Rows) == 0 {
			return report.Artifact{}, report.ErrNoDataFound
		}
		if err := render.WriteXLSX(&buf, render.Sheet{
			Name:         sheetData,
			Columns:      t.Columns,
			Rows:         t.Rows,
			Header:       render.HeaderBanner,
			NumberFormat: true,
			ColWidth:     render.DefaultColWidth,
			FreezeHeader: true,
			AutoFilter:   true,
		}); err != nil {
			uc.l.Errorf(ctx, "report.usecase.DownloadSelected render: %v", err)
			return report.Artifact{}, err
		}

	default:
		return report.Artifact{}, report.ErrInvalidEntityType
	}

	return uc.save(ctx, input.EntityType, report.FormatXLSX, &buf)
}

func (uc *implUseCase) renderElements(ctx context.Context, buf *bytes.Buffer, ids []string) error {
	elements, err := uc.repo.SelectedElements(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.renderElements elements: %v", err)
		return err
	}
	children, err := uc.repo.SubelementsOf(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.renderElements subelements: %v", err)
		return err
	}

	masterCols := elements.Columns
	if len(masterCols) > 0 {
		masterCols = masterCols[1:]
	}

	masters := make([]render.MasterRow, 0, len(elements.Rows))
	for _, row := range elements.Rows {
		if len(row) == 0 {
			continue
		}
		masters = append(masters, render.MasterRow{
			Values:   row[1:],
			Children: children[idKey(row[0])],
		})
	}

	if err := render.WriteNestedXLSX(buf, render.Nested{
		Name:          sheetElements,
		MasterColumns: masterCols,
		ChildColumns:  subelementColumns,
		ChildText:     subelementTextColumns,
		Masters:       masters,
		Highlight:     elementHighlights,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.renderElements render: %v", err)
		return err
	}
	return nil
}
