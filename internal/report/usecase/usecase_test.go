package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"invoice-assistant/internal/report"
	"invoice-assistant/internal/report/usecase"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore"
	"invoice-assistant/pkg/objectstore/local"
)

type fakeRepo struct {
	projects    report.Table
	invoices    report.Table
	elements    report.Table
	subelements map[string][][]any
	err         error
}

func (f *fakeRepo) SelectedProjects(ctx context.Context, names []string) (report.Table, error) {
	return f.projects, f.err
}

func (f *fakeRepo) SelectedInvoices(ctx context.Context, ids []string) (report.Table, error) {
	return f.invoices, f.err
}

func (f *fakeRepo) SelectedElements(ctx context.Context, ids []string) (report.Table, error) {
	return f.elements, f.err
}

func (f *fakeRepo) SubelementsOf(ctx context.Context, ids []string) (map[string][][]any, error) {
	return f.subelements, f.err
}

func newUseCase(t *testing.T, repo *fakeRepo) (report.UseCase, *local.Store) {
	t.Helper()
	store, err := local.NewWithFs(afero.NewMemMapFs(), "/reports")
	if err != nil {
		t.Fatalf("NewWithFs() error = %v", err)
	}
	return usecase.New(repo, store, log.NewNop()), store
}

func readSheet(t *testing.T, store *local.Store, name, sheet string) [][]string {
	t.Helper()
	rc, err := store.Get(context.Background(), name)
	if err != nil {
		t.Fatalf("Get(%s) error = %v", name, err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", sheet, err)
	}
	return rows
}

func TestMaterialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Table Error", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		_, err := uc.Materialize(ctx, report.MaterializeInput{Kind: report.KindChat})
		if !errors.Is(err, report.ErrEmptyTable) {
			t.Errorf("expected ErrEmptyTable, got %v", err)
		}
	})

	t.Run("Excel Chat Report", func(t *testing.T) {
		uc, store := newUseCase(t, &fakeRepo{})
		out, err := uc.Materialize(ctx, report.MaterializeInput{
			Kind:   report.KindChat,
			Format: report.FormatXLSX,
			Table: report.Table{
				Columns: []string{"name", "client"},
				Rows:    [][]any{{"Casa A", "Acme"}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Filename, "chat_report_") || !strings.HasSuffix(out.Filename, ".xlsx") {
			t.Errorf("unexpected filename %q", out.Filename)
		}
		if out.URL != "/api/download/"+out.Filename {
			t.Errorf("unexpected url %q", out.URL)
		}
		if out.ContentType != report.ContentTypeXLSX {
			t.Errorf("unexpected content type %q", out.ContentType)
		}

		rows := readSheet(t, store, out.Filename, "Report")
		if len(rows) != 2 || rows[1][0] != "Casa A" {
			t.Errorf("unexpected sheet rows %v", rows)
		}
	})

	t.Run("PDF Report", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		out, err := uc.Materialize(ctx, report.MaterializeInput{
			Format: report.FormatPDF,
			Table:  report.Table{Columns: []string{"n"}, Rows: [][]any{{1}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(out.Filename, ".pdf") || out.ContentType != report.ContentTypePDF {
			t.Errorf("unexpected artifact %+v", out)
		}
	})
}

func TestDownloadSelected(t *testing.T) {
	ctx := context.Background()

	t.Run("No Items Selected", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		_, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: report.KindProjects})
		if !errors.Is(err, report.ErrNoItemsSelected) {
			t.Errorf("expected ErrNoItemsSelected, got %v", err)
		}
	})

	t.Run("Invalid Entity Type", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		_, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: "users", IDs: []string{"1"}})
		if !errors.Is(err, report.ErrInvalidEntityType) {
			t.Errorf("expected ErrInvalidEntityType, got %v", err)
		}
	})

	t.Run("No Data Found", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{invoices: report.Table{Columns: []string{"file_name"}}})
		_, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: report.KindInvoices, IDs: []string{"9"}})
		if !errors.Is(err, report.ErrNoDataFound) {
			t.Errorf("expected ErrNoDataFound, got %v", err)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{err: errors.New("db down")})
		_, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: report.KindProjects, IDs: []string{"a"}})
		if err == nil {
			t.Errorf("expected repository error")
		}
	})

	t.Run("Projects Data Sheet", func(t *testing.T) {
		uc, store := newUseCase(t, &fakeRepo{projects: report.Table{
			Columns: []string{"name", "client"},
			Rows:    [][]any{{"Casa A", "Acme"}, {"Casa B", "Beta"}},
		}})
		out, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: report.KindProjects, IDs: []string{"Casa A", "Casa B"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Filename, "projects_report_") {
			t.Errorf("unexpected filename %q", out.Filename)
		}
		rows := readSheet(t, store, out.Filename, "Data")
		if len(rows) != 3 {
			t.Errorf("expected header plus 2 rows, got %v", rows)
		}
	})

	t.Run("Elements Nested Sheet", func(t *testing.T) {
		uc, store := newUseCase(t, &fakeRepo{
			elements: report.Table{
				Columns: []string{"id", "name", "price_per_unit"},
				Rows: [][]any{
					{int64(1), "Wall", 10.0},
					{int64(2), "Roof", 20.0},
				},
			},
			subelements: map[string][][]any{
				"1": {{"Left", "m2", 2.0, nil, nil, nil, 5.0, 10.0}},
			},
		})
		out, err := uc.DownloadSelected(ctx, report.DownloadSelectedInput{EntityType: report.KindElements, IDs: []string{"1", "2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows := readSheet(t, store, out.Filename, "Elements")
		if len(rows) != 4 {
			t.Fatalf("expected header, 2 elements and 1 subelement, got %v", rows)
		}
		header := rows[0]
		if header[0] != "name" || header[2] != "Sub Title" || header[len(header)-1] != "Sub Total Price" {
			t.Errorf("unexpected header %v", header)
		}
		if rows[1][0] != "Wall" || rows[2][2] != "Left" || rows[3][0] != "Roof" {
			t.Errorf("unexpected layout %v", rows)
		}
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		_, err := uc.Open(ctx, "nope.xlsx")
		if !errors.Is(err, report.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("Traversal Is Reduced To Basename", func(t *testing.T) {
		uc, store := newUseCase(t, &fakeRepo{})
		if _, err := store.Put(ctx, "a.xlsx", strings.NewReader("x"), 1, objectstore.PutOptions{}); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		out, err := uc.Open(ctx, "../../etc/a.xlsx")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer out.Body.Close()
		if out.Filename != "a.xlsx" || out.ContentType != report.ContentTypeXLSX || out.Size != 1 {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("Empty Name", func(t *testing.T) {
		uc, _ := newUseCase(t, &fakeRepo{})
		_, err := uc.Open(ctx, "..")
		if !errors.Is(err, report.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})
}
