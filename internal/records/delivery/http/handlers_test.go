package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"invoice-assistant/internal/records"
	"invoice-assistant/pkg/log"
)

type fakeUseCase struct {
	invoices records.ListInvoicesInput
	elements records.ListElementsInput
	err      error
}

func (f *fakeUseCase) ListProjects(ctx context.Context, in records.ListProjectsInput) ([]records.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []records.Record{{"name": "Casa A"}}, nil
}

func (f *fakeUseCase) ListInvoices(ctx context.Context, in records.ListInvoicesInput) ([]records.Record, error) {
	f.invoices = in
	return []records.Record{}, f.err
}

func (f *fakeUseCase) ListElements(ctx context.Context, in records.ListElementsInput) ([]records.Record, error) {
	f.elements = in
	return []records.Record{}, f.err
}

func (f *fakeUseCase) ListSubelements(ctx context.Context, id string) ([]records.Record, error) {
	if id == "x" {
		return nil, records.ErrInvalidElement
	}
	return []records.Record{{"element_id": int64(1)}}, nil
}

func newRouter(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.GET("/api/projects", h.ListProjects)
	r.GET("/api/invoices/:project", h.ListInvoices)
	r.GET("/api/elements", h.ListElements)
	r.GET("/api/subelements/:elementID", h.ListSubelements)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestListProjectsBareArray(t *testing.T) {
	w := get(newRouter(&fakeUseCase{}), "/api/projects")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Casa A"}]`, w.Body.String())
}

func TestListProjectsInternalError(t *testing.T) {
	w := get(newRouter(&fakeUseCase{err: errors.New("db down")}), "/api/projects")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestListInvoicesBindsFilters(t *testing.T) {
	uc := &fakeUseCase{}
	w := get(newRouter(uc), "/api/invoices/Casa%20A?folderTypeFilters%5Badicionals%5D=true&folderTypeFilters%5Bpressupost%5D=false&startDate=2024-01-01&FileNameKeyword=fact")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "Casa A", uc.invoices.Project)
	assert.Equal(t, []string{records.FolderTypeAdicionals}, uc.invoices.FolderTypes)
	assert.Equal(t, "2024-01-01", uc.invoices.StartDate)
	assert.Equal(t, "fact", uc.invoices.FileNameKeyword)
}

func TestListElementsBindsFilters(t *testing.T) {
	uc := &fakeUseCase{}
	w := get(newRouter(uc), "/api/elements?nameKeyword=muro&minPrice=10&invoiceid=4&folderTypeFilters%5Bpressupost%5D=true")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", uc.elements.Project)
	assert.Equal(t, "muro", uc.elements.NameKeyword)
	assert.Equal(t, "10", uc.elements.MinPrice)
	assert.Equal(t, "4", uc.elements.InvoiceID)
	assert.Equal(t, []string{records.FolderTypePressupost}, uc.elements.FolderTypes)
}

func TestListElementsInvalidNumber(t *testing.T) {
	w := get(newRouter(&fakeUseCase{err: records.ErrInvalidNumber}), "/api/elements?minPrice=cheap")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid numeric filter"}`, w.Body.String())
}

func TestListSubelements(t *testing.T) {
	r := newRouter(&fakeUseCase{})

	w := get(r, "/api/subelements/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"element_id":1}]`, w.Body.String())

	w = get(r, "/api/subelements/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
