package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/pkg/log"
)

type fakeUseCase struct {
	input assistant.ChatInput
	out   assistant.ChatOutput
	err   error
}

func (f *fakeUseCase) Chat(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
	f.input = in
	return f.out, f.err
}

func (f *fakeUseCase) DescribeSchema(ctx context.Context) (assistant.SchemaDescription, error) {
	return assistant.SchemaDescription{}, nil
}

func postChat(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", New(log.NewNop(), uc).Chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "abc")
	r.ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	uc := &fakeUseCase{out: assistant.ChatOutput{Reply: "Hello"}}
	w := postChat(uc, `{"message":"Hola"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Hello","format":"markdown"}`, w.Body.String())
	assert.Equal(t, "Hola", uc.input.Message)
	assert.Equal(t, "abc", uc.input.SessionID)
}

func TestChatReportURL(t *testing.T) {
	uc := &fakeUseCase{out: assistant.ChatOutput{Reply: "ok", ReportURL: "/api/download/chat_report_20240101_120000.xlsx"}}
	w := postChat(uc, `{"message":"report"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"ok","format":"markdown","report_url":"/api/download/chat_report_20240101_120000.xlsx"}`, w.Body.String())
}

func TestChatErrors(t *testing.T) {
	tests := map[string]struct {
		err       error
		wantCode  int
		wantReply string
	}{
		"missing sql":     {assistant.ErrMissingSQL, http.StatusBadRequest, "Error: No SQL query provided."},
		"unsafe":          {assistant.ErrUnsafeQuery, http.StatusBadRequest, "Error: Unsafe SQL query detected."},
		"missing message": {assistant.ErrMissingMessage, http.StatusBadRequest, "Error: No message provided by assistant."},
		"unknown action":  {&assistant.UnknownActionError{Action: "dance"}, http.StatusBadRequest, "Error: Unrecognized action 'dance'."},
		"report":          {&assistant.ReportError{Err: errors.New("disk full")}, http.StatusInternalServerError, "Error generating report: disk full"},
		"empty narration": {assistant.ErrEmptyNarration, http.StatusInternalServerError, "Error: No content in final response."},
		"interpret":       {assistant.ErrInterpretFailed, http.StatusInternalServerError, "An error occurred during processing. Please try again."},
		"schema":          {assistant.ErrSchemaFailed, http.StatusInternalServerError, "An error occurred during processing. Please try again."},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := postChat(&fakeUseCase{err: tc.err}, `{"message":"x"}`)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.JSONEq(t, `{"reply":"`+tc.wantReply+`","format":"markdown"}`, w.Body.String())
		})
	}
}

func TestChatInvalidBody(t *testing.T) {
	w := postChat(&fakeUseCase{}, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"reply":"Error: No message provided.","format":"markdown"}`, w.Body.String())
}
