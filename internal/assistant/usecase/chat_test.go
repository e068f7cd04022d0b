package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/internal/assistant/usecase"
	reportUC "invoice-assistant/internal/report/usecase"
	"invoice-assistant/internal/session"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore/local"
)

// --- fakes ---

type fakeLLM struct {
	responses []*llmprovider.Response
	err       error
	requests  []*llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return nil, errors.New("no scripted response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeLLM) Name() string  { return "fake" }
func (f *fakeLLM) Model() string { return "fake-model" }

func intentResponse(t *testing.T, intent map[string]any) *llmprovider.Response {
	t.Helper()
	raw, err := json.Marshal(intent)
	require.NoError(t, err)
	return &llmprovider.Response{Content: llmprovider.Message{
		Role: assistant.RoleAssistant,
		Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{
			Name:    "interpret_user_request",
			RawArgs: string(raw),
		}}},
	}}
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.TextMessage(assistant.RoleAssistant, text)}
}

type fakeRepo struct {
	result    assistant.ResultSet
	execErr   error
	schemaErr error
	executed  []string
}

func (f *fakeRepo) ListTables(ctx context.Context) ([]string, error) {
	return []string{"projects"}, f.schemaErr
}

func (f *fakeRepo) ListColumns(ctx context.Context, table string) ([]string, error) {
	return []string{"name", "client"}, nil
}

func (f *fakeRepo) ListForeignKeys(ctx context.Context) ([]assistant.ForeignKey, error) {
	return nil, nil
}

func (f *fakeRepo) ExecuteReadOnly(ctx context.Context, sql string) (assistant.ResultSet, error) {
	f.executed = append(f.executed, sql)
	return f.result, f.execErr
}

type fixture struct {
	uc       assistant.UseCase
	llm      *fakeLLM
	repo     *fakeRepo
	sessions *session.Store
}

func newFixture(t *testing.T, responses ...*llmprovider.Response) *fixture {
	t.Helper()
	store, err := local.NewWithFs(afero.NewMemMapFs(), "/reports")
	require.NoError(t, err)

	f := &fixture{
		llm:      &fakeLLM{responses: responses},
		repo:     &fakeRepo{},
		sessions: session.New(session.Config{Instructions: "be helpful"}),
	}
	reports := reportUC.New(nil, store, log.NewNop())
	f.uc = usecase.New(log.NewNop(), f.repo, f.llm, f.sessions, reports)
	return f
}

func (f *fixture) chat(msg string) (assistant.ChatOutput, error) {
	return f.uc.Chat(context.Background(), assistant.ChatInput{SessionID: "s1", Message: msg})
}

// --- tests ---

func TestChatConversation(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "conversation", "message": "Hello"}))

	out, err := f.chat("Hola")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out.Reply)
	assert.Empty(t, out.ReportURL)

	history := f.sessions.Load("s1").History
	require.Len(t, history, 2)
	assert.Equal(t, assistant.Turn{Role: assistant.RoleUser, Content: "Hola"}, history[0])
	assert.Equal(t, assistant.Turn{Role: assistant.RoleAssistant, Content: "Hello"}, history[1])
	assert.Empty(t, f.repo.executed)
}

func TestChatInterpretRequest(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "instruct_user", "message": "Use the grid"}))

	_, err := f.chat("How do I export?")
	require.NoError(t, err)
	require.Len(t, f.llm.requests, 1)

	req := f.llm.requests[0]
	assert.Equal(t, "interpret_user_request", req.ToolChoice)
	require.Len(t, req.Tools, 1)
	assert.Equal(t, "interpret_user_request", req.Tools[0].Name)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.0, *req.Temperature)
	require.NotNil(t, req.SystemInstruction)
	assert.True(t, strings.HasPrefix(req.SystemInstruction.Text(), "be helpful\n"))
	assert.Contains(t, req.SystemInstruction.Text(), "Table: projects")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "How do I export?", req.Messages[0].Text())
}

func TestChatQueryDataValidation(t *testing.T) {
	tests := map[string]struct {
		intent  map[string]any
		wantErr error
	}{
		"missing sql": {
			intent:  map[string]any{"action": "query_data"},
			wantErr: assistant.ErrMissingSQL,
		},
		"blank sql": {
			intent:  map[string]any{"action": "query_data", "sql_query": "   "},
			wantErr: assistant.ErrMissingSQL,
		},
		"unsafe sql": {
			intent:  map[string]any{"action": "query_data", "sql_query": "DROP TABLE projects"},
			wantErr: assistant.ErrUnsafeQuery,
		},
		"unsafe report sql": {
			intent:  map[string]any{"action": "generate_report", "sql_query": "delete from projects"},
			wantErr: assistant.ErrUnsafeQuery,
		},
		"missing message": {
			intent:  map[string]any{"action": "conversation"},
			wantErr: assistant.ErrMissingMessage,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, intentResponse(t, tc.intent))

			_, err := f.chat("do it")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, f.repo.executed, "no database call expected")
			assert.Empty(t, f.sessions.Load("s1").History, "failed turn must not be persisted")
		})
	}
}

func TestChatUnknownAction(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "dance"}))

	_, err := f.chat("dance")
	require.ErrorIs(t, err, assistant.ErrUnknownAction)

	var ua *assistant.UnknownActionError
	require.ErrorAs(t, err, &ua)
	assert.Equal(t, assistant.Action("dance"), ua.Action)
}

func TestChatQueryDataNarrates(t *testing.T) {
	f := newFixture(t,
		intentResponse(t, map[string]any{"action": "query_data", "sql_query": "SELECT name, client FROM projects"}),
		textResponse("  There is one project.  "),
	)
	f.repo.result = assistant.ResultSet{
		Columns: []string{"name", "client"},
		Rows:    [][]any{{"Casa A", nil}},
	}

	out, err := f.chat("Which projects?")
	require.NoError(t, err)
	assert.Equal(t, "There is one project.", out.Reply)
	assert.Equal(t, []string{"SELECT name, client FROM projects"}, f.repo.executed)

	require.Len(t, f.llm.requests, 2)
	narrate := f.llm.requests[1]
	assert.Empty(t, narrate.Tools)
	assert.Empty(t, narrate.ToolChoice)
	last := narrate.Messages[len(narrate.Messages)-1]
	assert.Equal(t, assistant.RoleUser, last.Role)
	assert.True(t, strings.HasPrefix(last.Text(), "Here are the data you need"))
	assert.True(t, strings.HasSuffix(last.Text(), "\nName: Casa A, Client: None"))

	history := f.sessions.Load("s1").History
	require.Len(t, history, 2)
	assert.Equal(t, "There is one project.", history[1].Content)
}

func TestChatQueryDataNoRows(t *testing.T) {
	f := newFixture(t,
		intentResponse(t, map[string]any{"action": "query_data", "sql_query": "SELECT name FROM projects WHERE 1=0"}),
		textResponse("Nothing matched."),
	)
	f.repo.result = assistant.ResultSet{Columns: []string{"name"}, Rows: [][]any{}}

	_, err := f.chat("Find X")
	require.NoError(t, err)

	last := f.llm.requests[1].Messages[len(f.llm.requests[1].Messages)-1]
	assert.True(t, strings.HasSuffix(last.Text(), ":\nNo results found."))
}

func TestChatQueryDataEmptyNarration(t *testing.T) {
	f := newFixture(t,
		intentResponse(t, map[string]any{"action": "query_data", "sql_query": "SELECT 1"}),
		textResponse("   "),
	)
	f.repo.result = assistant.ResultSet{Columns: []string{"x"}, Rows: [][]any{{int64(1)}}}

	_, err := f.chat("one")
	assert.ErrorIs(t, err, assistant.ErrEmptyNarration)
	assert.Empty(t, f.sessions.Load("s1").History)
}

func TestChatQueryDataExecutionError(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "query_data", "sql_query": "SELECT nope"}))
	f.repo.execErr = errors.New("column does not exist")

	_, err := f.chat("bad")
	assert.ErrorIs(t, err, assistant.ErrQueryFailed)
}

func TestChatNarrationWindow(t *testing.T) {
	f := newFixture(t)
	var turns []assistant.Turn
	for i := 0; i < 10; i++ {
		turns = assistant.AppendTurn(turns, assistant.RoleUser, "q")
	}
	f.sessions.Save("s1", session.State{History: turns})

	f.llm.responses = []*llmprovider.Response{
		intentResponse(t, map[string]any{"action": "query_data", "sql_query": "SELECT 1"}),
		textResponse("ok"),
	}
	f.repo.result = assistant.ResultSet{Columns: []string{"x"}, Rows: [][]any{{int64(1)}}}

	_, err := f.chat("latest")
	require.NoError(t, err)

	assert.Len(t, f.llm.requests[0].Messages, 10)
	narrate := f.llm.requests[1]
	assert.Nil(t, narrate.SystemInstruction, "system turn falls out of a full window")
	assert.Len(t, narrate.Messages, 10)
}

func TestChatGenerateReport(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "generate_report", "sql_query": "SELECT name FROM projects"}))
	f.repo.result = assistant.ResultSet{
		Columns: []string{"name"},
		Rows:    [][]any{{"Casa A"}, {"Casa B"}},
	}

	out, err := f.chat("Excel of projects")
	require.NoError(t, err)
	assert.Equal(t, "Report generated successfully. You can download it using the button below.", out.Reply)
	assert.Regexp(t, regexp.MustCompile(`^/api/download/chat_report_\d{8}_\d{6}\.xlsx$`), out.ReportURL)

	history := f.sessions.Load("s1").History
	require.Len(t, history, 2)
	assert.Equal(t, assistant.RoleAssistant, history[1].Role)
}

func TestChatGenerateReportPDF(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{
		"action":      "generate_report",
		"sql_query":   "SELECT name FROM projects",
		"report_type": "pdf",
	}))
	f.repo.result = assistant.ResultSet{Columns: []string{"name"}, Rows: [][]any{{"Casa A"}}}

	out, err := f.chat("PDF please")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.ReportURL, ".pdf"))
}

func TestChatGenerateReportFailure(t *testing.T) {
	f := newFixture(t, intentResponse(t, map[string]any{"action": "generate_report", "sql_query": "SELECT broken"}))
	f.repo.execErr = errors.New("syntax error at end of input")

	_, err := f.chat("report")
	require.ErrorIs(t, err, assistant.ErrReportFailed)

	var re *assistant.ReportError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, re.Err.Error(), "syntax error")
}

func TestChatInterpretFailures(t *testing.T) {
	t.Run("Transport Error", func(t *testing.T) {
		f := newFixture(t)
		f.llm.err = errors.New("timeout")
		_, err := f.chat("hi")
		assert.ErrorIs(t, err, assistant.ErrInterpretFailed)
	})

	t.Run("No Function Call", func(t *testing.T) {
		f := newFixture(t, textResponse("I will not call tools"))
		_, err := f.chat("hi")
		assert.ErrorIs(t, err, assistant.ErrInterpretFailed)
	})

	t.Run("Malformed Arguments", func(t *testing.T) {
		f := newFixture(t, &llmprovider.Response{Content: llmprovider.Message{
			Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{
				Name:    "interpret_user_request",
				RawArgs: `{"action": `,
			}}},
		}})
		_, err := f.chat("hi")
		assert.ErrorIs(t, err, assistant.ErrInterpretFailed)
		assert.Empty(t, f.sessions.Load("s1").History)
	})

	t.Run("Structured Args", func(t *testing.T) {
		f := newFixture(t, &llmprovider.Response{Content: llmprovider.Message{
			Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{
				Name: "interpret_user_request",
				Args: map[string]any{"action": "conversation", "message": "Bon dia"},
			}}},
		}})
		out, err := f.chat("hi")
		require.NoError(t, err)
		assert.Equal(t, "Bon dia", out.Reply)
	})
}

func TestChatEmptyMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.chat("  ")
	assert.ErrorIs(t, err, assistant.ErrEmptyMessage)
	assert.Empty(t, f.llm.requests)
}

func TestChatSchemaFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.schemaErr = errors.New("connection refused")
	_, err := f.chat("hi")
	assert.ErrorIs(t, err, assistant.ErrSchemaFailed)
	assert.Empty(t, f.llm.requests)
}

func TestDescribeSchema(t *testing.T) {
	f := newFixture(t)
	desc, err := f.uc.DescribeSchema(context.Background())
	require.NoError(t, err)
	require.Len(t, desc.Tables, 1)
	assert.Equal(t, "projects", desc.Tables[0].Name)
	assert.Equal(t, []string{"name", "client"}, desc.Tables[0].Columns)
}
