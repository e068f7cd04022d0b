package usecase

import (
	"context"
	"fmt"
	"strings"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/internal/report"
	"invoice-assistant/internal/session"
	"invoice-assistant/internal/sqlguard"
	"invoice-assistant/pkg/metrics"
)

// Chat runs one conversational turn: describe the schema, interpret the
// message, then dispatch on the interpreted action. History is saved only
// when a branch succeeds, and then with both the user and assistant turns.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	unlock := uc.sessions.Lock(input.SessionID)
	defer unlock()

	st := uc.sessions.Load(input.SessionID)

	schema, err := uc.DescribeSchema(ctx)
	if err != nil {
		return assistant.ChatOutput{}, err
	}
	prompt := systemPrompt(st.SystemInstructions, schema)

	history := assistant.Truncate(assistant.AppendTurn(st.History, assistant.RoleUser, input.Message), uc.maxHistory)

	intent, err := uc.interpret(ctx, prompt, history)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat interpret: %v", err)
		metrics.ObserveChatAction("", "error")
		return assistant.ChatOutput{}, err
	}
	uc.l.Infof(ctx, "assistant.usecase.Chat: action=%s report_type=%s", intent.Action, intent.ReportType)

	out, err := uc.dispatch(ctx, prompt, history, intent, input.SessionID, st)
	metrics.ObserveChatAction(actionLabel(intent.Action), outcome(err))
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Chat %s: %v", intent.Action, err)
		return assistant.ChatOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) dispatch(
	ctx context.Context,
	prompt string,
	history []assistant.Turn,
	intent assistant.Intent,
	sessionID string,
	st session.State,
) (assistant.ChatOutput, error) {
	switch intent.Action {
	case assistant.ActionQueryData:
		if err := validateSQL(intent.SQLQuery); err != nil {
			return assistant.ChatOutput{}, err
		}
		rs, err := uc.repo.ExecuteReadOnly(ctx, intent.SQLQuery)
		if err != nil {
			return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrQueryFailed, err)
		}
		reply, err := uc.narrate(ctx, prompt, history, rs)
		if err != nil {
			return assistant.ChatOutput{}, err
		}
		uc.persist(sessionID, st, history, reply)
		return assistant.ChatOutput{Reply: reply}, nil

	case assistant.ActionGenerateReport:
		if err := validateSQL(intent.SQLQuery); err != nil {
			return assistant.ChatOutput{}, err
		}
		rs, err := uc.repo.ExecuteReadOnly(ctx, intent.SQLQuery)
		if err != nil {
			return assistant.ChatOutput{}, &assistant.ReportError{Err: err}
		}
		artifact, err := uc.reports.Materialize(ctx, report.MaterializeInput{
			Kind:   report.KindChat,
			Format: reportFormat(intent.ReportType),
			Table:  report.Table{Columns: rs.Columns, Rows: rs.Rows},
		})
		if err != nil {
			return assistant.ChatOutput{}, &assistant.ReportError{Err: err}
		}
		uc.persist(sessionID, st, history, replyReportReady)
		return assistant.ChatOutput{Reply: replyReportReady, ReportURL: artifact.URL}, nil

	case assistant.ActionInstructUser, assistant.ActionConversation:
		if strings.TrimSpace(intent.Message) == "" {
			return assistant.ChatOutput{}, assistant.ErrMissingMessage
		}
		uc.persist(sessionID, st, history, intent.Message)
		return assistant.ChatOutput{Reply: intent.Message}, nil

	default:
		return assistant.ChatOutput{}, &assistant.UnknownActionError{Action: intent.Action}
	}
}

func (uc *implUseCase) persist(sessionID string, st session.State, history []assistant.Turn, reply string) {
	st.History = assistant.AppendTurn(history, assistant.RoleAssistant, reply)
	uc.sessions.Save(sessionID, st)
}

func validateSQL(sql string) error {
	if strings.TrimSpace(sql) == "" {
		return assistant.ErrMissingSQL
	}
	if !sqlguard.IsSafe(sql) {
		return assistant.ErrUnsafeQuery
	}
	return nil
}

func reportFormat(t assistant.ReportType) report.Format {
	if t == assistant.ReportTypePDF {
		return report.FormatPDF
	}
	return report.FormatXLSX
}

func actionLabel(a assistant.Action) string {
	for _, known := range assistant.Actions {
		if a == known {
			return string(a)
		}
	}
	return "unrecognized"
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return "error"
}
