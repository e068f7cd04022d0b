package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrMissingSQL      = errors.New("no sql query provided")
	ErrUnsafeQuery     = errors.New("unsafe sql query detected")
	ErrMissingMessage  = errors.New("no message provided by assistant")
	ErrUnknownAction   = errors.New("unrecognized action")
	ErrInterpretFailed = errors.New("failed to interpret user request")
	ErrEmptyNarration  = errors.New("no content in final response")
	ErrNarrateFailed   = errors.New("failed to narrate query result")
	ErrReportFailed    = errors.New("failed to generate report")
	ErrSchemaFailed    = errors.New("failed to describe schema")
	ErrQueryFailed     = errors.New("failed to execute query")
)

// UnknownActionError carries the action name the interpreter returned.
type UnknownActionError struct {
	Action Action
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownAction, string(e.Action))
}

func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// ReportError carries the detail of a failed generate_report branch.
type ReportError struct {
	Err error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrReportFailed, e.Err)
}

func (e *ReportError) Is(target error) bool {
	return target == ErrReportFailed
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
