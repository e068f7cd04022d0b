package assistant

import (
	"fmt"
	"strings"
)

// Roles of a conversation turn.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Action is the interpreted decision for one chat turn.
type Action string

const (
	ActionQueryData      Action = "query_data"
	ActionGenerateReport Action = "generate_report"
	ActionInstructUser   Action = "instruct_user"
	ActionConversation   Action = "conversation"
)

// Actions lists the values the interpreter may return, in schema order.
var Actions = []Action{ActionQueryData, ActionGenerateReport, ActionInstructUser, ActionConversation}

// ReportType is the artifact format requested for generate_report.
type ReportType string

const (
	ReportTypeExcel ReportType = "excel"
	ReportTypePDF   ReportType = "pdf"
)

// Turn is one entry of a session's conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Intent is the structured decision returned by the interpreter. It is
// untrusted input and validated again before dispatch.
type Intent struct {
	Action     Action     `json:"action"`
	SQLQuery   string     `json:"sql_query,omitempty"`
	ReportType ReportType `json:"report_type,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// Normalize trims free-text fields and defaults ReportType to excel.
func (i Intent) Normalize() Intent {
	i.Action = Action(strings.TrimSpace(string(i.Action)))
	i.SQLQuery = strings.TrimSpace(i.SQLQuery)
	if i.ReportType != ReportTypePDF {
		i.ReportType = ReportTypeExcel
	}
	return i
}

// TableSchema is one base table and its columns in ordinal order.
type TableSchema struct {
	Name    string
	Columns []string
}

// ForeignKey is a single table.column -> foreign_table.foreign_column edge.
type ForeignKey struct {
	Table         string
	Column        string
	ForeignTable  string
	ForeignColumn string
}

// SchemaDescription is the live relational schema as seen by the interpreter.
type SchemaDescription struct {
	Tables      []TableSchema
	ForeignKeys []ForeignKey
}

// Render produces the plain-text schema block sent in the system prompt.
func (s SchemaDescription) Render() string {
	var b strings.Builder
	b.WriteString("Database Schema and Relationships:\n")
	for _, t := range s.Tables {
		fmt.Fprintf(&b, "Table: %s\n", t.Name)
		b.WriteString("Columns:\n")
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
		b.WriteString("\n")
	}
	b.WriteString("Foreign Key Relationships:\n")
	for _, fk := range s.ForeignKeys {
		fmt.Fprintf(&b, "- %s.%s -> %s.%s\n", fk.Table, fk.Column, fk.ForeignTable, fk.ForeignColumn)
	}
	return b.String()
}

// ResultSet is the outcome of a model-generated SELECT.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply     string
	ReportURL string
}
