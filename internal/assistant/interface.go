package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one natural-language turn for a session.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// DescribeSchema returns the live schema the interpreter is prompted with.
	DescribeSchema(ctx context.Context) (SchemaDescription, error)
}
