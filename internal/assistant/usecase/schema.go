package usecase

import (
	"context"
	"fmt"

	"invoice-assistant/internal/assistant"
)

// DescribeSchema reads the live public schema. Nothing is cached.
func (uc *implUseCase) DescribeSchema(ctx context.Context) (assistant.SchemaDescription, error) {
	tables, err := uc.repo.ListTables(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.DescribeSchema ListTables: %v", err)
		return assistant.SchemaDescription{}, fmt.Errorf("%w: %v", assistant.ErrSchemaFailed, err)
	}

	desc := assistant.SchemaDescription{Tables: make([]assistant.TableSchema, 0, len(tables))}
	for _, t := range tables {
		cols, err := uc.repo.ListColumns(ctx, t)
		if err != nil {
			uc.l.Errorf(ctx, "assistant.usecase.DescribeSchema ListColumns(%s): %v", t, err)
			return assistant.SchemaDescription{}, fmt.Errorf("%w: %v", assistant.ErrSchemaFailed, err)
		}
		desc.Tables = append(desc.Tables, assistant.TableSchema{Name: t, Columns: cols})
	}

	fks, err := uc.repo.ListForeignKeys(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.DescribeSchema ListForeignKeys: %v", err)
		return assistant.SchemaDescription{}, fmt.Errorf("%w: %v", assistant.ErrSchemaFailed, err)
	}
	desc.ForeignKeys = fks

	return desc, nil
}

// systemPrompt is the session instructions followed by the rendered schema.
func systemPrompt(instructions string, schema assistant.SchemaDescription) string {
	if instructions == "" {
		return schema.Render()
	}
	return instructions + "\n" + schema.Render()
}
