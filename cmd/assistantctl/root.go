package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"invoice-assistant/config"
	"invoice-assistant/internal/assistant"
	assistantRepo "invoice-assistant/internal/assistant/repository/postgre"
	assistantUC "invoice-assistant/internal/assistant/usecase"
	reportRepo "invoice-assistant/internal/report/repository/postgre"
	reportUC "invoice-assistant/internal/report/usecase"
	"invoice-assistant/internal/session"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore/local"
	"invoice-assistant/pkg/postgres"
)

type app struct {
	verbose bool
	width   int
	plain   bool
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "assistantctl",
		Short: "Inspect and query the invoice assistant from a terminal",
		Long: `assistantctl shares config.yaml and .env with the API server. It prints
the schema the model is prompted with, checks SQL against the read-only
filter, and runs single chat turns.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")
	root.PersistentFlags().IntVar(&a.width, "width", 100, "Word wrap for rendered replies")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "Print replies as raw markdown")

	root.AddCommand(a.schemaCommand(), a.checkSQLCommand(), a.askCommand())
	return root
}

func (a *app) logger() log.Logger {
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{Level: level, Mode: "debug", Encoding: "console", ColorEnabled: true})
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	return postgres.Open(ctx, postgres.Config{
		DSN:      cfg.Postgres.DSN,
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Name:     cfg.Postgres.Name,
		SSLMode:  cfg.Postgres.SSLMode,
	})
}

// useCase wires the assistant against the configured database. llm may be
// nil for commands that never reach the model.
func (a *app) useCase(ctx context.Context, withLLM bool) (assistant.UseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	l := a.logger()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var llm llmprovider.Provider
	if withLLM {
		manager, _, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		llm = manager
	}

	store, err := local.New(cfg.Reports.Dir)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	reports := reportUC.New(reportRepo.New(db, l), store, l)
	sessions := session.New(session.Config{MaxSessions: 1, Instructions: assistant.DefaultInstructions})
	uc := assistantUC.New(
		l,
		assistantRepo.New(db, l, assistantRepo.WithStatementTimeout(cfg.Postgres.StatementTimeout)),
		llm,
		sessions,
		reports,
		assistantUC.WithMaxHistory(cfg.Assistant.MaxHistory),
	)
	return uc, func() { db.Close() }, nil
}
