package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"invoice-assistant/internal/assistant"
	"invoice-assistant/internal/sqlguard"
)

const cliSession = "assistantctl"

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the schema description sent to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := a.useCase(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeFn()

			schema, err := uc.DescribeSchema(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), schema.Render())
			return nil
		},
	}
}

func (a *app) checkSQLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-sql <sql>",
		Short: "Report whether a statement passes the read-only filter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt := strings.Join(args, " ")
			if err := sqlguard.Check(stmt); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "rejected: %v\n", err)
				return fmt.Errorf("unsafe statement")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *app) askCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Run one chat turn and render the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := a.useCase(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.Chat(cmd.Context(), assistant.ChatInput{
				SessionID: cliSession,
				Message:   strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			reply := out.Reply
			if out.ReportURL != "" {
				reply += "\n\nReport: `" + out.ReportURL + "`"
			}
			return a.render(cmd, reply)
		},
	}
}

func (a *app) render(cmd *cobra.Command, markdown string) error {
	if a.plain {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(a.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("render reply: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
