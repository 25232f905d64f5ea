package main

import (
	"context"
	"fmt"

	"lead-capture/internal/handler/middleware"
	"lead-capture/internal/infra/db"
	"lead-capture/internal/infra/readstore"
	"lead-capture/internal/infra/repository"
	sqlc "lead-capture/internal/infra/sqlc/generated"
	"lead-capture/internal/pkg/clock"
	"lead-capture/internal/pkg/config"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "leadctl",
		Short:        "Operator tool for contact requests",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newRequestsCmd())
	return root
}

// app holds what a subcommand needs; close releases the pool.
type app struct {
	commands commands.LeadCommands
	queries  queries.LeadQueries
	close    func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	q := sqlc.New()
	clk := clock.NewRealClock()
	return &app{
		commands: commands.NewLeadUseCase(repository.NewLeadRepository(q, pool), clk, nil),
		queries:  queries.NewLeadQueries(readstore.NewLeadReadStore(q, pool), clk, nil),
		close:    cleanup,
	}, nil
}
