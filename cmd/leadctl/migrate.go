package main

import (
	"fmt"

	"lead-capture/internal/infra/migrate"
	"lead-capture/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			runner, err := migrate.NewRunner(".", dir)
			if err != nil {
				return err
			}
			res, err := runner.Apply(cmd.Context(), cfg.DB.BuildDSN())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Applied) == 0 {
				fmt.Fprintf(out, "No migrations to apply (current version %s)\n", res.Current)
				return nil
			}
			for _, name := range res.Applied {
				fmt.Fprintf(out, "applied %s\n", name)
			}
			fmt.Fprintf(out, "Now at version %s\n", res.Current)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", migrate.DefaultDirURL, "atlas migration directory URL")
	return cmd
}
