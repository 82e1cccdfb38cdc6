package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

func newHealthCommand(deps *Deps, load func() (*config.Config, error)) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the minutes backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			status, err := deps.NewBackend(&cfg.Backend, deps.Logger).Health(ctx)
			if err != nil {
				return fmt.Errorf("backend %s unreachable: %w", cfg.Backend.URL, err)
			}
			fmt.Fprintf(deps.Out, "%s: %s (%s)\n", cfg.Backend.URL, status.Status, status.Message)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout for the health check")

	return cmd
}
