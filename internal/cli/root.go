// Package cli provides the minutes command line tool.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	workspaceUsecase "github.com/johnquangdev/meeting-workspace/internal/usecase/workspace"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

// Backend is what the commands need from the minutes backend
type Backend interface {
	workspaceUsecase.Backend
	Health(ctx context.Context) (*pkgai.HealthStatus, error)
}

// Deps holds the dependencies of the commands, replaceable in tests
type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewBackend func(cfg *config.BackendConfig, logger *zap.Logger) Backend
	Logger     *zap.Logger
	Out        io.Writer
}

// DefaultDeps wires the real configuration and backend client
func DefaultDeps() *Deps {
	return &Deps{
		LoadConfig: config.Load,
		NewBackend: func(cfg *config.BackendConfig, logger *zap.Logger) Backend {
			return pkgai.NewMinutesClient(cfg, logger)
		},
		Logger: zap.NewNop(),
		Out:    os.Stdout,
	}
}

// NewRootCommand creates the minutes command with its subcommands
func NewRootCommand(deps *Deps) *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "minutes",
		Short: "Generate meeting minutes from a recording",
		Long: `minutes sends a meeting recording to the minutes backend and prints the
discussion points, action items, sentiment and topics it extracts.

The backend address is read from API_URL (default http://localhost:8000)
and can be overridden with --api-url.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides API_URL)")

	load := func() (*config.Config, error) {
		cfg, err := deps.LoadConfig()
		if err != nil {
			return nil, err
		}
		if apiURL != "" {
			cfg.Backend.URL = apiURL
		}
		return cfg, nil
	}

	cmd.AddCommand(newProcessCommand(deps, load))
	cmd.AddCommand(newHealthCommand(deps, load))

	return cmd
}
