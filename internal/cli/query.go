package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hanaql/hanaql/internal/adapters/hana"
	"github.com/hanaql/hanaql/internal/config"
	"github.com/hanaql/hanaql/internal/core/ports"
	"github.com/hanaql/hanaql/internal/core/services"
	"github.com/hanaql/hanaql/internal/logging"
	"github.com/hanaql/hanaql/internal/render"
)

// runQuery wires the concrete adapter and runs the query end-to-end
func runQuery(cmd *cobra.Command, args []string) error {
	// The argument count is valid by now; a runtime failure is not a
	// usage error and must not echo the usage text.
	cmd.SilenceUsage = true
	logger := logging.New(os.Stderr, verbose)

	cfg, err := config.Load(envFile, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, cancel := commandContext(timeout)
	defer cancel()

	adapter := hana.NewAdapter(cfg, logger)
	return executeQuery(ctx, adapter, args[0], maxRows, os.Stdout, logger)
}

// executeQuery runs a single query against db and renders the result to
// out. The session is released on every exit path, including connect
// and execution failures, and exactly once per run.
func executeQuery(ctx context.Context, db ports.DatabasePort, sqlText string, maxRows int, out io.Writer, logger zerolog.Logger) error {
	defer db.Close()

	if err := db.Connect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return fmt.Errorf("connection failed: %w", err)
	}

	executor := services.NewQueryExecutor(db, logger, maxRows)
	result, err := executor.Execute(ctx, sqlText)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	render.NewTableRenderer(out).Render(result)
	return nil
}

// commandContext builds the bounding context for one command run. A
// zero timeout falls back to the driver's own behavior.
func commandContext(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}
