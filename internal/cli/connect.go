package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hanaql/hanaql/internal/adapters/hana"
	"github.com/hanaql/hanaql/internal/config"
	"github.com/hanaql/hanaql/internal/core/ports"
	"github.com/hanaql/hanaql/internal/logging"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Test connection to the HANA database",
	Long: `Test the connection to a SAP HANA Cloud database and display basic
database information.

This command verifies that the configured credentials are valid by
establishing a session and reading the M_DATABASE monitoring view. It
executes no user-supplied SQL.

Example:
  HANA_HOST=myinstance.hanacloud.ondemand.com HANA_USER=DBADMIN HANA_PASSWORD=secret hanaql connect`,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

// runConnect wires the concrete adapter and runs the connection probe
func runConnect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	logger := logging.New(os.Stderr, verbose)

	cfg, err := config.Load(envFile, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	fmt.Printf("Connecting to %s...\n", cfg.SafeString())

	ctx, cancel := commandContext(timeout)
	defer cancel()

	return probeConnection(ctx, hana.NewAdapter(cfg, logger), os.Stdout, logger)
}

// probeConnection establishes a session, verifies it is alive and
// prints database information to out. The session is released on every
// exit path, including connect and probe failures, and exactly once
// per run.
func probeConnection(ctx context.Context, db ports.DatabasePort, out io.Writer, logger zerolog.Logger) error {
	defer db.Close()

	if err := db.Connect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return fmt.Errorf("connection failed: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("session not alive")
		return fmt.Errorf("connection not alive: %w", err)
	}

	fmt.Fprintln(out, "Connection successful.")

	info, err := db.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server info: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "Database:   %s\n", info.DatabaseName)
	fmt.Fprintf(out, "Host:       %s\n", info.Host)
	fmt.Fprintf(out, "Version:    %s\n", info.Version)
	fmt.Fprintf(out, "Usage:      %s\n", info.Usage)
	fmt.Fprintf(out, "Started:    %s\n", info.StartTime)
	fmt.Fprintln(out, strings.Repeat("-", 60))

	return nil
}
