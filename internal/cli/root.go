// Package cli provides the command-line interface for hanaql.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	envFile string
	verbose bool
	maxRows int
	timeout time.Duration

	// Version information
	version = "0.1.0"
)

// rootCmd represents the base command. It takes the SQL text as its
// single positional argument and runs the query end-to-end.
var rootCmd = &cobra.Command{
	Use:   `hanaql "SELECT ..."`,
	Short: "hanaql - read-only SQL query tool for SAP HANA Cloud",
	Long: `hanaql executes a single SELECT statement against a SAP HANA Cloud
database and renders the result as a fixed-width text table.

Only SELECT statements are accepted, and a row cap is appended to
unbounded queries so the server never returns more rows than the
configured maximum.

Connection parameters are read from the environment (or a local .env
file): HANA_HOST, HANA_PORT (default 443), HANA_USER, HANA_PASSWORD.

Example:
  hanaql "SELECT SCHEMA_NAME, TABLE_NAME FROM TABLES"`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runQuery,

	// Execute prints the error exactly once; cobra must not print it a
	// second time. Usage stays on for wrong-argument-count errors; the
	// RunE handlers switch it off once arguments have been accepted.
	SilenceErrors: true,
}

// Execute runs the root command and sets the process exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout for connect and query (0 disables)")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", 1000, "Row cap appended to queries without a LIMIT clause")
}
