// Package ports defines the interfaces (ports) for the hexagonal architecture.
package ports

import (
	"context"

	"github.com/hanaql/hanaql/internal/core/domain"
)

// DatabasePort defines the interface for database operations
type DatabasePort interface {
	// Connect establishes a session to the database. It validates the
	// connection config before dialing.
	Connect(ctx context.Context) error

	// Ping verifies the session is still alive
	Ping(ctx context.Context) error

	// Query executes a statement through the session and returns the
	// result-set column names plus all rows, fully materialized.
	Query(ctx context.Context, sql string) (columns []string, rows [][]any, err error)

	// ServerInfo retrieves information about the connected database
	ServerInfo(ctx context.Context) (*domain.ServerInfo, error)

	// Close releases the session. It never fails; release errors are
	// logged since Close runs in the guaranteed-cleanup path of every
	// command. Safe to call when no session was ever established.
	Close()
}
