// Package hana provides the SAP HANA database adapter implementation.
package hana

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/SAP/go-hdb/driver" // HANA driver
	"github.com/rs/zerolog"

	"github.com/hanaql/hanaql/internal/core/domain"
)

// Adapter implements the DatabasePort interface for SAP HANA. It owns a
// single session: the pool handle plus one pinned connection through
// which every statement is executed. The session is never shared across
// goroutines; this tool is single-query, single-threaded.
type Adapter struct {
	config *domain.ConnectionConfig
	logger zerolog.Logger
	db     *sql.DB
	conn   *sql.Conn
}

// NewAdapter creates a new HANA adapter
func NewAdapter(config *domain.ConnectionConfig, logger zerolog.Logger) *Adapter {
	return &Adapter{
		config: config,
		logger: logger,
	}
}

// Connect establishes a session to the HANA database. Missing
// credentials fail with a configuration error before any network I/O;
// dial, authentication and TLS failures fail with a connection error
// carrying the cause.
func (a *Adapter) Connect(ctx context.Context) error {
	if err := a.config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("hdb", a.config.DSN())
	if err != nil {
		return &domain.ConnectionError{Err: err}
	}

	// One session for the lifetime of the process.
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return &domain.ConnectionError{Err: err}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		db.Close()
		return &domain.ConnectionError{Err: err}
	}

	a.db = db
	a.conn = conn
	a.logger.Debug().Str("target", a.config.SafeString()).Msg("session established")
	return nil
}

// Ping verifies the session is still alive
func (a *Adapter) Ping(ctx context.Context) error {
	if a.conn == nil {
		return fmt.Errorf("not connected")
	}
	return a.conn.PingContext(ctx)
}

// Query executes a statement through the pinned connection and fully
// materializes the result set. Column names come from the result-set
// descriptors, in result order. Driver errors are returned as-is; the
// caller classifies them.
func (a *Adapter) Query(ctx context.Context, sqlText string) ([]string, [][]any, error) {
	if a.conn == nil {
		return nil, nil, fmt.Errorf("not connected")
	}

	rows, err := a.conn.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var result [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}
		result = append(result, values)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, result, nil
}

// ServerInfo retrieves information about the connected database from
// the M_DATABASE monitoring view.
func (a *Adapter) ServerInfo(ctx context.Context) (*domain.ServerInfo, error) {
	if a.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	query := `
		SELECT
			DATABASE_NAME,
			HOST,
			VERSION,
			USAGE,
			TO_VARCHAR(START_TIME, 'YYYY-MM-DD HH24:MI:SS')
		FROM M_DATABASE
	`

	info := &domain.ServerInfo{}
	row := a.conn.QueryRowContext(ctx, query)
	if err := row.Scan(&info.DatabaseName, &info.Host, &info.Version, &info.Usage, &info.StartTime); err != nil {
		return nil, fmt.Errorf("failed to get server info: %w", err)
	}

	return info, nil
}

// Close releases the pinned connection, then the pool handle. Each
// release is guarded independently so a failure on one does not prevent
// the other. Failures are logged, never returned: Close runs in the
// guaranteed-cleanup path after the command outcome is already
// determined. Safe to call when never connected, and idempotent.
func (a *Adapter) Close() {
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("error closing connection")
		}
		a.conn = nil
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("error closing session")
		}
		a.db = nil
	}
}
