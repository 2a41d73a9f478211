// Package services contains the business logic services.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hanaql/hanaql/internal/core/domain"
	"github.com/hanaql/hanaql/internal/core/ports"
	"github.com/hanaql/hanaql/internal/security"
)

// DefaultMaxRows is the row cap appended to unbounded queries.
const DefaultMaxRows = 1000

// QueryExecutor validates a query against the allow-list, caps its row
// count and executes it through a database port.
type QueryExecutor struct {
	db      ports.DatabasePort
	logger  zerolog.Logger
	maxRows int
}

// NewQueryExecutor creates a new query executor. maxRows <= 0 selects
// the default cap.
func NewQueryExecutor(db ports.DatabasePort, logger zerolog.Logger, maxRows int) *QueryExecutor {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &QueryExecutor{
		db:      db,
		logger:  logger,
		maxRows: maxRows,
	}
}

// Execute runs a single SELECT statement and materializes its result.
// Empty or non-SELECT input fails before any round trip to the server.
// The statement performs exactly one round trip and is never retried.
func (e *QueryExecutor) Execute(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	if strings.TrimSpace(sqlText) == "" {
		e.logger.Error().Msg("empty query provided")
		return nil, &domain.EmptyQueryError{}
	}

	if !security.IsSelectQuery(sqlText) {
		e.logger.Error().Msg("only SELECT queries are allowed")
		return nil, &domain.DisallowedQueryError{Query: sqlText}
	}

	stmt := ApplyRowLimit(sqlText, e.maxRows)
	if stmt != sqlText {
		e.logger.Debug().Int("max_rows", e.maxRows).Msg("appended row cap")
	}

	columns, rows, err := e.db.Query(ctx, stmt)
	if err != nil {
		e.logger.Error().Err(err).Msg("query execution failed")
		return nil, &domain.ExecutionError{Err: err}
	}

	result := domain.NewQueryResult(columns, rows)
	e.logger.Debug().Int("rows", result.RowCount).Int("columns", len(columns)).Msg("query executed")
	return result, nil
}

// ApplyRowLimit appends a row cap clause to sqlText unless its
// upper-cased form already contains the token LIMIT. The rewrite is
// purely textual: a SELECT whose text contains "limit" anywhere (even
// inside a string literal or subquery) is treated as already limited
// and left unmodified. A single trailing semicolon is stripped before
// the clause is appended.
func ApplyRowLimit(sqlText string, maxRows int) string {
	if strings.Contains(strings.ToUpper(sqlText), "LIMIT") {
		return sqlText
	}
	return fmt.Sprintf("%s LIMIT %d", strings.TrimSuffix(sqlText, ";"), maxRows)
}
