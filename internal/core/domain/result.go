package domain

// QueryResult holds the fully materialized result of a single query.
// Columns is order-significant and matches the result-set column order;
// every row has exactly len(Columns) values. A QueryResult is built once
// per executed query and not modified afterwards.
type QueryResult struct {
	Columns  []string
	Rows     [][]any
	RowCount int
}

// NewQueryResult creates a query result. RowCount is always recomputed
// from rows, never supplied by the caller.
func NewQueryResult(columns []string, rows [][]any) *QueryResult {
	return &QueryResult{
		Columns:  columns,
		Rows:     rows,
		RowCount: len(rows),
	}
}
