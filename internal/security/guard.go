// Package security provides the read-only allow-list guard for SQL
// statements. No statement reaches the server without passing it.
package security

import "strings"

// NormalizeSQL trims leading/trailing whitespace, collapses internal
// whitespace runs to single spaces and upper-cases the result.
func NormalizeSQL(sql string) string {
	return strings.ToUpper(strings.Join(strings.Fields(sql), " "))
}

// IsSelectQuery reports whether sql is a permitted read-only query:
// its normalized form starts with SELECT. Pure function, case- and
// whitespace-insensitive.
//
// This is a syntactic allow-list, not a parser. It does not detect a
// SELECT hidden behind a leading comment, a multi-statement batch
// ("SELECT ...; DROP ..."), or a CTE that starts with WITH. Tightening
// it would change which statements users can run, so the heuristic is
// kept as-is.
func IsSelectQuery(sql string) bool {
	return strings.HasPrefix(NormalizeSQL(sql), "SELECT")
}
