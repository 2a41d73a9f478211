// Package render formats query results as fixed-width text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/hanaql/hanaql/internal/core/domain"
)

// maxColumnWidth caps the computed display width of a column. Values
// longer than the cap are printed in full; only the padding is computed
// against the cap, so alignment degrades gracefully for overlong cells.
const maxColumnWidth = 50

// nullPlaceholder is the literal shown for NULL cells.
const nullPlaceholder = "NULL"

// TableRenderer writes query results as a fixed-width table
type TableRenderer struct {
	w io.Writer
}

// NewTableRenderer creates a renderer writing to w
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{w: w}
}

// Render writes the result as a table: a "=" separator sized to the
// header, the header row, a "-" separator, one line per data row, a
// closing "=" separator and a total row count. Columns are joined by
// " | " with each cell left-justified to its column width. An empty
// result produces only a no-results notice.
func (r *TableRenderer) Render(result *domain.QueryResult) {
	if result == nil || result.RowCount == 0 {
		fmt.Fprintln(r.w, "No results found.")
		return
	}

	widths := columnWidths(result)

	cells := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		cells[i] = pad(col, widths[i])
	}
	header := strings.Join(cells, " | ")
	headerWidth := utf8.RuneCountInString(header)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", headerWidth))
	fmt.Fprintln(r.w, header)
	fmt.Fprintln(r.w, strings.Repeat("-", headerWidth))

	for _, row := range result.Rows {
		for i := range result.Columns {
			cells[i] = pad(stringify(row[i]), widths[i])
		}
		fmt.Fprintln(r.w, strings.Join(cells, " | "))
	}

	fmt.Fprintln(r.w, strings.Repeat("=", headerWidth))
	fmt.Fprintf(r.w, "Total rows: %d\n", result.RowCount)
}

// columnWidths computes the display width of each column: the longer of
// the column name and the longest stringified cell, capped at
// maxColumnWidth. Widths count runes, not bytes, so multibyte values
// stay aligned.
func columnWidths(result *domain.QueryResult) []int {
	widths := make([]int, len(result.Columns))
	for i, col := range result.Columns {
		width := utf8.RuneCountInString(col)
		for _, row := range result.Rows {
			if l := utf8.RuneCountInString(stringify(row[i])); l > width {
				width = l
			}
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		widths[i] = width
	}
	return widths
}

// pad left-justifies s to width runes without truncating overlong values
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// stringify converts a cell value to its default textual
// representation. NULL becomes a literal placeholder, byte slices are
// shown as text, everything else uses its default formatting. No
// locale-specific number formatting is applied.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return nullPlaceholder
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
