package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanaql/hanaql/internal/core/domain"
)

func TestRender_NoResults(t *testing.T) {
	var buf strings.Builder
	NewTableRenderer(&buf).Render(domain.NewQueryResult([]string{"ID"}, nil))

	// Only the notice, no table delimiters.
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestRender_Table(t *testing.T) {
	result := domain.NewQueryResult(
		[]string{"ID", "NAME"},
		[][]any{{int64(1), "Alice"}, {int64(2), "Bob"}},
	)

	var buf strings.Builder
	NewTableRenderer(&buf).Render(result)

	// Widths: ID -> 2, NAME -> 5 ("Alice"), header length 10.
	want := strings.Join([]string{
		"",
		"==========",
		"ID | NAME ",
		"----------",
		"1  | Alice",
		"2  | Bob  ",
		"==========",
		"Total rows: 2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_MultibyteWidths(t *testing.T) {
	result := domain.NewQueryResult(
		[]string{"NAME", "N"},
		[][]any{{"Zoë", int64(1)}, {"Anna", int64(2)}},
	)

	var buf strings.Builder
	NewTableRenderer(&buf).Render(result)

	// "Zoë" is 4 bytes but 3 runes; padding counts runes so the
	// columns stay aligned.
	want := strings.Join([]string{
		"",
		"========",
		"NAME | N",
		"--------",
		"Zoë  | 1",
		"Anna | 2",
		"========",
		"Total rows: 2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_NullPlaceholder(t *testing.T) {
	result := domain.NewQueryResult(
		[]string{"VALUE"},
		[][]any{{nil}},
	)

	var buf strings.Builder
	NewTableRenderer(&buf).Render(result)

	assert.Contains(t, buf.String(), "NULL ")
}

func TestRender_WidthCappedAtFifty(t *testing.T) {
	long := strings.Repeat("x", 80)
	result := domain.NewQueryResult(
		[]string{"TEXT", "N"},
		[][]any{{long, int64(1)}, {"short", int64(2)}},
	)

	var buf strings.Builder
	NewTableRenderer(&buf).Render(result)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	// Header padding is computed against the 50-character cap.
	header := lines[2]
	assert.Equal(t, "TEXT"+strings.Repeat(" ", 46)+" | N", header)

	// The overlong value itself is printed uncapped.
	assert.Contains(t, buf.String(), long)

	// Short cells still pad to the capped width.
	assert.Contains(t, buf.String(), "short"+strings.Repeat(" ", 45)+" | 2")
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "NULL"},
		{name: "string", value: "abc", want: "abc"},
		{name: "bytes", value: []byte("raw"), want: "raw"},
		{name: "int64", value: int64(42), want: "42"},
		{name: "float", value: 3.14, want: "3.14"},
		{name: "bool", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringify(tt.value))
		})
	}
}
