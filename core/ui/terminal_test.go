package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRenderNoColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("ROUTE", "TOTAL").AlignRight(1)
	table.AddRow("direct", "94.1")
	table.AddHighlightedRow("Q521 / 514", "10.0")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ROUTE      │ TOTAL", lines[0])
	assert.Equal(t, "───────────┼──────", lines[1])
	assert.Equal(t, "direct     │  94.1", lines[2])
	assert.Equal(t, "Q521 / 514 │  10.0", lines[3])
	assert.Equal(t, 2, table.Rows())
}

func TestTableHighlightUsesColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	table := w.NewTable("A")
	table.AddHighlightedRow("x")
	table.Render()

	assert.Contains(t, buf.String(), Bold+Green+"x"+Reset)
}

func TestHeaderAndWarning(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Header("Portals")
	w.Warning("%d portals", 0)

	assert.Equal(t, "Portals\n! 0 portals\n", buf.String())
}
