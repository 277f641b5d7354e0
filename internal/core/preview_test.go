package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPreview(t *testing.T) {
	d := mustDataset(t,
		Column{Name: "product_name", Values: []Value{Text("Gadget"), Text("Doohickey"), Text("Thing")}},
		Column{Name: "price", Values: []Value{Float(15), Float(2000.5), Missing()}},
		Column{Name: "quantity", Values: []Value{Int(3), Int(2), Int(4)}},
	)

	var buf bytes.Buffer
	require.NoError(t, FormatPreview(&buf, d, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header plus two rows")

	assert.Equal(t, []string{"product_name", "price", "quantity"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "Gadget", "15", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "Doohickey", "2000.5", "2"}, strings.Fields(lines[2]))

	// columns line up
	assert.Equal(t, strings.Index(lines[0], "price"), strings.Index(lines[1], "15"))
}

func TestFormatPreview_MissingCells(t *testing.T) {
	d := mustDataset(t, Column{Name: "price", Values: []Value{Missing()}})

	var buf bytes.Buffer
	require.NoError(t, FormatPreview(&buf, d, 5))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"0", "NaN"}, strings.Fields(lines[1]))
}

func TestFormatPreview_EmptyDataset(t *testing.T) {
	d := mustDataset(t,
		Column{Name: "price", Values: []Value{}},
		Column{Name: "quantity", Values: []Value{}},
	)

	var buf bytes.Buffer
	require.NoError(t, FormatPreview(&buf, d, 5))

	assert.Equal(t, []string{"price", "quantity"}, strings.Fields(buf.String()))
}
