package report

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/salesclean/internal/core"
)

func dataset(t *testing.T, prices, quantities []core.Value) *core.Dataset {
	t.Helper()
	d, err := core.NewDataset(
		core.Column{Name: "price", Values: prices},
		core.Column{Name: "quantity", Values: quantities},
	)
	require.NoError(t, err)
	return d
}

func TestSummarize(t *testing.T) {
	d := dataset(t,
		[]core.Value{core.Float(15), core.Float(2000), core.Float(5), core.Missing()},
		[]core.Value{core.Int(3), core.Int(2), core.Float(0.5), core.Int(7)},
	)

	s, err := Summarize(d, "price", "quantity")
	require.NoError(t, err)

	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 3, s.PricedRows)
	assert.Equal(t, 5.0, s.PriceMin)
	assert.Equal(t, 2000.0, s.PriceMax)
	assert.InDelta(t, 673.333333, s.PriceMean, 1e-6)
	assert.Equal(t, 15.0, s.PriceMedian)
	assert.Equal(t, 5.5, s.TotalQuantity)
	assert.Equal(t, 15*3+2000*2+5*0.5, s.Revenue)
}

func TestSummarize_NoPricedRows(t *testing.T) {
	d := dataset(t, []core.Value{core.Missing()}, []core.Value{core.Int(1)})

	s, err := Summarize(d, "price", "quantity")
	require.NoError(t, err)

	assert.Equal(t, Summary{Rows: 1}, s)
}

func TestSummarize_MissingColumn(t *testing.T) {
	d := dataset(t, []core.Value{core.Float(1)}, []core.Value{core.Int(1)})

	_, err := Summarize(d, "price", "qty")

	var colErr *core.ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "qty", colErr.Column)
	assert.Equal(t, "summarize", colErr.Op)
}

func TestSummary_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("sales summary", "summary", Summary{Rows: 2, PricedRows: 2, Revenue: 12.5})

	out := buf.String()
	assert.Contains(t, out, "summary.rows=2")
	assert.Contains(t, out, "summary.revenue=12.5")
}
