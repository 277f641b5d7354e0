// Package report summarizes a cleaned sales dataset.
package report

import (
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"github.com/JonMunkholm/salesclean/internal/core"
)

// Summary holds headline figures for a cleaned dataset.
// Price statistics and totals cover rows where both price and quantity are numeric.
type Summary struct {
	Rows          int
	PricedRows    int
	PriceMin      float64
	PriceMax      float64
	PriceMean     float64
	PriceMedian   float64
	TotalQuantity float64
	Revenue       float64 // sum of price * quantity
}

// Summarize computes a Summary over the price and quantity columns of d.
func Summarize(d *core.Dataset, priceCol, qtyCol string) (Summary, error) {
	prices, ok := d.Values(priceCol)
	if !ok {
		return Summary{}, &core.ColumnError{Op: "summarize", Column: priceCol}
	}
	qtys, ok := d.Values(qtyCol)
	if !ok {
		return Summary{}, &core.ColumnError{Op: "summarize", Column: qtyCol}
	}

	s := Summary{Rows: d.Len()}
	var p, q stats.Float64Data
	for i := range prices {
		price, okP := prices[i].AsFloat()
		qty, okQ := qtys[i].AsFloat()
		if !okP || !okQ {
			continue
		}
		p = append(p, price)
		q = append(q, qty)
		s.Revenue += price * qty
	}

	s.PricedRows = len(p)
	if s.PricedRows == 0 {
		return s, nil
	}

	var err error
	if s.PriceMin, err = stats.Min(p); err != nil {
		return s, fmt.Errorf("price min: %w", err)
	}
	if s.PriceMax, err = stats.Max(p); err != nil {
		return s, fmt.Errorf("price max: %w", err)
	}
	if s.PriceMean, err = stats.Mean(p); err != nil {
		return s, fmt.Errorf("price mean: %w", err)
	}
	if s.PriceMedian, err = stats.Median(p); err != nil {
		return s, fmt.Errorf("price median: %w", err)
	}
	if s.TotalQuantity, err = stats.Sum(q); err != nil {
		return s, fmt.Errorf("quantity sum: %w", err)
	}

	return s, nil
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rows", s.Rows),
		slog.Int("priced_rows", s.PricedRows),
		slog.Float64("price_min", s.PriceMin),
		slog.Float64("price_max", s.PriceMax),
		slog.Float64("price_mean", s.PriceMean),
		slog.Float64("price_median", s.PriceMedian),
		slog.Float64("total_quantity", s.TotalQuantity),
		slog.Float64("revenue", s.Revenue),
	)
}
