package core

import (
	"log/slog"
	"strings"
)

// Options configures a Cleaner.
type Options struct {
	PriceColumn     string            // column holding unit price (default "price")
	QuantityColumn  string            // column holding quantity (default "quantity")
	Renames         map[string]string // applied by RenameColumns, old name -> new name
	CurrencySymbols []string          // removed by RemoveCurrencySymbols along with ","
}

// DefaultOptions returns the options used for the standard sales export.
func DefaultOptions() Options {
	return Options{
		PriceColumn:     "price",
		QuantityColumn:  "quantity",
		Renames:         map[string]string{"qty": "quantity"},
		CurrencySymbols: []string{"$", "€", "£", "¥"},
	}
}

// Cleaner holds the transforms of the cleaning pipeline. Every transform
// takes a Dataset and returns a new one; the input is left as it was.
type Cleaner struct {
	opts     Options
	currency *strings.Replacer
	logger   *slog.Logger
}

// NewCleaner creates a Cleaner. Column names and rename entries are passed
// through NormalizeColumnName, since the transforms compare them against
// normalized headers. Empty column names fall back to the defaults.
func NewCleaner(opts Options) *Cleaner {
	def := DefaultOptions()
	opts.PriceColumn = NormalizeColumnName(opts.PriceColumn)
	opts.QuantityColumn = NormalizeColumnName(opts.QuantityColumn)
	if opts.Renames != nil {
		renames := make(map[string]string, len(opts.Renames))
		for from, to := range opts.Renames {
			renames[NormalizeColumnName(from)] = NormalizeColumnName(to)
		}
		opts.Renames = renames
	}
	if opts.PriceColumn == "" {
		opts.PriceColumn = def.PriceColumn
	}
	if opts.QuantityColumn == "" {
		opts.QuantityColumn = def.QuantityColumn
	}
	if opts.Renames == nil {
		opts.Renames = def.Renames
	}
	if opts.CurrencySymbols == nil {
		opts.CurrencySymbols = def.CurrencySymbols
	}

	pairs := make([]string, 0, 2*len(opts.CurrencySymbols)+2)
	for _, sym := range opts.CurrencySymbols {
		if sym != "" {
			pairs = append(pairs, sym, "")
		}
	}
	pairs = append(pairs, ",", "")

	return &Cleaner{
		opts:     opts,
		currency: strings.NewReplacer(pairs...),
		logger:   slog.Default(),
	}
}

// Options returns the options the Cleaner was built with.
func (c *Cleaner) Options() Options { return c.opts }

// withLogger returns a shallow copy of c that logs to logger.
func (c *Cleaner) withLogger(logger *slog.Logger) *Cleaner {
	cp := *c
	cp.logger = logger
	return &cp
}

// StripColumnWhitespace trims surrounding whitespace from column names only.
func (c *Cleaner) StripColumnWhitespace(d *Dataset) *Dataset {
	return d.withNames(strings.TrimSpace)
}

// UniformColumnNames applies NormalizeColumnName to every column name.
// Cells and row count are untouched.
func (c *Cleaner) UniformColumnNames(d *Dataset) *Dataset {
	return d.withNames(NormalizeColumnName)
}

// RenameColumns applies the rename table. Names without an entry pass through.
func (c *Cleaner) RenameColumns(d *Dataset) *Dataset {
	return d.withNames(func(name string) string {
		if to, ok := c.opts.Renames[name]; ok {
			return to
		}
		return name
	})
}

// StripWhitespace trims surrounding whitespace from every text cell.
// Numeric and missing cells are untouched.
func (c *Cleaner) StripWhitespace(d *Dataset) *Dataset {
	out := d
	for i, col := range d.columns {
		if !hasText(col.Values) {
			continue
		}
		out = out.mapColumn(i, func(v Value) Value {
			if s, ok := v.AsText(); ok {
				return Text(strings.TrimSpace(s))
			}
			return v
		})
	}
	return out
}

// RemoveCurrencySymbols removes currency symbols and thousands separators
// from the text cells of the price column. Sign and decimal point are kept.
// A dataset without a price column is returned unchanged.
func (c *Cleaner) RemoveCurrencySymbols(d *Dataset) *Dataset {
	idx := d.Index(c.opts.PriceColumn)
	if idx < 0 {
		c.logger.Debug("price column absent, currency symbols left in place",
			"column", c.opts.PriceColumn)
		return d
	}

	return d.mapColumn(idx, func(v Value) Value {
		if s, ok := v.AsText(); ok {
			return Text(c.currency.Replace(s))
		}
		return v
	})
}

// ConvertDataTypes converts the price column to floats and the quantity
// column to integers (floats where a value is fractional). Cells that do not
// parse become missing.
//
// Must run after RemoveCurrencySymbols: "$5" does not parse and would be
// lost. Returns a *ColumnError if either column is absent.
func (c *Cleaner) ConvertDataTypes(d *Dataset) (*Dataset, error) {
	priceIdx, qtyIdx, err := c.requireColumns("convert_data_types", d)
	if err != nil {
		return nil, err
	}

	out := d.mapColumn(priceIdx, toFloat)
	return out.mapColumn(qtyIdx, toQuantity), nil
}

// DropMissingValues removes every row whose price or quantity is missing.
// Surviving rows keep their order.
//
// Precondition: ConvertDataTypes has run, so that values that failed to
// parse are already missing. Returns a *ColumnError if either column is absent.
func (c *Cleaner) DropMissingValues(d *Dataset) (*Dataset, error) {
	priceIdx, qtyIdx, err := c.requireColumns("drop_missing_values", d)
	if err != nil {
		return nil, err
	}

	price, qty := d.columns[priceIdx].Values, d.columns[qtyIdx].Values
	return d.filter(func(r int) bool {
		return !price[r].IsMissing() && !qty[r].IsMissing()
	}), nil
}

// RemoveInvalidRows removes rows where price or quantity is negative.
// Missing cells are kept; dropping them is DropMissingValues' job.
//
// Precondition: ConvertDataTypes has run. A text cell in either column
// yields a *TypeError. Returns a *ColumnError if either column is absent.
func (c *Cleaner) RemoveInvalidRows(d *Dataset) (*Dataset, error) {
	const op = "remove_invalid_rows"

	priceIdx, qtyIdx, err := c.requireColumns(op, d)
	if err != nil {
		return nil, err
	}

	for _, idx := range []int{priceIdx, qtyIdx} {
		col := d.columns[idx]
		for r, v := range col.Values {
			if v.kind == KindText {
				return nil, &TypeError{Op: op, Column: col.Name, Row: r, Kind: v.kind}
			}
		}
	}

	price, qty := d.columns[priceIdx].Values, d.columns[qtyIdx].Values
	return d.filter(func(r int) bool {
		return !isNegative(price[r]) && !isNegative(qty[r])
	}), nil
}

// requireColumns looks up the price and quantity columns.
func (c *Cleaner) requireColumns(op string, d *Dataset) (priceIdx, qtyIdx int, err error) {
	priceIdx = d.Index(c.opts.PriceColumn)
	if priceIdx < 0 {
		return 0, 0, &ColumnError{Op: op, Column: c.opts.PriceColumn}
	}
	qtyIdx = d.Index(c.opts.QuantityColumn)
	if qtyIdx < 0 {
		return 0, 0, &ColumnError{Op: op, Column: c.opts.QuantityColumn}
	}
	return priceIdx, qtyIdx, nil
}

func isNegative(v Value) bool {
	f, ok := v.AsFloat()
	return ok && f < 0
}

func hasText(values []Value) bool {
	for _, v := range values {
		if v.kind == KindText {
			return true
		}
	}
	return false
}
