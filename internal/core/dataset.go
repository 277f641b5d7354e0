package core

// dataset.go holds the in-memory table every transform works on.
//
// A Dataset is treated as immutable: transforms build a new Dataset and may
// share untouched Value slices with their input, so no code in this package
// writes into a Values slice after the Dataset owning it has been returned.

import (
	"fmt"
	"regexp"
	"strconv"
)

// integerRegex matches plain integer text, with an optional sign.
var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// naValues are the cell texts a loaded file treats as missing.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-NaN":     true,
	"-nan":     true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// Dataset is an ordered collection of named columns of equal length.
// Column names may repeat; lookups by name return the first match.
type Dataset struct {
	columns []Column
	rows    int
}

// NewDataset builds a Dataset from columns, which must all have the same length.
func NewDataset(columns ...Column) (*Dataset, error) {
	d := &Dataset{columns: make([]Column, len(columns))}
	for i, col := range columns {
		if i == 0 {
			d.rows = len(col.Values)
		} else if len(col.Values) != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), d.rows)
		}
		d.columns[i] = Column{Name: col.Name, Values: append([]Value(nil), col.Values...)}
	}
	return d, nil
}

// FromRecords builds a Dataset from a header and string records.
//
// Records shorter than the header are padded with missing values. NA-style
// texts ("", "NA", "NaN", "null", ...) load as missing. A column whose
// remaining cells all parse as integers loads as integers; failing that, one
// whose cells all parse as decimals loads as floats; anything else stays text.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	d := &Dataset{columns: make([]Column, len(header)), rows: len(records)}

	for c, name := range header {
		raw := make([]string, len(records))
		for r, rec := range records {
			if len(rec) > len(header) {
				return nil, fmt.Errorf("record %d has %d fields, header has %d", r+1, len(rec), len(header))
			}
			if c < len(rec) {
				raw[r] = rec[c]
			}
		}
		d.columns[c] = Column{Name: name, Values: inferColumn(raw)}
	}

	return d, nil
}

// inferColumn types a column of raw cell texts.
func inferColumn(raw []string) []Value {
	allInt, allFloat := true, true
	for _, s := range raw {
		if naValues[s] {
			continue
		}
		if allInt && !integerRegex.MatchString(s) {
			allInt = false
		}
		if _, ok := parseDecimal(s); !ok {
			// integer text too large for a float is not numeric either
			allInt, allFloat = false, false
			break
		}
	}

	out := make([]Value, len(raw))
	for i, s := range raw {
		if naValues[s] {
			continue
		}
		switch {
		case allInt:
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				out[i] = Int(n)
				continue
			}
			f, _ := parseDecimal(s)
			out[i] = Float(f)
		case allFloat:
			f, _ := parseDecimal(s)
			out[i] = Float(f)
		default:
			out[i] = Text(s)
		}
	}
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.columns) }

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Index returns the position of the first column called name, or -1.
func (d *Dataset) Index(name string) int {
	for i, col := range d.columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Values returns the cells of the first column called name.
// The returned slice must not be modified.
func (d *Dataset) Values(name string) ([]Value, bool) {
	idx := d.Index(name)
	if idx < 0 {
		return nil, false
	}
	return d.columns[idx].Values, true
}

// Row returns a copy of the cells at row i, in column order.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.columns))
	for c, col := range d.columns {
		row[c] = col.Values[i]
	}
	return row
}

// Head returns a Dataset holding at most the first n rows.
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	if n > d.rows {
		n = d.rows
	}
	out := &Dataset{columns: make([]Column, len(d.columns)), rows: n}
	for i, col := range d.columns {
		out.columns[i] = Column{Name: col.Name, Values: col.Values[:n:n]}
	}
	return out
}

// withNames returns a Dataset sharing d's cells under new column names.
func (d *Dataset) withNames(rename func(string) string) *Dataset {
	out := &Dataset{columns: make([]Column, len(d.columns)), rows: d.rows}
	for i, col := range d.columns {
		out.columns[i] = Column{Name: rename(col.Name), Values: col.Values}
	}
	return out
}

// mapColumn returns a Dataset where column idx has fn applied to every cell.
func (d *Dataset) mapColumn(idx int, fn func(Value) Value) *Dataset {
	out := &Dataset{columns: append([]Column(nil), d.columns...), rows: d.rows}
	src := d.columns[idx].Values
	mapped := make([]Value, len(src))
	for r, v := range src {
		mapped[r] = fn(v)
	}
	out.columns[idx] = Column{Name: d.columns[idx].Name, Values: mapped}
	return out
}

// filter keeps the rows for which keep returns true, in their original order,
// removing the same row index from every column.
func (d *Dataset) filter(keep func(row int) bool) *Dataset {
	kept := make([]int, 0, d.rows)
	for r := 0; r < d.rows; r++ {
		if keep(r) {
			kept = append(kept, r)
		}
	}

	out := &Dataset{columns: make([]Column, len(d.columns)), rows: len(kept)}
	for i, col := range d.columns {
		vals := make([]Value, len(kept))
		for j, r := range kept {
			vals[j] = col.Values[r]
		}
		out.columns[i] = Column{Name: col.Name, Values: vals}
	}
	return out
}
