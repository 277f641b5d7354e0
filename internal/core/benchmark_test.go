package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"testing"
)

// ============================================================================
// Conversion Function Benchmarks
// ============================================================================

// BenchmarkParseDecimal benchmarks numeric string parsing.
// This runs once per cell during type inference and again during conversion.
func BenchmarkParseDecimal(b *testing.B) {
	testCases := []string{
		"123",
		"-456.78",
		"1200.50",
		"1.5e3",       // Exponent, falls through to strconv
		"qty_missing", // Rejected
		".99",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			parseDecimal(tc)
		}
	}
}

// BenchmarkParseDecimal_Simple benchmarks the most common case: plain integers.
func BenchmarkParseDecimal_Simple(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parseDecimal("12345")
	}
}

// BenchmarkToQuantity benchmarks quantity coercion from text.
func BenchmarkToQuantity(b *testing.B) {
	values := []Value{Text("3"), Text(" 12 "), Text("2.5"), Text("qty_missing"), Int(4)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			toQuantity(v)
		}
	}
}

// BenchmarkNormalizeColumnName benchmarks header normalization.
func BenchmarkNormalizeColumnName(b *testing.B) {
	names := []string{
		" Product   Name ",
		"Price",
		"QTY ",
		"Unit__Price",
		"ÉTAT Client",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, n := range names {
			NormalizeColumnName(n)
		}
	}
}

// ============================================================================
// CSV Parsing Benchmarks
// ============================================================================

// BenchmarkReadCSV benchmarks loading and type inference.
func BenchmarkReadCSV(b *testing.B) {
	data := generateTestCSV(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ReadCSV(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReadCSV_Large benchmarks loading a larger CSV.
func BenchmarkReadCSV_Large(b *testing.B) {
	data := generateTestCSV(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ReadCSV(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCSVParsing_Comparison compares raw encoding/csv with ReadCSV,
// showing the cost of decoding and type inference.
func BenchmarkCSVParsing_Comparison(b *testing.B) {
	data := generateTestCSV(500)

	b.Run("Raw", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			r := csv.NewReader(bytes.NewReader(data))
			for {
				_, err := r.Read()
				if err == io.EOF {
					break
				}
			}
		}
	})

	b.Run("ReadCSV", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			ReadCSV(bytes.NewReader(data))
		}
	})
}

// ============================================================================
// Pipeline Benchmarks
// ============================================================================

// BenchmarkRun benchmarks the full cleaning pipeline on an already loaded dataset.
func BenchmarkRun(b *testing.B) {
	d, err := ReadCSV(bytes.NewReader(generateTestCSV(1000)))
	if err != nil {
		b.Fatal(err)
	}
	c := NewCleaner(DefaultOptions())
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Run(ctx, d); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRemoveCurrencySymbols benchmarks the currency stripping step alone.
func BenchmarkRemoveCurrencySymbols(b *testing.B) {
	d, err := ReadCSV(bytes.NewReader(generateTestCSV(1000)))
	if err != nil {
		b.Fatal(err)
	}
	c := NewCleaner(DefaultOptions())
	d = c.UniformColumnNames(d)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.RemoveCurrencySymbols(d)
	}
}

// BenchmarkWriteCSV benchmarks serialization of a cleaned dataset.
func BenchmarkWriteCSV(b *testing.B) {
	d, err := ReadCSV(bytes.NewReader(generateTestCSV(1000)))
	if err != nil {
		b.Fatal(err)
	}
	cleaned, _, err := NewCleaner(DefaultOptions()).Run(context.Background(), d)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		WriteCSV(io.Discard, cleaned)
	}
}

// ============================================================================
// Parallel Benchmarks
// ============================================================================

// BenchmarkParseDecimalParallel checks parseDecimal has no shared state contention.
func BenchmarkParseDecimalParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			parseDecimal("1200.50")
		}
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// generateTestCSV generates raw sales CSV data with the specified number of rows.
// Every fourth row carries a problem the pipeline removes.
func generateTestCSV(rows int) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Header
	w.Write([]string{" Product Name ", "Price", "QTY", "Region"})

	// Data rows
	for i := 0; i < rows; i++ {
		switch i % 4 {
		case 1:
			w.Write([]string{"Gadget", "$15.00", "qty_missing", "South"})
		case 2:
			w.Write([]string{"Gizmo", "-5", "3", " East "})
		default:
			w.Write([]string{"Widget", "$1,234.56", "2", "North"})
		}
	}
	w.Flush()

	return buf.Bytes()
}
