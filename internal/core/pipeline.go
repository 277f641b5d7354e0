package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/salesclean/internal/logging"
)

// Step is one named transform of the pipeline.
type Step struct {
	Name  string
	Apply func(*Dataset) (*Dataset, error)
}

// StepResult records the row counts around one step.
type StepResult struct {
	Name    string
	RowsIn  int
	RowsOut int
}

// RunResult summarizes a pipeline run.
type RunResult struct {
	Steps    []StepResult
	Duration time.Duration
}

// RowsDropped returns how many rows the run removed in total.
func (r RunResult) RowsDropped() int {
	if len(r.Steps) == 0 {
		return 0
	}
	return r.Steps[0].RowsIn - r.Steps[len(r.Steps)-1].RowsOut
}

// Steps returns the default cleaning order. The order matters:
// names are normalized before renaming so "QTY " still matches "qty",
// currency symbols go before conversion, and both filters need converted
// columns.
func (c *Cleaner) Steps() []Step {
	return []Step{
		{Name: "strip_column_whitespace", Apply: infallible(c.StripColumnWhitespace)},
		{Name: "uniform_column_names", Apply: infallible(c.UniformColumnNames)},
		{Name: "rename_columns", Apply: infallible(c.RenameColumns)},
		{Name: "strip_whitespace", Apply: infallible(c.StripWhitespace)},
		{Name: "remove_currency_symbols", Apply: infallible(c.RemoveCurrencySymbols)},
		{Name: "convert_data_types", Apply: c.ConvertDataTypes},
		{Name: "drop_missing_values", Apply: c.DropMissingValues},
		{Name: "remove_invalid_rows", Apply: c.RemoveInvalidRows},
	}
}

func infallible(fn func(*Dataset) *Dataset) func(*Dataset) (*Dataset, error) {
	return func(d *Dataset) (*Dataset, error) {
		return fn(d), nil
	}
}

// Run applies Steps to d in order and returns the cleaned Dataset.
// It stops at the first failing step; the context is checked between steps.
func (c *Cleaner) Run(ctx context.Context, d *Dataset) (*Dataset, RunResult, error) {
	logger := logging.FromContext(ctx)
	cl := c.withLogger(logger)

	start := time.Now()
	var result RunResult

	for _, step := range cl.Steps() {
		if err := ctx.Err(); err != nil {
			return nil, result, fmt.Errorf("run stopped before %s: %w", step.Name, err)
		}

		rowsIn := d.Len()
		next, err := step.Apply(d)
		if err != nil {
			// typed errors already name the step
			return nil, result, fmt.Errorf("cleaning: %w", err)
		}

		result.Steps = append(result.Steps, StepResult{Name: step.Name, RowsIn: rowsIn, RowsOut: next.Len()})
		logging.WithFields(ctx, "step", step.Name).Debug("step complete",
			"rows_in", rowsIn,
			"rows_out", next.Len(),
		)
		d = next
	}

	result.Duration = time.Since(start)
	logger.Info("cleaning complete",
		"rows", d.Len(),
		"columns", d.Width(),
		"rows_dropped", result.RowsDropped(),
		"duration", result.Duration,
	)

	return d, result, nil
}
