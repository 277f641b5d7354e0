// Package config provides centralized configuration for the cleaning job.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths   PathConfig
	Clean   CleanConfig
	Logging LoggingConfig
}

// PathConfig holds the input and output file locations.
type PathConfig struct {
	// Input is the raw sales CSV (default: data/raw_sales.csv)
	Input string `env:"SALESCLEAN_INPUT" envAlt:"RAW_DATA_PATH" default:"data/raw_sales.csv"`

	// Output is where the cleaned CSV is written (default: data/cleaned_sales.csv)
	Output string `env:"SALESCLEAN_OUTPUT" envAlt:"CLEAN_DATA_PATH" default:"data/cleaned_sales.csv"`
}

// CleanConfig holds the cleaning pipeline settings.
type CleanConfig struct {
	// PriceColumn is the normalized name of the price column (default: price)
	PriceColumn string `env:"CLEAN_PRICE_COLUMN" default:"price"`

	// QuantityColumn is the normalized name of the quantity column (default: quantity)
	QuantityColumn string `env:"CLEAN_QUANTITY_COLUMN" default:"quantity"`

	// Renames is a comma-separated list of from=to column renames (default: qty=quantity)
	Renames []string `env:"CLEAN_RENAMES" default:"qty=quantity"`

	// CurrencySymbols is a comma-separated list of symbols stripped from prices
	CurrencySymbols []string `env:"CLEAN_CURRENCY_SYMBOLS" default:"$,€,£,¥"`

	// PreviewRows is how many cleaned rows to print on success (default: 5)
	PreviewRows int `env:"PREVIEW_ROWS" default:"5"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// RenameTable parses Renames into an old name -> new name map.
func (c *CleanConfig) RenameTable() (map[string]string, error) {
	table := make(map[string]string, len(c.Renames))
	for _, pair := range c.Renames {
		from, to, ok := strings.Cut(pair, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("rename %q must look like from=to", pair)
		}
		table[from] = to
	}
	return table, nil
}
