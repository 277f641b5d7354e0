package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/salesclean/internal/config"
	"github.com/JonMunkholm/salesclean/internal/core"
	"github.com/JonMunkholm/salesclean/internal/logging"
	"github.com/JonMunkholm/salesclean/internal/report"
)

func main() {
	// Load .env file if it exists; real environment variables win
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = logging.WithRunID(ctx, uuid.NewString())

	logger := logging.FromContext(ctx)
	logger.Debug("configuration loaded", "config", cfg.String())

	if err := run(ctx, cfg); err != nil {
		ue := core.NewUserError(err)
		logger.Error("cleaning failed", "code", ue.User.Code, "error", ue.Technical)
		fmt.Fprintln(os.Stderr, failureMessage(ue))
		stop()
		os.Exit(1)
	}
	stop()
}

// run loads the raw file, cleans it, writes the result, and prints a preview.
// Nothing is written unless every step succeeds.
func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)

	renames, err := cfg.Clean.RenameTable()
	if err != nil {
		return fmt.Errorf("rename table: %w", err)
	}

	raw, err := core.LoadData(cfg.Paths.Input)
	if err != nil {
		return err
	}
	logger.Info("loaded raw data",
		"path", cfg.Paths.Input,
		"rows", raw.Len(),
		"columns", raw.Width(),
	)

	cleaner := core.NewCleaner(core.Options{
		PriceColumn:     cfg.Clean.PriceColumn,
		QuantityColumn:  cfg.Clean.QuantityColumn,
		Renames:         renames,
		CurrencySymbols: cfg.Clean.CurrencySymbols,
	})

	cleaned, result, err := cleaner.Run(ctx, raw)
	if err != nil {
		return err
	}
	for _, s := range result.Steps {
		if s.RowsOut < s.RowsIn {
			logger.Info("rows removed", "step", s.Name, "count", s.RowsIn-s.RowsOut)
		}
	}

	if err := core.Write(cleaned, cfg.Paths.Output); err != nil {
		return err
	}
	logger.Info("wrote cleaned data", "path", cfg.Paths.Output, "rows", cleaned.Len())

	opts := cleaner.Options()
	summary, err := report.Summarize(cleaned, opts.PriceColumn, opts.QuantityColumn)
	if err != nil {
		logger.Warn("summary unavailable", "error", err)
	} else {
		logger.Info("sales summary", "summary", summary)
	}

	return core.FormatPreview(os.Stdout, cleaned, cfg.Clean.PreviewRows)
}

// failureMessage renders ue for the terminal. Errors without a specific
// message also show the technical error.
func failureMessage(ue *core.UserError) string {
	if core.IsUserFacing(ue.Technical) {
		return core.FormatUserError(ue.Technical)
	}
	return fmt.Sprintf("%s (Code: %s): %v", ue.User.Message, ue.User.Code, ue.Technical)
}
