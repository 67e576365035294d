package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"marketplace-seed/catalog"
	"marketplace-seed/config"
	"marketplace-seed/seedgen"
	"marketplace-seed/sqlbatch"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Seed generation failed", seedgen.LogFieldErr, err)
		stop()
		os.Exit(1)
	}
	fmt.Println("Done")
}

func run(ctx context.Context, cfg config.Config) error {
	totalSteps := 4

	step(1, totalSteps, "Load catalog")
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("Catalog loaded", sqlbatch.LogFieldFile, cfg.CatalogPath, "rows", cat.Len())

	step(2, totalSteps, "Prepare generator")
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen, err := seedgen.NewGenerator(seedgen.Config{
		Businesses:       cfg.Businesses,
		Counter:          cfg.Counter(),
		FirstInventoryID: cfg.FirstInventoryID,
		Seed:             seed,
	}, cat)
	if err != nil {
		return fmt.Errorf("prepare generator: %w", err)
	}
	// Log the seed so the same output can be produced again with -seed.
	slog.Info("Generator ready", "seed", seed, seedgen.LogFieldBusinesses, gen.Businesses())

	w, err := sqlbatch.New(sqlbatch.Config{Dir: cfg.OutDir, Prefix: cfg.Prefix, BatchLines: cfg.BatchLines})
	if err != nil {
		return err
	}

	step(3, totalSteps, "Generate statements")
	stats, err := seedgen.Run(ctx, gen, w)
	if err != nil {
		return err
	}

	step(4, totalSteps, "Flush remaining statements")
	if err := w.Close(); err != nil {
		return err
	}

	slog.Info("Summary",
		seedgen.LogFieldBusinesses, stats.Businesses,
		seedgen.LogFieldProducts, stats.Products,
		seedgen.LogFieldStatements, stats.Statements,
		"files", len(w.Files()),
		"dir", displayDir(cfg.OutDir))
	return nil
}

// displayDir returns dir made absolute, or dir unchanged when that fails.
func displayDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func step(n, total int, title string) {
	slog.Info(fmt.Sprintf("[%d/%d] %s", n, total, title))
}
