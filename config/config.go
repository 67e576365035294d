package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"marketplace-seed/catalog"
	"marketplace-seed/seedgen"
	"marketplace-seed/sqlbatch"
)

const DefaultCatalog = catalog.DefaultFileName

// Config holds all CLI/runtime options for a seed run.
type Config struct {
	CatalogPath         string
	OutDir              string
	Prefix              string
	Businesses          int
	BatchLines          int
	ProductsPerBusiness int
	FirstInventoryID    int64
	Seed                uint64
	Quiet               bool
}

var (
	ErrInvalidBusinesses = errors.New("businesses must be positive")
	ErrInvalidBatchLines = errors.New("batch-lines must be positive")
	ErrInvalidProducts   = errors.New("products-per-business must not be negative")
	ErrInvalidInventory  = errors.New("first-inventory-id must be positive")
)

// Load reads an optional .env file from the working directory and then
// parses args. Flags win over environment values.
func Load(args []string) (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()
	return Parse(args, os.Stderr)
}

// Parse parses args with environment fallbacks. Usage text goes to output.
func Parse(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("marketplace-seed", flag.ContinueOnError)
	fs.SetOutput(output)

	catalogPath := fs.String("catalog", getenvDefault("SEED_CATALOG", DefaultCatalog), "Catalog file (name,description,manufacturer per line; .xlsx also accepted)")
	outDir := fs.String("out", getenvDefault("SEED_OUT_DIR", "."), "Directory for the generated .sql files")
	prefix := fs.String("prefix", getenvDefault("SEED_PREFIX", sqlbatch.DefaultPrefix), "Output file name prefix; files are <prefix><n>.sql")
	businesses := fs.Int("businesses", intEnv("SEED_BUSINESSES", seedgen.DefaultBusinesses), "Number of simulated businesses")
	batchLines := fs.Int("batch-lines", intEnv("SEED_BATCH_LINES", sqlbatch.DefaultBatchLines), "Statements per output file")
	perBusiness := fs.Int("products-per-business", intEnv("SEED_PRODUCTS_PER_BUSINESS", 0), "Fixed product count per business (0 = tiered)")
	firstInventory := fs.Int64("first-inventory-id", int64Env("SEED_FIRST_INVENTORY_ID", 1), "Inventory item id the database will assign first")
	seed := fs.Uint64("seed", uint64Env("SEED_RANDOM_SEED", 0), "Random seed (0 = derive from clock)")
	quiet := fs.Bool("quiet", boolEnv("SEED_QUIET", false), "Only log warnings and errors")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		CatalogPath:         strings.TrimSpace(*catalogPath),
		OutDir:              strings.TrimSpace(*outDir),
		Prefix:              strings.TrimSpace(*prefix),
		Businesses:          *businesses,
		BatchLines:          *batchLines,
		ProductsPerBusiness: *perBusiness,
		FirstInventoryID:    *firstInventory,
		Seed:                *seed,
		Quiet:               *quiet,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.CatalogPath == "" {
		return errors.New("catalog path is empty")
	}
	if c.Businesses <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBusinesses, c.Businesses)
	}
	if c.BatchLines <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBatchLines, c.BatchLines)
	}
	if c.ProductsPerBusiness < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProducts, c.ProductsPerBusiness)
	}
	if c.FirstInventoryID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInventory, c.FirstInventoryID)
	}
	return nil
}

// Counter returns the product-count policy selected by the config.
func (c Config) Counter() seedgen.ProductCounter {
	if c.ProductsPerBusiness > 0 {
		return seedgen.FixedCounter(c.ProductsPerBusiness)
	}
	return seedgen.TieredCounter{Tiers: seedgen.DefaultTiers}
}
