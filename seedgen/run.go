package seedgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	LogFieldBusiness   = "business_id"
	LogFieldBusinesses = "businesses"
	LogFieldProducts   = "products"
	LogFieldStatements = "statements"
	LogFieldDuration   = "duration"
	LogFieldErr        = "error"
)

// largeBusiness is the product count from which a business gets its own log line.
const largeBusiness = 100

// Sink receives rendered statements in order.
type Sink interface {
	Append(stmt string) error
}

// Stats summarises a finished run.
type Stats struct {
	Businesses int
	Products   int
	Statements int
}

// Run generates every business in order and appends the four statements of
// each item to sink. Cancellation is checked between businesses.
func Run(ctx context.Context, gen *Generator, sink Sink) (Stats, error) {
	var stats Stats
	runStart := time.Now()
	logger := slog.With(LogFieldBusinesses, gen.Businesses())
	logger.Info("Starting generation...")

	for businessID := 1; businessID <= gen.Businesses(); businessID++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		items := gen.Business(businessID)
		for _, it := range items {
			stmts, err := it.Statements()
			if err != nil {
				logger.Error("Render failed", LogFieldBusiness, businessID, LogFieldErr, err)
				return stats, fmt.Errorf("render business %d product %s: %w", businessID, it.Product.ID, err)
			}
			for _, stmt := range stmts {
				if err := sink.Append(stmt); err != nil {
					return stats, fmt.Errorf("append statement for business %d: %w", businessID, err)
				}
				stats.Statements++
			}
			stats.Products++
		}
		stats.Businesses++

		if len(items) >= largeBusiness {
			logger.Info("Large business generated", LogFieldBusiness, businessID, LogFieldProducts, len(items))
		}
	}

	logger.Info("Generation finished",
		LogFieldProducts, stats.Products,
		LogFieldStatements, stats.Statements,
		LogFieldDuration, time.Since(runStart))
	return stats, nil
}
