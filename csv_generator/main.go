package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"marketplace-seed/catalog"
)

// Writes a synthetic product_data.csv for local runs of the seed generator.
func main() {
	fileName := flag.String("out", catalog.DefaultFileName, "Catalog file to write")
	rows := flag.Int("rows", 500, "Number of catalog lines")
	seed := flag.Uint64("seed", 0, "Random seed (0 = derive from clock)")
	flag.Parse()

	if *rows <= 0 {
		log.Fatalf("rows must be positive, got %d", *rows)
	}
	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	rng := rand.New(rand.NewPCG(s, s))
	if err := catalog.WriteCSV(*fileName, catalog.SampleRows(rng, *rows)); err != nil {
		log.Fatalf("failed to write catalog: %s", err)
	}

	fmt.Printf("Successfully generated %s with %d rows (seed %d).\n", *fileName, *rows, s)
}
