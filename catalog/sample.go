package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// ErrUnwritableField is returned by WriteCSV for a value the line format cannot hold.
var ErrUnwritableField = errors.New("catalog field contains a comma or line break")

var (
	sampleAdjectives = []string{
		"Fresh", "Organic", "Smoked", "Crunchy", "Spiced", "Frozen", "Roasted", "Wholegrain",
		"Dried", "Pickled", "Sparkling", "Creamy", "Salted", "Honey", "Wild", "Classic",
	}
	sampleFoods = []string{
		"Apples", "Almonds", "Bagels", "Beans", "Butter", "Cheddar", "Chicken", "Cocoa",
		"Coffee", "Granola", "Hummus", "Kale", "Lentils", "Muesli", "Oats", "Olives",
		"Pasta", "Peanuts", "Salmon", "Tea", "Tomatoes", "Walnuts", "Yoghurt", "Zucchini",
	}
	sampleDescriptions = []string{
		"Locally sourced", "Family size", "Single serve", "Gluten free", "No added sugar",
		"Best before printed on pack", "Keep refrigerated", "Store in a cool dry place",
	}
	sampleManufacturers = []string{
		"Heinz", "Sanitarium", "Kelloggs", "Arnotts", "Anchor", "Tip Top", "Pams", "Whittakers",
	}
)

// blankEvery makes one in blankEvery sampled descriptions/manufacturers the blank token.
const blankEvery = 4

// SampleRows builds n synthetic catalog rows from fixed word pools.
func SampleRows(rng *rand.Rand, n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Name:         sampleAdjectives[rng.IntN(len(sampleAdjectives))] + " " + sampleFoods[rng.IntN(len(sampleFoods))],
			Description:  pickOrBlank(rng, sampleDescriptions),
			Manufacturer: pickOrBlank(rng, sampleManufacturers),
		}
	}
	return rows
}

func pickOrBlank(rng *rand.Rand, pool []string) string {
	if rng.IntN(blankEvery) == 0 {
		return BlankToken
	}
	return pool[rng.IntN(len(pool))]
}

// WriteCSV writes rows in the catalog line format, overwriting path.
// Empty description/manufacturer values are written as the blank token.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i, r := range rows {
		record := []string{r.Name, orBlank(r.Description), orBlank(r.Manufacturer)}
		for _, field := range record {
			if strings.ContainsAny(field, ",\r\n") {
				return fmt.Errorf("failed to write row at index %d: %w: %q", i, ErrUnwritableField, field)
			}
		}
		if _, err := writer.WriteString(strings.Join(record, ",") + "\n"); err != nil {
			return fmt.Errorf("failed to write row at index %d: %w", i, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func orBlank(s string) string {
	if s == "" {
		return BlankToken
	}
	return s
}
