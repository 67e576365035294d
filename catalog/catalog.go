package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultFileName is the catalog the generator reads when none is given.
const DefaultFileName = "product_data.csv"

// BlankToken marks an absent description or manufacturer in the source file.
const BlankToken = "blank"

// FieldCount is the number of fields every catalog line must carry.
const FieldCount = 3

var (
	ErrEmptyCatalog = errors.New("catalog has no rows")
	ErrFieldCount   = errors.New("catalog line has wrong number of fields")
)

// Row is one candidate product line: name, description, manufacturer.
type Row struct {
	Name         string
	Description  string
	Manufacturer string
}

// Catalog holds the loaded rows as three parallel sequences.
type Catalog struct {
	names         []string
	descriptions  []string
	manufacturers []string
}

// New builds a Catalog from already parsed rows, applying blank normalization.
func New(rows []Row) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		names:         make([]string, 0, len(rows)),
		descriptions:  make([]string, 0, len(rows)),
		manufacturers: make([]string, 0, len(rows)),
	}
	for _, r := range rows {
		c.names = append(c.names, r.Name)
		c.descriptions = append(c.descriptions, normalizeBlank(r.Description))
		c.manufacturers = append(c.manufacturers, normalizeBlank(r.Manufacturer))
	}
	return c, nil
}

// Load reads a catalog file. Files ending in .xlsx are read with excelize,
// anything else is treated as comma separated text.
func Load(path string) (*Catalog, error) {
	var (
		rows []Row
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	c, err := New(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.names)
}

func (c *Catalog) Names() []string {
	return c.names
}

func (c *Catalog) Descriptions() []string {
	return c.descriptions
}

func (c *Catalog) Manufacturers() []string {
	return c.manufacturers
}

// Row returns the i-th loaded row, or an empty Row when i is out of range.
func (c *Catalog) Row(i int) Row {
	if i < 0 || i >= len(c.names) {
		return Row{}
	}
	return Row{Name: c.names[i], Description: c.descriptions[i], Manufacturer: c.manufacturers[i]}
}

func normalizeBlank(s string) string {
	if s == BlankToken {
		return ""
	}
	return s
}
