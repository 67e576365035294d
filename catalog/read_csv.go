package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single catalog line.
const maxLineBytes = 1 << 20

func readCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f, path)
}

// parseCSV splits each line on commas. The format has no quoting or escaping,
// so quote characters are kept as text and an empty line is malformed.
func parseCSV(r io.Reader, name string) ([]Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []Row
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), ",")
		if len(fields) != FieldCount {
			return nil, fmt.Errorf("%s line %d: %w (got %d, want %d)", name, line, ErrFieldCount, len(fields), FieldCount)
		}
		rows = append(rows, Row{Name: fields[0], Description: fields[1], Manufacturer: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog %s failed: %w", name, err)
	}
	return rows, nil
}
