package sqlbatch

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	DefaultPrefix     = "products_inventory_items_listings_"
	DefaultBatchLines = 2000

	LogFieldFile     = "file"
	LogFieldLines    = "lines"
	LogFieldDuration = "duration"
)

// Config holds the output settings for a Writer.
type Config struct {
	Dir        string
	Prefix     string
	BatchLines int
}

// Writer buffers statements and writes each full batch to the next numbered
// .sql file. Existing files are overwritten.
type Writer struct {
	cfg     Config
	buf     []string
	fileNum int
	lines   int
	files   []string
}

// New creates a Writer, applying defaults and creating the output directory.
func New(cfg Config) (*Writer, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.BatchLines <= 0 {
		cfg.BatchLines = DefaultBatchLines
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", cfg.Dir, err)
	}
	return &Writer{
		cfg:     cfg,
		buf:     make([]string, 0, cfg.BatchLines),
		fileNum: 1,
	}, nil
}

// Append buffers one statement and flushes once the batch is full.
func (w *Writer) Append(stmt string) error {
	w.buf = append(w.buf, stmt)
	w.lines++
	if w.lines%w.cfg.BatchLines == 0 {
		return w.flush()
	}
	return nil
}

// Close writes whatever is still buffered. It writes nothing when the
// buffer is empty.
func (w *Writer) Close() error {
	if len(w.buf) == 0 {
		return nil
	}
	return w.flush()
}

// Files lists the paths written so far, in order.
func (w *Writer) Files() []string {
	return w.files
}

// Lines is the number of statements appended so far.
func (w *Writer) Lines() int {
	return w.lines
}

// FileName is the path of the n-th output file.
func (w *Writer) FileName(n int) string {
	return filepath.Join(w.cfg.Dir, w.cfg.Prefix+strconv.Itoa(n)+".sql")
}

func (w *Writer) flush() error {
	path := w.FileName(w.fileNum)
	start := time.Now()

	if err := writeLines(path, w.buf); err != nil {
		return fmt.Errorf("flush batch %d: %w", w.fileNum, err)
	}
	slog.Debug("Batch flushed", LogFieldFile, path, LogFieldLines, len(w.buf), LogFieldDuration, time.Since(start))

	w.files = append(w.files, path)
	w.fileNum++
	w.buf = w.buf[:0]
	return nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
