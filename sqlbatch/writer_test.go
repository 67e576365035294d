package sqlbatch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// countLines returns the number of lines in a file
func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan %s: %v", path, err)
	}
	return n
}

func TestWriter_Batching(t *testing.T) {
	tests := []struct {
		name       string
		batchLines int
		appends    int
		wantLines  []int
	}{
		{name: "Single partial batch", batchLines: 4, appends: 3, wantLines: []int{3}},
		{name: "Exact multiple", batchLines: 4, appends: 8, wantLines: []int{4, 4}},
		{name: "Full plus remainder", batchLines: 4, appends: 9, wantLines: []int{4, 4, 1}},
		{name: "Nothing appended", batchLines: 4, appends: 0, wantLines: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			w, err := New(Config{Dir: dir, BatchLines: tt.batchLines})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			for i := 0; i < tt.appends; i++ {
				if err := w.Append(fmt.Sprintf("INSERT INTO t (id) VALUES (%d);", i)); err != nil {
					t.Fatalf("Append %d failed: %v", i, err)
				}
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			files := w.Files()
			if len(files) != len(tt.wantLines) {
				t.Fatalf("Expected %d files, got %d (%v)", len(tt.wantLines), len(files), files)
			}
			for i, path := range files {
				want := filepath.Join(dir, fmt.Sprintf("%s%d.sql", DefaultPrefix, i+1))
				if path != want {
					t.Errorf("file %d: got %s, want %s", i, path, want)
				}
				if got := countLines(t, path); got != tt.wantLines[i] {
					t.Errorf("file %s: got %d lines, want %d", path, got, tt.wantLines[i])
				}
			}
			if w.Lines() != tt.appends {
				t.Errorf("Lines() = %d, want %d", w.Lines(), tt.appends)
			}

			// No file past the last flushed batch.
			extra := filepath.Join(dir, fmt.Sprintf("%s%d.sql", DefaultPrefix, len(tt.wantLines)+1))
			if _, err := os.Stat(extra); !os.IsNotExist(err) {
				t.Errorf("unexpected file %s", extra)
			}
		})
	}
}

func TestWriter_DefaultBatchBoundary(t *testing.T) {
	dir := t.TempDir()
	w, err := New(Config{Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < DefaultBatchLines; i++ {
		if err := w.Append("SELECT 1;"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	// The 2000th statement closes file 1 straight away.
	if len(w.Files()) != 1 {
		t.Fatalf("Expected file 1 flushed at the boundary, got %v", w.Files())
	}
	if err := w.Append("SELECT 2;"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := countLines(t, w.FileName(1)); got != DefaultBatchLines {
		t.Errorf("file 1: got %d lines, want %d", got, DefaultBatchLines)
	}
	if got := countLines(t, w.FileName(2)); got != 1 {
		t.Errorf("file 2: got %d lines, want 1", got)
	}
}

func TestWriter_OverwritesAndCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(Config{Dir: dir, Prefix: "seed_", BatchLines: 10})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	stale := w.FileName(1)
	if err := os.WriteFile(stale, []byte("old\nold\nold\nold\n"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	if err := w.Append("NEW;"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "NEW;\n" {
		t.Errorf("expected file to be overwritten, got %q", string(data))
	}
}
