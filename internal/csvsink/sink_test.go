package csvsink

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestWriteHeaderTruncatesByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if err := s.WriteHeader("columns,rows", false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "difficulty,seed,score,columns,rows\n" {
		t.Errorf("got %q", data)
	}
}

func TestWriteHeaderSkipsWhenAppendingToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("difficulty,seed,score,custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if err := s.WriteHeader("columns,rows", true); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "difficulty,seed,score,custom\n" {
		t.Errorf("header was rewritten: %q", data)
	}
}

func TestWriteHeaderCreatesWhenAppendingToMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	s := New(path)
	if err := s.WriteHeader("columns,rows", true); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "difficulty,seed,score,columns,rows\n" {
		t.Errorf("got %q", data)
	}
}

func TestWriteRowFormatsScoreToOneDecimal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := New(path)

	if err := s.WriteRow("easy", 42, 3.0, "9,9,10,,board"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "easy,42,3.0,9,9,10,,board\n" {
		t.Errorf("got %q", data)
	}
}

func TestWriteRowAppendsRatherThanTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := New(path)

	if err := s.WriteRow("easy", 1, 1.0, "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteRow("easy", 2, 2.0, "b"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), data)
	}
}

func TestWriteRowSerializesConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := New(path)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			if err := s.WriteRow("easy", uint32(seed), 1.0, "x"); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("expected %d rows, got %d", n, len(lines))
	}
	for _, line := range lines {
		if strings.Count(line, ",") != 3 {
			t.Errorf("row interleaved or malformed: %q", line)
		}
	}
}
