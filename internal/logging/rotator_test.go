package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatorWritesAndRotates(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 2, 7, false)
	if err != nil {
		t.Fatalf("NewLogRotator: %v", err)
	}
	defer r.Close()

	// Force a rotation by overshooting a 1MB limit.
	chunk := strings.Repeat("x", 64*1024)
	for i := 0; i < 20; i++ {
		if _, err := r.Write([]byte(chunk)); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var active, backups int
	for _, e := range entries {
		switch {
		case e.Name() == logBaseName:
			active++
		case strings.HasPrefix(e.Name(), logBaseName+"."):
			backups++
		}
	}
	if active != 1 {
		t.Fatalf("active log files = %d, want 1", active)
	}
	if backups == 0 {
		t.Fatal("expected at least one rotated backup")
	}
}

func TestRotatorCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	r, err := NewLogRotator(dir, 1, 1, 1, false)
	if err != nil {
		t.Fatalf("NewLogRotator: %v", err)
	}
	defer r.Close()

	if _, err := os.Stat(filepath.Join(dir, logBaseName)); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
