package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const logBaseName = "chromeless.log"

// LogRotator is an io.Writer that rotates the active log file by size
// and prunes old backups by count and age.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
}

func NewLogRotator(baseDir string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	r := &LogRotator{
		baseDir:    baseDir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) open() error {
	path := filepath.Join(r.baseDir, logBaseName)
	if info, err := os.Stat(path); err == nil {
		r.currentSize = info.Size()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		r.currentFile.Close()
		r.currentFile = nil
	}

	stamp := time.Now().Format("2006-01-02-15-04-05")
	current := filepath.Join(r.baseDir, logBaseName)
	backup := filepath.Join(r.baseDir, logBaseName+"."+stamp)
	if err := os.Rename(current, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backup); err == nil {
			os.Remove(backup)
		}
	}
	r.prune()

	r.currentSize = 0
	return r.open()
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// prune drops backups older than maxAge and, past maxBackups, the
// oldest survivors.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logBaseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			os.Remove(filepath.Join(r.baseDir, entry.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups > 0 && len(backups) > r.maxBackups {
		sort.Slice(backups, func(i, j int) bool {
			return backups[i].ModTime().Before(backups[j].ModTime())
		})
		for _, info := range backups[:len(backups)-r.maxBackups] {
			os.Remove(filepath.Join(r.baseDir, info.Name()))
		}
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.currentFile != nil {
		return r.currentFile.Close()
	}
	return nil
}
