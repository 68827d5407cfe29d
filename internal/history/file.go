package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrClosed is returned when recording to a closed FileRecorder
var ErrClosed = errors.New("history: recorder is closed")

// FileRecorder collects records and writes them to a TOML file.
// Hands already in the file are kept and new hands are appended after them.
type FileRecorder struct {
	path string
	perm os.FileMode

	mu      sync.Mutex
	records []Record
	dirty   bool
	closed  bool
}

// OpenFile prepares a recorder for path, loading any hands already logged there
func OpenFile(path string) (*FileRecorder, error) {
	f := &FileRecorder{path: path, perm: 0o644}

	existing, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	defer existing.Close()

	records, err := Decode(existing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.records = records
	return f, nil
}

// Path returns the file the recorder writes to
func (f *FileRecorder) Path() string {
	return f.path
}

// Record appends a record. It is written out on Flush or Close.
func (f *FileRecorder) Record(r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.records = append(f.records, r)
	f.dirty = true
	return nil
}

// Len returns the number of records held, including those loaded at open
func (f *FileRecorder) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// Flush writes every record to disk if anything changed since the last write
func (f *FileRecorder) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushLocked()
}

// Close flushes and stops accepting records. Closing twice is a no-op.
func (f *FileRecorder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	return f.flushLocked()
}

func (f *FileRecorder) flushLocked() error {
	if !f.dirty {
		return nil
	}
	data, err := EncodeToBytes(f.records)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := writeFileAtomic(f.path, data, f.perm); err != nil {
		return fmt.Errorf("history: write %s: %w", f.path, err)
	}
	f.dirty = false
	return nil
}

// writeFileAtomic writes data next to filename and renames it into place,
// so readers see either the previous log or the complete new one.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	// same directory keeps the rename on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
