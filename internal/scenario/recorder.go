package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileRecorder appends validation records to a JSONL file, one record per
// line. Writes are serialised with a mutex so concurrent cycles never
// interleave lines.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

// NewFileRecorder returns a recorder appending to path. The file is created
// on first write.
func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

// Record appends one record. The file is opened per call so an external
// rotation of the file takes effect immediately.
func (fr *FileRecorder) Record(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("scenario: marshal record: %w", err)
	}
	data = append(data, '\n')

	fr.mu.Lock()
	defer fr.mu.Unlock()

	f, err := os.OpenFile(fr.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scenario: open record file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("scenario: write record: %w", err)
	}
	return nil
}
