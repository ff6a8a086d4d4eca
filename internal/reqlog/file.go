package reqlog

import (
	"context"
	"fmt"
	"os"

	"webbasics/internal/model"
)

// FileWriter appends one LogLine per record to a file, creating it if needed.
// The file is opened per write, so it can be rotated or removed while the
// server runs.
type FileWriter struct {
	path string
}

// NewFileWriter returns a FileWriter for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path is the file being appended to.
func (w *FileWriter) Path() string {
	return w.path
}

// Write appends rec to the file.
func (w *FileWriter) Write(_ context.Context, rec model.RequestRecord) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open request log: %w", err)
	}
	if _, err := f.WriteString(rec.LogLine()); err != nil {
		_ = f.Close()
		return fmt.Errorf("append request log: %w", err)
	}
	return f.Close()
}
