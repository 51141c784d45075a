// Package filesink writes export rows to CSV files on the local filesystem.
package filesink

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"orderflow/internal/core/ports"
)

var _ ports.RowSink = (*CSVSink)(nil)

// CSVSink opens CSV files in a target directory. It is the default export
// destination.
type CSVSink struct {
	dir string
}

// NewCSVSink creates a sink that writes files into dir. The directory is
// created on first open if it does not exist.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

// Open creates a CSV file with the given name and returns a writer for it.
func (s *CSVSink) Open(name string) (ports.RowWriter, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	return &csvRowWriter{file: file, writer: csv.NewWriter(file)}, nil
}

type csvRowWriter struct {
	file   *os.File
	writer *csv.Writer
}

func (w *csvRowWriter) WriteRow(fields []string) error {
	return w.writer.Write(fields)
}

func (w *csvRowWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
