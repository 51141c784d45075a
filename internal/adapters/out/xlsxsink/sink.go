// Package xlsxsink writes export rows to XLSX workbooks on the local
// filesystem. It is an alternative to the default CSV destination.
package xlsxsink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"orderflow/internal/core/ports"
)

const sheetName = "Sheet1"

var _ ports.RowSink = (*XLSXSink)(nil)

// XLSXSink opens XLSX workbooks in a target directory. Export names keep
// their base name but get a .xlsx extension, since the destination owns
// the on-disk format.
type XLSXSink struct {
	dir string
}

// NewXLSXSink creates a sink that writes workbooks into dir.
func NewXLSXSink(dir string) *XLSXSink {
	return &XLSXSink{dir: dir}
}

// Open creates a workbook for the given export name and returns a writer
// for it.
func (s *XLSXSink) Open(name string) (ports.RowWriter, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	return &xlsxRowWriter{
		book: excelize.NewFile(),
		path: filepath.Join(s.dir, base+".xlsx"),
		row:  1,
	}, nil
}

type xlsxRowWriter struct {
	book *excelize.File
	path string
	row  int
}

func (w *xlsxRowWriter) WriteRow(fields []string) error {
	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.book.SetCellValue(sheetName, cell, field); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func (w *xlsxRowWriter) Close() error {
	if err := w.book.SaveAs(w.path); err != nil {
		_ = w.book.Close()
		return err
	}
	return w.book.Close()
}
