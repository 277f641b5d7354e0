package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write serializes d to path as comma-delimited text with a header row.
//
// The file appears all at once: rows go to a temporary file next to path,
// which is renamed over path only after it has been flushed and closed.
// On failure the temporary file is removed and path is left untouched.
func Write(d *Dataset, path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, d); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Chmod(0o644); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// WriteCSV writes the header and every row of d to w. Missing cells are empty.
func WriteCSV(w io.Writer, d *Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.Names()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, d.Width())
	for r := 0; r < d.Len(); r++ {
		for c, col := range d.columns {
			record[c] = col.Values[r].String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", r+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
