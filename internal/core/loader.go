package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadData reads a comma-delimited file with a header row into a Dataset.
// Header cells become column names verbatim.
//
// A path that cannot be opened or read yields a *FileError; malformed
// content yields a *ParseError.
func LoadData(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return d, nil
}

// ReadCSV reads comma-delimited text with a header row from r.
// Rows shorter than the header are padded with missing values; longer rows
// are a *ParseError. Blank lines are skipped.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(newDecodingReader(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, asParseError(err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, asParseError(err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(header), len(rec)),
			}
		}
		records = append(records, rec)
	}

	return FromRecords(header, records)
}

// asParseError converts encoding/csv syntax errors to *ParseError and passes
// I/O errors through untouched.
func asParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return err
}
