// Package qpcr reads QuantStudio qPCR results exports and collects the
// per-sample Cq measurements of a methylation run.
//
// An export is a CSV with a run-metadata preamble of variable length; the
// results table starts at the first line beginning with the well columns
// and every field in it is double-quoted.
package qpcr

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// headerSignature begins the column-header line of a results export.
// Everything above it is run metadata and is skipped.
const headerSignature = `"Well","Well Position"`

// Row is one data row of the results table, keyed by column header.
type Row map[string]string

// HeaderNotFoundError reports an input without the results table header:
// the file is not a QuantStudio export and cannot be processed.
type HeaderNotFoundError struct {
	File string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header %s not found in %s", headerSignature, e.File)
}

// ParseExportFile reads one export from disk. See ParseExport.
func ParseExportFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseExport(f, path)
}

// ParseExport reads a whole export, skips the metadata preamble and
// returns one Row per data line, keyed by the header names with the
// quoting stripped. name identifies the export in errors. The first line
// after the header that is blank or does not match the header's field
// count ends the table.
func ParseExport(r io.Reader, name string) ([]Row, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	lines := strings.Split(strings.TrimPrefix(string(b), "\ufeff"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	headerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, headerSignature) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, &HeaderNotFoundError{File: name}
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("parse header of %s: %w", name, err)
	}
	for i := range header {
		header[i] = strings.Trim(header[i], `"`)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) != len(header) {
			// Lines that stop matching the header mark the end of the
			// results table, not a malformed record.
			break
		}
		row := make(Row, len(header))
		for i, key := range header {
			row[key] = strings.Trim(record[i], `"`)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
