// Package series reads the numeric output files written by the external
// Monte Carlo engine (whitespace-column tables, optionally compressed, and
// structured JSON results) and reduces them to the derived quantities used in
// the fibril analysis: mean dipoles, orientation alignment and length
// distributions.
package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Table is a rectangular numeric table read from a column text file, stored
// column-major. It is read-only after loading.
type Table struct {
	filename string
	cols     [][]float64
	rows     int
}

// ReadTable reads a whitespace-delimited numeric table from the file path.
// Files ending in .gz or .zst are decompressed transparently. Blank lines
// and lines starting with # are skipped. Every data row must have the same
// number of columns; a ragged or non-numeric row is a format error reported
// with its line number.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{err.Error(), path, IO, []string{"ReadTable"}}
	}
	defer f.Close()
	var in io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{err.Error(), path, Format, []string{"ReadTable"}}
		}
		defer gz.Close()
		in = gz
	case ".zst":
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{err.Error(), path, Format, []string{"ReadTable"}}
		}
		defer zs.Close()
		in = zs
	}
	t, err := readTable(in)
	if err != nil {
		serr := err.(Error)
		serr.filename = path
		serr.Decorate("ReadTable")
		return nil, serr
	}
	t.filename = path
	return t, nil
}

func readTable(in io.Reader) (*Table, error) {
	t := new(Table)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	nline := 0
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if t.cols == nil {
			t.cols = make([][]float64, len(fields))
		}
		if len(fields) != len(t.cols) {
			return nil, Error{fmt.Sprintf("line %d: expected %d columns, got %d", nline, len(t.cols), len(fields)), "", Format, nil}
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("line %d, column %d: bad number %q", nline, i, field), "", Format, nil}
			}
			t.cols[i] = append(t.cols[i], v)
		}
		t.rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), "", IO, nil}
	}
	if t.rows == 0 {
		return nil, Error{"no data rows", "", Format, nil}
	}
	return t, nil
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the number of columns in the table.
func (t *Table) Cols() int {
	return len(t.cols)
}

// Column returns a copy of the zero-based column i. Requesting a column the
// file does not have is a format error naming the file and the column, never
// a silently substituted default.
func (t *Table) Column(i int) ([]float64, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, Error{fmt.Sprintf("column %d requested, file has %d", i, len(t.cols)), t.filename, Format, []string{"Column"}}
	}
	ret := make([]float64, t.rows)
	copy(ret, t.cols[i])
	return ret, nil
}

// ReadColumn reads the single zero-based column col from the table file
// path. It is a convenience for the common case of one scalar per MC step.
func ReadColumn(path string, col int) ([]float64, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, errDecorate(err, "ReadColumn")
	}
	c, err := t.Column(col)
	if err != nil {
		return nil, errDecorate(err, "ReadColumn")
	}
	return c, nil
}

// errDecorate asserts that err is an Error and decorates it with the
// caller's name before returning it.
func errDecorate(err error, caller string) error {
	serr := err.(Error)
	serr.Decorate(caller)
	return serr
}
