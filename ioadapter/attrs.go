package ioadapter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmcore/digraph"
)

// readTable parses the whitespace-separated attribute table format: a
// header line naming each column, then exactly n data lines, each with
// the same column count, "NA" (case-insensitive) denoting a missing
// value.
func readTable(r io.Reader, n int32) (names []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("%w: empty attribute table", ErrMalformedPajek)
	}
	names = strings.Fields(scanner.Text())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(names) {
			return nil, nil, ErrAttrColumnCountMismatch
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if int32(len(rows)) != n {
		return nil, nil, fmt.Errorf("%w: got %d rows, want %d", ErrAttrRowCountMismatch, len(rows), n)
	}
	return names, rows, nil
}

func isNA(field string) bool { return strings.EqualFold(field, "NA") }

// LoadBinaryAttributes reads a binattrFile and registers every column as
// a binary attribute on attrs.
func LoadBinaryAttributes(r io.Reader, attrs *digraph.NodeAttributes, n int32) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		values := make([]int8, n)
		na := make([]bool, n)
		for row, fields := range rows {
			if isNA(fields[col]) {
				na[row] = true
				continue
			}
			v, perr := strconv.ParseInt(fields[col], 10, 8)
			if perr != nil {
				return fmt.Errorf("%w: column %q row %d: %v", ErrMalformedPajek, name, row, perr)
			}
			values[row] = int8(v)
		}
		if err := attrs.AddBinary(name, values, na); err != nil {
			return err
		}
	}
	return nil
}

// LoadCategoricalAttributes reads a catattrFile.
func LoadCategoricalAttributes(r io.Reader, attrs *digraph.NodeAttributes, n int32) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		values := make([]int32, n)
		na := make([]bool, n)
		for row, fields := range rows {
			if isNA(fields[col]) {
				na[row] = true
				continue
			}
			v, perr := strconv.ParseInt(fields[col], 10, 32)
			if perr != nil {
				return fmt.Errorf("%w: column %q row %d: %v", ErrMalformedPajek, name, row, perr)
			}
			values[row] = int32(v)
		}
		if err := attrs.AddCategorical(name, values, na); err != nil {
			return err
		}
	}
	return nil
}

// LoadContinuousAttributes reads a contattrFile.
func LoadContinuousAttributes(r io.Reader, attrs *digraph.NodeAttributes, n int32) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		values := make([]float64, n)
		na := make([]bool, n)
		for row, fields := range rows {
			if isNA(fields[col]) {
				na[row] = true
				continue
			}
			v, perr := strconv.ParseFloat(fields[col], 64)
			if perr != nil {
				return fmt.Errorf("%w: column %q row %d: %v", ErrMalformedPajek, name, row, perr)
			}
			values[row] = v
		}
		if err := attrs.AddContinuous(name, values, na); err != nil {
			return err
		}
	}
	return nil
}

// LoadSetAttributes reads a setattrFile. Each cell holds a comma-joined
// list of integers (e.g. "1,4,7") with no surrounding whitespace; "NA"
// marks the whole cell missing.
func LoadSetAttributes(r io.Reader, attrs *digraph.NodeAttributes, n int32) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		values := make([][]int32, n)
		na := make([]bool, n)
		for row, fields := range rows {
			cell := fields[col]
			if isNA(cell) {
				na[row] = true
				continue
			}
			parts := strings.Split(cell, ",")
			set := make([]int32, 0, len(parts))
			for _, p := range parts {
				v, perr := strconv.ParseInt(p, 10, 32)
				if perr != nil {
					return fmt.Errorf("%w: column %q row %d: %v", ErrMalformedPajek, name, row, perr)
				}
				set = append(set, int32(v))
			}
			values[row] = set
		}
		if err := attrs.AddSet(name, values, na); err != nil {
			return err
		}
	}
	return nil
}
