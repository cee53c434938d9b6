package model

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultGridPath is where the initial grid is read from when nothing else is configured
const DefaultGridPath = "initial_grid.csv"

// LoadGrid reads a comma-separated grid of 0/1 values from a file
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to open file: %+v", path)
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to load grid from file: %+v", path)
	}
	return g, nil
}

// ReadGrid parses comma-separated rows of integers. Blank lines are skipped and
// fields may be padded with spaces. The grid's height and width are taken from
// the first row; shape and value problems are reported as *DimensionError.
func ReadGrid(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var values [][]int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "[ReadGrid] failed to read csv")
		}

		row := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, errors.Wrapf(err, "[ReadGrid] line %d, field %d", line, i+1)
			}
			row[i] = v
		}
		values = append(values, row)
	}

	if len(values) == 0 {
		return nil, &DimensionError{Row: -1, Col: -1, Reason: "no rows"}
	}
	return NewGrid(len(values), len(values[0]), values)
}
