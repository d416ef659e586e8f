/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: csv_source.go
Description: CSV sample source. Reads up to the row limit, optionally taking column
names from the first row. Ragged rows are kept as they are.
*/

package sample

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/schema"
)

// CSVSource samples a CSV file
type CSVSource struct {
	opts Options
}

func (s *CSVSource) Format() Format { return FormatCSV }

// Read reads the sample
func (s *CSVSource) Read(ctx context.Context) (*Sample, error) {
	reader, closer, err := openInput(ctx, s.opts.Path, s.opts.Charset)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return readCSV(ctx, reader, s.opts)
}

func readCSV(ctx context.Context, r io.Reader, opts Options) (*Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var names []string
	if opts.Header {
		header, err := cr.Read()
		if err == io.EOF {
			return &Sample{}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv header")
		}
		names = header
	}

	rows := make([][]any, 0, opts.Limit)
	width := len(names)
	for len(rows) < opts.Limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read csv row %d", len(rows)+1)
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		rows = append(rows, row)
		width = max(width, len(record))
	}

	if names == nil {
		names = schema.DefaultColumnNames(width)
	}
	return &Sample{ColumnNames: names, Rows: rows}, nil
}
