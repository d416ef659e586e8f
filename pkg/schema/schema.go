/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema.go
Description: Schema guessing entry points. Transposes a sample of records into columns,
classifies and merges each column, and returns ordered column descriptors.
*/

package schema

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptySample is returned when there is nothing to guess from
	ErrEmptySample = errors.New("sample has no records")
	// ErrColumnCountMismatch is returned when names and columns disagree
	ErrColumnCountMismatch = errors.New("column names do not match the column count")
)

// Field is one named value of a record
type Field struct {
	Name  string
	Value any
}

// Record is a row whose fields keep their source order
type Record []Field

// Get returns the value of the first field called name
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Guesser guesses column types for samples of records
type Guesser struct {
	classifier *Classifier
}

// NewGuesser creates a schema guesser. A nil time format guesser selects
// the built-in one.
func NewGuesser(timeFormat TimeFormatGuesser) *Guesser {
	return &Guesser{classifier: NewClassifier(timeFormat)}
}

// Classifier exposes the classifier used by the guesser
func (g *Guesser) Classifier() *Classifier {
	return g.classifier
}

// FromRecords guesses one column per position. The column count is the
// length of the longest row and must equal len(columnNames).
func (g *Guesser) FromRecords(columnNames []string, rows [][]any) ([]Column, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySample
	}

	types := g.ColumnTypes(rows)
	if len(columnNames) != len(types) {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrColumnCountMismatch, "%d names for %d columns", len(columnNames), len(types)),
			"supply exactly one name per column")
	}

	columns := make([]Column, len(types))
	for i, t := range types {
		columns[i] = newColumn(i, columnNames[i], t)
	}
	return columns, nil
}

// FromFieldRecords guesses columns named after the fields of the first
// record. Later records are matched by field name; missing fields are nil.
func (g *Guesser) FromFieldRecords(records []Record) ([]Column, error) {
	if len(records) == 0 {
		return nil, ErrEmptySample
	}

	names := records[0].Names()
	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(names))
		for j, name := range names {
			row[j], _ = record.Get(name)
		}
		rows[i] = row
	}
	return g.FromRecords(names, rows)
}

// FromRows guesses headerless string rows. Columns are named c0, c1, ...
func (g *Guesser) FromRows(rows [][]string) ([]Column, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySample
	}

	values := make([][]any, len(rows))
	width := 0
	for i, row := range rows {
		values[i] = make([]any, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
		width = max(width, len(row))
	}
	return g.FromRecords(DefaultColumnNames(width), values)
}

// ColumnTypes classifies and merges every column of rows. Short rows
// contribute nothing to the columns they lack.
func (g *Guesser) ColumnTypes(rows [][]any) []GuessedType {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	columns := make([][]GuessedType, width)
	for _, row := range rows {
		for i, value := range row {
			columns[i] = append(columns[i], g.classifier.Classify(value))
		}
	}

	types := make([]GuessedType, width)
	for i, column := range columns {
		types[i] = g.classifier.MergeColumn(column)
	}
	return types
}

// DefaultColumnNames returns c0 ... c(n-1)
func DefaultColumnNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "c" + strconv.Itoa(i)
	}
	return names
}
