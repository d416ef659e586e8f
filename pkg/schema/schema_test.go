/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema_test.go
Description: Tests for schema guessing over rows and ordered field records, including
caller errors and timestamp format resolution.
*/

package schema

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guessSingleColumn(t *testing.T, values ...any) Column {
	t.Helper()
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	columns, err := NewGuesser(nil).FromRecords([]string{"col"}, rows)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	return columns[0]
}

func TestFromRecordsTimestamp(t *testing.T) {
	c := guessSingleColumn(t, "20160101", "20160101")
	assert.Equal(t, Column{Index: 0, Name: "col", Type: "timestamp", Format: "%Y%m%d"}, c)
}

func TestFromRecordsTimestampAndLong(t *testing.T) {
	c := guessSingleColumn(t, "20160101", "20160101", "12345678")
	assert.Equal(t, "long", c.Type)
	assert.Empty(t, c.Format)
}

func TestFromRecordsBoolean(t *testing.T) {
	c := guessSingleColumn(t, "true", "TRUE", "True")
	assert.Equal(t, "boolean", c.Type)
}

func TestFromFieldRecords(t *testing.T) {
	records := []Record{
		{{Name: "int", Value: "1"}, {Name: "str", Value: "a"}},
	}
	columns, err := NewGuesser(nil).FromFieldRecords(records)
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Index: 0, Name: "int", Type: "long"},
		{Index: 1, Name: "str", Type: "string"},
	}, columns)
}

func TestFromFieldRecordsUsesFirstRecordNames(t *testing.T) {
	records := []Record{
		{{Name: "id", Value: "1"}, {Name: "at", Value: "2014-01-01"}},
		{{Name: "at", Value: "2014-01-02"}, {Name: "id", Value: "2"}, {Name: "extra", Value: "x"}},
		{{Name: "id", Value: "3"}},
	}
	columns, err := NewGuesser(nil).FromFieldRecords(records)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, Column{Index: 0, Name: "id", Type: "long"}, columns[0])
	assert.Equal(t, Column{Index: 1, Name: "at", Type: "timestamp", Format: "%Y-%m-%d"}, columns[1])
}

func TestFromRecordsEmptySample(t *testing.T) {
	_, err := NewGuesser(nil).FromRecords([]string{"a"}, nil)
	assert.True(t, errors.Is(err, ErrEmptySample))

	_, err = NewGuesser(nil).FromFieldRecords(nil)
	assert.True(t, errors.Is(err, ErrEmptySample))

	_, err = NewGuesser(nil).FromRows(nil)
	assert.True(t, errors.Is(err, ErrEmptySample))
}

func TestFromRecordsColumnCountMismatch(t *testing.T) {
	rows := [][]any{{"1", "2"}, {"3"}}
	_, err := NewGuesser(nil).FromRecords([]string{"only"}, rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnCountMismatch))
	assert.Contains(t, err.Error(), "1 names for 2 columns")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestFromRecordsRaggedRows(t *testing.T) {
	rows := [][]any{{"1", "x"}, {"2"}, {"3", nil, "1.5"}}
	columns, err := NewGuesser(nil).FromRecords([]string{"a", "b", "c"}, rows)
	require.NoError(t, err)
	assert.Equal(t, "long", columns[0].Type)
	assert.Equal(t, "string", columns[1].Type)
	assert.Equal(t, "double", columns[2].Type)
}

func TestFromRecordsColumnWithoutValuesIsString(t *testing.T) {
	c := guessSingleColumn(t, nil, "", nil)
	assert.Equal(t, "string", c.Type)
}

func TestFromRecordsMixedTypes(t *testing.T) {
	assert.Equal(t, "double", guessSingleColumn(t, "1", "2.5", "3").Type)
	assert.Equal(t, "long", guessSingleColumn(t, "1", "true", "0").Type)
	assert.Equal(t, "string", guessSingleColumn(t, "1.5", "true").Type)
	assert.Equal(t, "json", guessSingleColumn(t, `{"a":1}`, map[string]any{"b": 2}, []any{1}).Type)
	assert.Equal(t, "string", guessSingleColumn(t, `{"a":1}`, "plain").Type)
}

func TestFromRecordsTimestampConsensus(t *testing.T) {
	c := guessSingleColumn(t, "01/01/2014", "01/01/2014", "13/01/2014", nil, "")
	assert.Equal(t, "timestamp", c.Type)
	assert.Equal(t, "%d/%m/%Y", c.Format)

	layout, err := c.Layout()
	require.NoError(t, err)
	assert.Equal(t, "02/01/2006", layout)
}

func TestFromRows(t *testing.T) {
	columns, err := NewGuesser(nil).FromRows([][]string{
		{"1", "2014-01-01 00:00:00", "yes"},
		{"2", "2014-01-02 00:00:00", "no"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Column{
		{Index: 0, Name: "c0", Type: "long"},
		{Index: 1, Name: "c1", Type: "timestamp", Format: "%Y-%m-%d %H:%M:%S"},
		{Index: 2, Name: "c2", Type: "boolean"},
	}, columns)
}

type stubTimeFormat struct {
	calls [][]string
}

func (s *stubTimeFormat) Guess(examples []string) (string, bool) {
	s.calls = append(s.calls, examples)
	for _, e := range examples {
		if e != "stamp" {
			return "", false
		}
	}
	return "%s", true
}

func TestGuesserUsesInjectedTimeFormat(t *testing.T) {
	stub := &stubTimeFormat{}
	columns, err := NewGuesser(stub).FromRecords([]string{"a"}, [][]any{{"stamp"}, {"stamp"}})
	require.NoError(t, err)
	assert.Equal(t, Column{Index: 0, Name: "a", Type: "timestamp", Format: "%s"}, columns[0])
	// one call per value plus the column re-guess over both payloads
	require.Len(t, stub.calls, 3)
	assert.Equal(t, []string{"stamp", "stamp"}, stub.calls[2])
}

func TestColumnLayoutRejectsNonTimestamp(t *testing.T) {
	_, err := Column{Name: "n", Type: "long"}.Layout()
	assert.Error(t, err)
}
