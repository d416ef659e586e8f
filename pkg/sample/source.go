/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Sample sources for schema guessing. A source reads a bounded prefix of a
data set (CSV, JSON Lines, HTML table or SQLite table) into rows or ordered records.
*/

package sample

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/schema"
)

// Format names a sample source kind
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSONL  Format = "jsonl"
	FormatHTML   Format = "html"
	FormatSQLite Format = "sqlite"
)

// DefaultLimit caps the number of sampled rows when Options.Limit is unset
const DefaultLimit = 100

var (
	// ErrUnsupportedFormat is returned for an unknown source format
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	// ErrNoTable is returned when an HTML document has no matching table
	ErrNoTable = errors.New("no table found")
)

// Options configures a sample source
type Options struct {
	Path     string // file path, "-" for stdin, or a SQLite DSN
	Format   Format
	Header   bool   // CSV: first row holds column names
	Limit    int    // maximum rows to read
	Charset  string // input charset; empty means UTF-8
	Table    string // SQLite: table to sample
	Selector string // HTML: CSS selector of the table
}

// Sample is what a source read. Either ColumnNames/Rows or Records is set.
type Sample struct {
	ColumnNames []string
	Rows        [][]any
	Records     []schema.Record
}

// Len returns the number of sampled rows
func (s *Sample) Len() int {
	if s.Records != nil {
		return len(s.Records)
	}
	return len(s.Rows)
}

// Guess runs schema guessing over the sample
func (s *Sample) Guess(g *schema.Guesser) ([]schema.Column, error) {
	if s.Records != nil {
		return g.FromFieldRecords(s.Records)
	}
	return g.FromRecords(s.ColumnNames, s.Rows)
}

// Source reads one sample
type Source interface {
	Read(ctx context.Context) (*Sample, error)
	Format() Format
}

// NewSource creates a source for the given options
func NewSource(opts Options) (Source, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	switch Format(strings.ToLower(string(opts.Format))) {
	case FormatCSV:
		return &CSVSource{opts: opts}, nil
	case FormatJSONL, "json", "ndjson":
		return &JSONLSource{opts: opts}, nil
	case FormatHTML:
		return &HTMLSource{opts: opts}, nil
	case FormatSQLite:
		if opts.Table == "" {
			return nil, errors.WithHint(errors.New("sqlite source needs a table"), "pass --table")
		}
		return &SQLiteSource{opts: opts}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", opts.Format)
}

// openInput opens path ("-" is stdin, http(s) URLs are fetched) and decodes
// it from charset
func openInput(ctx context.Context, path, charset string) (io.Reader, io.Closer, error) {
	var (
		reader io.Reader
		closer io.Closer
	)
	switch {
	case path == "-" || path == "":
		reader = os.Stdin
		closer = io.NopCloser(os.Stdin)
	case IsRemote(path):
		body, declared, err := openRemote(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		if charset == "" {
			charset = declared
		}
		reader = body
		closer = body
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open sample")
		}
		reader = file
		closer = file
	}

	decoded, err := Decode(reader, charset)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return decoded, closer, nil
}
