/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sqlite_source.go
Description: SQLite table sample source using the pure Go modernc driver. Values are
scanned untyped and handed to the classifier as the driver returns them.
*/

package sample

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// SQLiteSource samples a table of a SQLite database
type SQLiteSource struct {
	opts Options
}

func (s *SQLiteSource) Format() Format { return FormatSQLite }

// Read reads the sample
func (s *SQLiteSource) Read(ctx context.Context) (*Sample, error) {
	db, err := sql.Open("sqlite", s.opts.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT * FROM %s LIMIT ?", quoteIdent(s.opts.Table))
	rows, err := db.QueryContext(ctx, query, s.opts.Limit)
	if err != nil {
		return nil, errors.Wrapf(err, "query table %q", s.opts.Table)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}

	sample := &Sample{ColumnNames: names, Rows: make([][]any, 0, s.opts.Limit)}
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		sample.Rows = append(sample.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}
	return sample, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
