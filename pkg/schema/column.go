/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: column.go
Description: Column descriptor produced by schema guessing.
*/

package schema

import (
	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/timeformat"
)

// Column describes one guessed column. Format is set only for timestamps.
type Column struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Format string `json:"format,omitempty"`
}

func newColumn(index int, name string, t GuessedType) Column {
	c := Column{Index: index, Name: name, Type: t.Tag().String()}
	if t.Tag() == TagTimestamp {
		c.Format = t.Payload()
	}
	return c
}

// IsTimestamp reports whether the column was guessed as a timestamp
func (c Column) IsTimestamp() bool {
	return c.Type == TagTimestamp.String()
}

// Layout returns the Go time layout for a timestamp column
func (c Column) Layout() (string, error) {
	if !c.IsTimestamp() {
		return "", errors.Newf("column %q is %s, not a timestamp", c.Name, c.Type)
	}
	return timeformat.Layout(c.Format)
}
