/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: layout.go
Description: Conversion of guessed strftime formats to Go time layouts, so that
callers can parse sampled values with the standard time package.
*/

package timeformat

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ncruces/go-strftime"
)

// Layout converts a strftime format into a Go time layout
func Layout(format string) (string, error) {
	layout, err := strftime.Layout(format)
	if err != nil {
		return "", errors.Wrapf(err, "format %q has no Go layout", format)
	}
	return layout, nil
}

// Parse parses value with a guessed strftime format
func Parse(format, value string) (time.Time, error) {
	t, err := strftime.Parse(format, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %q with %q", value, format)
	}
	return t, nil
}

// Format renders t with a guessed strftime format
func Format(format string, t time.Time) string {
	return strftime.Format(format, t)
}
