/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charset.go
Description: Decoding of sample input from a caller-named charset into UTF-8.
*/

package sample

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Decode wraps r so that it yields UTF-8. Names follow the WHATWG encoding
// labels ("latin1", "shift_jis", "utf-16le", ...). Empty means UTF-8.
func Decode(r io.Reader, charset string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.WithHintf(errors.Wrapf(err, "charset %q", charset),
			"use a WHATWG encoding label such as latin1 or shift_jis")
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
