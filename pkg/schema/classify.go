/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Per-value classification. Maps one sampled value onto the type lattice,
delegating date/time-like strings to the time format guesser.
*/

package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kleascm/guesstimate/pkg/timeformat"
	"github.com/valyala/fastjson"
)

// TimeFormatGuesser guesses a strftime format from examples
type TimeFormatGuesser interface {
	Guess(examples []string) (string, bool)
}

var booleanLiterals = map[string]struct{}{
	"true": {}, "True": {}, "TRUE": {},
	"yes": {}, "Yes": {}, "YES": {},
	"t": {}, "T": {},
	"y": {}, "Y": {},
	"on": {}, "On": {}, "ON": {},
	"false": {}, "False": {}, "FALSE": {},
	"no": {}, "No": {}, "NO": {},
	"f": {}, "F": {},
	"n": {}, "N": {},
	"off": {}, "Off": {}, "OFF": {},
}

// doublePattern requires a fractional part so that "1" stays a long
var doublePattern = regexp.MustCompile(`^[+-]?(NaN|Infinity|([1-9]\d*|0)(\.\d+)([eE][+-]?\d+)?[fFdD]?)$`)

// Classifier classifies values and merges per-column classifications
type Classifier struct {
	timeFormat TimeFormatGuesser
}

// NewClassifier creates a classifier. A nil guesser selects the built-in one.
func NewClassifier(timeFormat TimeFormatGuesser) *Classifier {
	if timeFormat == nil {
		timeFormat = timeformat.NewGuesser()
	}
	return &Classifier{timeFormat: timeFormat}
}

// Classify returns the type of one value, or the zero type when the value
// says nothing about its column.
func (c *Classifier) Classify(value any) GuessedType {
	if isNil(value) {
		return GuessedType{}
	}
	if isContainer(value) {
		return TypeJSON
	}

	s := stringify(value)
	switch {
	case isBooleanLiteral(s):
		return TypeBoolean
	case c.isTimestamp(s):
		return Timestamp(s)
	case isLong(s):
		return TypeLong
	case doublePattern.MatchString(s):
		return TypeDouble
	case s == "":
		return GuessedType{}
	case isJSONContainer(s):
		return TypeJSON
	}
	return TypeString
}

func (c *Classifier) isTimestamp(s string) bool {
	return recovering(func() bool {
		_, ok := c.timeFormat.Guess([]string{s})
		return ok
	})
}

// recovering runs check and reports false if it panics
func recovering(check func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return check()
}

func isBooleanLiteral(s string) bool {
	_, ok := booleanLiterals[s]
	return ok
}

// isLong accepts only canonical integers: no sign plus, no leading zeros
func isLong(s string) bool {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	return strconv.FormatInt(n, 10) == s
}

// isJSONContainer accepts an object or an array, never a bare scalar
func isJSONContainer(s string) bool {
	return recovering(func() bool {
		v, err := fastjson.Parse(s)
		if err != nil {
			return false
		}
		t := v.Type()
		return t == fastjson.TypeObject || t == fastjson.TypeArray
	})
}

// isNil also catches typed nils such as a nil map held in an interface
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func isContainer(value any) bool {
	switch value.(type) {
	case []byte, json.RawMessage:
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// stringify renders a scalar the way it would appear in a text sample
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return string(v)
	case []byte:
		return string(v)
	case json.RawMessage:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(value)
}

// formatFloat keeps a fractional part on integral values so that a float
// stays a double after stringification.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', 1, bits)
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if i := strings.IndexByte(s, 'e'); i >= 0 && !strings.Contains(s[:i], ".") {
		s = s[:i] + ".0" + s[i:]
	}
	return s
}
