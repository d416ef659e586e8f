/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: jsonl_source.go
Description: JSON Lines sample source. Each line is an object whose keys keep their
order, so column order follows the first record as written.
*/

package sample

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/schema"
	"github.com/valyala/fastjson"
)

const maxLineSize = 4 * 1024 * 1024

// JSONLSource samples a JSON Lines file
type JSONLSource struct {
	opts Options
}

func (s *JSONLSource) Format() Format { return FormatJSONL }

// Read reads the sample
func (s *JSONLSource) Read(ctx context.Context) (*Sample, error) {
	reader, closer, err := openInput(ctx, s.opts.Path, s.opts.Charset)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return readJSONL(ctx, reader, s.opts.Limit)
}

func readJSONL(ctx context.Context, r io.Reader, limit int) (*Sample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var parser fastjson.Parser
	records := make([]schema.Record, 0, limit)
	line := 0
	for len(records) < limit && scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := parser.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		obj, err := v.Object()
		if err != nil {
			return nil, errors.Newf("line %d: expected a JSON object, got %s", line, v.Type())
		}
		records = append(records, RecordFromObject(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan json lines")
	}
	return &Sample{Records: records}, nil
}

// RecordFromObject converts a parsed object into a record in key order
func RecordFromObject(obj *fastjson.Object) schema.Record {
	record := make(schema.Record, 0, obj.Len())
	obj.Visit(func(key []byte, v *fastjson.Value) {
		record = append(record, schema.Field{Name: string(key), Value: Value(v)})
	})
	return record
}

// Value converts a parsed JSON value into a plain Go value. Numbers keep
// their literal text so that "1.0" and "1" classify differently.
func Value(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNumber:
		return json.Number(v.String())
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Value(item)
		}
		return out
	case fastjson.TypeObject:
		out := make(map[string]any)
		obj, _ := v.Object()
		obj.Visit(func(key []byte, item *fastjson.Value) {
			out[string(key)] = Value(item)
		})
		return out
	}
	return nil
}
