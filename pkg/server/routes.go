/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: routes.go
Description: Route table and handlers for the guessing API. Request bodies are parsed
with fastjson so that record keys keep the order the caller wrote them in.
*/

package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/sample"
	"github.com/kleascm/guesstimate/pkg/schema"
	"github.com/valyala/fastjson"
)

type errorResponse struct {
	Error string   `json:"error"`
	Hints []string `json:"hints,omitempty"`
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth()).Methods("GET")
	s.router.Handle("/metrics", s.engine.Metrics().Handler()).Methods("GET")

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/guess/time-format", s.handleTimeFormat()).Methods("POST")
	v1.HandleFunc("/guess/schema", s.handleSchema()).Methods("POST")
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	}
}

func (s *Server) handleTimeFormat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.parseBody(w, r)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}

		examples, err := stringArray(body, "examples")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}

		report := s.engine.GuessTimeFormat(examples)
		status := http.StatusOK
		if !report.Found {
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, report)
	}
}

func (s *Server) handleSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.parseBody(w, r)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}

		var report any
		if body.Exists("records") {
			records, err := recordArray(body, "records")
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
			report, err = s.engine.GuessRecords(records)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
		} else {
			names, rows, err := positionalRows(body)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
			report, err = s.engine.GuessSchema(names, rows)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
		}
		s.writeJSON(w, http.StatusOK, report)
	}
}

// parseBody reads and parses a JSON object body
func (s *Server) parseBody(w http.ResponseWriter, r *http.Request) (*fastjson.Value, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "parse body"),
			"send a JSON object")
	}
	if v.Type() != fastjson.TypeObject {
		return nil, errors.WithHint(errors.Newf("body is a JSON %s", v.Type()),
			"send a JSON object")
	}
	return v, nil
}

func stringArray(body *fastjson.Value, key string) ([]string, error) {
	items, ok := arrayAt(body, key)
	if !ok {
		return nil, errors.WithHintf(errors.Newf("%q must be an array", key),
			`send {"%s": ["..."]}`, key)
	}
	out := make([]string, len(items))
	for i, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, errors.Newf("%s[%d] must be a string", key, i)
		}
		out[i] = string(b)
	}
	return out, nil
}

func recordArray(body *fastjson.Value, key string) ([]schema.Record, error) {
	items, ok := arrayAt(body, key)
	if !ok {
		return nil, errors.Newf("%q must be an array of objects", key)
	}
	records := make([]schema.Record, len(items))
	for i, item := range items {
		obj, err := item.Object()
		if err != nil {
			return nil, errors.Newf("%s[%d] must be an object", key, i)
		}
		records[i] = sample.RecordFromObject(obj)
	}
	return records, nil
}

// positionalRows decodes {"column_names": [...], "rows": [[...]]}. Missing
// names default to c0, c1, ...
func positionalRows(body *fastjson.Value) ([]string, [][]any, error) {
	items, ok := arrayAt(body, "rows")
	if !ok {
		return nil, nil, errors.WithHint(errors.New(`"rows" must be an array of arrays`),
			`send {"column_names": [...], "rows": [[...]]} or {"records": [{...}]}`)
	}

	rows := make([][]any, len(items))
	width := 0
	for i, item := range items {
		cells, err := item.Array()
		if err != nil {
			return nil, nil, errors.Newf("rows[%d] must be an array", i)
		}
		row := make([]any, len(cells))
		for j, cell := range cells {
			row[j] = sample.Value(cell)
		}
		rows[i] = row
		width = max(width, len(row))
	}

	if !body.Exists("column_names") {
		return schema.DefaultColumnNames(width), rows, nil
	}
	names, err := stringArray(body, "column_names")
	if err != nil {
		return nil, nil, err
	}
	return names, rows, nil
}

func arrayAt(body *fastjson.Value, key string) ([]*fastjson.Value, bool) {
	v := body.Get(key)
	if v == nil || v.Type() != fastjson.TypeArray {
		return nil, false
	}
	return v.GetArray(), true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Warn("Failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Hints: errors.GetAllHints(err),
	})
}
