/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: server_test.go
Description: Tests for the guessing API handlers, middleware and lifecycle.
*/

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/guesstimate/pkg/engine"
	"github.com/kleascm/guesstimate/pkg/monitoring"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	eng := engine.NewEngine(engine.Config{}, logger, monitoring.NewMetrics())
	return NewServer(Config{}, eng, logger)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTimeFormat(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, "POST", "/v1/guess/time-format",
		`{"examples": ["2024-01-02T03:04:05Z", "2024-02-03T04:05:06Z"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	assert.Equal(t, "%Y-%m-%dT%H:%M:%S%z", out["format"])
	assert.Equal(t, 2.0, out["matched"])
	assert.Equal(t, 2.0, out["attempted"])
	assert.NotEmpty(t, out["run_id"])
}

func TestTimeFormatNotFound(t *testing.T) {
	rec := do(t, newTestServer(t), "POST", "/v1/guess/time-format", `{"examples": ["hello"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, decode(t, rec)["found"])
}

func TestTimeFormatBadBodies(t *testing.T) {
	s := newTestServer(t)
	for name, body := range map[string]string{
		"not json":        `{`,
		"not an object":   `[1]`,
		"missing field":   `{}`,
		"non-string item": `{"examples": [1]}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, s, "POST", "/v1/guess/time-format", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestSchemaRows(t *testing.T) {
	rec := do(t, newTestServer(t), "POST", "/v1/guess/schema", `{
		"column_names": ["id", "score", "tags"],
		"rows": [[1, 1.5, ["a"]], [2, 2, null]]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	columns := out["columns"].([]any)
	require.Len(t, columns, 3)
	assert.Equal(t, "long", columns[0].(map[string]any)["type"])
	assert.Equal(t, "double", columns[1].(map[string]any)["type"])
	assert.Equal(t, "json", columns[2].(map[string]any)["type"])
	assert.Equal(t, 2.0, out["rows"])
}

func TestSchemaRowsDefaultNames(t *testing.T) {
	rec := do(t, newTestServer(t), "POST", "/v1/guess/schema", `{"rows": [["x", "true"]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	columns := decode(t, rec)["columns"].([]any)
	assert.Equal(t, "c1", columns[1].(map[string]any)["name"])
	assert.Equal(t, "boolean", columns[1].(map[string]any)["type"])
}

func TestSchemaRowsDefaultNamesPastLimit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eng := engine.NewEngine(engine.Config{SampleLimit: 2}, logger, monitoring.NewMetrics())
	s := NewServer(Config{}, eng, logger)

	rec := do(t, s, "POST", "/v1/guess/schema", `{"rows": [[1, "a"], [2, "b"], [3, "c", "x"]]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	columns := out["columns"].([]any)
	require.Len(t, columns, 3)
	assert.Equal(t, "c2", columns[2].(map[string]any)["name"])
	assert.Equal(t, 2.0, out["rows"])
}

func TestSchemaRecordsKeepKeyOrder(t *testing.T) {
	rec := do(t, newTestServer(t), "POST", "/v1/guess/schema", `{"records": [
		{"zeta": "2024-01-02", "alpha": 1},
		{"alpha": 2, "zeta": "2024-01-03"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	columns := decode(t, rec)["columns"].([]any)
	require.Len(t, columns, 2)
	first := columns[0].(map[string]any)
	assert.Equal(t, "zeta", first["name"])
	assert.Equal(t, "timestamp", first["type"])
	assert.Equal(t, "%Y-%m-%d", first["format"])
	assert.Equal(t, "alpha", columns[1].(map[string]any)["name"])
}

func TestSchemaCallerErrors(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, "POST", "/v1/guess/schema", `{"column_names": ["a"], "rows": [[1, 2]]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decode(t, rec)
	assert.Contains(t, out["error"], "1 names for 2 columns")
	assert.NotEmpty(t, out["hints"])

	rec = do(t, s, "POST", "/v1/guess/schema", `{"rows": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, "POST", "/v1/guess/schema", `{"records": [1]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t), "GET", "/v1/guess/schema", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, "POST", "/v1/guess/time-format", `{"examples": ["2024-01-02"]}`)

	rec := do(t, s, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `guesstimate_time_format_guesses_total{result="found"} 1`)
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t)
	s.router.HandleFunc("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := do(t, s, "GET", "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRunShutsDown(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eng := engine.NewEngine(engine.Config{}, logger, nil)
	s := NewServer(Config{Addr: "127.0.0.1:0"}, eng, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
