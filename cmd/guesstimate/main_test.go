/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main_test.go
Description: End-to-end tests for the command-line interface.
*/

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/cmd/guesstimate/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTimeFormatArgs(t *testing.T) {
	out, err := run(t, "", "time-format", "2024-01-02 03:04:05", "2024-02-03 04:05:06")
	require.NoError(t, err)
	assert.Equal(t, "%Y-%m-%d %H:%M:%S\n", out)
}

func TestTimeFormatLayout(t *testing.T) {
	out, err := run(t, "", "time-format", "--layout", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "%Y-%m-%d\t2006-01-02\n", out)
}

func TestTimeFormatStdinAndFile(t *testing.T) {
	out, err := run(t, "2024/01/02\n2024/02/03\n", "time-format")
	require.NoError(t, err)
	assert.Equal(t, "%Y/%m/%d\n", out)

	path := writeFile(t, "examples.txt", "2024.01.02\n\n2024.02.03\n")
	out, err = run(t, "", "time-format", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "%Y.%m.%d\n", out)
}

func TestTimeFormatNotFound(t *testing.T) {
	_, err := run(t, "", "time-format", "hello", "world")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrNoTimeFormat))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

const peopleCSV = "id,name,joined\n1,alice,2024-01-02\n2,bob,2024-02-03\n"

func TestSchemaJSON(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)
	out, err := run(t, "", "schema", "--source", path, "--header")
	require.NoError(t, err)

	var report struct {
		RunID   string `json:"run_id"`
		Rows    int    `json:"rows"`
		Columns []struct {
			Name   string `json:"name"`
			Type   string `json:"type"`
			Format string `json:"format"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Rows)
	require.Len(t, report.Columns, 3)
	assert.Equal(t, "long", report.Columns[0].Type)
	assert.Equal(t, "string", report.Columns[1].Type)
	assert.Equal(t, "timestamp", report.Columns[2].Type)
	assert.Equal(t, "%Y-%m-%d", report.Columns[2].Format)
}

func TestSchemaTable(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)
	out, err := run(t, "", "schema", "--source", path, "--header", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "joined")
	assert.Contains(t, out, "timestamp")
	assert.Contains(t, out, "2006-01-02")
}

func TestSchemaOpenAPI(t *testing.T) {
	path := writeFile(t, "events.jsonl", `{"at":"2024-01-02","n":1}`+"\n")
	out, err := run(t, "", "schema", "--source", path, "--output", "openapi")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	props := doc["properties"].(map[string]any)
	at := props["at"].(map[string]any)
	assert.Equal(t, "%Y-%m-%d", at["x-strftime"])
}

func TestSchemaBadOutput(t *testing.T) {
	_, err := run(t, "", "schema", "--source", "x.csv", "--output", "xml")
	require.Error(t, err)
}

func TestSchemaMissingSource(t *testing.T) {
	_, err := run(t, "", "schema")
	require.Error(t, err)
}

func TestReportDir(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "", "--report-dir", dir, "time-format", "2024-01-02")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "time-format", "*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "guesstimate "+Version+"\n", out)
}
