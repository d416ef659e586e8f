/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema.go
Description: Schema guessing command. Samples a CSV, JSON Lines, HTML or SQLite source
and prints the guessed columns as JSON, a table or an OpenAPI schema.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/engine"
	"github.com/kleascm/guesstimate/pkg/sample"
	"github.com/kleascm/guesstimate/pkg/schema"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output shapes for the schema command
const (
	OutputJSON    = "json"
	OutputTable   = "table"
	OutputOpenAPI = "openapi"
)

// RunSchema samples a source and prints its guessed columns
func RunSchema(cmd *cobra.Command, args []string) error {
	output := strings.ToLower(viper.GetString("schema.output"))
	switch output {
	case OutputJSON, OutputTable, OutputOpenAPI:
	default:
		return errors.WithHint(errors.Newf("unsupported output %q", output), "use json, table or openapi")
	}

	eng, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	path := viper.GetString("schema.source")
	format := sample.Format(viper.GetString("schema.format"))
	if format == "" {
		format = formatFromPath(path)
	}
	src, err := sample.NewSource(sample.Options{
		Path:     path,
		Format:   format,
		Header:   viper.GetBool("schema.header"),
		Limit:    viper.GetInt("sample.limit"),
		Charset:  viper.GetString("schema.charset"),
		Table:    viper.GetString("schema.table"),
		Selector: viper.GetString("schema.selector"),
	})
	if err != nil {
		return err
	}

	cmd.PrintErrf("🔍 Sampling %s source: %s\n", src.Format(), path)
	report, err := eng.GuessSource(commandContext(cmd), src)
	if err != nil {
		return err
	}
	cmd.PrintErrf("✅ Guessed %d columns from %d rows\n", len(report.Columns), report.Rows)

	if err := saveReport(cmd, "schema", report.RunID, report); err != nil {
		return err
	}
	return printSchema(cmd.OutOrStdout(), output, report)
}

// formatFromPath picks a source format from the file extension
func formatFromPath(path string) sample.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson", ".json":
		return sample.FormatJSONL
	case ".html", ".htm":
		return sample.FormatHTML
	case ".db", ".sqlite", ".sqlite3":
		return sample.FormatSQLite
	}
	return sample.FormatCSV
}

func printSchema(w io.Writer, output string, report *engine.SchemaReport) error {
	switch output {
	case OutputTable:
		return printTable(w, report.Columns)
	case OutputOpenAPI:
		return writeJSON(w, schema.OpenAPISchema(report.Columns))
	}
	return writeJSON(w, report)
}

func printTable(w io.Writer, columns []schema.Column) error {
	data := pterm.TableData{{"#", "NAME", "TYPE", "FORMAT", "GO LAYOUT"}}
	for _, c := range columns {
		layout := ""
		if c.IsTimestamp() {
			layout, _ = c.Layout()
		}
		data = append(data, []string{strconv.Itoa(c.Index), c.Name, c.Type, c.Format, layout})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
