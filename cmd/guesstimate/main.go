/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Guesstimate. Wires the time-format, schema,
serve and version commands, their flags and the viper configuration they read.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/guesstimate/cmd/guesstimate/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the release version, overridden at build time with -ldflags
var Version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "guesstimate",
		Short: "Guesstimate - time format and column type inference",
		Long: `Guesstimate infers strftime formats from example timestamps and column types
from sampled records. Samples can come from CSV, JSON Lines, HTML tables or SQLite.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Also write logs to a timestamped file in this directory")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().String("report-dir", "", "Also save each report as JSON under this directory")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("report_dir", rootCmd.PersistentFlags().Lookup("report-dir"))

	// Add time-format command
	timeFormatCmd := &cobra.Command{
		Use:   "time-format [examples...]",
		Short: "Guess the strftime format of example timestamps",
		Long: `Guess the strftime format shared by example timestamps. Examples come from the
arguments, from --file (one per line) or from stdin. The most common format wins.`,
		RunE: commands.RunTimeFormat,
	}
	timeFormatCmd.Flags().String("file", "", "Read examples from this file, one per line")
	timeFormatCmd.Flags().Bool("layout", false, "Also print the Go time layout")

	viper.BindPFlag("time_format.file", timeFormatCmd.Flags().Lookup("file"))
	viper.BindPFlag("time_format.layout", timeFormatCmd.Flags().Lookup("layout"))

	rootCmd.AddCommand(timeFormatCmd)

	// Add schema command
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Guess column types of a sampled data set",
		Long: `Sample a CSV, JSON Lines, HTML table or SQLite table and guess the type of each
column. Timestamp columns also report their strftime format.`,
		RunE: commands.RunSchema,
	}
	schemaCmd.Flags().String("source", "", "Path or http(s) URL of the data set, or - for stdin (required)")
	schemaCmd.Flags().String("format", "", "Source format (csv, jsonl, html, sqlite); default from extension")
	schemaCmd.Flags().Bool("header", false, "CSV: the first row holds column names")
	schemaCmd.Flags().String("table", "", "SQLite: table to sample")
	schemaCmd.Flags().String("selector", "", "HTML: CSS selector of the table")
	schemaCmd.Flags().String("charset", "", "Input charset (e.g. latin1, shift_jis)")
	schemaCmd.Flags().Int("limit", 100, "Maximum rows to sample")
	schemaCmd.Flags().String("output", "json", "Output shape (json, table, openapi)")

	schemaCmd.MarkFlagRequired("source")

	viper.BindPFlag("schema.source", schemaCmd.Flags().Lookup("source"))
	viper.BindPFlag("schema.format", schemaCmd.Flags().Lookup("format"))
	viper.BindPFlag("schema.header", schemaCmd.Flags().Lookup("header"))
	viper.BindPFlag("schema.table", schemaCmd.Flags().Lookup("table"))
	viper.BindPFlag("schema.selector", schemaCmd.Flags().Lookup("selector"))
	viper.BindPFlag("schema.charset", schemaCmd.Flags().Lookup("charset"))
	viper.BindPFlag("sample.limit", schemaCmd.Flags().Lookup("limit"))
	viper.BindPFlag("schema.output", schemaCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(schemaCmd)

	// Add serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the guessing HTTP API",
		Long: `Serve the guessing API: POST /v1/guess/time-format, POST /v1/guess/schema,
GET /metrics and GET /healthz.`,
		RunE: commands.RunServe,
	}
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "guesstimate %s\n", Version)
		},
	})

	return rootCmd
}
