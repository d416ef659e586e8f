/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Guesstimate commands. Provides configuration
loading, logging setup and engine construction used across all commands.
*/

package commands

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/engine"
	"github.com/kleascm/guesstimate/pkg/logging"
	"github.com/kleascm/guesstimate/pkg/sample"
	"github.com/kleascm/guesstimate/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GUESSTIMATE_SAMPLE_LIMIT
const EnvPrefix = "GUESSTIMATE"

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "custom")
	viper.SetDefault("log_max_files", 10)
	viper.SetDefault("sample.limit", sample.DefaultLimit)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "30s")

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from viper settings
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    format != logging.LogFormatJSON,
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to setup logging")
	}
	return logger, nil
}

// setup loads config and logging and builds an engine. Callers close the logger.
func setup() (*engine.Engine, *logging.Logger, error) {
	if err := LoadConfig(); err != nil {
		return nil, nil, err
	}
	logger, err := SetupLogging()
	if err != nil {
		return nil, nil, err
	}
	eng := engine.NewEngine(engine.Config{
		SampleLimit: viper.GetInt("sample.limit"),
	}, logger.GetLogger(), nil)
	return eng, logger, nil
}

// saveReport writes report under --report-dir when set
func saveReport(cmd *cobra.Command, kind, runID string, report interface{}) error {
	dir := viper.GetString("report_dir")
	if dir == "" {
		return nil
	}
	path, err := utils.WriteReport(dir, kind, runID, report)
	if err != nil {
		return err
	}
	cmd.PrintErrf("💾 Report saved to: %s\n", path)
	return nil
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
