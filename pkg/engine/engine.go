/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Guessing engine shared by the CLI and the HTTP server. Wraps the time
format and schema guessers with run IDs, sample limits, structured logging and
metrics. Safe for concurrent use.
*/

package engine

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/kleascm/guesstimate/pkg/monitoring"
	"github.com/kleascm/guesstimate/pkg/sample"
	"github.com/kleascm/guesstimate/pkg/schema"
	"github.com/kleascm/guesstimate/pkg/timeformat"
	"github.com/sirupsen/logrus"
)

// Config holds engine settings
type Config struct {
	// SampleLimit caps the rows considered per schema guess
	SampleLimit int `json:"sample_limit"`
}

// TimeFormatReport is the outcome of one time format guess
type TimeFormatReport struct {
	RunID     string `json:"run_id"`
	Format    string `json:"format,omitempty"`
	Layout    string `json:"layout,omitempty"`
	Found     bool   `json:"found"`
	Matched   int    `json:"matched"`
	Attempted int    `json:"attempted"`
	GroupSize int    `json:"group_size"`
}

// SchemaReport is the outcome of one schema guess
type SchemaReport struct {
	RunID   string          `json:"run_id"`
	Rows    int             `json:"rows"`
	Columns []schema.Column `json:"columns"`
}

// Engine runs guesses
type Engine struct {
	config     Config
	timeFormat *timeformat.Guesser
	schema     *schema.Guesser
	logger     *logrus.Logger
	metrics    *monitoring.Metrics
}

// NewEngine creates an engine. A nil logger or metrics gets a fresh one.
func NewEngine(config Config, logger *logrus.Logger, metrics *monitoring.Metrics) *Engine {
	if config.SampleLimit <= 0 {
		config.SampleLimit = sample.DefaultLimit
	}
	if logger == nil {
		logger = logrus.New()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}

	tf := timeformat.NewGuesser()
	return &Engine{
		config:     config,
		timeFormat: tf,
		schema:     schema.NewGuesser(tf),
		logger:     logger,
		metrics:    metrics,
	}
}

// Config returns the engine settings
func (e *Engine) Config() Config {
	return e.config
}

// Metrics returns the engine's metrics
func (e *Engine) Metrics() *monitoring.Metrics {
	return e.metrics
}

// GuessTimeFormat guesses the strftime format shared by examples
func (e *Engine) GuessTimeFormat(examples []string) TimeFormatReport {
	start := time.Now()
	result := e.timeFormat.GuessDetailed(examples)

	report := TimeFormatReport{
		RunID:     uuid.New().String(),
		Format:    result.Format,
		Found:     result.Found,
		Matched:   result.Matched,
		Attempted: result.Attempted,
		GroupSize: result.GroupSize,
	}
	log := e.logger.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"matched":   report.Matched,
		"attempted": report.Attempted,
	})

	if report.Found {
		layout, err := timeformat.Layout(report.Format)
		if err != nil {
			log.WithError(err).Debug("No Go layout for format")
		} else {
			report.Layout = layout
		}
		log.WithField("format", report.Format).Info("Time format guessed")
	} else {
		log.Info("No time format found")
	}

	e.metrics.ObserveTimeFormat(report.Found, report.Matched, report.Attempted, time.Since(start))
	return report
}

// GuessSchema guesses columns for positional rows. The column count is taken
// from every row, including rows past the sample limit.
func (e *Engine) GuessSchema(columnNames []string, rows [][]any) (*SchemaReport, error) {
	rows = widen(limit(rows, e.config.SampleLimit), width(rows))
	return e.run(len(rows), func() ([]schema.Column, error) {
		return e.schema.FromRecords(columnNames, rows)
	})
}

// GuessRecords guesses columns for named records
func (e *Engine) GuessRecords(records []schema.Record) (*SchemaReport, error) {
	records = limit(records, e.config.SampleLimit)
	return e.run(len(records), func() ([]schema.Column, error) {
		return e.schema.FromFieldRecords(records)
	})
}

// GuessSource reads a sample from src and guesses its columns
func (e *Engine) GuessSource(ctx context.Context, src sample.Source) (*SchemaReport, error) {
	s, err := src.Read(ctx)
	if err != nil {
		e.metrics.ObserveSchema(0, nil, err, 0)
		return nil, errors.Wrapf(err, "read %s sample", src.Format())
	}
	e.logger.WithFields(logrus.Fields{
		"source": src.Format(),
		"rows":   s.Len(),
	}).Debug("Sample read")

	if s.Records != nil {
		return e.GuessRecords(s.Records)
	}
	return e.GuessSchema(s.ColumnNames, s.Rows)
}

func (e *Engine) run(rows int, guess func() ([]schema.Column, error)) (*SchemaReport, error) {
	start := time.Now()
	report := &SchemaReport{RunID: uuid.New().String(), Rows: rows}
	log := e.logger.WithFields(logrus.Fields{"run_id": report.RunID, "rows": rows})

	columns, err := guess()
	if err != nil {
		e.metrics.ObserveSchema(rows, nil, err, time.Since(start))
		log.WithError(err).Warn("Schema guess failed")
		return nil, err
	}
	report.Columns = columns

	types := make([]string, len(columns))
	for i, c := range columns {
		types[i] = c.Type
	}
	e.metrics.ObserveSchema(rows, types, nil, time.Since(start))
	log.WithField("columns", len(columns)).Info("Schema guessed")
	return report, nil
}

func width(rows [][]any) int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

// widen pads the first row with nils up to n cells without touching the caller's rows
func widen(rows [][]any, n int) [][]any {
	if len(rows) == 0 || len(rows[0]) >= n {
		return rows
	}
	first := make([]any, n)
	copy(first, rows[0])
	return append([][]any{first}, rows[1:]...)
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
