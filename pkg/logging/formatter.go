/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for Guesstimate. Compact single-line output with
optional colors, fields in sorted order and shortened run IDs.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter renders one entry per line
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		f.write(&output, 36, entry.Time.Format("2006-01-02 15:04:05.000"))
	}

	level := fmt.Sprintf("%-5s", strings.ToUpper(entry.Level.String()))
	f.write(&output, levelColor(entry.Level), level)

	if f.Caller && entry.HasCaller() {
		f.write(&output, 33, fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line))
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// write appends s and a space, colored when colors are on
func (f *CustomFormatter) write(b *strings.Builder, color int, s string) {
	if f.Colors {
		fmt.Fprintf(b, "\033[%dm%s\033[0m ", color, s)
		return
	}
	b.WriteString(s)
	b.WriteString(" ")
}

// levelColor returns the ANSI color code for a log level
func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	default:
		return 35 // Magenta
	}
}

func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := formatValue(key, fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func formatValue(key string, value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case error:
		return fmt.Sprintf("%q", v.Error())
	case string:
		if key == "run_id" && len(v) > 8 {
			return v[:8]
		}
		if len(v) > 60 {
			v = v[:60] + "..."
		}
		if strings.ContainsAny(v, " \t\"") {
			return fmt.Sprintf("%q", v)
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
