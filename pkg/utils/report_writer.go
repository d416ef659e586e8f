/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing guess reports to a report directory.
Handles timestamped, kind-specific subdirectory naming.
*/

package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

// WriteReport writes report as indented JSON to <dir>/<kind>/<timestamp>_<kind>_<id>.json
// and returns the file path
func WriteReport(dir, kind, id string, report interface{}) (string, error) {
	reportDir := filepath.Join(dir, kind)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create report directory")
	}

	// 2024-06-11_01-30-00_schema_1b4e28ba.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	if len(id) > 8 {
		id = id[:8]
	}
	filePath := filepath.Join(reportDir, timestamp+"_"+kind+"_"+id+".json")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal report")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write report file")
	}
	return filePath, nil
}
