/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: timeformat.go
Description: Time format guessing command. Reads examples from arguments, a file or
stdin and prints the consensus strftime format, optionally with its Go layout.
*/

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrNoTimeFormat is returned when no example matched any format
var ErrNoTimeFormat = errors.New("no time format found")

// RunTimeFormat guesses the format shared by the given examples
func RunTimeFormat(cmd *cobra.Command, args []string) error {
	eng, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	examples := args
	if len(examples) == 0 {
		examples, err = readExamples(cmd)
		if err != nil {
			return err
		}
	}
	cmd.PrintErrf("🕒 Guessing a time format from %d examples\n", len(examples))

	report := eng.GuessTimeFormat(examples)
	if err := saveReport(cmd, "time-format", report.RunID, report); err != nil {
		return err
	}
	if !report.Found {
		return errors.WithHintf(errors.Wrapf(ErrNoTimeFormat, "%d examples tried", report.Attempted),
			"examples need at least a date such as 2024-01-31")
	}

	out := cmd.OutOrStdout()
	if !viper.GetBool("time_format.layout") {
		_, err = fmt.Fprintln(out, report.Format)
		return err
	}
	if report.Layout == "" {
		return errors.Newf("format %q has no Go layout", report.Format)
	}
	_, err = fmt.Fprintf(out, "%s\t%s\n", report.Format, report.Layout)
	return err
}

// readExamples reads one example per line from --file or stdin
func readExamples(cmd *cobra.Command) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path := viper.GetString("time_format.file"); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open examples")
		}
		defer file.Close()
		r = file
	}

	var examples []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			examples = append(examples, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read examples")
	}
	return examples, nil
}
