// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for the non-interactive subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/janderssonse/lbar/internal/domain"
)

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

var _ domain.OutputPort = (*OutputAdapter)(nil)

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs human-readable tables.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// PlainFormat outputs bare names, one per line.
	PlainFormat
)

// NewOutputAdapterWithWriter creates a new output adapter with a custom writer for testing.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Applications prints registry entries.
func (o *OutputAdapter) Applications(apps []domain.Application) error {
	switch o.format {
	case JSONFormat:
		if apps == nil {
			apps = []domain.Application{}
		}

		return o.outputJSON(map[string]any{
			"count":        len(apps),
			"applications": apps,
		})
	case PlainFormat:
		for _, app := range apps {
			_, _ = fmt.Fprintln(o.writer, app.Name)
		}

		return nil
	case TextFormat:
	}

	if len(apps) == 0 {
		return o.Info("No applications found")
	}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{app.Name, app.Source.String(), yesNo(app.Terminal), app.Exec})
	}

	return o.Table([]string{"NAME", "SOURCE", "TERMINAL", "EXEC"}, rows)
}

type suggestionJSON struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Suggestions prints ranked names for query. scores pairs with names by index.
func (o *OutputAdapter) Suggestions(query string, names []string, scores []int) error {
	if len(names) != len(scores) {
		return fmt.Errorf("%d names but %d scores", len(names), len(scores))
	}

	switch o.format {
	case JSONFormat:
		items := make([]suggestionJSON, len(names))
		for i := range names {
			items[i] = suggestionJSON{Name: names[i], Score: scores[i]}
		}

		return o.outputJSON(map[string]any{
			"query":       query,
			"suggestions": items,
		})
	case PlainFormat:
		for _, name := range names {
			_, _ = fmt.Fprintln(o.writer, name)
		}

		return nil
	case TextFormat:
	}

	if len(names) == 0 {
		return o.Info(fmt.Sprintf("No suggestions for %q", query))
	}

	rows := make([][]string, len(names))
	for i := range names {
		rows[i] = []string{strconv.Itoa(i + 1), names[i], strconv.Itoa(scores[i])}
	}

	return o.Table([]string{"#", "NAME", "SCORE"}, rows)
}

// Success outputs a success message with optional structured data.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.quiet && data == nil {
		return nil
	}

	if o.format == JSONFormat && data != nil {
		return o.outputJSON(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	defer func() { _ = w.Flush() }()

	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", len(headers[i]))
	}

	_, _ = fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return nil
}

func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// OutputFromFlags picks the format from the global --json and --plain flags.
func OutputFromFlags(writer io.Writer, jsonFlag, plainFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat

	switch {
	case jsonFlag:
		format = JSONFormat
	case plainFlag:
		format = PlainFormat
	}

	return NewOutputAdapterWithWriter(writer, format, quietFlag)
}
