// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes diagnostics to stderr and results to stdout.
package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"sync"

	"golang.org/x/term"
)

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	// Stdout and Stderr default to the process streams when nil.
	Stdout io.Writer
	Stderr io.Writer

	mu   sync.Mutex
	held *bytes.Buffer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = &OutputState{} //nolint:gochecknoglobals

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

// IsTerminal reports whether w is a terminal rather than a pipe or file.
func (o *OutputState) IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}

// Hold queues stderr messages until Release. The bar calls it while it
// owns the terminal so scan warnings don't tear the screen.
func (o *OutputState) Hold() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.held == nil {
		o.held = &bytes.Buffer{}
	}
}

// Release writes queued messages to stderr and stops queueing.
func (o *OutputState) Release() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.held == nil {
		return
	}

	_, _ = o.held.WriteTo(o.errWriter())
	o.held = nil
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		o.diag(format, args...)
	}
}

// Warningf writes warning messages to stderr (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		o.diag("warning: "+format, args...)
	} else {
		o.diag("⚠ "+format, args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		o.diag("error: "+format, args...)
	} else {
		o.diag("✗ "+format, args...)
	}
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.outWriter()).Encode(result); err != nil {
		o.diag("error encoding JSON: %v", err)
	}
}

// ErrorResult reports a failed command on stderr and, in JSON mode, also
// as a result object on stdout.
func (o *OutputState) ErrorResult(message string, code int) {
	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": message,
			"code":  code,
		})
	}

	o.Errorf("%s", message)
}

func (o *OutputState) diag(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var w io.Writer = o.held
	if o.held == nil {
		w = o.errWriter()
	}

	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

func (o *OutputState) outWriter() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}

	return os.Stdout
}

func (o *OutputState) errWriter() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}

	return os.Stderr
}
