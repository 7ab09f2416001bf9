// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package scanner discovers launchable applications and fills the
// registry in the background.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/janderssonse/lbar/internal/desktop"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/platform"
	"github.com/janderssonse/lbar/internal/registry"
)

var errNotUTF8 = errors.New("not valid UTF-8")

// Result summarises one completed scan.
type Result struct {
	Files       int           `json:"files"`
	Accepted    int           `json:"accepted"`
	Rejected    int           `json:"rejected"`
	Duplicates  int           `json:"duplicates"`
	Unreadable  int           `json:"unreadable"`
	Executables int           `json:"executables"`
	Elapsed     time.Duration `json:"elapsed"`

	// Skipped holds one ErrUnreadableSource per unreadable descriptor.
	Skipped []error `json:"-"`
}

// Scanner walks the search paths once and stores what it finds.
type Scanner struct {
	Paths    platform.SearchPaths
	Registry *registry.Registry
	Progress *registry.Progress
	Warn     domain.Warner

	// ReadFile defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// New creates a scanner writing into reg and progress.
func New(paths platform.SearchPaths, reg *registry.Registry, progress *registry.Progress, warn domain.Warner) *Scanner {
	if warn == nil {
		warn = domain.NopWarner{}
	}

	return &Scanner{
		Paths:    paths,
		Registry: reg,
		Progress: progress,
		Warn:     warn,
		ReadFile: os.ReadFile,
	}
}

// Start runs the scan on its own goroutine. The channel receives the
// result once and is then closed.
func (s *Scanner) Start(ctx context.Context) <-chan Result {
	done := make(chan Result, 1)

	go func() {
		defer close(done)

		done <- s.Run(ctx)
	}()

	return done
}

// Run walks every search directory, publishes the file total, then parses
// and inserts each file. Descriptor files are deduplicated by desktop file
// ID, first one wins. Executables from the search path come afterwards and
// replace any entry with the same name.
func (s *Scanner) Run(ctx context.Context) Result {
	started := time.Now()

	descriptors := Walk(s.Paths.Roots(), s.Warn)

	var executables []File
	if s.Paths.ScanExecPath {
		executables = WalkExecPath(s.Paths.ExecDirs, s.Warn)
	}

	result := Result{Files: len(descriptors) + len(executables)}
	s.Progress.SetTotal(uint32(result.Files)) //nolint:gosec

	seen := make(map[string]struct{})

	for _, file := range descriptors {
		if ctx.Err() != nil {
			break
		}

		s.addDescriptor(file, seen, &result)
		s.Progress.Advance()
	}

	for _, file := range executables {
		if ctx.Err() != nil {
			break
		}

		s.addExecutable(file, &result)
		s.Progress.Advance()
	}

	result.Elapsed = time.Since(started)

	return result
}

func (s *Scanner) addDescriptor(file File, seen map[string]struct{}, result *Result) {
	if !desktop.IsDescriptor(file.Path) {
		return
	}

	data, err := s.ReadFile(file.Path)
	if err == nil && !utf8.Valid(data) {
		err = errNotUTF8
	}

	if err != nil {
		result.Unreadable++
		result.Skipped = append(result.Skipped, fmt.Errorf("%w: %s: %w", domain.ErrUnreadableSource, file.Path, err))

		return
	}

	entry, ok := desktop.Parse(string(data))
	if !ok {
		result.Rejected++

		return
	}

	id := desktop.ID(file.Rel, file.Path)
	if _, dup := seen[id]; dup {
		result.Duplicates++

		return
	}

	app := domain.Application{
		ID:       id,
		Name:     entry.Name,
		Exec:     entry.Exec,
		Terminal: entry.Terminal,
		Source:   domain.SourceDescriptor,
	}
	if !app.IsValid() {
		result.Rejected++

		return
	}

	seen[id] = struct{}{}

	s.Registry.Put(app)
	result.Accepted++
}

func (s *Scanner) addExecutable(file File, result *Result) {
	name := filepath.Base(file.Path)

	path, err := filepath.Abs(file.Path)
	if err != nil {
		path = file.Path
	}

	s.Registry.Put(domain.Application{
		ID:     name,
		Name:   name,
		Exec:   path,
		Source: domain.SourceExecutable,
	})
	result.Executables++
}
