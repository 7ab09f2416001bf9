// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package launch turns a resolved command line into a detached process.
package launch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/janderssonse/lbar/internal/domain"
)

// Wrap runs exec inside terminal using the conventional -e flag.
func Wrap(terminal, exec string) string {
	return terminal + " -e \"" + exec + "\""
}

// Split breaks command on single spaces. Consecutive spaces produce empty
// arguments and quotes are not interpreted. A command without a program
// in front yields domain.ErrEmptyCommand.
func Split(command string) (string, []string, error) {
	parts := strings.Split(command, " ")
	if parts[0] == "" {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrEmptyCommand, command)
	}

	return parts[0], parts[1:], nil
}

// Spawner starts commands without waiting for them.
type Spawner struct {
	// DryRun prints the program and arguments to Out instead of starting them.
	DryRun bool
	Out    io.Writer
	// Warn receives spawn failures. Leave it as domain.NopWarner to stay silent.
	Warn domain.Warner
	// Start launches the prepared command.
	Start func(cmd *exec.Cmd) error
}

var _ domain.Launcher = (*Spawner)(nil)

// NewSpawner returns a spawner that reports failures to warn.
func NewSpawner(warn domain.Warner) *Spawner {
	if warn == nil {
		warn = domain.NopWarner{}
	}

	return &Spawner{
		Out:   os.Stdout,
		Warn:  warn,
		Start: startDetached,
	}
}

// Launch implements domain.Launcher. Errors never reach the caller.
func (s *Spawner) Launch(command string) {
	program, args, err := Split(command)
	if err != nil {
		s.Warn.Warningf("couldn't launch (%v)", err)

		return
	}

	if s.DryRun {
		_, _ = fmt.Fprintf(s.Out, "%s %q\n", program, args)

		return
	}

	cmd := exec.Command(program, args...) //nolint:gosec,noctx // launching user-chosen programs is the point
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	start := s.Start
	if start == nil {
		start = startDetached
	}

	if err := start(cmd); err != nil {
		s.Warn.Warningf("couldn't launch %s (%v)", program, err)
	}
}

// startDetached starts cmd with stdio on the null device and lets it go.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	return cmd.Process.Release()
}
