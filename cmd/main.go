// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for lbar.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/janderssonse/lbar/internal/cli"
	"github.com/janderssonse/lbar/internal/console"
	"github.com/janderssonse/lbar/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args, console.DefaultOutput, cli.NewCLI().Run)

	stop()
	os.Exit(code)
}

type runFunc func(ctx context.Context, args []string) error

// run executes the command tree and maps its error to an exit code. The
// output mode set by the command's flags decides how the error is shown.
func run(ctx context.Context, args []string, output *console.OutputState, runCLI runFunc) int {
	err := runCLI(ctx, args)
	if err == nil {
		return cli.ExitSuccess
	}

	exitErr := &domain.ExitError{}
	if errors.As(err, &exitErr) {
		output.ErrorResult(exitErr.Message, exitErr.Code)

		return exitErr.Code
	}

	output.ErrorResult("Unexpected error: "+err.Error(), cli.ExitGeneralError)

	return cli.ExitGeneralError
}
