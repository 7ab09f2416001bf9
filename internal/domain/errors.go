// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrEmptyCommand     = errors.New("empty command")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrAlreadyRunning   = errors.New("another instance is already running")
	ErrNoTerminal       = errors.New("a terminal is required")
	ErrUnreadableSource = errors.New("unreadable source")
)

// ExitError carries a process exit code up to main.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
