// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Launcher starts a resolved command line. Implementations never report
// failures back to the interactive loop.
type Launcher interface {
	Launch(command string)
}

// Warner receives non-fatal diagnostics, such as unreadable directories.
type Warner interface {
	Warningf(format string, args ...any)
}

// Catalog is the read side of the application registry used by the
// interactive loop.
type Catalog interface {
	Get(name string) (Application, bool)
	Snapshot() []Application
	Generation() uint64
}

// OutputPort presents the results of the non-interactive commands.
type OutputPort interface {
	// Applications outputs registry entries.
	Applications(apps []Application) error

	// Suggestions outputs ranked suggestion names with their scores.
	Suggestions(query string, names []string, scores []int) error

	// Success outputs a completion message with optional structured data.
	Success(message string, data any) error

	// Info outputs an informational message.
	Info(message string) error
}

// NopWarner drops every warning.
type NopWarner struct{}

// Warningf implements Warner.
func (NopWarner) Warningf(string, ...any) {}
