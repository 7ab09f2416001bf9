// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "fmt"

// Application is one launchable entry in the registry.
type Application struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Exec     string `json:"exec"`
	Terminal bool   `json:"terminal"`
	Source   Source `json:"source"`
}

// IsValid reports whether the entry can be shown and launched.
func (a Application) IsValid() bool {
	return a.Name != "" && a.Exec != ""
}

// Source tells where an entry was discovered.
type Source int

// Discovery sources, in scan phase order.
const (
	SourceDescriptor Source = iota
	SourceExecutable
)

// MarshalText renders the source by name in JSON output.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names written by MarshalText.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "descriptor":
		*s = SourceDescriptor
	case "executable":
		*s = SourceExecutable
	default:
		return fmt.Errorf("unknown source %q", text)
	}

	return nil
}

func (s Source) String() string {
	switch s {
	case SourceDescriptor:
		return "descriptor"
	case SourceExecutable:
		return "executable"
	default:
		return "unknown"
	}
}
