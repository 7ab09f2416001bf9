// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/janderssonse/lbar/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLauncher mocks the Launcher port.
type MockLauncher struct {
	mock.Mock
}

// Launch records the command.
func (m *MockLauncher) Launch(command string) {
	m.Called(command)
}

// RecordingWarner collects warnings for assertions.
type RecordingWarner struct {
	mu       sync.Mutex
	messages []string
}

// Warningf implements domain.Warner.
func (w *RecordingWarner) Warningf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the collected warnings.
func (w *RecordingWarner) Messages() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.messages...)
}

// DesktopFile returns descriptor content for a plain application.
func DesktopFile(name, exec string, extra ...string) string {
	content := "[Desktop Entry]\nType=Application\nName=" + name + "\nExec=" + exec + "\n"
	for _, line := range extra {
		content += line + "\n"
	}

	return content
}

// WriteFile creates path below root with content, creating parents.
func WriteFile(t *testing.T, root, path, content string) string {
	t.Helper()

	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))

	return full
}

var (
	_ domain.Launcher = (*MockLauncher)(nil)
	_ domain.Warner   = (*RecordingWarner)(nil)
)
