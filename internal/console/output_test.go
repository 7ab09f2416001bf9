// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode struct {
	verbose, json, plain bool
}

func newState(m mode) (*OutputState, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	o := &OutputState{Stdout: &stdout, Stderr: &stderr}
	o.SetMode(m.verbose, m.json, m.plain)

	return o, &stdout, &stderr
}

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}

	o.SetMode(true, false, true)
	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Plain)

	o.SetMode(false, true, false)
	assert.False(t, o.Verbose)
	assert.True(t, o.JSON)
	assert.False(t, o.Plain)
}

func TestOutputStateIsTerminal(t *testing.T) {
	t.Parallel()

	o, stdout, _ := newState(mode{})

	assert.False(t, o.IsTerminal(stdout), "buffers are never terminals")

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, o.IsTerminal(f), "regular files are not terminals")
}

func TestOutputStateDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     mode
		emit     func(o *OutputState)
		expected string
	}{
		{name: "progress when verbose", mode: mode{verbose: true}, emit: func(o *OutputState) { o.Progressf("scanned %d", 3) }, expected: "scanned 3\n"},
		{name: "progress silent by default", emit: func(o *OutputState) { o.Progressf("scanned %d", 3) }},
		{name: "progress silent in json", mode: mode{verbose: true, json: true}, emit: func(o *OutputState) { o.Progressf("scanned %d", 3) }},
		{name: "progress silent in plain", mode: mode{verbose: true, plain: true}, emit: func(o *OutputState) { o.Progressf("scanned %d", 3) }},
		{name: "warning", emit: func(o *OutputState) { o.Warningf("test %s", "warning") }, expected: "⚠ test warning\n"},
		{name: "plain warning", mode: mode{plain: true}, emit: func(o *OutputState) { o.Warningf("test %s", "warning") }, expected: "warning: test warning\n"},
		{name: "error", emit: func(o *OutputState) { o.Errorf("test %s", "error") }, expected: "✗ test error\n"},
		{name: "plain error", mode: mode{plain: true}, emit: func(o *OutputState) { o.Errorf("test %s", "error") }, expected: "error: test error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, stdout, stderr := newState(tt.mode)
			tt.emit(o)

			assert.Equal(t, tt.expected, stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestOutputStateHoldRelease(t *testing.T) {
	t.Parallel()

	o, _, stderr := newState(mode{})

	o.Hold()
	o.Warningf("first")
	o.Errorf("second")
	assert.Empty(t, stderr.String(), "held messages must not reach stderr")

	o.Release()
	assert.Equal(t, "⚠ first\n✗ second\n", stderr.String())

	o.Warningf("third")
	assert.Equal(t, "⚠ first\n✗ second\n⚠ third\n", stderr.String())

	assert.NotPanics(t, o.Release, "release without hold")
}

func TestOutputStateConcurrentWarnings(t *testing.T) {
	t.Parallel()

	o, _, stderr := newState(mode{plain: true})
	o.Hold()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			o.Warningf("x")
		}()
	}

	wg.Wait()
	o.Release()

	assert.Equal(t, 20, bytes.Count(stderr.Bytes(), []byte("warning: x\n")))
}

func TestOutputStateJSONResult(t *testing.T) {
	t.Parallel()

	o, stdout, _ := newState(mode{json: true})
	o.JSONResult("success", map[string]any{"key": "value"})

	var result map[string]any

	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "value", result["key"])
}

func TestOutputStateErrorResult(t *testing.T) {
	t.Parallel()

	t.Run("json mode writes both streams", func(t *testing.T) {
		t.Parallel()

		o, stdout, stderr := newState(mode{json: true})
		o.ErrorResult("boom", 4)

		var result map[string]any

		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, "error", result["status"])
		assert.Equal(t, "boom", result["error"])
		assert.InDelta(t, 4, result["code"], 0)
		assert.Equal(t, "✗ boom\n", stderr.String())
	})

	t.Run("text mode writes stderr only", func(t *testing.T) {
		t.Parallel()

		o, stdout, stderr := newState(mode{})
		o.ErrorResult("boom", 4)

		assert.Empty(t, stdout.String())
		assert.Equal(t, "✗ boom\n", stderr.String())
	})
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	require.NotNil(t, DefaultOutput)
}
