// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSearchPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       Env
		scanExec  bool
		wantRoots []string
		wantExec  []string
	}{
		{
			name: "defaults from HOME",
			env:  Env{Home: "/home/ada"},
			wantRoots: []string{
				"/home/ada/.local/share/applications",
				"/usr/local/share/applications",
				"/usr/share/applications",
			},
		},
		{
			name: "XDG overrides keep configured order",
			env: Env{
				Home:        "/home/ada",
				XDGDataHome: "/data/home",
				XDGDataDirs: "/opt/share::/usr/share",
			},
			wantRoots: []string{
				"/data/home/applications",
				"/opt/share/applications",
				"/usr/share/applications",
			},
		},
		{
			name:     "exec path only when enabled",
			env:      Env{Home: "/h", Path: "/usr/bin:/bin:"},
			scanExec: true,
			wantRoots: []string{
				"/h/.local/share/applications",
				"/usr/local/share/applications",
				"/usr/share/applications",
			},
			wantExec: []string{"/usr/bin", "/bin"},
		},
		{
			name: "no home drops the user directory",
			env:  Env{XDGDataDirs: "/usr/share"},
			wantRoots: []string{
				"/usr/share/applications",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			paths := ResolveSearchPaths(testCase.env, testCase.scanExec)

			assert.Equal(t, testCase.wantRoots, paths.Roots())
			assert.Equal(t, testCase.wantExec, paths.ExecDirs)
			assert.Equal(t, testCase.scanExec, paths.ScanExecPath)
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("::"))
	assert.Equal(t, []string{"/a", "/b"}, SplitList("/a: :/b"))
}

func TestXDGHomes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/x", GetXDGDataHomeWithEnv("/x", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", ".local", "share"), GetXDGDataHomeWithEnv("", "/home/u"))
	assert.Empty(t, GetXDGDataHomeWithEnv("", ""))

	assert.Equal(t, "/cfg", GetXDGConfigHomeWithEnv("/cfg", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", ".config"), GetXDGConfigHomeWithEnv("", "/home/u"))
}

func TestGetConfigPathWithEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/cfg/lbar/config.toml", GetConfigPathWithEnv(Env{XDGConfigHome: "/cfg"}))
	assert.Equal(t, "/home/u/.config/lbar/config.toml", GetConfigPathWithEnv(Env{Home: "/home/u"}))
	assert.Empty(t, GetConfigPathWithEnv(Env{}))
}

func TestExpandPathWithHome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/home/u/x/y", ExpandPathWithHome("~/x/y", "/home/u"))
	assert.Equal(t, "/abs", ExpandPathWithHome("/abs", "/home/u"))
	assert.Equal(t, "~/x", ExpandPathWithHome("~/x", ""))
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "file.txt")

	require.NoError(t, SafeWriteFile(target, []byte("x"), 0o644))
	assert.True(t, FileExists(target))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.False(t, IsExecutable(info))

	script := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec

	info, err = os.Stat(script)
	require.NoError(t, err)
	assert.True(t, IsExecutable(info))

	info, err = os.Stat(dir)
	require.NoError(t, err)
	assert.False(t, IsExecutable(info))
}

func TestFindCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tool := filepath.Join(dir, "bin", "foot")
	require.NoError(t, SafeWriteFile(tool, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, SafeWriteFile(filepath.Join(dir, "bin", "notes"), []byte("x"), 0o644))

	pathList := filepath.Join(dir, "missing") + ":" + filepath.Join(dir, "bin")

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "on the path", query: "foot", want: tool, found: true},
		{name: "not executable", query: "notes"},
		{name: "absent", query: "xterm"},
		{name: "empty", query: ""},
		{name: "absolute path", query: tool, want: tool, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := FindCommand(pathList, tt.query)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
