// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// Default system data directories when XDG_DATA_DIRS is unset.
const DefaultDataDirs = "/usr/local/share:/usr/share"

// Env is the subset of the process environment the launcher reads.
type Env struct {
	Home          string
	XDGDataHome   string
	XDGDataDirs   string
	XDGConfigHome string
	Path          string
}

// CurrentEnv reads Env from the process environment.
func CurrentEnv() Env {
	home := os.Getenv("HOME")
	if home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			home = dir
		}
	}

	return Env{
		Home:          home,
		XDGDataHome:   os.Getenv("XDG_DATA_HOME"),
		XDGDataDirs:   os.Getenv("XDG_DATA_DIRS"),
		XDGConfigHome: os.Getenv("XDG_CONFIG_HOME"),
		Path:          os.Getenv("PATH"),
	}
}

// SearchPaths is the resolved set of directories scanned for applications.
// It is computed once at startup and handed to the scanner.
type SearchPaths struct {
	DataHome     string
	DataDirs     []string
	ExecDirs     []string
	ScanExecPath bool
}

// ResolveSearchPaths derives the search paths from env.
func ResolveSearchPaths(env Env, scanExecPath bool) SearchPaths {
	paths := SearchPaths{
		DataHome:     GetXDGDataHomeWithEnv(env.XDGDataHome, env.Home),
		DataDirs:     SplitList(env.XDGDataDirs),
		ScanExecPath: scanExecPath,
	}

	if len(paths.DataDirs) == 0 {
		paths.DataDirs = SplitList(DefaultDataDirs)
	}

	if scanExecPath {
		paths.ExecDirs = SplitList(env.Path)
	}

	return paths
}

// Roots returns the application directories in precedence order: the
// user-local directory first, then the system directories as configured.
func (p SearchPaths) Roots() []string {
	roots := make([]string, 0, len(p.DataDirs)+1)
	if p.DataHome != "" {
		roots = append(roots, filepath.Join(p.DataHome, "applications"))
	}

	for _, dir := range p.DataDirs {
		roots = append(roots, filepath.Join(dir, "applications"))
	}

	return roots
}

// SplitList splits a colon separated list, dropping empty components.
func SplitList(list string) []string {
	var out []string

	for part := range strings.SplitSeq(list, string(os.PathListSeparator)) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome, home string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home != "" {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGDataHomeWithEnv returns XDG data directory with custom environment override for testing.
func GetXDGDataHomeWithEnv(xdgDataHome, home string) string {
	if xdgDataHome != "" {
		return xdgDataHome
	}

	if home != "" {
		return filepath.Join(home, ".local", "share")
	}

	return ""
}

// ExpandPathWithHome expands a leading ~/ against home.
func ExpandPathWithHome(path, home string) string {
	if after, found := strings.CutPrefix(path, "~/"); found && home != "" {
		return filepath.Join(home, after)
	}

	return path
}
