// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/platform"
)

// File is one file found by the walk. Rel is the owning directory relative
// to the root it was found under, empty for the root itself.
type File struct {
	Path string
	Rel  string
}

// Walk lists every file below roots in precedence order: roots in the
// order given, each directory's files before its subdirectories, and
// subdirectories depth-first in directory-entry order. Symlinked
// directories are followed; a directory reached twice is walked once.
// Directories that cannot be opened are reported to warn and skipped.
func Walk(roots []string, warn domain.Warner) []File {
	w := &walker{warn: warn, visited: make(map[string]struct{})}

	var files []File

	for _, root := range roots {
		files = w.walkDir(files, root, "")
	}

	return files
}

type walker struct {
	warn domain.Warner
	// visited holds the resolved path of every directory entered.
	visited map[string]struct{}
}

func (w *walker) walkDir(files []File, dir, rel string) []File {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := w.visited[real]; seen {
			return files
		}

		w.visited[real] = struct{}{}
	}

	entries, err := readDirUnsorted(dir)
	if err != nil {
		w.warn.Warningf("couldn't read the files in %s (%v)", dir, err)

		return files
	}

	var subdirs []string

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir, ok := resolveDir(entry, path)
		if !ok {
			continue
		}

		if isDir {
			subdirs = append(subdirs, entry.Name())

			continue
		}

		files = append(files, File{Path: path, Rel: rel})
	}

	for _, name := range subdirs {
		files = w.walkDir(files, filepath.Join(dir, name), filepath.Join(rel, name))
	}

	return files
}

// WalkExecPath lists the executables directly inside each directory of the
// executable search path. Subdirectories are not entered.
func WalkExecPath(dirs []string, warn domain.Warner) []File {
	var files []File

	for _, dir := range dirs {
		entries, err := readDirUnsorted(dir)
		if err != nil {
			warn.Warningf("couldn't read the files in %s (%v)", dir, err)

			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			info, err := os.Stat(path)
			if err != nil || !platform.IsExecutable(info) {
				continue
			}

			files = append(files, File{Path: path})
		}
	}

	return files
}

// readDirUnsorted returns entries in the order the filesystem yields them.
func readDirUnsorted(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return f.ReadDir(-1)
}

// resolveDir reports whether entry is a directory, following symlinks.
// Dangling links are skipped.
func resolveDir(entry fs.DirEntry, path string) (isDir, ok bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), true
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}

	return info.IsDir(), true
}
