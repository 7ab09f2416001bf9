// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// FindCommand looks name up in a colon separated search list the way a
// shell would. Names containing a slash are checked as given.
func FindCommand(pathList, name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if strings.Contains(name, "/") {
		return name, isExecutableFile(name)
	}

	for _, dir := range SplitList(pathList) {
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && IsExecutable(info)
}
