// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package desktop parses and writes the subset of desktop entry files
// needed to launch applications.
package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/janderssonse/lbar/internal/platform"
	"golang.org/x/text/cases"
)

// Extension marks descriptor files.
const Extension = ".desktop"

// Recognised keys.
const (
	keyExec      = "Exec="
	keyName      = "Name="
	keyType      = "Type="
	keyTerminal  = "Terminal="
	keyHidden    = "Hidden="
	keyNoDisplay = "NoDisplay="

	typeApplication = "Application"
)

// ErrInvalidEntry is returned when an entry cannot be written.
var ErrInvalidEntry = errors.New("invalid desktop entry")

// Entry is the launch-relevant content of one descriptor file.
type Entry struct {
	Name     string
	Exec     string
	Terminal bool
}

// parseState tracks which keys have been seen; the first occurrence of
// each key wins.
type parseState struct {
	name, exec, appType, terminal string

	seenName, seenExec, seenType, seenTerm bool
}

// Parse reads a descriptor file. It returns false when the file must not
// appear in the registry: hidden, not an application, or missing a name or
// command.
func Parse(content string) (Entry, bool) {
	var st parseState

	seenHidden, seenNoDisplay := false, false

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case !st.seenExec && strings.HasPrefix(line, keyExec):
			st.seenExec = true
			st.exec = cleanExec(line[len(keyExec):])
		case !st.seenName && strings.HasPrefix(line, keyName):
			st.seenName = true
			st.name = unquote(line[len(keyName):])
		case !st.seenType && strings.HasPrefix(line, keyType):
			st.seenType = true
			st.appType = line[len(keyType):]
		case !st.seenTerm && strings.HasPrefix(line, keyTerminal):
			st.seenTerm = true
			st.terminal = line[len(keyTerminal):]
		case !seenHidden && strings.HasPrefix(line, keyHidden):
			seenHidden = true
			if hides(line[len(keyHidden):]) {
				return Entry{}, false
			}
		case !seenNoDisplay && strings.HasPrefix(line, keyNoDisplay):
			seenNoDisplay = true
			if hides(line[len(keyNoDisplay):]) {
				return Entry{}, false
			}
		}
	}

	if st.name == "" || st.appType != typeApplication || st.exec == "" {
		return Entry{}, false
	}

	return Entry{
		Name:     st.name,
		Exec:     st.exec,
		Terminal: wantsTerminal(st.terminal),
	}, true
}

// hides reports whether a Hidden/NoDisplay value excludes the file.
// Values that are not booleans exclude it too.
func hides(value string) bool {
	hidden, err := strconv.ParseBool(fold(unquote(strings.TrimSpace(value))))

	return err != nil || hidden
}

func wantsTerminal(value string) bool {
	value = fold(unquote(value))

	return value != "" && value != "false"
}

// cleanExec removes field codes and one pair of surrounding quotes.
// Interior whitespace left behind by removed codes is kept.
func cleanExec(value string) string {
	return strings.TrimSpace(unquote(StripFieldCodes(value)))
}

// StripFieldCodes removes every %-prefixed two character token.
func StripFieldCodes(value string) string {
	if !strings.Contains(value, "%") {
		return value
	}

	var out strings.Builder

	out.Grow(len(value))

	for i := 0; i < len(value); {
		if value[i] != '%' {
			out.WriteByte(value[i])
			i++

			continue
		}

		i++
		if i < len(value) {
			_, size := utf8.DecodeRuneInString(value[i:])
			i += size
		}
	}

	return out.String()
}

func unquote(value string) string {
	if len(value) > 1 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}

	return value
}

func fold(value string) string {
	return cases.Fold().String(value)
}

// IsDescriptor reports whether path names a descriptor file.
func IsDescriptor(path string) bool {
	return filepath.Ext(path) == Extension
}

// ID computes the desktop file ID of a descriptor: its base name without
// extension, prefixed with the owning directory's path relative to the
// scanned root, separators replaced by dashes.
func ID(relDir, fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), Extension)

	relDir = strings.Trim(filepath.ToSlash(relDir), "/")
	if relDir == "" || relDir == "." {
		return base
	}

	return strings.ReplaceAll(relDir, "/", "-") + "-" + base
}

// Format renders e as a minimal desktop entry document.
func Format(e Entry) string {
	return fmt.Sprintf(`[Desktop Entry]
Version=1.0
Type=%s
Name=%s
Exec=%s
Terminal=%t
`,
		typeApplication,
		e.Name,
		e.Exec,
		e.Terminal,
	)
}

// InstallEntry writes e as <dataHome>/applications/<fileID>.desktop and
// returns the written path.
func InstallEntry(dataHome, fileID string, e Entry) (string, error) {
	if e.Name == "" || e.Exec == "" || fileID == "" {
		return "", fmt.Errorf("%w: name, exec and file id are required", ErrInvalidEntry)
	}

	if dataHome == "" {
		return "", fmt.Errorf("%w: no data directory", ErrInvalidEntry)
	}

	path := filepath.Join(dataHome, "applications", fileID+Extension)
	if err := platform.SafeWriteFile(path, []byte(Format(e)), 0o644); err != nil {
		return "", fmt.Errorf("write desktop entry: %w", err)
	}

	return path, nil
}
