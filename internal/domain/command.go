// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// Command is an editing or navigation request produced by the key
// translation layer of a frontend. The input state machine only ever sees
// these, never backend key codes.
type Command int

// Recognised commands.
const (
	CmdNone Command = iota
	CmdExit
	CmdCaretLeft
	CmdCaretRight
	CmdSelectUp
	CmdSelectDown
	CmdBackspace
	CmdKillToStart
	CmdKillToEnd
	CmdComplete
	CmdLaunch
	CmdInsert
)

var commandNames = map[Command]string{ //nolint:gochecknoglobals
	CmdNone:        "none",
	CmdExit:        "exit",
	CmdCaretLeft:   "left",
	CmdCaretRight:  "right",
	CmdSelectUp:    "up",
	CmdSelectDown:  "down",
	CmdBackspace:   "backspace",
	CmdKillToStart: "kill-to-start",
	CmdKillToEnd:   "kill-to-end",
	CmdComplete:    "complete",
	CmdLaunch:      "launch",
	CmdInsert:      "insert",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}

	return "unknown"
}

// Key is one translated keystroke. Rune is only meaningful for CmdInsert.
type Key struct {
	Command Command
	Rune    rune
}

// KeyOf builds a non-insert key.
func KeyOf(cmd Command) Key {
	return Key{Command: cmd}
}

// RuneKey builds an insert key for r.
func RuneKey(r rune) Key {
	return Key{Command: CmdInsert, Rune: r}
}
