// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package input implements the query editing state machine of the bar.
package input

import (
	"unicode"

	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/launch"
)

// Outcome tells the frontend whether to keep running.
type Outcome int

// Possible outcomes of a key.
const (
	Continue Outcome = iota
	Exit
	Launched
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Exit:
		return "exit"
	case Launched:
		return "launched"
	default:
		return "unknown"
	}
}

// State is the editable query. Caret counts runes, not bytes.
type State struct {
	Text     string
	Caret    int
	Selected int
}

// Resolver looks an application up by display name.
type Resolver func(name string) (domain.Application, bool)

// Controller applies translated keys to the query state.
type Controller struct {
	State    State
	Launcher domain.Launcher
	Resolve  Resolver
	Terminal string
}

// New returns a controller with an empty query.
func New(launcher domain.Launcher, resolve Resolver, terminal string) *Controller {
	return &Controller{
		Launcher: launcher,
		Resolve:  resolve,
		Terminal: terminal,
	}
}

// Clamp keeps the selection inside [0, n-1], or 0 when there is nothing
// to select. The frontend calls it on every frame since the suggestion
// list may shrink between keys.
func (c *Controller) Clamp(n int) {
	switch {
	case n <= 0 || c.State.Selected < 0:
		c.State.Selected = 0
	case c.State.Selected >= n:
		c.State.Selected = n - 1
	}
}

// Handle applies one key. suggestions are the display names currently shown.
func (c *Controller) Handle(key domain.Key, suggestions []string) Outcome {
	c.Clamp(len(suggestions))

	text := []rune(c.State.Text)
	s := &c.State

	switch key.Command {
	case domain.CmdExit:
		return Exit

	case domain.CmdCaretLeft:
		if s.Selected == 0 {
			s.Caret = max(s.Caret-1, 0)
		} else {
			s.Selected--
		}

	case domain.CmdCaretRight:
		if s.Caret == len(text) {
			s.Selected = min(s.Selected+1, lastIndex(suggestions))
		} else {
			s.Caret++
		}

	case domain.CmdSelectUp:
		s.Selected = max(s.Selected-1, 0)

	case domain.CmdSelectDown:
		s.Selected = min(s.Selected+1, lastIndex(suggestions))

	case domain.CmdBackspace:
		if s.Caret > 0 {
			text = append(text[:s.Caret-1], text[s.Caret:]...)
			s.Caret--
			s.Selected = 0
		}

	case domain.CmdKillToStart:
		text = text[s.Caret:]
		s.Caret = 0

	case domain.CmdKillToEnd:
		text = text[:s.Caret]
		s.Selected = 0

	case domain.CmdComplete:
		if len(suggestions) > 0 {
			text = []rune(suggestions[s.Selected])
			s.Caret = len(text)
			s.Selected = 0
		}

	case domain.CmdLaunch:
		c.Launcher.Launch(c.command(suggestions))

		return Launched

	case domain.CmdInsert:
		if isInsertable(key.Rune) {
			text = append(text[:s.Caret], append([]rune{key.Rune}, text[s.Caret:]...)...)
			s.Caret++
			s.Selected = 0
		}

	case domain.CmdNone:
	}

	s.Text = string(text)

	return Continue
}

// command resolves what Enter should run.
func (c *Controller) command(suggestions []string) string {
	if len(suggestions) == 0 {
		return c.State.Text
	}

	name := suggestions[c.State.Selected]
	if c.Resolve == nil {
		return name
	}

	app, ok := c.Resolve(name)
	if !ok {
		return c.State.Text
	}

	if app.Terminal {
		return launch.Wrap(c.Terminal, app.Exec)
	}

	return app.Exec
}

func lastIndex(suggestions []string) int {
	return max(len(suggestions)-1, 0)
}

func isInsertable(r rune) bool {
	return r != 0 && r != unicode.ReplacementChar && !unicode.IsControl(r)
}
