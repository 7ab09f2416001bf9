// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/lbar/internal/domain"
)

// KeyMap defines key bindings for the bar.
type KeyMap struct {
	Exit        key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Backspace   key.Binding
	KillToStart key.Binding
	KillToEnd   key.Binding
	Complete    key.Binding
	Launch      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "caret / previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "caret / next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
		KillToStart: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "delete to start"),
		),
		KillToEnd: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "delete to end"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
	}
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.Launch, k.Complete, k.Left, k.Right, k.Up, k.Down,
		k.Backspace, k.KillToStart, k.KillToEnd, k.Exit,
	}
}

// Translate maps a key message to input commands. Pasted text yields one
// insert per rune; unbound keys yield nothing.
func (k KeyMap) Translate(msg tea.KeyMsg) []domain.Key {
	for _, b := range []struct {
		binding key.Binding
		cmd     domain.Command
	}{
		{k.Exit, domain.CmdExit},
		{k.Left, domain.CmdCaretLeft},
		{k.Right, domain.CmdCaretRight},
		{k.Up, domain.CmdSelectUp},
		{k.Down, domain.CmdSelectDown},
		{k.Backspace, domain.CmdBackspace},
		{k.KillToStart, domain.CmdKillToStart},
		{k.KillToEnd, domain.CmdKillToEnd},
		{k.Complete, domain.CmdComplete},
		{k.Launch, domain.CmdLaunch},
	} {
		if key.Matches(msg, b.binding) {
			return []domain.Key{domain.KeyOf(b.cmd)}
		}
	}

	if msg.Alt {
		return nil
	}

	switch msg.Type { //nolint:exhaustive // only text-producing keys insert
	case tea.KeySpace:
		return []domain.Key{domain.RuneKey(' ')}
	case tea.KeyRunes:
		keys := make([]domain.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, domain.RuneKey(r))
		}

		return keys
	default:
		return nil
	}
}
