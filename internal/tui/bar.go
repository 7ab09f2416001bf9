// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui is the terminal frontend of the bar.
package tui

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/lbar/internal/config"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/input"
	"github.com/janderssonse/lbar/internal/suggest"
	"github.com/janderssonse/lbar/internal/tui/styles"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Layout and timing of the bar.
const (
	FrameInterval = time.Second / 60
	FadeDuration  = 500 * time.Millisecond
	QueryRatio    = 0.3
)

type frameMsg time.Time

// ProgressSource reports how far the background scan got.
type ProgressSource interface {
	Fraction() float64
	Done() bool
}

// Options wires the bar to the rest of the program.
type Options struct {
	Config   config.Config
	Catalog  domain.Catalog
	Progress ProgressSource
	Launcher domain.Launcher
	// Engine defaults to suggest.NewEngine(nil, suggest.DefaultPadding).
	Engine *suggest.Engine
}

// pending holds the command chosen with Enter until the terminal is restored.
type pending struct {
	command string
	set     bool
}

func (p *pending) Launch(command string) {
	p.command = command
	p.set = true
}

// Bar is the bubbletea model of the launcher bar.
type Bar struct {
	styles   *styles.Styles
	keys     KeyMap
	ctrl     *input.Controller
	cache    *suggest.Cache
	progress ProgressSource
	chosen   *pending

	suggestions []suggest.Suggestion
	width       int
	height      int
	rows        int
	bottom      bool

	now        time.Time
	finishedAt time.Time
	quitting   bool
}

// New builds the bar model.
func New(opts Options) (*Bar, error) {
	st, err := styles.New(opts.Config.Colors)
	if err != nil {
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = suggest.NewEngine(nil, suggest.DefaultPadding)
	}

	chosen := &pending{}

	return &Bar{
		styles:   st,
		keys:     DefaultKeyMap(),
		ctrl:     input.New(chosen, opts.Catalog.Get, opts.Config.Terminal),
		cache:    suggest.NewCache(engine, opts.Catalog),
		progress: opts.Progress,
		chosen:   chosen,
		rows:     max(1, opts.Config.Height/config.DefaultHeight),
		bottom:   opts.Config.Bottom,
	}, nil
}

// Run shows the bar until Escape or Enter and then launches the chosen
// command, if any, through opts.Launcher.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // fd fits in int
		return domain.ErrNoTerminal
	}

	bar, err := New(opts)
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		bar,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("bar failed: %w", err)
	}

	if command, ok := bar.Command(); ok {
		opts.Launcher.Launch(command)
	}

	return nil
}

// Command returns the command chosen with Enter.
func (b *Bar) Command() (string, bool) {
	return b.chosen.command, b.chosen.set
}

// State exposes the query state.
func (b *Bar) State() input.State {
	return b.ctrl.State
}

// Suggestions returns the names shown in the last frame.
func (b *Bar) Suggestions() []string {
	return suggest.Names(b.suggestions)
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (b *Bar) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (b *Bar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.refresh()

		return b, nil

	case frameMsg:
		b.frame(time.Time(msg))

		return b, tick()

	case tea.KeyMsg:
		for _, k := range b.keys.Translate(msg) {
			switch b.ctrl.Handle(k, b.Suggestions()) {
			case input.Exit, input.Launched:
				b.quitting = true

				return b, tea.Quit
			case input.Continue:
			}

			b.refresh()
		}
	}

	return b, nil
}

func (b *Bar) frame(now time.Time) {
	b.now = now
	if b.finishedAt.IsZero() && b.progress.Done() {
		b.finishedAt = now
	}

	b.refresh()
}

func (b *Bar) refresh() {
	b.suggestions = b.cache.Update(b.ctrl.State.Text, b.width)
	b.ctrl.Clamp(len(b.suggestions))
}

// View implements tea.Model.
func (b *Bar) View() string {
	if b.quitting || b.width <= 0 {
		return ""
	}

	blank := b.styles.Bar.Render(strings.Repeat(" ", b.width))

	lines := make([]string, b.rows)
	for i := range lines {
		lines[i] = blank
	}

	lines[(b.rows-1)/2] = b.renderLine()
	bar := strings.Join(lines, "\n")

	if b.bottom && b.height > b.rows {
		return strings.Repeat("\n", b.height-b.rows) + bar
	}

	return bar
}

func (b *Bar) renderLine() string {
	left := int(math.Floor(float64(b.width) * QueryRatio))

	return b.renderQuery(left) + b.renderSuggestions(b.width-left)
}

// renderQuery draws the text with its caret over the progress strip.
func (b *Bar) renderQuery(width int) string {
	text := []rune(b.ctrl.State.Text)
	caret := b.ctrl.State.Caret

	start := 0
	for start < caret && runewidth.StringWidth(string(text[start:caret]))+1 > width {
		start++
	}

	filled := b.progressCells(width)
	fill := b.styles.Query.Background(b.progressColor())

	var (
		out      strings.Builder
		run      strings.Builder
		runStyle lipgloss.Style
		runKey   = -1
	)

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}

	col := 0
	for i := start; col < width; i++ {
		r := ' '
		if i < len(text) {
			r = text[i]
		}

		w := runewidth.RuneWidth(r)
		if col+w > width {
			break
		}

		style, k := b.styles.Query, 0
		if col < filled {
			style, k = fill, 1
		}

		if i == caret {
			style, k = style.Reverse(true), k+2
		}

		if k != runKey {
			flush()

			runStyle, runKey = style, k
		}

		run.WriteRune(r)

		col += w
	}

	flush()

	if col < width {
		out.WriteString(b.styles.Query.Render(strings.Repeat(" ", width-col)))
	}

	return out.String()
}

func (b *Bar) renderSuggestions(width int) string {
	var out strings.Builder

	used := 0

	for i, s := range b.suggestions {
		style := b.styles.Item
		if i == b.ctrl.State.Selected {
			style = b.styles.SelectedItem
		}

		cell := style.Render(s.Name)

		w := lipgloss.Width(cell)
		if used+w > width {
			break
		}

		out.WriteString(cell)

		used += w
	}

	if used < width {
		out.WriteString(b.styles.Bar.Render(strings.Repeat(" ", width-used)))
	}

	return out.String()
}

// progressCells is the filled part of a width-cell strip, or 0 once the
// strip has faded out.
func (b *Bar) progressCells(width int) int {
	if !b.finishedAt.IsZero() && b.now.Sub(b.finishedAt) >= FadeDuration {
		return 0
	}

	return int(math.Floor(float64(width) * b.progress.Fraction()))
}

func (b *Bar) progressColor() lipgloss.Color {
	if b.finishedAt.IsZero() {
		return b.styles.Progress
	}

	remaining := FadeDuration - b.now.Sub(b.finishedAt)

	return b.styles.ProgressColor(math.Max(remaining.Seconds(), 0) / FadeDuration.Seconds())
}
