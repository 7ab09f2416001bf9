// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/lbar/internal/config"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBar(t *testing.T, cfg config.Config, apps ...domain.Application) (*Bar, *registry.Progress) {
	t.Helper()

	reg := registry.New()
	for _, app := range apps {
		reg.Put(app)
	}

	progress := registry.NewProgress()

	bar, err := New(Options{Config: cfg, Catalog: reg, Progress: progress})
	require.NoError(t, err)

	bar.Update(tea.WindowSizeMsg{Width: 100, Height: 10})

	return bar, progress
}

func sampleApps() []domain.Application {
	return []domain.Application{
		{ID: "firefox", Name: "firefox", Exec: "firefox"},
		{ID: "gfx-tool", Name: "gfx-tool", Exec: "gfx-tool --run"},
		{ID: "xfce-settings", Name: "xfce-settings", Exec: "xfce4-settings-manager"},
		{ID: "htop", Name: "htop", Exec: "htop", Terminal: true},
	}
}

func typeText(bar *Bar, text string) {
	bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()

	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func TestBarSuggestsWhileTyping(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default(), sampleApps()...)

	typeText(bar, "fx")

	assert.Equal(t, "fx", bar.State().Text)
	assert.Equal(t, 2, bar.State().Caret)
	assert.Equal(t, []string{"firefox", "gfx-tool"}, bar.Suggestions())

	view := bar.View()
	assert.Contains(t, view, "fx")
	assert.Contains(t, view, " firefox ")
	assert.Contains(t, view, " gfx-tool ")
	assert.NotContains(t, view, "xfce-settings")
	assert.Equal(t, 100, lipgloss.Width(view))
}

func TestBarEnterLaunchesSelection(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default(), sampleApps()...)

	typeText(bar, "fx")
	bar.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, isQuit(t, cmd))

	command, ok := bar.Command()
	require.True(t, ok)
	assert.Equal(t, "gfx-tool --run", command)
	assert.Empty(t, bar.View())
}

func TestBarTerminalEntryIsWrapped(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Terminal = "xterm"

	bar, _ := newTestBar(t, cfg, sampleApps()...)

	typeText(bar, "htop")
	bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	command, ok := bar.Command()
	require.True(t, ok)
	assert.Equal(t, `xterm -e "htop"`, command)
}

func TestBarEnterWithEmptyRegistryUsesRawText(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default())

	typeText(bar, "anything")
	_, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, isQuit(t, cmd))

	command, ok := bar.Command()
	require.True(t, ok)
	assert.Equal(t, "anything", command)
}

func TestBarEscapeQuitsWithoutCommand(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default(), sampleApps()...)

	typeText(bar, "fire")

	_, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, isQuit(t, cmd))

	_, ok := bar.Command()
	assert.False(t, ok)
}

func TestBarPicksUpLateRegistryEntries(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	bar, err := New(Options{Config: config.Default(), Catalog: reg, Progress: registry.NewProgress()})
	require.NoError(t, err)

	bar.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	typeText(bar, "fire")
	assert.Empty(t, bar.Suggestions())

	reg.Put(domain.Application{ID: "firefox", Name: "firefox", Exec: "firefox"})
	bar.Update(frameMsg(time.Now()))

	assert.Equal(t, []string{"firefox"}, bar.Suggestions())
}

func TestBarFrameKeepsTicking(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default())

	require.NotNil(t, bar.Init())

	_, cmd := bar.Update(frameMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestBarProgressFades(t *testing.T) {
	t.Parallel()

	bar, progress := newTestBar(t, config.Default())

	progress.SetTotal(4)
	progress.Advance()

	start := time.Now()
	bar.Update(frameMsg(start))
	assert.Equal(t, 7, bar.progressCells(30), "a quarter of 30 cells")
	assert.Equal(t, bar.styles.Progress, bar.progressColor())

	for range 3 {
		progress.Advance()
	}

	bar.Update(frameMsg(start.Add(time.Second)))
	assert.Equal(t, 30, bar.progressCells(30))
	assert.Equal(t, bar.styles.Progress, bar.progressColor(), "fade starts at completion")

	bar.Update(frameMsg(start.Add(time.Second + FadeDuration/2)))
	assert.Equal(t, 30, bar.progressCells(30))
	assert.Equal(t, bar.styles.ProgressColor(0.5), bar.progressColor())

	bar.Update(frameMsg(start.Add(time.Second + FadeDuration)))
	assert.Zero(t, bar.progressCells(30))
}

func TestBarLayout(t *testing.T) {
	t.Parallel()

	t.Run("bottom placement", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.Bottom = true

		bar, _ := newTestBar(t, cfg)
		bar.Update(tea.WindowSizeMsg{Width: 40, Height: 5})

		view := bar.View()
		assert.True(t, strings.HasPrefix(view, "\n\n\n\n"))
		assert.Equal(t, 5, lipgloss.Height(view))
	})

	t.Run("taller bar", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.Height = 2 * config.DefaultHeight

		bar, _ := newTestBar(t, cfg)
		assert.Equal(t, 2, lipgloss.Height(bar.View()))
	})

	t.Run("no size yet", func(t *testing.T) {
		t.Parallel()

		bar, err := New(Options{Config: config.Default(), Catalog: registry.New(), Progress: registry.NewProgress()})
		require.NoError(t, err)
		assert.Empty(t, bar.View())
	})
}

func TestBarLongQueryKeepsCaretVisible(t *testing.T) {
	t.Parallel()

	bar, _ := newTestBar(t, config.Default())
	bar.Update(tea.WindowSizeMsg{Width: 20, Height: 1})

	typeText(bar, "abcdefghijklmnop")

	query := bar.renderQuery(6)
	assert.Equal(t, "lmnop ", query)
}

func TestNewRejectsInvalidColors(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Colors.Background = "#12"

	_, err := New(Options{Config: cfg, Catalog: registry.New(), Progress: registry.NewProgress()})
	require.ErrorIs(t, err, domain.ErrInvalidColor)
}
