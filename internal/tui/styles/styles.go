// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles builds the bar's lipgloss styles from the configured colors.
package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/lbar/internal/config"
)

// Styles contains all the styles used by the bar.
type Styles struct {
	// Color palette
	Background lipgloss.Color
	Selected   lipgloss.Color
	Text       lipgloss.Color
	Suggestion lipgloss.Color
	Progress   lipgloss.Color

	// Component styles
	Bar          lipgloss.Style
	Query        lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style

	background uint32
	progress   uint32
}

// New validates colors and builds the styles.
func New(colors config.Colors) (*Styles, error) {
	rgb := make([]uint32, 0, 5)

	for _, value := range []string{
		colors.Background, colors.Selected, colors.Text, colors.Suggestion, colors.Progress,
	} {
		c, err := config.ParseColor(value)
		if err != nil {
			return nil, err
		}

		rgb = append(rgb, c)
	}

	background := color(rgb[0])
	selected := color(rgb[1])
	text := color(rgb[2])
	suggestion := color(rgb[3])

	return &Styles{
		Background: background,
		Selected:   selected,
		Text:       text,
		Suggestion: suggestion,
		Progress:   color(rgb[4]),

		Bar: lipgloss.NewStyle().
			Background(background),

		Query: lipgloss.NewStyle().
			Background(background).
			Foreground(text),

		// One cell on each side; the suggestion layout budget assumes it.
		Item: lipgloss.NewStyle().
			Background(background).
			Foreground(suggestion).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(selected).
			Foreground(suggestion).
			Padding(0, 1),

		background: rgb[0],
		progress:   rgb[4],
	}, nil
}

// ProgressColor fades the progress color into the background.
// intensity 1 is the full progress color, 0 the background.
func (s *Styles) ProgressColor(intensity float64) lipgloss.Color {
	return color(Blend(s.background, s.progress, intensity))
}

// Blend mixes two 0xRRGGBB colors per channel.
func Blend(from, to uint32, t float64) uint32 {
	t = math.Max(0, math.Min(1, t))

	channel := func(shift uint) uint32 {
		a := float64((from >> shift) & 0xff)
		b := float64((to >> shift) & 0xff)

		return uint32(math.Round(a*(1-t)+b*t)) << shift
	}

	return channel(16) | channel(8) | channel(0)
}

func color(rgb uint32) lipgloss.Color {
	return lipgloss.Color(config.FormatColor(rgb))
}
