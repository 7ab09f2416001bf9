// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package suggest ranks registry entries against the typed query and fits
// the best ones into the space available on the bar.
package suggest

import (
	"math"
	"sort"
	"strings"

	"github.com/janderssonse/lbar/internal/domain"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// Layout defaults.
const (
	// DefaultRatio is the share of the bar width suggestions may occupy.
	DefaultRatio = 0.7
	// DefaultPadding is added to every suggestion, in cells.
	DefaultPadding = 2
)

// Measurer returns the rendered width of s.
type Measurer func(s string) int

// CellWidth measures s in terminal cells.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Suggestion is one matched entry.
type Suggestion struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// Engine matches, ranks and lays out suggestions.
type Engine struct {
	Measure Measurer
	Padding int
	Ratio   float64
}

// NewEngine creates an engine with the default width ratio.
func NewEngine(measure Measurer, padding int) *Engine {
	if measure == nil {
		measure = CellWidth
	}

	return &Engine{
		Measure: measure,
		Padding: padding,
		Ratio:   DefaultRatio,
	}
}

// Compute returns the suggestions for query that fit in width.
func (e *Engine) Compute(query string, apps []domain.Application, width int) []Suggestion {
	return e.Fit(Rank(query, apps), width)
}

// Fit keeps the longest prefix of ranked whose widths plus padding stay
// within Ratio of width. Higher ranked entries always win the space.
func (e *Engine) Fit(ranked []Suggestion, width int) []Suggestion {
	bound := int(math.Floor(e.Ratio * float64(width)))
	used := 0

	for i, s := range ranked {
		used += e.Measure(s.Name) + e.Padding
		if used > bound {
			return ranked[:i]
		}
	}

	return ranked
}

// Rank scores every application name against query with whitespace
// removed. Names that do not contain the query as a subsequence are
// dropped; the rest are ordered by score, best first, then by name.
func Rank(query string, apps []domain.Application) []Suggestion {
	pattern := strings.Join(strings.Fields(query), "")
	if pattern == "" {
		return nil
	}

	matches := fuzzy.FindFrom(pattern, names(apps))

	ranked := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, Suggestion{Score: m.Score, Name: m.Str})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Name < ranked[j].Name
	})

	return ranked
}

// Names returns the display names of suggestions in order.
func Names(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Name
	}

	return out
}

// names adapts applications to fuzzy.Source.
type names []domain.Application

func (n names) String(i int) string { return n[i].Name }

func (n names) Len() int { return len(n) }
