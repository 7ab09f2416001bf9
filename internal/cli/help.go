// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/tui"
	"github.com/urfave/cli/v3"
)

const helpOverview = `# lbar

Type part of an application name. Suggestions appear to the right of the
query, best match first. Press **enter** to start the highlighted one, or
the typed text itself when nothing matches.

Topics:

- ` + "`lbar help keys`" + ` key bindings
- ` + "`lbar help config`" + ` settings and the config file
- ` + "`lbar help search`" + ` where applications come from
`

const helpConfig = `# Configuration

Settings are resolved in this order, later wins:

1. built-in defaults
2. ` + "`$XDG_CONFIG_HOME/lbar/config.toml`" + ` (or ` + "`--config`" + `)
3. command line flags

` + "```toml" + `
height = 22
bottom = false
font = "DejaVu Sans Mono"
terminal = "i3-sensible-terminal"
scan_path = false

[colors]
background = "#2e2c2c"   # --color0
selected = "#1286a1"     # --color1
text = "#ffffff"         # --color2
suggestion = "#ffffff"   # --color3
progress = "#242222"     # --color4
` + "```" + `

Colors must be written as ` + "`#RRGGBB`" + `. ` + "`lbar init`" + ` writes the current settings.
`

const helpSearch = `# Where applications come from

Desktop entries (` + "`*.desktop`" + `) are read recursively from

1. ` + "`$XDG_DATA_HOME/applications`" + ` (default ` + "`~/.local/share/applications`" + `)
2. every ` + "`<dir>/applications`" + ` in ` + "`$XDG_DATA_DIRS`" + ` (default ` + "`/usr/local/share:/usr/share`" + `)

When two entries share a desktop file ID, the one found first wins. Entries
with ` + "`Hidden`" + ` or ` + "`NoDisplay`" + ` set are skipped.

With ` + "`--path`" + `, every executable in ` + "`$PATH`" + ` is offered under its file name.
Entries marked ` + "`Terminal=true`" + ` run as ` + "`<terminal> -e \"<command>\"`" + `.
`

func helpKeys() string {
	var b strings.Builder

	b.WriteString("# Keys\n\n| Key | Action |\n|---|---|\n")

	for _, binding := range tui.DefaultKeyMap().Bindings() {
		help := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", help.Key, help.Desc)
	}

	b.WriteString("\nAny other printable key is inserted at the caret.\n")

	return b.String()
}

func helpTopics() map[string]func() string {
	return map[string]func() string{
		"":       func() string { return helpOverview },
		"keys":   helpKeys,
		"config": func() string { return helpConfig },
		"search": func() string { return helpSearch },
	}
}

// createHelpCommand creates git-style help command.
func (app *CLI) createHelpCommand() *cli.Command {
	return &cli.Command{
		Name:      "help",
		Usage:     "Show help topics",
		ArgsUsage: "[keys|config|search]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			topic := strings.ToLower(cmd.Args().First())

			render, ok := helpTopics()[topic]
			if !ok {
				return domain.NewExitError(ExitNotFoundError, "unknown help topic: "+topic, nil)
			}

			if app.json {
				topics := make([]string, 0, len(helpTopics()))
				for name := range helpTopics() {
					if name != "" {
						topics = append(topics, name)
					}
				}

				slices.Sort(topics)
				app.console.JSONResult("success", map[string]any{"topic": topic, "markdown": render(), "topics": topics})

				return nil
			}

			_, _ = io.WriteString(app.out, app.renderMarkdown(render()))

			return nil
		},
	}
}

// renderMarkdown styles markdown for terminals and leaves it as is for
// pipes and --plain.
func (app *CLI) renderMarkdown(markdown string) string {
	if app.plain || !app.console.IsTerminal(app.out) {
		return markdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}
