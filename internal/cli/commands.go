// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/janderssonse/lbar/internal/desktop"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/input"
	"github.com/janderssonse/lbar/internal/platform"
	"github.com/janderssonse/lbar/internal/suggest"
	"github.com/urfave/cli/v3"
)

// defaultQueryWidth matches a common terminal width.
const defaultQueryWidth = 80

func (app *CLI) commands() []*cli.Command {
	return []*cli.Command{
		app.createListCommand(),
		app.createQueryCommand(),
		app.createInitCommand(),
		app.createDesktopCommand(),
		app.createHelpCommand(),
		app.createVersionCommand(),
	}
}

// createListCommand prints every application the scan finds.
func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Scan and print every launchable application",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			scan, reg, _ := app.newScanner()
			app.reportScan(scan.Run(ctx))

			if err := app.newOutput().Applications(reg.Snapshot()); err != nil {
				return domain.NewExitError(ExitGeneralError, "failed to write output", err)
			}

			return nil
		},
	}
}

// createQueryCommand ranks applications for a query without opening the bar.
func (app *CLI) createQueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Print the suggestions the bar would show for a query",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "bar width in cells used to cut the list (0 = no limit)",
				Value:   defaultQueryWidth,
			},
			&cli.BoolFlag{
				Name:  "launch",
				Usage: "launch the best suggestion, or the text itself when nothing matches",
			},
		},
		Action: app.runQuery,
	}
}

func (app *CLI) runQuery(ctx context.Context, cmd *cli.Command) error {
	text := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return domain.NewExitError(ExitUsageError, "query text is required", nil)
	}

	if err := app.prepare(cmd); err != nil {
		return err
	}

	scan, reg, _ := app.newScanner()
	app.reportScan(scan.Run(ctx))

	engine := suggest.NewEngine(nil, suggest.DefaultPadding)

	suggestions := suggest.Rank(text, reg.Snapshot())
	if width := int(cmd.Int("width")); width > 0 {
		suggestions = engine.Fit(suggestions, width)
	}

	if cmd.Bool("launch") {
		ctrl := input.New(app.newLauncher(), reg.Get, app.cfg.Terminal)
		ctrl.State = input.State{Text: text, Caret: utf8.RuneCountInString(text)}
		ctrl.Handle(domain.KeyOf(domain.CmdLaunch), suggest.Names(suggestions))

		return nil
	}

	scores := make([]int, len(suggestions))
	for i, s := range suggestions {
		scores[i] = s.Score
	}

	if err := app.newOutput().Suggestions(text, suggest.Names(suggestions), scores); err != nil {
		return domain.NewExitError(ExitGeneralError, "failed to write output", err)
	}

	return nil
}

// createInitCommand writes the effective settings to the config file.
func (app *CLI) createInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the current settings to the configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "do not ask for confirmation",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing file",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			path := app.resolveConfigPath()
			if path == "" {
				return domain.NewExitError(ExitConfigError, "cannot determine the config directory (HOME is unset)", nil)
			}

			if platform.FileExists(path) && !cmd.Bool("force") {
				return domain.NewExitError(ExitUsageError, path+" already exists (use --force to overwrite)", nil)
			}

			if !cmd.Bool("yes") {
				confirmed, err := app.confirm("Write lbar configuration?", path)
				if err != nil {
					return domain.NewExitError(ExitGeneralError, "confirmation failed", err)
				}

				if !confirmed {
					app.console.Warningf("nothing written")

					return nil
				}
			}

			if err := app.cfg.Save(path); err != nil {
				return domain.NewExitError(ExitSystemError, "failed to write configuration", err)
			}

			return app.newOutput().Success("Wrote "+path, map[string]string{"config": path})
		},
	}
}

func confirmWithForm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// createDesktopCommand installs a descriptor for lbar itself so other
// launchers and menus can start it.
func (app *CLI) createDesktopCommand() *cli.Command {
	return &cli.Command{
		Name:  "desktop",
		Usage: "Install a desktop entry for lbar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "exec",
				Usage: "command written to the entry (default: this executable)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			exec := cmd.String("exec")
			if exec == "" {
				self, err := app.executable()
				if err != nil {
					return domain.NewExitError(ExitSystemError, "cannot locate the lbar executable", err)
				}

				exec = self
			}

			dataHome := platform.GetXDGDataHomeWithEnv(app.env.XDGDataHome, app.env.Home)

			path, err := desktop.InstallEntry(dataHome, "lbar", desktop.Entry{
				Name:     "lbar",
				Exec:     exec,
				Terminal: true,
			})
			if err != nil {
				return domain.NewExitError(ExitSystemError, "failed to create desktop entry", err)
			}

			return app.newOutput().Success("Desktop entry created at "+path, map[string]string{"desktop": path})
		},
	}
}

// createVersionCommand creates version command.
func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			if app.json {
				app.console.JSONResult("success", map[string]any{"version": Version})

				return nil
			}

			_, _ = fmt.Fprintln(app.out, Version)

			return nil
		},
	}
}
