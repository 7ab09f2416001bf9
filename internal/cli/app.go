// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the lbar command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	cliAdapter "github.com/janderssonse/lbar/internal/adapters/cli"
	"github.com/janderssonse/lbar/internal/config"
	"github.com/janderssonse/lbar/internal/console"
	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/launch"
	"github.com/janderssonse/lbar/internal/platform"
	"github.com/janderssonse/lbar/internal/registry"
	"github.com/janderssonse/lbar/internal/scanner"
	"github.com/janderssonse/lbar/internal/tui"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0 // Operation completed successfully
	ExitGeneralError  = 1 // Generic failure (catch-all)
	ExitUsageError    = 2 // Invalid command line usage
	ExitConfigError   = 3 // Configuration file error
	ExitNotFoundError = 5 // Requested command or topic not found
	ExitSystemError   = 12
)

// Version is set at build time.
var Version = "dev" //nolint:gochecknoglobals

// CLI wires the command tree to the scanner, the bar and the output adapters.
type CLI struct {
	app *cli.Command
	cfg config.Config

	env     platform.Env
	out     io.Writer
	console *console.OutputState

	// Seams for tests.
	launcher   domain.Launcher
	runBar     func(ctx context.Context, opts tui.Options) error
	confirm    func(title, description string) (bool, error)
	executable func() (string, error)
	lockPath   string

	verbose    bool
	json       bool
	plain      bool
	quiet      bool
	dryRun     bool
	configPath string
}

// NewCLI creates the lbar command tree bound to the process environment.
func NewCLI() *CLI {
	app := newCLI(platform.CurrentEnv(), os.Stdout, console.DefaultOutput)
	app.app.Writer = os.Stdout
	app.app.ErrWriter = os.Stderr

	return app
}

func newCLI(env platform.Env, out io.Writer, output *console.OutputState) *CLI {
	app := &CLI{
		cfg:        config.Default(),
		env:        env,
		out:        out,
		console:    output,
		runBar:     tui.Run,
		confirm:    confirmWithForm,
		executable: os.Executable,
		lockPath:   filepath.Join(os.TempDir(), platform.AppName+".lock"),
	}

	app.app = &cli.Command{
		Name:        "lbar",
		Usage:       "A keyboard driven application launcher bar",
		Version:     Version,
		HideVersion: true,
		Suggest:     true,
		Description: `Type part of an application name, pick a suggestion and press enter.

Applications come from the XDG application directories and, with --path,
from every executable on $PATH. Settings are read from
$XDG_CONFIG_HOME/lbar/config.toml and overridden by flags.

  lbar                      open the bar
  lbar query fire           print suggestions for "fire"
  lbar list --json          print every application found
  lbar help keys            key bindings`,
		Flags:    app.flags(),
		Action:   app.defaultAction,
		Commands: app.commands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

func (app *CLI) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "color0",
			Usage: "bar background color",
			Value: config.DefaultBackground,
		},
		&cli.StringFlag{
			Name:  "color1",
			Usage: "selected suggestion background color",
			Value: config.DefaultSelected,
		},
		&cli.StringFlag{
			Name:  "color2",
			Usage: "query text color",
			Value: config.DefaultText,
		},
		&cli.StringFlag{
			Name:  "color3",
			Usage: "suggestion text color",
			Value: config.DefaultSuggestion,
		},
		&cli.StringFlag{
			Name:  "color4",
			Usage: "scan progress color",
			Value: config.DefaultProgress,
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"H"},
			Usage:   "bar height in pixels; every 22 pixels is one terminal row",
			Value:   config.DefaultHeight,
		},
		&cli.BoolFlag{
			Name:    "bottom",
			Aliases: []string{"b"},
			Usage:   "show the bar on the bottom of the screen",
		},
		&cli.StringFlag{
			Name:    "font",
			Aliases: []string{"f"},
			Usage:   "font used on the bar",
			Value:   config.DefaultFont,
		},
		&cli.StringFlag{
			Name:    "terminal",
			Aliases: []string{"t"},
			Usage:   "terminal used for applications that need one",
			Value:   config.DefaultTerminal,
		},
		&cli.BoolFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "also offer every executable on $PATH",
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "show progress messages to stderr",
			Aliases:     []string{"v"},
			Destination: &app.verbose,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output structured JSON results",
			Aliases:     []string{"j"},
			Destination: &app.json,
		},
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "output plain text without formatting for scripts",
			Destination: &app.plain,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "suppress informational output",
			Destination: &app.quiet,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "print the chosen command instead of starting it",
			Destination: &app.dryRun,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "configuration file (default $XDG_CONFIG_HOME/lbar/config.toml)",
			Destination: &app.configPath,
		},
	}
}

// prepare resolves output mode and settings for the running command:
// defaults, then the config file, then flags given on the command line.
func (app *CLI) prepare(cmd *cli.Command) error {
	if app.json && app.plain {
		return domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	app.console.SetMode(app.verbose, app.json, app.plain)

	cfg, err := config.Load(app.resolveConfigPath())
	if err != nil {
		return domain.NewExitError(ExitConfigError, err.Error(), err)
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		return domain.NewExitError(ExitUsageError, err.Error(), err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.NewExitError(ExitConfigError, err.Error(), err)
	}

	app.cfg = cfg

	return nil
}

func (app *CLI) resolveConfigPath() string {
	if app.configPath != "" {
		return platform.ExpandPathWithHome(app.configPath, app.env.Home)
	}

	return platform.GetConfigPathWithEnv(app.env)
}

func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	for _, color := range []struct {
		flag string
		dst  *string
	}{
		{"color0", &cfg.Colors.Background},
		{"color1", &cfg.Colors.Selected},
		{"color2", &cfg.Colors.Text},
		{"color3", &cfg.Colors.Suggestion},
		{"color4", &cfg.Colors.Progress},
	} {
		if !cmd.IsSet(color.flag) {
			continue
		}

		value := cmd.String(color.flag)
		if _, err := config.ParseColor(value); err != nil {
			return fmt.Errorf("invalid value %q for --%s: %w", value, color.flag, err)
		}

		*color.dst = value
	}

	if cmd.IsSet("height") {
		cfg.Height = int(cmd.Int("height"))
	}

	if cmd.IsSet("bottom") {
		cfg.Bottom = cmd.Bool("bottom")
	}

	if cmd.IsSet("font") {
		cfg.Font = cmd.String("font")
	}

	if cmd.IsSet("terminal") {
		cfg.Terminal = cmd.String("terminal")
	}

	if cmd.IsSet("path") {
		cfg.ScanPath = cmd.Bool("path")
	}

	return nil
}

// defaultAction opens the bar.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitNotFoundError,
			fmt.Sprintf("'%s' is not a command. Run 'lbar --help' to see available commands.", cmd.Args().First()), nil)
	}

	if err := app.prepare(cmd); err != nil {
		return err
	}

	// One bar at a time; the non-interactive commands run freely.
	lock := flock.New(app.lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		return domain.NewExitError(ExitSystemError, "failed to acquire process lock", err)
	}

	if !locked {
		return domain.NewExitError(ExitGeneralError, "Another lbar instance is already running", domain.ErrAlreadyRunning)
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			app.console.Warningf("failed to release process lock: %v", unlockErr)
		}
	}()

	if program, _, err := launch.Split(app.cfg.Terminal); err == nil {
		if _, found := platform.FindCommand(app.env.Path, program); !found {
			app.console.Warningf("terminal %q not found on $PATH; terminal applications will not start", program)
		}
	}

	scan, reg, progress := app.newScanner()

	app.console.Hold()
	results := scan.Start(ctx)

	err = app.runBar(ctx, tui.Options{
		Config:   app.cfg,
		Catalog:  reg,
		Progress: progress,
		Launcher: app.newLauncher(),
	})

	app.console.Release()

	switch {
	case errors.Is(err, domain.ErrNoTerminal):
		return domain.NewExitError(ExitUsageError,
			"the bar needs an interactive terminal; use 'lbar query <text>' in scripts", err)
	case err != nil:
		return domain.NewExitError(ExitGeneralError, "failed to run the bar", err)
	}

	select {
	case result, ok := <-results:
		if ok {
			app.reportScan(result)
		}
	default:
		app.console.Progressf("still reading applications (%d so far)", reg.Len())
	}

	return nil
}

func (app *CLI) newScanner() (*scanner.Scanner, *registry.Registry, *registry.Progress) {
	reg := registry.New()
	progress := registry.NewProgress()
	paths := platform.ResolveSearchPaths(app.env, app.cfg.ScanPath)

	return scanner.New(paths, reg, progress, app.console), reg, progress
}

func (app *CLI) newLauncher() domain.Launcher {
	if app.launcher != nil {
		return app.launcher
	}

	var warn domain.Warner = domain.NopWarner{}
	if app.verbose {
		warn = app.console
	}

	spawner := launch.NewSpawner(warn)
	spawner.DryRun = app.dryRun
	spawner.Out = app.out

	return spawner
}

func (app *CLI) newOutput() domain.OutputPort {
	return cliAdapter.OutputFromFlags(app.out, app.json, app.plain, app.quiet)
}

func (app *CLI) reportScan(result scanner.Result) {
	app.console.Progressf("Finished reading all applications (%.3fs)", result.Elapsed.Seconds())
	app.console.Progressf("%d files: %d accepted, %d rejected, %d duplicates, %d unreadable, %d executables",
		result.Files, result.Accepted, result.Rejected, result.Duplicates, result.Unreadable, result.Executables)

	for _, skipped := range result.Skipped {
		app.console.Progressf("skipped %v", skipped)
	}
}
