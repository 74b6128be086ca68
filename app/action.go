package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zhye/tomato/internal/config"
	"github.com/zhye/tomato/internal/log"
	"github.com/zhye/tomato/internal/timeutil"
	"github.com/zhye/tomato/internal/ui"
	"github.com/zhye/tomato/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envTomatoNoColor = "TOMATO_NO_COLOR"
)

// defaultAction starts the timer TUI and prints the focus summary when
// it exits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	t, err := timer.New(cfg)
	if err != nil {
		return err
	}

	slog.Info("starting timer",
		slog.Duration("work", cfg.Work.Duration),
		slog.Duration("short_break", cfg.ShortBreak.Duration),
		slog.Duration("long_break", cfg.LongBreak.Duration),
		slog.Int("long_break_interval", cfg.Settings.LongBreakInterval),
	)

	if err := t.Run(); err != nil {
		return err
	}

	printSummary(t)

	return nil
}

// printSummary reports the day's tally on exit, mirroring the stats
// line shown in the TUI.
func printSummary(t *timer.Timer) {
	sessions := t.Engine.CompletedSessions()

	noun := "tomatoes"
	if sessions == 1 {
		noun = "tomato"
	}

	pterm.Printfln(
		"%s: %s %s · %s focused",
		ui.Highlight("Today"),
		ui.Green(fmt.Sprintf("%d", sessions)),
		noun,
		timeutil.FormatFocusTime(t.Engine.TotalFocusTime()),
	)
}

// statusAction reports the status of a running timer instance.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(_ *cli.Context) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	if err := log.Init(config.LogFilePath()); err != nil {
		return err
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TOMATO_NO_COLOR is set
	if _, exists := os.LookupEnv(envTomatoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tomato")

	return nil
}
