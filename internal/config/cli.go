package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration overrides.
type CLIOptions struct {
	Work              string
	ShortBreak        string
	LongBreak         string
	WorkSound         string
	BreakSound        string
	SessionCmd        string
	LongBreakInterval uint
	DisableNotify     bool
}

// WithCLIConfig returns an Option that overrides configuration from
// CLI flags. It must be applied after the file-based options.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:              ctx.String("work"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			WorkSound:         ctx.String("work-sound"),
			BreakSound:        ctx.String("break-sound"),
			SessionCmd:        ctx.String("session-cmd"),
			DisableNotify:     ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) error {
	durations := map[string]struct {
		raw string
		dst *time.Duration
	}{
		"work":        {opts.Work, &c.Work.Duration},
		"short-break": {opts.ShortBreak, &c.ShortBreak.Duration},
		"long-break":  {opts.LongBreak, &c.LongBreak.Duration},
	}

	for name, d := range durations {
		if d.raw == "" {
			continue
		}

		dur, err := ParseDuration(d.raw)
		if err != nil {
			return errInvalidCLIDuration.Fmt(name).Wrap(err)
		}

		*d.dst = dur
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	applyCLISounds(c, opts)

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	return nil
}

// applyCLISounds handles sound-related CLI options. The work sound
// plays when a break ends, the break sound when a work session ends.
func applyCLISounds(c *Config, opts CLIOptions) {
	if opts.BreakSound != "" {
		sound := opts.BreakSound
		if sound == SoundOff {
			sound = ""
		}

		c.ShortBreak.Sound = sound
		c.LongBreak.Sound = sound
	}

	if opts.WorkSound != "" {
		sound := opts.WorkSound
		if sound == SoundOff {
			sound = ""
		}

		c.Work.Sound = sound
	}
}
