package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus             string
	ShortBreak        string
	LongBreak         string
	SessionCmd        string
	LogLevel          string
	LongBreakInterval uint
	DisableNotify     bool
	Mute              bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the configuration file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:             ctx.String("focus"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			SessionCmd:        ctx.String("session-cmd"),
			DisableNotify:     ctx.Bool("disable-notification"),
			Mute:              ctx.Bool("mute"),
		}

		if ctx.Bool("debug") {
			opts.LogLevel = "debug"
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Notifications.Sound = false
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	return nil
}

// applyCLIDurations parses the duration flags that were provided.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := []struct {
		dst  *time.Duration
		name string
		val  string
	}{
		{&c.Focus.Duration, "focus", opts.Focus},
		{&c.ShortBreak.Duration, "short break", opts.ShortBreak},
		{&c.LongBreak.Duration, "long break", opts.LongBreak},
	}

	for _, d := range durations {
		if d.val == "" {
			continue
		}

		dur, err := parseDuration(d.val)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name, d.val)
		}

		*d.dst = dur
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers, which are
// interpreted as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}
