// Package config loads the focusquest settings from the config file and the
// command-line
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/focusquest/internal/timer"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus         SessionConfig      `mapstructure:"focus"`
		ShortBreak    SessionConfig      `mapstructure:"short_break"`
		LongBreak     SessionConfig      `mapstructure:"long_break"`
		Log           LogConfig          `mapstructure:"log"`
		System        SystemConfig       `mapstructure:"-"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// SessionConfig holds the settings of one kind of interval.
	SessionConfig struct {
		Message  string        `mapstructure:"message"`
		Color    string        `mapstructure:"color"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds the timer and progression settings.
	SettingsConfig struct {
		SessionCmd        string `mapstructure:"session_cmd"`
		LongBreakInterval int    `mapstructure:"long_break_interval"`
		ExpPerSession     int    `mapstructure:"exp_per_session"`
		PersistEvery      int    `mapstructure:"persist_every"`
		AutoStartBreak    bool   `mapstructure:"auto_start_break"`
		AutoStartFocus    bool   `mapstructure:"auto_start_focus"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds the resolved file locations. It is not read from
	// the config file.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// TimerSettings converts the session settings for the countdown engine.
func (c *Config) TimerSettings() timer.Settings {
	return timer.Settings{
		Focus:             c.Focus.Duration,
		ShortBreak:        c.ShortBreak.Duration,
		LongBreak:         c.LongBreak.Duration,
		LongBreakInterval: c.Settings.LongBreakInterval,
		AutoStartBreak:    c.Settings.AutoStartBreak,
		AutoStartFocus:    c.Settings.AutoStartFocus,
	}
}
