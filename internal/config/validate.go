package config

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

var (
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute

	minLongBreakInterval = 2
	maxLongBreakInterval = 10

	minExpPerSession = 1
	maxExpPerSession = 1000

	minPersistEvery = 1

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSessionConfig(c.Focus, "focus"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.ShortBreak, "short break"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.LongBreak, "long break"); err != nil {
		return err
	}

	if err := c.validateSessionRelationships(); err != nil {
		return err
	}

	return c.validateSettings()
}

func (c *Config) validateSessionConfig(
	sc SessionConfig,
	sessionType string,
) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			sessionType,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(sessionType)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(sessionType, sc.Color)
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Settings.ExpPerSession < minExpPerSession ||
		c.Settings.ExpPerSession > maxExpPerSession {
		return errInvalidExpPerSession.Fmt(minExpPerSession, maxExpPerSession)
	}

	if c.Settings.PersistEvery < minPersistEvery {
		return errInvalidPersistEvery.Fmt(minPersistEvery)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// validateSessionRelationships validates logical relationships between
// sessions.
func (c *Config) validateSessionRelationships() error {
	if c.ShortBreak.Duration >= c.Focus.Duration {
		return errShortBreakTooLong.Fmt(c.ShortBreak.Duration, c.Focus.Duration)
	}

	if c.LongBreak.Duration < c.ShortBreak.Duration {
		return errLongBreakTooShort.Fmt(
			c.LongBreak.Duration,
			c.ShortBreak.Duration,
		)
	}

	return nil
}

// ParseLogLevel converts a level name such as "debug" or "warn" into a
// slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level

	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, errInvalidLogLevel.Fmt(s)
	}

	return l, nil
}
