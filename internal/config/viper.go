package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyFocusDuration        = "focus.duration"
	keyFocusMessage         = "focus.message"
	keyFocusColor           = "focus.color"
	keyShortBreakDuration   = "short_break.duration"
	keyShortBreakMessage    = "short_break.message"
	keyShortBreakColor      = "short_break.color"
	keyLongBreakDuration    = "long_break.duration"
	keyLongBreakMessage     = "long_break.message"
	keyLongBreakColor       = "long_break.color"
	keyLongBreakInterval    = "settings.long_break_interval"
	keyExpPerSession        = "settings.exp_per_session"
	keyAutoStartBreak       = "settings.auto_start_break"
	keyAutoStartFocus       = "settings.auto_start_focus"
	keySessionCmd           = "settings.session_cmd"
	keyPersistEvery         = "settings.persist_every"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.twenty_four_hour"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults along with any values gathered from the
// first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyFocusDuration, "25m")
	v.SetDefault(keyFocusMessage, "Focus on your training")
	v.SetDefault(keyFocusColor, "#FF7A00")
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakMessage, "Let your chakra recover")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakMessage, "Rest well, ninja")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keyExpPerSession, 50)
	v.SetDefault(keyAutoStartBreak, true)
	v.SetDefault(keyAutoStartFocus, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyPersistEvery, 60)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyLogLevel, "info")

	if c.Focus.Duration != 0 {
		v.Set(keyFocusDuration, c.Focus.Duration.String())
	}

	if c.ShortBreak.Duration != 0 {
		v.Set(keyShortBreakDuration, c.ShortBreak.Duration.String())
	}

	if c.LongBreak.Duration != 0 {
		v.Set(keyLongBreakDuration, c.LongBreak.Duration.String())
	}

	if c.Settings.LongBreakInterval != 0 {
		v.Set(keyLongBreakInterval, c.Settings.LongBreakInterval)
	}
}

// loadViperConfig copies the merged configuration into c. Fields that are not
// read from the file keep their current values.
func loadViperConfig(v *viper.Viper, c *Config) error {
	system := c.System

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.System = system

	return nil
}
