package config

import "github.com/ayoisaiah/focusquest/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseEnv = &apperr.Error{
		Message: "parsing environment overrides failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %q",
	}

	errShortBreakTooLong = &apperr.Error{
		Message: "short break duration (%v) must be less than focus duration (%v)",
	}

	errLongBreakTooShort = &apperr.Error{
		Message: "long break duration (%v) must not be less than short break duration (%v)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions",
	}

	errInvalidExpPerSession = &apperr.Error{
		Message: "exp per session must be between %d and %d",
	}

	errInvalidPersistEvery = &apperr.Error{
		Message: "persist interval must be at least %d second",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q",
	}
)
