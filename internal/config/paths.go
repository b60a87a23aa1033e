package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

const configDir = "focusquest"

// envOverrides are the environment variables that relocate focusquest's
// files.
type envOverrides struct {
	Env        string `env:"FOCUSQUEST_ENV"`
	ConfigPath string `env:"FOCUSQUEST_CONFIG"`
	DBPath     string `env:"FOCUSQUEST_DB"`
}

// Dir returns the name of the directory used under the XDG base directories.
func Dir() string {
	return configDir
}

// ResolvePaths computes the config, database, and log file locations.
// FOCUSQUEST_ENV adds a suffix to every file name so that separate
// environments do not share data, while FOCUSQUEST_CONFIG and FOCUSQUEST_DB
// replace individual paths outright.
func ResolvePaths() (SystemConfig, error) {
	var o envOverrides

	if err := env.Parse(&o); err != nil {
		return SystemConfig{}, errParseEnv.Wrap(err)
	}

	configFileName := "config.yml"
	dbFileName := "focusquest.db"
	logFileName := "focusquest.log"

	if suffix := strings.TrimSpace(o.Env); suffix != "" {
		configFileName = fmt.Sprintf("config_%s.yml", suffix)
		dbFileName = fmt.Sprintf("focusquest_%s.db", suffix)
		logFileName = fmt.Sprintf("focusquest_%s.log", suffix)
	}

	var (
		p   SystemConfig
		err error
	)

	p.ConfigPath = o.ConfigPath
	if p.ConfigPath == "" {
		p.ConfigPath, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
		if err != nil {
			return SystemConfig{}, err
		}
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return SystemConfig{}, err
	}

	p.DBPath = o.DBPath
	if p.DBPath == "" {
		p.DBPath = filepath.Join(dataDir, dbFileName)
	}

	p.LogPath = filepath.Join(dataDir, "log", logFileName)

	return p, nil
}

// WithPaths returns an Option that records the resolved file locations.
func WithPaths(p SystemConfig) Option {
	return func(c *Config) error {
		c.System = p

		return nil
	}
}
