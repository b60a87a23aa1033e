package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"
)

const asciiLogo = `
 ███████╗ ██████╗  ██████╗██╗   ██╗███████╗ ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔════╝██╔═══██╗██╔════╝██║   ██║██╔════╝██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 █████╗  ██║   ██║██║     ██║   ██║███████╗██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██╔══╝  ██║   ██║██║     ██║   ██║╚════██║██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ██║     ╚██████╔╝╚██████╗╚██████╔╝███████║╚██████╔╝╚██████╔╝███████╗███████║   ██║
 ╚═╝      ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝ ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusDuration      int
	ShortBreakDuration int
	LongBreakDuration  int
	LongBreakInterval  int
}

// WithPromptConfig returns an Option that asks for the basic timer settings
// the first time focusquest runs. Nothing happens if the config file already
// exists or if standard input is not a terminal. It must be applied before
// WithViperConfig so that the answers end up in the new config file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to prepare your ninja training schedule.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'focusquest edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.FocusDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.ShortBreakDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long break length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
				).
				Value(&opts.LongBreakDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus sessions before long break").
				Options(
					huh.NewOption("4 sessions", 4).Selected(true),
					huh.NewOption("6 sessions", 6),
					huh.NewOption("8 sessions", 8),
				).
				Value(&opts.LongBreakInterval),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Focus.Duration = time.Duration(opts.FocusDuration) * time.Minute
	c.ShortBreak.Duration = time.Duration(opts.ShortBreakDuration) * time.Minute
	c.LongBreak.Duration = time.Duration(opts.LongBreakDuration) * time.Minute
	c.Settings.LongBreakInterval = opts.LongBreakInterval
}
