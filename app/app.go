// Package app defines the focusquest command-line application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusquest/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusquest app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusquest",
		Usage: `
		focusquest is a Pomodoro timer for the command-line that turns every
		completed focus session into experience for your ninja. Level up, earn
		new ranks, and unlock locations on the adventure map.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print your rank, level, and the saved timer",
				Action: statusAction,
			},
			{
				Name:   "map",
				Usage:  "Print the adventure map",
				Action: mapAction,
			},
			{
				Name:   "stats",
				Usage:  "Print your session statistics and weekly goal",
				Flags:  []cli.Flag{jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "history",
				Usage:  "List completed focus sessions (defaults to the last 7 days)",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "reset-progress",
				Usage:  "Start over from level 1. Session history is kept",
				Flags:  []cli.Flag{yesFlag},
				Action: resetProgressAction,
			},
			{
				Name:      "import",
				Usage:     "Replace your progress with a previously exported JSON record",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "export",
				Usage:  "Print your progress as a JSON record",
				Action: exportAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			disableNotificationFlag,
			muteFlag,
			sessionCmdFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
