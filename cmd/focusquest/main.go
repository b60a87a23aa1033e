package main

import (
	"os"

	"github.com/ayoisaiah/focusquest/app"
	"github.com/ayoisaiah/focusquest/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
