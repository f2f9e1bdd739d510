package main

import (
	"os"

	"github.com/ayoisaiah/focusplan/app"
	"github.com/ayoisaiah/focusplan/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
