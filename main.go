package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leg100/flick/internal/app"
	"github.com/leg100/flick/internal/tui/top"
	"github.com/leg100/flick/internal/version"
	"github.com/peterbourgon/ff/v4"
)

func main() {
	cfg, err := app.Parse(os.Stderr, os.Args[1:])
	if errors.Is(err, ff.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if cfg.Version {
		fmt.Println(version.Version)
		return
	}
	if err := top.Start(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
