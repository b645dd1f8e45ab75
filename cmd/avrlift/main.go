// Package main implements a semantic decoder for AVR machine code
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/avrlift/internal/cli"
	"github.com/retroenv/avrlift/internal/config"
	"github.com/retroenv/avrlift/internal/lister"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			lister.PrintBanner(opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	lister.PrintBanner(opts, version, commit, date)

	if err := lister.ProcessFile(ctx, logger, os.Stdout, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Decoding failed", log.Err(err))
	}
}
