package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rlc/internal/driver"
	"rlc/internal/source"
	"rlc/internal/trace"
)

const cacheApp = "rlc"

func driverOptions(cmd *cobra.Command, settings buildSettings) driver.Options {
	opts := driver.Options{
		IncludeDirs: settings.IncludeDirs,
		Jobs:        settings.Jobs,
		Tracer:      trace.FromContext(cmd.Context()),
	}
	if settings.Cache {
		cache, err := driver.OpenDiskCache(cacheApp)
		if err != nil {
			if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "rlc: token cache disabled: %v\n", err) //nolint:errcheck
			}
		} else {
			opts.Cache = cache
		}
	}
	return opts
}

// runBuild builds settings.Sources, through the progress UI when withUI is set.
func runBuild(ctx context.Context, cmd *cobra.Command, settings buildSettings, withUI bool) (*driver.Result, error) {
	fs := source.NewFileSet()
	opts := driverOptions(cmd, settings)
	if withUI {
		return runBuildWithUI(ctx, "checking", fs, settings.Sources, opts)
	}
	return driver.Build(ctx, fs, settings.Sources, opts)
}

func printTimings(cmd *cobra.Command, res *driver.Result) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !timings || res == nil || res.Clock == nil {
		return
	}
	res.Clock.WriteTable(cmd.ErrOrStderr()) //nolint:errcheck
}
