package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rlc/internal/diag"
	"rlc/internal/diagfmt"
	"rlc/internal/driver"
	"rlc/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.rl...]",
	Short: "Parse and resolve RL sources with their includes",
	Long: `Check parses the given files and everything they include, builds scopes and
resolves every symbol. Without arguments the sources listed in rlc.toml are checked.
The first fatal error is printed and the command exits with status 1.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("ui", "auto", "show progress UI (auto|on|off)")
	checkCmd.Flags().Int("jobs", 0, "max parallel parses (0=auto)")
}

type checkFileJSON struct {
	Path     string   `json:"path"`
	Includes []string `json:"includes,omitempty"`
	Cached   bool     `json:"cached,omitempty"`
}

type checkOutputJSON struct {
	OK          bool                      `json:"ok"`
	Files       []checkFileJSON           `json:"files"`
	Resolved    int                       `json:"resolved"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
	Timings     *observ.Report            `json:"timings,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	withUI, err := wantUI(uiValue, quiet, format == "json")
	if err != nil {
		return err
	}

	settings, err := loadBuildSettings(cmd, args)
	if err != nil {
		return err
	}

	res, buildErr := runBuild(cmd.Context(), cmd, settings, withUI)

	var fe *diag.FatalError
	if buildErr != nil && !errors.As(buildErr, &fe) {
		return buildErr
	}

	if format == "json" {
		if err := writeCheckJSON(cmd, res, fe); err != nil {
			return err
		}
		if fe != nil {
			return errReported
		}
		return nil
	}

	if fe != nil {
		printTimings(cmd, res)
		return printFatal(cmd, res.FileSet, fe)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s), %d symbol(s) resolved\n", //nolint:errcheck
			len(res.Units), res.Table.ResolvedCount())
	}
	printTimings(cmd, res)
	return nil
}

func writeCheckJSON(cmd *cobra.Command, res *driver.Result, fe *diag.FatalError) error {
	out := checkOutputJSON{OK: fe == nil, Files: []checkFileJSON{}}
	bag := diag.NewBag(0)
	if fe != nil {
		bag.Add(fe.Diag)
	}
	if res != nil {
		for _, u := range res.Units {
			out.Files = append(out.Files, checkFileJSON{Path: u.Path, Includes: u.Includes, Cached: u.Cached})
		}
		if res.Table != nil && fe == nil {
			out.Resolved = res.Table.ResolvedCount()
		}
		if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings && res.Clock != nil {
			report := res.Clock.Report()
			out.Timings = &report
		}
		out.Diagnostics = diagfmt.BuildDiagnosticsOutput(bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
