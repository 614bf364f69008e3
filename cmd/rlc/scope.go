package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rlc/internal/diag"
	"rlc/internal/diagfmt"
)

var scopeCmd = &cobra.Command{
	Use:   "scope [flags] [file.rl...]",
	Short: "Print the scope tree of RL sources",
	Long: `Scope builds and resolves like check, then prints the scope tree of every root
file: scope kinds, sibling links and declared items.`,
	RunE: runScope,
}

func init() {
	scopeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scopeCmd.Flags().Bool("all", false, "print included files too, not only the roots")
}

func runScope(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	settings, err := loadBuildSettings(cmd, args)
	if err != nil {
		return err
	}
	res, err := runBuild(cmd.Context(), cmd, settings, false)
	if err != nil {
		var fe *diag.FatalError
		if errors.As(err, &fe) && res != nil {
			return printFatal(cmd, res.FileSet, err)
		}
		return err
	}
	printTimings(cmd, res)

	units := res.Roots
	if all {
		units = res.Units
	}
	out := cmd.OutOrStdout()
	if format == "json" {
		output := make(map[string]diagfmt.ASTNodeOutput, len(units))
		for _, u := range units {
			output[u.Path] = diagfmt.BuildScopes(res.Table, u.File.ID)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}
	for idx, u := range units {
		if !quiet {
			if _, err := fmt.Fprintf(out, "== %s ==\n", u.Path); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatScopesPretty(out, res.Table, u.File.ID, res.FileSet); err != nil {
			return err
		}
		if !quiet && idx < len(units)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}
