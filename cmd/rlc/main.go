package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rlc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "rlc",
	Short:         "RL language compiler front end",
	Long:          `rlc tokenises, parses and scopes RL sources and reports the first fatal error`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanupTrace, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		cleanupProf, err := setupProfiling(cmd)
		if err != nil {
			cleanupTrace()
			return err
		}
		cleanups = append(cleanups, cleanupProf, cleanupTrace)
		return nil
	},
}

// cleanups выполняются после команды, в том числе при ошибке.
var cleanups []func()

func runCleanups() {
	for _, fn := range cleanups {
		fn()
	}
	cleanups = nil
}

// main registers subcommands and persistent flags and runs the root command.
// A failed command exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scopeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Bool("context", false, "print the offending source line under each error")
	pf.StringArrayP("include", "I", nil, "additional include directory (repeatable)")
	pf.Bool("no-cache", false, "do not read or write the token cache")
	pf.String("manifest", "", "path to rlc.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|file|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 0, "keep the last N trace events in memory and dump them on exit")
	pf.String("cpuprofile", "", "write CPU profile to file")
	pf.String("memprofile", "", "write heap profile to file")

	err := rootCmd.Execute()
	runCleanups()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
