package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rlc/internal/diagfmt"
	"rlc/internal/driver"
	"rlc/internal/trace"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rl",
	Short: "Parse an RL source file and print its syntax tree",
	Long:  `Parse builds the syntax tree of a single RL source file. INCLUDE directives are listed but not followed`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "tree", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Parse(filePath, trace.FromContext(cmd.Context()))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if printBag(cmd, result.Bag, result.FileSet) || result.AST == nil {
		return errReported
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(out, result.AST)
	case "tree":
		// без позиций: удобно сравнивать деревья разных версий файла
		return diagfmt.FormatASTPretty(out, result.AST, nil)
	default:
		return diagfmt.FormatASTPretty(out, result.AST, result.FileSet)
	}
}
