package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rlc/internal/diag"
	"rlc/internal/diagfmt"
	"rlc/internal/source"
)

// errReported means the failure has already been printed.
var errReported = errors.New("failure already reported")

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func prettyOptions(cmd *cobra.Command) diagfmt.PrettyOpts {
	withContext, _ := cmd.Root().PersistentFlags().GetBool("context")
	return diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   withContext,
		ShowNotes: true,
	}
}

// printFatal печатает фатальную диагностику в stderr и возвращает
// errReported; прочие ошибки возвращаются без изменений.
func printFatal(cmd *cobra.Command, fs *source.FileSet, err error) error {
	var fe *diag.FatalError
	if fs == nil || !errors.As(err, &fe) {
		return err
	}
	diagfmt.PrettyOne(cmd.ErrOrStderr(), fe.Diag, fs, prettyOptions(cmd))
	return errReported
}

// printBag prints every diagnostic of bag and reports whether it held an error.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag.Len() == 0 {
		return false
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, prettyOptions(cmd))
	return bag.HasErrors()
}

// reportError prints an error that reached main unprinted.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errReported) {
		return
	}
	fmt.Fprintf(w, "rlc: %v\n", err) //nolint:errcheck
}
