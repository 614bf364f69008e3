package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rlc/internal/driver"
	"rlc/internal/source"
	"rlc/internal/ui"
)

type buildOutcome struct {
	result *driver.Result
	err    error
}

func runBuildWithUI(ctx context.Context, title string, fs *source.FileSet, files []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Build(ctx, fs, files, optsCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// сборка не должна застрять на полном канале
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// wantUI decides whether check shows the progress view. --ui=auto needs both
// stdout and stderr on a terminal; machine or quiet output never gets it.
func wantUI(value string, quiet, machine bool) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return !quiet && !machine && isTerminal(os.Stdout) && isTerminal(os.Stderr), nil
	case "on":
		return !machine, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}
