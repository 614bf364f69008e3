package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"rlc/internal/driver"
)

func feed(m *progressModel, events ...driver.Event) {
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}
}

func TestProgressAddsIncludedFiles(t *testing.T) {
	m := NewProgressModel("checking", []string{"./main.rl"}, nil).(*progressModel)
	feed(m,
		driver.Event{File: "main.rl", Stage: driver.StageParse, Status: driver.StatusWorking},
		driver.Event{File: "lib/a.rl", Stage: driver.StageTokenize, Status: driver.StatusQueued},
	)
	if len(m.items) != 2 {
		t.Fatalf("items = %+v", m.items)
	}
	if m.items[0].status != "parsing" || m.items[1].status != "queued" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
}

func TestProgressDoneOnlyAfterResolve(t *testing.T) {
	m := NewProgressModel("checking", []string{"a.rl"}, nil).(*progressModel)
	feed(m, driver.Event{File: "a.rl", Stage: driver.StageParse, Status: driver.StatusDone})
	if m.items[0].status != "parsed" {
		t.Fatalf("status after parse = %q", m.items[0].status)
	}
	if p := m.percent(); p <= 0 || p >= 1 {
		t.Fatalf("percent after parse = %v", p)
	}
	feed(m, driver.Event{File: "a.rl", Stage: driver.StageResolve, Status: driver.StatusDone})
	if m.items[0].status != "done" || m.percent() != 1 {
		t.Fatalf("status %q percent %v", m.items[0].status, m.percent())
	}
}

func TestProgressViewReportsFailure(t *testing.T) {
	m := NewProgressModel("checking", []string{"a.rl"}, nil).(*progressModel)
	feed(m,
		driver.Event{File: "a.rl", Stage: driver.StageResolve, Status: driver.StatusError, Err: errors.New("boom")},
		driver.Event{Stage: driver.StageResolve, Status: driver.StatusError},
	)
	m.Update(doneMsg{})
	view := m.View()
	if !strings.Contains(view, "failed: checking") || !strings.Contains(view, "error") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a/very/long/path.rl", 10); got != "a/very/..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本語ファイル", 3); got != "日" {
		t.Fatalf("truncate wide = %q", got)
	}
	if got := truncate("日本語ファイル", 8); got != "日本..." {
		t.Fatalf("truncate wide = %q", got)
	}
	for _, w := range []int{1, 3, 4, 7, 10, 18} {
		got := truncate("a/very/long/path.rl", w)
		if runewidth.StringWidth(got) > w {
			t.Errorf("width %d: %q is %d columns wide", w, got, runewidth.StringWidth(got))
		}
	}
}
