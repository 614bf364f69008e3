package observ

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Clock accumulates the wall time of each build stage and the busy time
// every file spent inside it. File work may be recorded from parallel
// workers. A nil *Clock records nothing.
type Clock struct {
	mu     sync.Mutex
	now    func() time.Time
	stages []*stageRec // в порядке первого запуска
	index  map[string]*stageRec
}

type stageRec struct {
	name  string
	wall  time.Duration
	note  string
	busy  time.Duration
	files map[string]time.Duration
}

// NewClock returns an empty clock reading the system time.
func NewClock() *Clock { return newClock(time.Now) }

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, index: make(map[string]*stageRec)}
}

func (c *Clock) stage(name string) *stageRec {
	s, ok := c.index[name]
	if !ok {
		s = &stageRec{name: name, files: make(map[string]time.Duration)}
		c.index[name] = s
		c.stages = append(c.stages, s)
	}
	return s
}

// Start opens a stage and returns the function closing it. A stage started
// twice sums both runs; the last non-empty note wins.
func (c *Clock) Start(stage string) (stop func(note string)) {
	if c == nil {
		return func(string) {}
	}
	c.mu.Lock()
	c.stage(stage)
	began := c.now()
	c.mu.Unlock()

	var once sync.Once
	return func(note string) {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			s := c.index[stage]
			s.wall += c.now().Sub(began)
			if note != "" {
				s.note = note
			}
		})
	}
}

// AddFile charges d of stage work to path.
func (c *Clock) AddFile(stage, path string, d time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stage(stage)
	s.files[path] += d
	s.busy += d
}

// Wall returns the accumulated wall time of stage.
func (c *Clock) Wall(stage string) (time.Duration, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.index[stage]
	if !ok {
		return 0, false
	}
	return s.wall, true
}

// StageReport is the serialized view of one stage.
type StageReport struct {
	Stage     string  `json:"stage"`
	WallMS    float64 `json:"wall_ms"`
	Files     int     `json:"files"`
	BusyMS    float64 `json:"busy_ms"`
	Slowest   string  `json:"slowest,omitempty"`
	SlowestMS float64 `json:"slowest_ms,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// Report is what --timings prints and "check --format json" embeds.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report snapshots the clock. Ties for the slowest file go to the smaller
// path so the output is stable.
func (c *Clock) Report() Report {
	report := Report{Stages: []StageReport{}}
	if c == nil {
		return report
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var total time.Duration
	for _, s := range c.stages {
		total += s.wall
		sr := StageReport{
			Stage:  s.name,
			WallMS: millis(s.wall),
			Files:  len(s.files),
			BusyMS: millis(s.busy),
			Note:   s.note,
		}
		var worst time.Duration
		for path, d := range s.files {
			if sr.Slowest == "" || d > worst || (d == worst && path < sr.Slowest) {
				sr.Slowest, worst = path, d
			}
		}
		sr.SlowestMS = millis(worst)
		report.Stages = append(report.Stages, sr)
	}
	report.TotalMS = millis(total)
	return report
}

// WriteTable prints the report as aligned columns.
func (c *Clock) WriteTable(w io.Writer) error {
	report := c.Report()
	if _, err := fmt.Fprintf(w, "%-10s %9s %6s %9s  %s\n", "stage", "wall ms", "files", "busy ms", "slowest"); err != nil {
		return err
	}
	for _, s := range report.Stages {
		slowest := "-"
		if s.Slowest != "" {
			slowest = fmt.Sprintf("%s (%.2f ms)", s.Slowest, s.SlowestMS)
		}
		if s.Note != "" {
			slowest += "  [" + s.Note + "]"
		}
		if _, err := fmt.Fprintf(w, "%-10s %9.2f %6d %9.2f  %s\n", s.Stage, s.WallMS, s.Files, s.BusyMS, slowest); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-10s %9.2f\n", "total", report.TotalMS)
	return err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
