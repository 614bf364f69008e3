package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"rlc/internal/diag"
	"rlc/internal/observ"
	"rlc/internal/scoper"
	"rlc/internal/source"
	"rlc/internal/trace"
)

// Result holds a finished (or failed) build.
type Result struct {
	FileSet *source.FileSet
	Units   []*Unit // sorted by path
	Roots   []*Unit // in argument order
	Table   *scoper.Table
	Clock   *observ.Clock
}

// Unit returns the unit parsed from path.
func (res *Result) Unit(path string) (*Unit, bool) {
	key := registryKey(path)
	for _, u := range res.Units {
		if registryKey(u.Path) == key {
			return u, true
		}
	}
	return nil, false
}

// Build compiles roots and everything they include.
//
// Phase one parses the include closure in parallel, at most opts.Jobs files
// at a time. If several files fail, the error of the first one in path order
// is returned. Phase two populates scopes for every file in path order,
// links siblings and resolves symbols, stopping at the first error.
func Build(ctx context.Context, fs *source.FileSet, roots []string, opts Options) (*Result, error) {
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
	}
	if opts.Clock == nil {
		opts.Clock = observ.NewClock()
	}
	reg := NewRegistry(fs, opts)
	res := &Result{FileSet: fs, Clock: opts.Clock}

	stop := res.Clock.Start(string(StageParse))
	phase := trace.Begin(opts.Tracer, trace.ScopePhase, "parse", 0)
	err := parseClosure(ctx, reg, roots, opts)
	phase.End("")
	stop(fmt.Sprintf("%d files", len(reg.Units())))

	res.Units = reg.Units()
	sort.Slice(res.Units, func(i, j int) bool { return res.Units[i].Path < res.Units[j].Path })
	for _, root := range roots {
		if u, ok := res.Unit(root); ok {
			res.Roots = append(res.Roots, u)
		}
	}
	if err != nil {
		emit(opts.Progress, "", StageParse, StatusError, err, 0)
		return res, err
	}

	err = scopeUnits(res, opts)
	if err != nil {
		emit(opts.Progress, "", StageResolve, StatusError, err, 0)
		return res, err
	}
	for _, u := range res.Units {
		emit(opts.Progress, u.Path, StageResolve, StatusDone, nil, 0)
	}
	emit(opts.Progress, "", StageResolve, StatusDone, nil, 0)
	return res, nil
}

// parseClosure разбирает файлы волнами: корни, затем ещё не виденные
// включения предыдущей волны. Внутри волны файлы разбираются параллельно.
func parseClosure(ctx context.Context, reg *Registry, roots []string, opts Options) error {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	seen := make(map[string]bool)
	var wave []string
	for _, p := range roots {
		if key := registryKey(p); !seen[key] {
			seen[key] = true
			wave = append(wave, p)
			emit(opts.Progress, p, StageTokenize, StatusQueued, nil, 0)
		}
	}

	var (
		mu   sync.Mutex
		errs = make(map[string]error)
	)
	for len(wave) > 0 {
		units := make([]*Unit, len(wave))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(wave)))
		for i, p := range wave {
			g.Go(func() error {
				u, err := reg.GetOrParse(gctx, p)
				if err != nil {
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						return err
					}
					mu.Lock()
					errs[p] = err
					mu.Unlock()
					return nil
				}
				units[i] = u
				emit(opts.Progress, p, StageParse, StatusDone, nil, 0)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		var next []string
		for _, u := range units {
			if u == nil {
				continue
			}
			for _, inc := range u.Includes {
				if key := registryKey(inc); !seen[key] {
					seen[key] = true
					next = append(next, inc)
					emit(opts.Progress, inc, StageTokenize, StatusQueued, nil, 0)
				}
			}
		}
		wave = next
	}

	if len(errs) == 0 {
		return nil
	}
	paths := make([]string, 0, len(errs))
	for p := range errs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return errs[paths[0]]
}

func scopeUnits(res *Result, opts Options) error {
	table := scoper.NewTable(scoper.Hints{}, nil, opts.Builtins...)
	res.Table = table

	stop := res.Clock.Start(string(StageScope))
	phase := trace.Begin(opts.Tracer, trace.ScopePhase, "scope", 0)
	byKey := make(map[string]source.FileID, len(res.Units))
	for _, u := range res.Units {
		start := time.Now()
		emit(opts.Progress, u.Path, StageScope, StatusWorking, nil, 0)
		table.Populate(u.AST)
		byKey[registryKey(u.Path)] = u.File.ID
		res.Clock.AddFile(string(StageScope), u.Path, time.Since(start))
		emit(opts.Progress, u.Path, StageScope, StatusDone, nil, time.Since(start))
	}
	includes := make(map[source.FileID][]source.FileID, len(res.Units))
	for _, u := range res.Units {
		for _, inc := range u.Includes {
			if id, ok := byKey[registryKey(inc)]; ok {
				includes[u.File.ID] = append(includes[u.File.ID], id)
			}
		}
	}
	table.Link(includes)
	phase.End("")
	stop("")

	stop = res.Clock.Start(string(StageResolve))
	defer func() { stop("") }()
	phase = trace.Begin(opts.Tracer, trace.ScopePhase, "resolve", 0)
	defer phase.End("")
	bag := diag.NewBag(0)
	for _, u := range res.Units {
		start := time.Now()
		emit(opts.Progress, u.Path, StageResolve, StatusWorking, nil, 0)
		ok := table.Resolve(u.AST, diag.BagReporter{Bag: bag})
		res.Clock.AddFile(string(StageResolve), u.Path, time.Since(start))
		if !ok {
			d, _ := bag.FirstError()
			err := diag.NewFatal(res.FileSet, d)
			emit(opts.Progress, u.Path, StageResolve, StatusError, err, time.Since(start))
			return err
		}
	}
	return nil
}
