package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/lexer"
	"rlc/internal/observ"
	"rlc/internal/parser"
	"rlc/internal/source"
	"rlc/internal/token"
	"rlc/internal/trace"
)

// Options configure a Registry and Build.
type Options struct {
	IncludeDirs []string      // searched after the including file's directory
	Jobs        int           // parallel parses, <= 0 means GOMAXPROCS
	Cache       *DiskCache    // nil disables the token cache
	Progress    ProgressSink  // may be nil
	Tracer      trace.Tracer  // may be nil
	Builtins    []string      // extra prelude names
	Clock       *observ.Clock // nil: Build allocates one
}

// Unit is one parsed source file of a build.
type Unit struct {
	Path     string // cleaned path as discovered
	File     *source.File
	Tokens   []token.Token
	AST      *ast.File
	Includes []string // resolved include paths, in directive order
	Cached   bool     // tokens came from the disk cache
}

type unitResult struct {
	unit *Unit
	err  error
}

// Registry parses every file at most once, however many files include it
// and however many goroutines ask for it.
type Registry struct {
	fs    *source.FileSet
	opts  Options
	group singleflight.Group

	mu    sync.Mutex
	units map[string]unitResult // key: absolute path
}

// NewRegistry creates a registry loading files into fs.
func NewRegistry(fs *source.FileSet, opts Options) *Registry {
	return &Registry{fs: fs, opts: opts, units: make(map[string]unitResult)}
}

// FileSet returns the file set files are loaded into.
func (r *Registry) FileSet() *source.FileSet { return r.fs }

func registryKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (r *Registry) lookup(key string) (unitResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.units[key]
	return res, ok
}

// GetOrParse returns the unit for path, tokenising and parsing it on first
// use. A lexical or syntax error is returned as *diag.FatalError together
// with the partially filled unit; I/O errors are wrapped.
func (r *Registry) GetOrParse(ctx context.Context, path string) (*Unit, error) {
	path = filepath.Clean(path)
	key := registryKey(path)
	if res, ok := r.lookup(key); ok {
		return res.unit, res.err
	}
	v, err, _ := r.group.Do(key, func() (any, error) {
		if res, ok := r.lookup(key); ok {
			return res.unit, res.err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		unit, err := r.parse(path)
		r.mu.Lock()
		r.units[key] = unitResult{unit: unit, err: err}
		r.mu.Unlock()
		return unit, err
	})
	unit, _ := v.(*Unit)
	return unit, err
}

// Units returns every unit parsed without error so far.
func (r *Registry) Units() []*Unit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Unit, 0, len(r.units))
	for _, res := range r.units {
		if res.err == nil && res.unit != nil {
			out = append(out, res.unit)
		}
	}
	return out
}

func (r *Registry) fatal(bag *diag.Bag) error {
	d, ok := bag.FirstError()
	if !ok {
		return errors.New("phase failed without a diagnostic")
	}
	return diag.NewFatal(r.fs, d)
}

func (r *Registry) parse(path string) (*Unit, error) {
	start := time.Now()
	span := trace.Begin(r.opts.Tracer, trace.ScopeFile, "parse_file", 0)
	defer span.End(path)

	emit(r.opts.Progress, path, StageTokenize, StatusWorking, nil, 0)
	id, err := r.fs.Load(path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		emit(r.opts.Progress, path, StageTokenize, StatusError, err, time.Since(start))
		return nil, err
	}
	unit := &Unit{Path: path, File: r.fs.Get(id)}
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}

	toks, ok := r.tokens(unit, rep)
	if !ok {
		err := r.fatal(bag)
		emit(r.opts.Progress, path, StageTokenize, StatusError, err, time.Since(start))
		return unit, err
	}
	unit.Tokens = toks

	emit(r.opts.Progress, path, StageParse, StatusWorking, nil, time.Since(start))
	f, ok := parser.ParseFile(unit.File, toks, parser.Options{Reporter: rep, Tracer: r.opts.Tracer})
	if !ok {
		err := r.fatal(bag)
		emit(r.opts.Progress, path, StageParse, StatusError, err, time.Since(start))
		return unit, err
	}
	unit.AST = f

	for _, inc := range f.Includes {
		resolved, ok := r.resolveInclude(path, inc.Path)
		if !ok {
			diag.ReportError(rep, diag.IOIncludeNotFound, inc.Tok.Span,
				fmt.Sprintf("cannot find include file '%s'", inc.Path)).Emit()
			err := r.fatal(bag)
			emit(r.opts.Progress, path, StageParse, StatusError, err, time.Since(start))
			return unit, err
		}
		unit.Includes = append(unit.Includes, resolved)
	}
	r.opts.Clock.AddFile(string(StageParse), path, time.Since(start))
	return unit, nil
}

// tokens берёт поток из дискового кэша или токенизирует файл и кладёт
// результат в кэш. Ошибка записи кэша не фатальна.
func (r *Registry) tokens(unit *Unit, rep diag.Reporter) ([]token.Token, bool) {
	file := unit.File
	if toks, hit, err := r.opts.Cache.GetTokens(file.Hash, file.ID); err == nil && hit {
		unit.Cached = true
		trace.Point(r.opts.Tracer, trace.ScopeFile, "token_cache_hit", unit.Path)
		return toks, true
	}
	toks, ok := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	if !ok {
		return nil, false
	}
	if err := r.opts.Cache.PutTokens(file.Hash, toks); err != nil {
		trace.Point(r.opts.Tracer, trace.ScopeFile, "token_cache_write_failed", err.Error())
	}
	return toks, true
}

// resolveInclude ищет файл относительно включающего файла, затем в
// include-каталогах по порядку.
func (r *Registry) resolveInclude(from, inc string) (string, bool) {
	var candidates []string
	if filepath.IsAbs(inc) {
		candidates = append(candidates, inc)
	} else {
		candidates = append(candidates, filepath.Join(filepath.Dir(from), inc))
		for _, dir := range r.opts.IncludeDirs {
			candidates = append(candidates, filepath.Join(dir, inc))
		}
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && st.Mode().IsRegular() {
			return filepath.Clean(c), true
		}
	}
	return "", false
}
