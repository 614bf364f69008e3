package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"rlc/internal/diag"
	"rlc/internal/driver"
	"rlc/internal/observ"
	"rlc/internal/source"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(ev driver.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) count(file string, stage driver.Stage, status driver.Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if strings.HasSuffix(ev.File, file) && ev.Stage == stage && ev.Status == status {
			n++
		}
	}
	return n
}

func fatalOf(t *testing.T, err error) *diag.FatalError {
	t.Helper()
	var fe *diag.FatalError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v (%T) is not a FatalError", err, err)
	}
	return fe
}

func TestBuildIncludeClosure(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.rl":  "INCLUDE \"lib/a.rl\"\nINCLUDE \"c.rl\"\nf() INT := ::A::u + w;\n",
		"lib/a.rl": "INCLUDE \"b.rl\"\n::A { v: INT; }\n",
		"lib/b.rl": "::A { u: INT; }\n",
		"inc/c.rl": "w: INT;\n",
	})
	opts := driver.Options{IncludeDirs: []string{filepath.Join(dir, "inc")}, Jobs: 2}
	res, err := driver.Build(context.Background(), source.NewFileSet(), []string{filepath.Join(dir, "main.rl")}, opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(res.Units) != 4 {
		t.Fatalf("units = %d, want 4", len(res.Units))
	}
	for i := 1; i < len(res.Units); i++ {
		if res.Units[i-1].Path >= res.Units[i].Path {
			t.Fatalf("units not sorted: %s before %s", res.Units[i-1].Path, res.Units[i].Path)
		}
	}
	if len(res.Roots) != 1 || !strings.HasSuffix(res.Roots[0].Path, "main.rl") {
		t.Fatalf("roots = %+v", res.Roots)
	}
	if res.Table.ResolvedCount() == 0 {
		t.Fatal("nothing resolved")
	}
	if err := res.Table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBuildDiamondNamespaceAndTimings(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.rl": "INCLUDE \"a.rl\"\nINCLUDE \"b.rl\"\nf() INT := ::N::a + N::b;\n",
		"a.rl":    "::N { a: INT; }\n",
		"b.rl":    "::N { b: INT; }\n",
	})
	clock := observ.NewClock()
	res, err := driver.Build(context.Background(), source.NewFileSet(),
		[]string{filepath.Join(dir, "main.rl")}, driver.Options{Jobs: 2, Clock: clock})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Clock != clock {
		t.Fatal("result does not carry the supplied clock")
	}

	report := clock.Report()
	want := []driver.Stage{driver.StageParse, driver.StageScope, driver.StageResolve}
	if len(report.Stages) != len(want) {
		t.Fatalf("stages = %+v", report.Stages)
	}
	for i, st := range want {
		if got := report.Stages[i]; got.Stage != string(st) || got.Files != 3 {
			t.Errorf("stage %d = %+v", i, got)
		}
	}
	if report.Stages[0].Note != "3 files" {
		t.Errorf("parse note = %q", report.Stages[0].Note)
	}
}

func TestBuildMissingInclude(t *testing.T) {
	dir := writeFiles(t, map[string]string{"main.rl": "INCLUDE \"nope.rl\"\n"})
	_, err := driver.Build(context.Background(), source.NewFileSet(), []string{filepath.Join(dir, "main.rl")}, driver.Options{})
	fe := fatalOf(t, err)
	if fe.Diag.Code != diag.IOIncludeNotFound || fe.Pos.Line != 1 || fe.Pos.Col != 9 {
		t.Fatalf("error = %v (%s)", fe, fe.Diag.Code.ID())
	}
}

func TestBuildReportsFirstFailingPath(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b_bad.rl": "x: ;\n",
		"a_bad.rl": "y: ;\n",
	})
	roots := []string{filepath.Join(dir, "b_bad.rl"), filepath.Join(dir, "a_bad.rl")}
	_, err := driver.Build(context.Background(), source.NewFileSet(), roots, driver.Options{Jobs: 2})
	fe := fatalOf(t, err)
	if !strings.HasSuffix(fe.Pos.Path, "a_bad.rl") {
		t.Fatalf("reported %s, want a_bad.rl first", fe.Pos.Path)
	}
	if !strings.Contains(fe.Error(), ": error: ") || !strings.HasSuffix(fe.Error(), ".") {
		t.Fatalf("message %q", fe.Error())
	}
}

func TestBuildParsesSharedIncludeOnce(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.rl":   "INCLUDE \"x.rl\"\nINCLUDE \"y.rl\"\n",
		"x.rl":      "INCLUDE \"common.rl\"\n",
		"y.rl":      "INCLUDE \"common.rl\"\n",
		"common.rl": "c: INT;\n",
	})
	sink := &recordingSink{}
	_, err := driver.Build(context.Background(), source.NewFileSet(),
		[]string{filepath.Join(dir, "main.rl"), filepath.Join(dir, "x.rl")},
		driver.Options{Progress: sink, Jobs: 4})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if n := sink.count("common.rl", driver.StageParse, driver.StatusWorking); n != 1 {
		t.Fatalf("common.rl parsed %d times", n)
	}
	if n := sink.count("common.rl", driver.StageResolve, driver.StatusDone); n != 1 {
		t.Fatalf("common.rl resolved %d times", n)
	}
}

func TestBuildResolveError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"main.rl": "f() INT := missing;\n"})
	res, err := driver.Build(context.Background(), source.NewFileSet(), []string{filepath.Join(dir, "main.rl")}, driver.Options{})
	fe := fatalOf(t, err)
	if fe.Diag.Code != diag.SemUnresolvedSymbol {
		t.Fatalf("code = %s", fe.Diag.Code.ID())
	}
	if len(res.Units) != 1 {
		t.Fatalf("units = %d", len(res.Units))
	}
}

func TestRegistryConcurrentGetOrParse(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.rl": "a: INT;\n"})
	reg := driver.NewRegistry(source.NewFileSet(), driver.Options{})
	path := filepath.Join(dir, "a.rl")

	const n = 8
	units := make([]*driver.Unit, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := reg.GetOrParse(context.Background(), path)
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			units[i] = u
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if units[i] != units[0] {
			t.Fatal("GetOrParse returned different units for one path")
		}
	}
	if reg.FileSet().Len() != 1 {
		t.Fatalf("file loaded %d times", reg.FileSet().Len())
	}
}

func TestBuildUsesTokenCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"main.rl": "x: INT;\n"})
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	roots := []string{filepath.Join(dir, "main.rl")}
	first, err := driver.Build(context.Background(), source.NewFileSet(), roots, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	if first.Units[0].Cached {
		t.Fatal("cold cache reported a hit")
	}
	second, err := driver.Build(context.Background(), source.NewFileSet(), roots, driver.Options{Cache: cache})
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !second.Units[0].Cached {
		t.Fatal("warm cache missed")
	}
	if len(first.Units[0].Tokens) != len(second.Units[0].Tokens) {
		t.Fatalf("token count %d vs %d", len(first.Units[0].Tokens), len(second.Units[0].Tokens))
	}
	for i, tok := range second.Units[0].Tokens {
		want := first.Units[0].Tokens[i]
		if tok.Kind != want.Kind || tok.Text != want.Text || tok.Span.Start != want.Span.Start || tok.Span.End != want.Span.End {
			t.Fatalf("token %d = %+v, want %+v", i, tok, want)
		}
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, hit, _ := cache.GetTokens(second.Units[0].File.Hash, 1); hit {
		t.Fatal("hit after DropAll")
	}
}
