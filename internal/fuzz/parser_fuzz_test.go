package fuzztests

import (
	"testing"
	"time"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/lexer"
	"rlc/internal/parser"
	"rlc/internal/scoper"
	"rlc/internal/source"
)

// parseTimeout is the maximum time allowed for one input. Longer means the
// parser or the resolver loops.
const parseTimeout = 5 * time.Second

func parseInput(input []byte) (*ast.File, bool) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.rl", input))
	rep := diag.BagReporter{Bag: diag.NewBag(0)}
	toks, ok := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	if !ok {
		return nil, false
	}
	return parser.ParseFile(file, toks, parser.Options{Reporter: rep})
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file, ok := parseInput(clampSeed(input))
		if ok && file == nil {
			t.Fatal("parser succeeded without a file")
		}
	})
}

// FuzzScoperNoHang populates and resolves whatever parses, under a timeout.
func FuzzScoperNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("::A { ::A { ::A { x: A; } } }"))
	f.Add([]byte("f() VOID { a: a; b: INT := b; }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		done := make(chan struct{})
		go func() {
			defer close(done)
			file, ok := parseInput(input)
			if !ok {
				return
			}
			table := scoper.NewTable(scoper.Hints{}, nil)
			table.Populate(file)
			table.Link(nil)
			table.Resolve(file, diag.BagReporter{Bag: diag.NewBag(0)})
			if err := table.Validate(); err != nil {
				panic(err)
			}
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("hang detected: took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
