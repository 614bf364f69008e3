package fuzztests

import (
	"testing"

	"rlc/internal/diag"
	"rlc/internal/lexer"
	"rlc/internal/source"
	"rlc/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rl", input))

		bag := diag.NewBag(0)
		toks, ok := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if !ok {
			if !bag.HasErrors() {
				t.Fatal("lexer failed without reporting an error")
			}
			return
		}
		if err := testkit.CheckSpanInvariants(file, toks); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
	})
}
