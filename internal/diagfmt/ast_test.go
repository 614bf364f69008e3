package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/diagfmt"
	"rlc/internal/lexer"
	"rlc/internal/parser"
	"rlc/internal/source"
)

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.rl", []byte(src)))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	toks, ok := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	if !ok {
		t.Fatalf("tokenize: %+v", bag.Items())
	}
	f, ok := parser.ParseFile(sf, toks, parser.Options{Reporter: rep})
	if !ok {
		t.Fatalf("parse: %+v", bag.Items())
	}
	return f
}

func assertGolden(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Fatalf("tree mismatch:\n%s", diff)
}

func TestFormatASTPretty(t *testing.T) {
	f := parseFile(t, `INCLUDE "lib.rl"
::N {
	x: INT := 1;
	f(a: INT) INT { RETURN a + x; }
}
`)
	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, f, nil); err != nil {
		t.Fatal(err)
	}
	assertGolden(t, buf.String(), `File: t.rl
├─ Include: "lib.rl"
└─ Namespace: N
   ├─ Variable: x: INT := 1
   └─ Function: f
      ├─ Arg: a: INT
      ├─ Result: INT
      └─ Block
         └─ Return: (a + x)
`)
}

func TestFormatASTClassMembers(t *testing.T) {
	f := parseFile(t, `C {
	CONSTRUCTOR(v: INT): a(v) {}
PRIVATE:
	STATIC a: INT;
}
`)
	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, f, nil); err != nil {
		t.Fatal(err)
	}
	assertGolden(t, buf.String(), `File: t.rl
└─ Class: C
   ├─ Constructor: [public]
   │  ├─ Arg: v: INT
   │  ├─ Init: a(v)
   │  └─ Block
   └─ Variable: a: INT [private STATIC]
`)
}

func TestFormatASTJSON(t *testing.T) {
	f := parseFile(t, "ENUM E { A, B := C }\n")
	var buf bytes.Buffer
	if err := diagfmt.FormatASTJSON(&buf, f); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Children) != 1 || out.Children[0].Type != "Enum" {
		t.Fatalf("children = %+v", out.Children)
	}
	consts := out.Children[0].Children
	if len(consts) != 2 || consts[1].Text != "B := C" {
		t.Fatalf("constants = %+v", consts)
	}
}
