package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для корпуса и входов
)

// languageSeeds cover every declaration and statement form once.
var languageSeeds = []string{
	"",
	"x: INT;\n",
	"INCLUDE \"a.rl\"\nf() VOID;\n",
	"::N { ::M { v: INT := 1 + 2 * 3; } }\n",
	"[T: TYPE, N: NUMBER, k: INT] Box -> PUBLIC VIRTUAL ::Base{T}, PRIVATE Other {\n\tPUBLIC:\n\tSTATIC c: T;\n\tCONSTRUCTOR(a: T): c(a) { }\n\tDESTRUCTOR { }\n\tVIRTUAL get() T := c;\n}\n",
	"UNION U { a: INT; b: FLOAT; }\nTYPE R(4) { x: CHAR; }\nTYPE Alias := ((INT, CHAR) : VOID) *;\n",
	"ENUM E { A, B := C := D, }\nEXTERN puts(s: CHAR \\ CONST) INT;\nEXTERN errno: INT;\n",
	"f(a: INT * CONST *, b: VOID) INT {\n\tIF (c: INT := a) RETURN c; ELSE { }\n\tWHILE (a) BREAK;\n\tDO { CONTINUE; } WHILE (0);\n\tFOR (i: INT := 0; i < 3; i += 1) { }\n\tSWITCH (a) { CASE 1, 2: a++; DEFAULT: ; }\n\tTRY { THROW; } CATCH (e: INT) { } CATCH (VOID) { } FINALLY { }\n\tRETURN a ? <INT>(SIZEOF(#a)) : -b->x.y[3](4, 5)...;\n}\n",
	"g() VOID { x := 0x1F + 017 + 1.5e-3f + 'a' + \"s\\n\\x41\"; x <<<= 2; x &&&; THIS; .m; }\n",
	"/* unterminated",
	"\"unterminated",
	"f() INT := ;",
	"Cls { DESTRUCTOR { } DESTRUCTOR { } }",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.rl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
