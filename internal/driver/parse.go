package driver

import (
	"fmt"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/lexer"
	"rlc/internal/parser"
	"rlc/internal/source"
	"rlc/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File // nil on error
	Bag     *diag.Bag
}

// Parse разбирает один файл, не следуя INCLUDE.
func Parse(path string, tracer trace.Tracer) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	toks, ok := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	if !ok {
		return res, nil
	}
	if f, ok := parser.ParseFile(file, toks, parser.Options{Reporter: rep, Tracer: tracer}); ok {
		res.AST = f
	}
	return res, nil
}
