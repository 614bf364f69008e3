package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rlc/internal/ast"
	"rlc/internal/source"
	"rlc/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a token stream:
// 1) every span points into sf and lies within its content
// 2) spans are non-overlapping and in source order
// 3) Text is exactly the spanned bytes; only EOF is empty and it comes last
func CheckSpanInvariants(sf *source.File, toks []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tk := range toks {
		sp := tk.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d: span %v out of bounds (len %d)", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End
		if tk.Kind == token.EOF {
			if i != len(toks)-1 {
				return fmt.Errorf("EOF token at %d is not last", i)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%v): empty span", i, tk.Kind)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tk.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tk.Text, got)
		}
	}
	return nil
}

// CheckEntrySpans verifies that every top-level entry of a parsed file has a
// non-empty span inside sf and that entries do not overlap.
func CheckEntrySpans(sf *source.File, f *ast.File) error {
	if sf == nil || f == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, e := range f.Entries {
		sp := e.Span()
		if sp.File != sf.ID {
			return fmt.Errorf("entry %d: file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Empty() || sp.End > lenContent {
			return fmt.Errorf("entry %d: bad span %v", i, sp)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("entry %d: span %v overlaps previous entry", i, sp)
		}
		prevEnd = sp.End
	}
	return nil
}
