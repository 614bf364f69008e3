package lexer

import (
	"rlc/internal/diag"
	"rlc/internal/source"
	"rlc/internal/token"
)

type Options struct {
	// Reporter receives the first lexical error. May be nil.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.failed {
		return
	}
	lx.failed = true
	lx.errTok = token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
