package ast

import (
	"rlc/internal/source"
	"rlc/internal/token"
)

// Node is implemented by every parsed node.
type Node interface {
	Span() source.Span
}

// File is the parse result of one source file.
type File struct {
	Source   source.FileID
	Path     string
	Includes []*Include
	Entries  []ScopeEntry
}

// Include is an INCLUDE "path" directive.
type Include struct {
	Tok  token.Token // string literal
	Path string      // unquoted
	Sp   source.Span
}

func (i *Include) Span() source.Span { return i.Sp }

// Visibility of a class member or base.
type Visibility uint8

const (
	VisPublic Visibility = iota
	VisProtected
	VisPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisProtected:
		return "protected"
	case VisPrivate:
		return "private"
	default:
		return "public"
	}
}
