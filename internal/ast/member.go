package ast

import (
	"rlc/internal/source"
	"rlc/internal/token"
)

type MemberKind uint8

const (
	MemberEntry MemberKind = iota // function, variable, nested type, typedef, enum
	MemberConstructor
	MemberDestructor
)

// Attribute is the function prefix of a member function.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrAbstract
	AttrVirtual
	AttrOverride
	AttrFinal
)

func (a Attribute) String() string {
	switch a {
	case AttrAbstract:
		return "ABSTRACT"
	case AttrVirtual:
		return "VIRTUAL"
	case AttrOverride:
		return "OVERRIDE"
	case AttrFinal:
		return "FINAL"
	}
	return ""
}

// Member is a class, union or rawtype member. Exactly one of Entry,
// Constructor, Destructor is set, matching Kind.
type Member struct {
	Kind        MemberKind
	Visibility  Visibility
	Static      bool
	Attribute   Attribute
	Entry       ScopeEntry
	Constructor *Constructor
	Destructor  *Destructor
	Sp          source.Span
}

func (m *Member) Span() source.Span { return m.Sp }

// Initializer is one "member(args)" in a constructor's initialiser list.
type Initializer struct {
	Name token.Token
	Args []Expr
	Sp   source.Span
}

type Constructor struct {
	Keyword  token.Token
	Template *TemplateDecl
	Args     []*Argument
	Inits    []Initializer
	Body     *BlockStmt // nil for a declaration
	Sp       source.Span
}

type Destructor struct {
	Keyword token.Token
	Body    *BlockStmt
	Sp      source.Span
}

func (c *Constructor) Span() source.Span { return c.Sp }
func (d *Destructor) Span() source.Span  { return d.Sp }
