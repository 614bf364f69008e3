package ast

import (
	"strings"

	"rlc/internal/source"
	"rlc/internal/token"
)

// SegmentKind distinguishes plain names from constructor/destructor references.
type SegmentKind uint8

const (
	SegIdentifier SegmentKind = iota
	SegConstructor
	SegDestructor
)

// TemplateArg is either a type or a '#'-prefixed constant expression.
type TemplateArg struct {
	Type  *TypeName
	Value Expr
}

func (a TemplateArg) IsValue() bool { return a.Value != nil }

func (a TemplateArg) Span() source.Span {
	if a.Value != nil {
		return a.Value.Span()
	}
	return a.Type.Sp
}

// SymbolSegment is one "::"-separated part of a symbol.
type SymbolSegment struct {
	Kind      SegmentKind
	Name      token.Token
	Templates []TemplateArg
	Sp        source.Span
}

// Text returns the lookup key of the segment.
func (s *SymbolSegment) Text() string {
	switch s.Kind {
	case SegConstructor:
		return "CONSTRUCTOR"
	case SegDestructor:
		return "DESTRUCTOR"
	}
	return s.Name.Text
}

// Symbol is a possibly rooted, possibly templated path. Invariant: at least
// one segment; destructor segments never carry template arguments.
type Symbol struct {
	Root     bool
	Segments []SymbolSegment
	Sp       source.Span
}

func (s *Symbol) Span() source.Span { return s.Sp }

// String renders the symbol in source syntax, e.g. "::std::Vector{INT}".
func (s *Symbol) String() string {
	var sb strings.Builder
	if s.Root {
		sb.WriteString("::")
	}
	for i := range s.Segments {
		if i > 0 {
			sb.WriteString("::")
		}
		seg := &s.Segments[i]
		sb.WriteString(seg.Text())
		if len(seg.Templates) > 0 {
			sb.WriteByte('{')
			for j, a := range seg.Templates {
				if j > 0 {
					sb.WriteString(", ")
				}
				if a.IsValue() {
					sb.WriteString("#")
					sb.WriteString(FormatExpr(a.Value))
				} else {
					sb.WriteString(a.Type.String())
				}
			}
			sb.WriteByte('}')
		}
	}
	return sb.String()
}

// TemplateParamKind tells what a template parameter accepts.
type TemplateParamKind uint8

const (
	TemplateType   TemplateParamKind = iota // name: TYPE
	TemplateNumber                          // name: NUMBER
	TemplateValue                           // name: SomeType
)

type TemplateParam struct {
	Name token.Token
	Kind TemplateParamKind
	Type *TypeName // TemplateValue only
	Sp   source.Span
}

// TemplateDecl is "[ name: kind, ... ]" before a declaration. "[]" is allowed.
type TemplateDecl struct {
	Params []TemplateParam
	Sp     source.Span
}

func (p *TemplateParam) Span() source.Span { return p.Sp }
