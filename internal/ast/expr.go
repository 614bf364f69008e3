package ast

import (
	"strings"

	"rlc/internal/source"
	"rlc/internal/token"
)

// ExprKind tags expression variants. The order is the parser's trial order.
type ExprKind uint8

const (
	ExprOperator ExprKind = iota
	ExprNumber
	ExprString
	ExprSymbol
	ExprSymbolChild
	ExprThis
	ExprCast
	ExprSizeof

	exprKindCount
)

var exprKindNames = [exprKindCount]string{
	"operator", "number", "string", "symbol", "symbol-child", "this", "cast", "sizeof",
}

func (k ExprKind) String() string {
	if k < exprKindCount {
		return exprKindNames[k]
	}
	return "expr?"
}

// ExprKinds is a set of permitted expression kinds.
type ExprKinds uint16

const ExprAll ExprKinds = 1<<exprKindCount - 1

// KindsOf builds a set from kinds.
func KindsOf(kinds ...ExprKind) ExprKinds {
	var s ExprKinds
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s ExprKinds) Has(k ExprKind) bool { return s&(1<<k) != 0 }

func (s ExprKinds) Without(k ExprKind) ExprKinds { return s &^ (1 << k) }

// Expr is the closed set of expression nodes.
type Expr interface {
	Node
	Kind() ExprKind
	exprNode()
}

// SymbolExpr references a declaration by path.
type SymbolExpr struct {
	Symbol *Symbol
}

// SymbolChild is the name after '.' or '->' (or a leading '.').
type SymbolChild struct {
	Name      token.Token
	Templates []TemplateArg
	Sp        source.Span
}

// SymbolChildExpr is member access. Object is nil for the implicit-this form ".name".
type SymbolChildExpr struct {
	Object Expr
	Arrow  bool
	Child  SymbolChild
	Sp     source.Span
}

type NumberExpr struct {
	Tok token.Token // Number or Float
}

type StringExpr struct {
	Tok token.Token // String or Char
}

// OperatorExpr covers unary, binary, ternary, call and subscript forms.
// Operands are in source order; for OpCall the callee comes first.
type OperatorExpr struct {
	Op       Operator
	Operands []Expr
	Sp       source.Span
}

type ThisExpr struct {
	Sp source.Span
}

// CastExpr is "<Type>(Value)".
type CastExpr struct {
	Type  *TypeName
	Value Expr
	Sp    source.Span
}

// SizeofExpr is "SIZEOF(Type)" or "SIZEOF(#Value)"; exactly one is set.
type SizeofExpr struct {
	Type  *TypeName
	Value Expr
	Sp    source.Span
}

func (e *SymbolExpr) Span() source.Span      { return e.Symbol.Sp }
func (e *SymbolChildExpr) Span() source.Span { return e.Sp }
func (e *NumberExpr) Span() source.Span      { return e.Tok.Span }
func (e *StringExpr) Span() source.Span      { return e.Tok.Span }
func (e *OperatorExpr) Span() source.Span    { return e.Sp }
func (e *ThisExpr) Span() source.Span        { return e.Sp }
func (e *CastExpr) Span() source.Span        { return e.Sp }
func (e *SizeofExpr) Span() source.Span      { return e.Sp }

func (*SymbolExpr) Kind() ExprKind      { return ExprSymbol }
func (*SymbolChildExpr) Kind() ExprKind { return ExprSymbolChild }
func (*NumberExpr) Kind() ExprKind      { return ExprNumber }
func (*StringExpr) Kind() ExprKind      { return ExprString }
func (*OperatorExpr) Kind() ExprKind    { return ExprOperator }
func (*ThisExpr) Kind() ExprKind        { return ExprThis }
func (*CastExpr) Kind() ExprKind        { return ExprCast }
func (*SizeofExpr) Kind() ExprKind      { return ExprSizeof }

func (*SymbolExpr) exprNode()      {}
func (*SymbolChildExpr) exprNode() {}
func (*NumberExpr) exprNode()      {}
func (*StringExpr) exprNode()      {}
func (*OperatorExpr) exprNode()    {}
func (*ThisExpr) exprNode()        {}
func (*CastExpr) exprNode()        {}
func (*SizeofExpr) exprNode()      {}

// FormatExpr renders e fully parenthesised, so evaluation order is explicit:
// "a + b * c" becomes "(a + (b * c))".
func FormatExpr(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *SymbolExpr:
		sb.WriteString(e.Symbol.String())
	case *SymbolChildExpr:
		if e.Object != nil {
			writeExpr(sb, e.Object)
		}
		if e.Arrow {
			sb.WriteString("->")
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(e.Child.Name.Text)
	case *NumberExpr:
		sb.WriteString(e.Tok.Text)
	case *StringExpr:
		sb.WriteString(e.Tok.Text)
	case *ThisExpr:
		sb.WriteString("THIS")
	case *CastExpr:
		sb.WriteString("<" + e.Type.String() + ">(")
		writeExpr(sb, e.Value)
		sb.WriteByte(')')
	case *SizeofExpr:
		sb.WriteString("SIZEOF(")
		if e.Value != nil {
			sb.WriteByte('#')
			writeExpr(sb, e.Value)
		} else {
			sb.WriteString(e.Type.String())
		}
		sb.WriteByte(')')
	case *OperatorExpr:
		writeOperator(sb, e)
	}
}

func writeOperator(sb *strings.Builder, e *OperatorExpr) {
	switch e.Op.Fixity() {
	case Prefix:
		sb.WriteString("(" + e.Op.String())
		writeExpr(sb, e.Operands[0])
		sb.WriteByte(')')
	case Postfix:
		sb.WriteByte('(')
		writeExpr(sb, e.Operands[0])
		sb.WriteString(e.Op.String() + ")")
	case Ternary:
		sb.WriteByte('(')
		writeExpr(sb, e.Operands[0])
		sb.WriteString(" ? ")
		writeExpr(sb, e.Operands[1])
		sb.WriteString(" : ")
		writeExpr(sb, e.Operands[2])
		sb.WriteByte(')')
	case Call, Subscript:
		open, closing := "(", ")"
		if e.Op == OpSubscript {
			open, closing = "[", "]"
		}
		writeExpr(sb, e.Operands[0])
		sb.WriteString(open)
		for i, a := range e.Operands[1:] {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, a)
		}
		sb.WriteString(closing)
	default:
		sb.WriteByte('(')
		writeExpr(sb, e.Operands[0])
		sb.WriteString(" " + e.Op.String() + " ")
		writeExpr(sb, e.Operands[1])
		sb.WriteByte(')')
	}
}
