package ast

import (
	"strings"

	"rlc/internal/source"
)

type TypeValue uint8

const (
	TypeVoid TypeValue = iota
	TypeSymbol
	TypeFunction
)

type Indirection uint8

const (
	IndirPlain Indirection = iota
	IndirPointer // *
	IndirNotNull // \
)

// Qualifier is a bit set: CONST/#, VOLATILE/$, DYNAMIC.
type Qualifier uint8

const (
	QualConst Qualifier = 1 << iota
	QualVolatile
	QualDynamic
)

// TypeModifier is one indirection+qualifier pair. Parsing never records a
// pair that is IndirPlain with no qualifier bits.
type TypeModifier struct {
	Indirection Indirection
	Qualifier   Qualifier
}

// FunctionSignature is "((args) : result)". Args is empty for VOID.
type FunctionSignature struct {
	Args   []*TypeName
	Result *TypeName
	Sp     source.Span
}

type TypeName struct {
	Value     TypeValue
	Name      *Symbol            // TypeSymbol
	Function  *FunctionSignature // TypeFunction
	Modifiers []TypeModifier
	Sp        source.Span
}

func (t *TypeName) Span() source.Span { return t.Sp }

func (t *TypeName) String() string {
	var sb strings.Builder
	switch t.Value {
	case TypeVoid:
		sb.WriteString("VOID")
	case TypeSymbol:
		sb.WriteString(t.Name.String())
	case TypeFunction:
		sb.WriteString("((")
		if len(t.Function.Args) == 0 {
			sb.WriteString("VOID")
		}
		for i, a := range t.Function.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(") : ")
		sb.WriteString(t.Function.Result.String())
		sb.WriteString(")")
	}
	for _, m := range t.Modifiers {
		switch m.Indirection {
		case IndirPointer:
			sb.WriteString(" *")
		case IndirNotNull:
			sb.WriteString(" \\")
		}
		if m.Qualifier&QualConst != 0 {
			sb.WriteString(" CONST")
		}
		if m.Qualifier&QualVolatile != 0 {
			sb.WriteString(" VOLATILE")
		}
		if m.Qualifier&QualDynamic != 0 {
			sb.WriteString(" DYNAMIC")
		}
	}
	return sb.String()
}
