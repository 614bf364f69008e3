package ast

import (
	"rlc/internal/source"
	"rlc/internal/token"
)

type EntryKind uint8

const (
	EntryVariable EntryKind = iota
	EntryFunction
	EntryClass
	EntryUnion
	EntryRawtype
	EntryTypedef
	EntryNamespace
	EntryEnum
	EntryExternal
)

var entryKindNames = [...]string{
	EntryVariable:  "variable",
	EntryFunction:  "function",
	EntryClass:     "class",
	EntryUnion:     "union",
	EntryRawtype:   "rawtype",
	EntryTypedef:   "typedef",
	EntryNamespace: "namespace",
	EntryEnum:      "enum",
	EntryExternal:  "external",
}

func (k EntryKind) String() string {
	if int(k) < len(entryKindNames) {
		return entryKindNames[k]
	}
	return "entry?"
}

// ScopeEntry is the closed set of named declarations.
type ScopeEntry interface {
	Node
	Kind() EntryKind
	Name() token.Token
	Templates() *TemplateDecl // nil when absent
	entryNode()
}

// Decl carries what every declaration has.
type Decl struct {
	NameTok  token.Token
	Template *TemplateDecl
	Sp       source.Span
}

func (d *Decl) Span() source.Span         { return d.Sp }
func (d *Decl) Name() token.Token         { return d.NameTok }
func (d *Decl) Templates() *TemplateDecl  { return d.Template }
func (*Decl) entryNode()                  {}

// GlobalVariable is a variable declared at namespace or class level.
type GlobalVariable struct {
	Decl
	Var *Variable
}

// Argument is "name: Type [:= default]".
type Argument struct {
	Name    token.Token
	Type    *TypeName
	Default Expr
	Sp      source.Span
}

type Function struct {
	Decl
	Inline bool
	Args   []*Argument
	Result *TypeName // nil: no declared result
	Body   *BlockStmt
	Short  Expr // "f() T := expr;"
}

// HasBody reports whether the function is defined, not just declared.
func (f *Function) HasBody() bool { return f.Body != nil || f.Short != nil }

// Inheritance is one base of a class.
type Inheritance struct {
	Visibility Visibility
	Virtual    bool
	Base       *Symbol
	Sp         source.Span
}

type Class struct {
	Decl
	Virtual      bool
	Bases        []Inheritance
	Constructors []*Member
	Members      []*Member
	Destructor   *Member // may be nil
}

type Union struct {
	Decl
	Members []*Member
}

// Rawtype is "TYPE name(size) ..." with optional member functions.
type Rawtype struct {
	Decl
	Size    Expr
	Members []*Member
}

type Typedef struct {
	Decl
	Type *TypeName
}

type Namespace struct {
	Decl
	Entries []ScopeEntry
}

// EnumConstant has a primary name and optional aliases ("A := B := C").
type EnumConstant struct {
	Names []token.Token
	Sp    source.Span
}

type Enum struct {
	Decl
	Constants []EnumConstant
}

// ExternalSymbol is "EXTERN name: T;" or "EXTERN name(args) [T];".
type ExternalSymbol struct {
	Decl
	Function bool
	Type     *TypeName // variable type or function result
	Args     []*Argument
}

func (*GlobalVariable) Kind() EntryKind { return EntryVariable }
func (*Function) Kind() EntryKind       { return EntryFunction }
func (*Class) Kind() EntryKind          { return EntryClass }
func (*Union) Kind() EntryKind          { return EntryUnion }
func (*Rawtype) Kind() EntryKind        { return EntryRawtype }
func (*Typedef) Kind() EntryKind        { return EntryTypedef }
func (*Namespace) Kind() EntryKind      { return EntryNamespace }
func (*Enum) Kind() EntryKind           { return EntryEnum }
func (*ExternalSymbol) Kind() EntryKind { return EntryExternal }

func (a *Argument) Span() source.Span     { return a.Sp }
func (c *EnumConstant) Span() source.Span { return c.Sp }
