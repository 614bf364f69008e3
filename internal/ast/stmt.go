package ast

import (
	"rlc/internal/source"
	"rlc/internal/token"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtBlock
	StmtIf
	StmtLoop
	StmtVariable
	StmtReturn
	StmtSwitch
	StmtCase
	StmtBreak
	StmtContinue
	StmtTry
	StmtThrow
)

// Stmt is the closed set of statement nodes.
type Stmt interface {
	Node
	Kind() StmtKind
	stmtNode()
}

// Variable is shared by global, member and local variable declarations.
// Type is nil for "name ::= expr".
type Variable struct {
	Name    token.Token
	Type    *TypeName
	Init    Expr
	Args    []Expr // "name: T(args)"
	HasArgs bool
	Sp      source.Span
}

// Condition is the head of IF/WHILE/FOR: a variable declaration or an expression.
type Condition struct {
	Var  *Variable
	Expr Expr
}

func (c *Condition) Span() source.Span {
	if c.Var != nil {
		return c.Var.Sp
	}
	return c.Expr.Span()
}

type ExprStmt struct {
	X  Expr
	Sp source.Span
}

type BlockStmt struct {
	Stmts []Stmt
	Sp    source.Span
}

type IfStmt struct {
	Cond *Condition
	Then Stmt
	Else Stmt // may be nil
	Sp   source.Span
}

type LoopKind uint8

const (
	LoopWhile LoopKind = iota
	LoopDoWhile
	LoopFor
)

// LoopStmt covers WHILE, DO-WHILE and FOR. Init and Step are FOR only; any of
// Init, Cond, Step may be nil in a FOR.
type LoopStmt struct {
	Loop LoopKind
	Init *Condition
	Cond *Condition
	Step Expr
	Body Stmt
	Sp   source.Span
}

type VariableStmt struct {
	Var *Variable
	Sp  source.Span
}

type ReturnStmt struct {
	Value Expr // may be nil
	Sp    source.Span
}

type SwitchStmt struct {
	Value Expr
	Cases []*CaseStmt
	Sp    source.Span
}

// CaseStmt is one CASE or DEFAULT label together with the statements it guards.
type CaseStmt struct {
	Default bool
	Values  []Expr
	Body    []Stmt
	Sp      source.Span
}

type BreakStmt struct{ Sp source.Span }

type ContinueStmt struct{ Sp source.Span }

// CatchClause is "CATCH(VOID)" or "CATCH(name: Type)".
type CatchClause struct {
	Void bool
	Name token.Token
	Type *TypeName
	Body Stmt
	Sp   source.Span
}

type TryStmt struct {
	Body    Stmt
	Catches []*CatchClause
	Finally Stmt // may be nil
	Sp      source.Span
}

type ThrowStmt struct {
	Value Expr // nil rethrows
	Sp    source.Span
}

func (v *Variable) Span() source.Span     { return v.Sp }
func (s *ExprStmt) Span() source.Span     { return s.Sp }
func (s *BlockStmt) Span() source.Span    { return s.Sp }
func (s *IfStmt) Span() source.Span       { return s.Sp }
func (s *LoopStmt) Span() source.Span     { return s.Sp }
func (s *VariableStmt) Span() source.Span { return s.Sp }
func (s *ReturnStmt) Span() source.Span   { return s.Sp }
func (s *SwitchStmt) Span() source.Span   { return s.Sp }
func (s *CaseStmt) Span() source.Span     { return s.Sp }
func (s *BreakStmt) Span() source.Span    { return s.Sp }
func (s *ContinueStmt) Span() source.Span { return s.Sp }
func (s *TryStmt) Span() source.Span      { return s.Sp }
func (s *ThrowStmt) Span() source.Span    { return s.Sp }

func (*ExprStmt) Kind() StmtKind     { return StmtExpr }
func (*BlockStmt) Kind() StmtKind    { return StmtBlock }
func (*IfStmt) Kind() StmtKind       { return StmtIf }
func (*LoopStmt) Kind() StmtKind     { return StmtLoop }
func (*VariableStmt) Kind() StmtKind { return StmtVariable }
func (*ReturnStmt) Kind() StmtKind   { return StmtReturn }
func (*SwitchStmt) Kind() StmtKind   { return StmtSwitch }
func (*CaseStmt) Kind() StmtKind     { return StmtCase }
func (*BreakStmt) Kind() StmtKind    { return StmtBreak }
func (*ContinueStmt) Kind() StmtKind { return StmtContinue }
func (*TryStmt) Kind() StmtKind      { return StmtTry }
func (*ThrowStmt) Kind() StmtKind    { return StmtThrow }

func (*ExprStmt) stmtNode()     {}
func (*BlockStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}
func (*LoopStmt) stmtNode()     {}
func (*VariableStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*SwitchStmt) stmtNode()   {}
func (*CaseStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*TryStmt) stmtNode()      {}
func (*ThrowStmt) stmtNode()    {}

func (c *CatchClause) Span() source.Span { return c.Sp }
