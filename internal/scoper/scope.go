package scoper

import (
	"rlc/internal/ast"
	"rlc/internal/source"
)

// ScopeKind enumerates scope categories.
type ScopeKind uint8

const (
	ScopeInvalid   ScopeKind = iota
	ScopePrelude             // builtin names, parent of every file root
	ScopeFile                // root scope of a parsed file
	ScopeNamespace           // body of one namespace fragment
	ScopeType                // class, union, rawtype or enum body
	ScopeFunction            // template parameters and arguments
	ScopeStatement           // block, variable, condition or catch scope
)

func (k ScopeKind) String() string {
	switch k {
	case ScopePrelude:
		return "prelude"
	case ScopeFile:
		return "file"
	case ScopeNamespace:
		return "namespace"
	case ScopeType:
		return "type"
	case ScopeFunction:
		return "function"
	case ScopeStatement:
		return "statement"
	default:
		return "invalid"
	}
}

// OwnerKind distinguishes what owns a scope.
type OwnerKind uint8

const (
	OwnerNone OwnerKind = iota // prelude and file roots
	OwnerItem
	OwnerStmt
)

// Owner references the item or statement a scope belongs to.
type Owner struct {
	Kind OwnerKind
	Item ItemID
	Stmt ast.Node // statement, condition variable or catch clause
}

// Scope models a lexical scope. Parent links form a tree per file ending at
// the prelude; Siblings are same-named fragments searched alongside it.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     Owner
	File      source.FileID
	Span      source.Span
	Siblings  []ScopeID
	Items     []ItemID
	NameIndex map[source.StringID][]ItemID
	Children  []ScopeID
}
