package scoper

import (
	"rlc/internal/ast"
	"rlc/internal/source"
)

// ItemKind classifies declared items.
type ItemKind uint8

const (
	ItemInvalid ItemKind = iota
	ItemBuiltin
	ItemNamespace
	ItemClass
	ItemUnion
	ItemRawtype
	ItemTypedef
	ItemEnum
	ItemEnumConstant
	ItemFunction
	ItemVariable
	ItemExternal
	ItemTemplateParam
	ItemArgument
	ItemConstructor
	ItemDestructor
	ItemLocal
)

var itemKindNames = [...]string{
	ItemInvalid:       "invalid",
	ItemBuiltin:       "builtin",
	ItemNamespace:     "namespace",
	ItemClass:         "class",
	ItemUnion:         "union",
	ItemRawtype:       "rawtype",
	ItemTypedef:       "typedef",
	ItemEnum:          "enum",
	ItemEnumConstant:  "enum constant",
	ItemFunction:      "function",
	ItemVariable:      "variable",
	ItemExternal:      "external",
	ItemTemplateParam: "template parameter",
	ItemArgument:      "argument",
	ItemConstructor:   "constructor",
	ItemDestructor:    "destructor",
	ItemLocal:         "local variable",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "invalid"
}

// Item is one named entry of a scope. It references, not owns, the parsed
// node it was declared by.
type Item struct {
	Name   source.StringID
	Kind   ItemKind
	Node   ast.Node    // nil for builtins
	Member *ast.Member // set for class, union and rawtype members
	Scope  ScopeID     // defining scope
	Own    ScopeID     // scope the item introduces, NoScopeID if none
	File   source.FileID
	Span   source.Span
}
