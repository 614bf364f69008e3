package scoper

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"rlc/internal/ast"
	"rlc/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Items uint }

// Table aggregates the scope and item arenas of one build.
type Table struct {
	Scopes  *Scopes
	Items   *Items
	Strings *source.Interner

	prelude   ScopeID
	fileRoot  map[source.FileID]ScopeID
	nodeScope map[ast.Node]ScopeID   // scope opened by a statement-level node
	resolved  map[*ast.Symbol]ItemID // результат Resolve
	nsByName  map[string][]ScopeID   // namespace fragments by qualified name
	nsName    map[ScopeID]string     // qualified name of a namespace scope
	visible   map[source.FileID]map[source.FileID]bool
	files     []source.FileID        // populated files in order
}

// NewTable builds a fresh table. builtins extends the default prelude.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner, builtins ...string) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	itemCap, err := safecast.Conv[uint32](h.Items)
	if err != nil {
		panic(fmt.Errorf("item capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:    NewScopes(scopeCap),
		Items:     NewItems(itemCap),
		Strings:   strings,
		fileRoot:  make(map[source.FileID]ScopeID),
		nodeScope: make(map[ast.Node]ScopeID),
		resolved:  make(map[*ast.Symbol]ItemID),
		nsByName:  make(map[string][]ScopeID),
		nsName:    make(map[ScopeID]string),
	}
	t.prelude = t.Scopes.New(ScopePrelude, NoScopeID, Owner{}, 0, source.Span{})
	t.installPrelude(builtins)
	return t
}

// Intern returns the lookup key of a name. Names are compared in NFC so that
// differently composed identifiers in source match.
func (t *Table) Intern(name string) source.StringID {
	return t.Strings.Intern(norm.NFC.String(name))
}

// Name returns the text of an interned name.
func (t *Table) Name(id source.StringID) string {
	return t.Strings.MustLookup(id)
}

// Prelude returns the scope holding builtin names.
func (t *Table) Prelude() ScopeID { return t.prelude }

// FileRoot returns (and creates if needed) the root scope of a file.
func (t *Table) FileRoot(file source.FileID) ScopeID {
	if scope, ok := t.fileRoot[file]; ok {
		return scope
	}
	scope := t.Scopes.New(ScopeFile, t.prelude, Owner{}, file, source.Span{File: file})
	t.fileRoot[file] = scope
	return scope
}

// NewScope allocates a child scope of parent in the same file.
func (t *Table) NewScope(kind ScopeKind, parent ScopeID, owner Owner, span source.Span) ScopeID {
	var file source.FileID
	if p := t.Scopes.Get(parent); p != nil {
		file = p.File
	}
	return t.Scopes.New(kind, parent, owner, file, span)
}

// Declare adds an item to scope and returns its ID. Names may repeat: lookup
// is not overload-aware and reports every match.
func (t *Table) Declare(scope ScopeID, item Item) ItemID {
	return t.declare(scope, &item)
}

func (t *Table) declare(scope ScopeID, item *Item) ItemID {
	s := t.Scopes.Get(scope)
	if s == nil {
		panic(fmt.Errorf("declare %q: invalid scope %d", t.Name(item.Name), scope))
	}
	item.Scope = scope
	if item.File == 0 {
		item.File = s.File
	}
	id := t.Items.New(item)
	s.Items = append(s.Items, id)
	s.NameIndex[item.Name] = append(s.NameIndex[item.Name], id)
	return id
}

// AddSibling registers other as a sibling of scope. Duplicates and self links
// are ignored.
func (t *Table) AddSibling(scope, other ScopeID) {
	if scope == other {
		return
	}
	s := t.Scopes.Get(scope)
	if s == nil || t.Scopes.Get(other) == nil {
		return
	}
	for _, sib := range s.Siblings {
		if sib == other {
			return
		}
	}
	s.Siblings = append(s.Siblings, other)
}

// ScopeOf returns the scope opened by a block, variable statement, condition
// variable or catch clause during Populate.
func (t *Table) ScopeOf(node ast.Node) (ScopeID, bool) {
	id, ok := t.nodeScope[node]
	return id, ok
}

// Resolved returns the item a symbol resolved to.
func (t *Table) Resolved(sym *ast.Symbol) (ItemID, bool) {
	id, ok := t.resolved[sym]
	return id, ok
}

// ResolvedCount reports how many symbols have been resolved so far.
func (t *Table) ResolvedCount() int { return len(t.resolved) }

// Files lists populated files in population order.
func (t *Table) Files() []source.FileID { return t.files }
