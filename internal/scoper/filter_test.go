package scoper_test

import (
	"testing"

	"rlc/internal/ast"
	"rlc/internal/scoper"
	"rlc/internal/source"
)

func TestFilterShadowing(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil)
	root := tb.FileRoot(1)
	inner := tb.NewScope(scoper.ScopeStatement, root, scoper.Owner{}, source.Span{File: 1})
	x := tb.Intern("x")
	outer := tb.Declare(root, scoper.Item{Name: x, Kind: scoper.ItemVariable})
	local := tb.Declare(inner, scoper.Item{Name: x, Kind: scoper.ItemLocal})

	var all []scoper.ItemID
	if !tb.Filter(inner, x, scoper.CollectAll(&all), true, true) {
		t.Fatal("x not found")
	}
	if len(all) != 2 || all[0] != local || all[1] != outer {
		t.Fatalf("collect = %v, want [%d %d]", all, local, outer)
	}

	visits := 0
	var first scoper.ItemID
	tb.Filter(inner, x, func(id scoper.ItemID) bool {
		visits++
		first = id
		return false
	}, true, true)
	if visits != 1 || first != local {
		t.Fatalf("aborting callback: %d visits, first %d", visits, first)
	}

	all = nil
	tb.Filter(inner, tb.Intern("y"), scoper.CollectAll(&all), true, true)
	if len(all) != 0 {
		t.Fatalf("unexpected matches for y: %v", all)
	}

	if err := tb.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestFilterWithoutParents(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil)
	root := tb.FileRoot(1)
	inner := tb.NewScope(scoper.ScopeStatement, root, scoper.Owner{}, source.Span{File: 1})
	x := tb.Intern("x")
	tb.Declare(root, scoper.Item{Name: x, Kind: scoper.ItemVariable})

	var found scoper.ItemID
	if tb.Filter(inner, x, scoper.FirstMatch(&found), false, true) {
		t.Fatalf("found %d without parents", found)
	}
	if !tb.Filter(inner, tb.Intern("INT"), scoper.FirstMatch(&found), true, false) {
		t.Fatal("builtin INT not visible through parents")
	}
	if tb.Items.Get(found).Kind != scoper.ItemBuiltin {
		t.Fatalf("INT resolved to %s", tb.Items.Get(found).Kind)
	}
	if tb.Filter(root, tb.Intern("INT"), scoper.FirstMatch(&found), false, true) {
		t.Fatal("builtin visible without parent lookup")
	}
}

func TestFilterMutualSiblingsVisitedOnce(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil)
	roots := []scoper.ScopeID{tb.FileRoot(1), tb.FileRoot(2), tb.FileRoot(3)}
	n := tb.Intern("n")
	for _, r := range roots {
		tb.Declare(r, scoper.Item{Name: n, Kind: scoper.ItemVariable})
	}
	for _, a := range roots {
		for _, b := range roots {
			tb.AddSibling(a, b)
		}
	}
	tb.AddSibling(roots[0], roots[1]) // повтор игнорируется
	if got := len(tb.Scopes.Get(roots[0]).Siblings); got != 2 {
		t.Fatalf("siblings of first root = %d, want 2", got)
	}

	for _, start := range roots {
		var all []scoper.ItemID
		tb.Filter(start, n, scoper.CollectAll(&all), true, true)
		if len(all) != 3 {
			t.Fatalf("from %d: %d matches, want 3", start, len(all))
		}
		seen := map[scoper.ItemID]bool{}
		for _, id := range all {
			if seen[id] {
				t.Fatalf("from %d: item %d visited twice", start, id)
			}
			seen[id] = true
		}
	}
	if err := tb.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

// Фрагменты, связанные Link: каждый соседний фрагмент просматривается
// ровно один раз, а родители соседей (корни файлов) не просматриваются.
func TestFilterLinkedFragmentsFanOut(t *testing.T) {
	user := "INCLUDE \"f1.rl\"\n::N { f() INT; }\n::N { f() INT; }\n"
	lib := "::N { f() INT; }\nf() INT;\n"
	b := newBuild(t, user, lib)
	b.link(map[int][]int{0: {1}})
	tb := b.table

	var frags []scoper.ScopeID
	for _, f := range b.files {
		for _, e := range f.Entries {
			if ns, ok := e.(*ast.Namespace); ok {
				id, ok := tb.ScopeOf(ns)
				if !ok {
					t.Fatal("namespace without scope")
				}
				frags = append(frags, id)
			}
		}
	}
	if len(frags) != 3 {
		t.Fatalf("fragments = %d, want 3", len(frags))
	}
	if got := len(tb.Scopes.Get(frags[0]).Siblings); got != 2 {
		t.Fatalf("siblings of first fragment = %d, want 2", got)
	}

	name := tb.Intern("f")
	libRoot := tb.FileRoot(b.files[1].Source)
	for _, start := range frags[:2] {
		var all []scoper.ItemID
		tb.Filter(start, name, scoper.CollectAll(&all), false, true)
		if len(all) != 3 {
			t.Fatalf("from %d: %d matches, want 3", start, len(all))
		}
		seen := map[scoper.ScopeID]int{}
		for _, id := range all {
			item := tb.Items.Get(id)
			if item.Scope == libRoot {
				t.Fatalf("from %d: parent of a sibling was searched", start)
			}
			seen[item.Scope]++
		}
		for _, fr := range frags {
			if seen[fr] != 1 {
				t.Errorf("from %d: fragment %d visited %d times", start, fr, seen[fr])
			}
		}
	}

	// фрагмент из f1 не видит f0: f1 его не включает
	var fromLib []scoper.ItemID
	tb.Filter(frags[2], name, scoper.CollectAll(&fromLib), false, true)
	if len(fromLib) != 1 {
		t.Fatalf("from lib fragment: %d matches, want 1", len(fromLib))
	}
}

func TestFilterParentSiblings(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil)
	p := tb.FileRoot(1)
	q := tb.FileRoot(2)
	r := tb.FileRoot(3)
	child := tb.NewScope(scoper.ScopeStatement, p, scoper.Owner{}, source.Span{File: 1})
	y := tb.Intern("y")
	z := tb.Intern("z")
	tb.Declare(q, scoper.Item{Name: y, Kind: scoper.ItemVariable})
	tb.Declare(r, scoper.Item{Name: z, Kind: scoper.ItemVariable})
	tb.AddSibling(p, q)
	tb.AddSibling(q, r)

	var found scoper.ItemID
	if !tb.Filter(child, y, scoper.FirstMatch(&found), true, true) {
		t.Fatal("y in the parent's sibling not found")
	}
	if tb.Filter(child, y, scoper.FirstMatch(&found), true, false) {
		t.Fatal("y found with siblings disabled")
	}
	if tb.Filter(child, z, scoper.FirstMatch(&found), true, true) {
		t.Fatal("sibling of a sibling must not be searched")
	}
}

func TestInternNormalizesNFC(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil)
	if tb.Intern("caf\u00e9") != tb.Intern("cafe\u0301") {
		t.Fatal("composed and decomposed names differ")
	}
}

func TestCustomBuiltins(t *testing.T) {
	tb := scoper.NewTable(scoper.Hints{}, nil, "STRING")
	var found scoper.ItemID
	if !tb.Filter(tb.FileRoot(1), tb.Intern("STRING"), scoper.FirstMatch(&found), true, true) {
		t.Fatal("custom builtin not installed")
	}
}
