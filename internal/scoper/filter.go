package scoper

import "rlc/internal/source"

// VisitFunc receives each item matching a Filter name. Returning false
// aborts the whole search.
type VisitFunc func(id ItemID) (more bool)

// Filter looks name up in scope and invokes visit for every match.
//
// With checkSiblings each sibling is searched too, but without its own
// siblings or parents. With checkParents the search continues in the parent
// chain, and each parent fans out into its siblings when checkSiblings is
// set. Filter reports whether anything matched.
func (t *Table) Filter(scope ScopeID, name source.StringID, visit VisitFunc, checkParents, checkSiblings bool) bool {
	aborted := false
	return t.filter(scope, name, visit, checkParents, checkSiblings, &aborted)
}

func (t *Table) filter(scope ScopeID, name source.StringID, visit VisitFunc, parents, siblings bool, aborted *bool) bool {
	s := t.Scopes.Get(scope)
	if s == nil {
		return false
	}
	found := false
	for _, id := range s.NameIndex[name] {
		found = true
		if !visit(id) {
			*aborted = true
			return true
		}
	}
	if siblings {
		for _, sib := range s.Siblings {
			// родственники соседей не просматриваются
			if t.filter(sib, name, visit, false, false, aborted) {
				found = true
			}
			if *aborted {
				return true
			}
		}
	}
	if parents && s.Parent.IsValid() {
		if t.filter(s.Parent, name, visit, true, siblings, aborted) {
			found = true
		}
	}
	return found
}

// FirstMatch returns a VisitFunc that stores the first match in out and
// stops the search.
func FirstMatch(out *ItemID) VisitFunc {
	return func(id ItemID) bool {
		*out = id
		return false
	}
}

// CollectAll returns a VisitFunc that appends every match to out.
func CollectAll(out *[]ItemID) VisitFunc {
	return func(id ItemID) bool {
		*out = append(*out, id)
		return true
	}
}
