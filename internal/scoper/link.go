package scoper

import "rlc/internal/source"

// Link registers sibling scopes after every file of the build is populated.
// includes maps a file to the files it includes directly.
//
// A file root gets the roots of its whole include closure as siblings. A
// namespace fragment gets every other fragment with the same qualified name
// declared in its own file or in that closure, reopenings in the same file
// included.
func (t *Table) Link(includes map[source.FileID][]source.FileID) {
	visible := make(map[source.FileID]map[source.FileID]bool, len(t.files))
	for _, f := range t.files {
		closure := IncludeClosure(f, includes)
		set := map[source.FileID]bool{f: true}
		root := t.fileRoot[f]
		for _, g := range closure {
			set[g] = true
			if r, ok := t.fileRoot[g]; ok {
				t.AddSibling(root, r)
			}
		}
		visible[f] = set
	}
	t.visible = visible

	// обход в порядке арены, чтобы порядок соседей не зависел от map
	for idx := 1; idx <= t.Scopes.Len(); idx++ {
		id := ScopeID(idx) //nolint:gosec // bounded by arena length
		q, ok := t.nsName[id]
		if !ok {
			continue
		}
		set := visible[t.Scopes.Get(id).File]
		for _, other := range t.nsByName[q] {
			if other != id && set[t.Scopes.Get(other).File] {
				t.AddSibling(id, other)
			}
		}
	}
}

// Fragments returns the namespace fragments sharing the qualified name of
// scope that file can see: its own and those of its include closure. scope
// itself comes first. Any other scope is returned alone.
func (t *Table) Fragments(scope ScopeID, file source.FileID) []ScopeID {
	out := []ScopeID{scope}
	q, ok := t.nsName[scope]
	if !ok {
		return out
	}
	set := t.visible[file]
	for _, other := range t.nsByName[q] {
		if other == scope {
			continue
		}
		// до Link видны только фрагменты того же файла
		of := t.Scopes.Get(other).File
		if of == file || set[of] {
			out = append(out, other)
		}
	}
	return out
}

// IncludeClosure returns every file reachable from f through includes, in
// depth-first order, without f itself.
func IncludeClosure(f source.FileID, includes map[source.FileID][]source.FileID) []source.FileID {
	seen := map[source.FileID]bool{f: true}
	var out []source.FileID
	var walk func(source.FileID)
	walk = func(cur source.FileID) {
		for _, next := range includes[cur] {
			if seen[next] {
				continue
			}
			seen[next] = true
			out = append(out, next)
			walk(next)
		}
	}
	walk(f)
	return out
}
