package scoper

// builtinNames returns the built-in type names visible from every file.
func builtinNames() []string {
	return []string{
		"BOOL", "CHAR", "INT", "UINT",
		"S1", "S2", "S4", "S8",
		"U1", "U2", "U4", "U8",
		"SM", "UM",
		"FLOAT", "DOUBLE",
	}
}

// installPrelude fills the prelude scope with builtins plus custom names.
func (t *Table) installPrelude(custom []string) {
	names := builtinNames()
	names = append(names, custom...)
	for _, n := range names {
		t.declare(t.prelude, &Item{Name: t.Intern(n), Kind: ItemBuiltin})
	}
}
