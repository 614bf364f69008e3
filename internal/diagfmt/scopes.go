package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"rlc/internal/scoper"
	"rlc/internal/source"
)

// FormatScopesPretty печатает дерево областей одного файла: у каждой области
// её вид, соседи и объявленные элементы.
func FormatScopesPretty(w io.Writer, t *scoper.Table, file source.FileID, fs *source.FileSet) error {
	root := BuildScopes(t, file)
	if _, err := fmt.Fprintln(w, nodeLabel(&root, nil)); err != nil {
		return err
	}
	return writeChildren(w, root.Children, fs, "")
}

// BuildScopes converts the scope tree of a file into the dump tree.
func BuildScopes(t *scoper.Table, file source.FileID) ASTNodeOutput {
	return scopeNode(t, t.FileRoot(file))
}

func scopeNode(t *scoper.Table, id scoper.ScopeID) ASTNodeOutput {
	s := t.Scopes.Get(id)
	text := fmt.Sprintf("#%d %s", id, s.Kind)
	if len(s.Siblings) > 0 {
		sibs := make([]string, len(s.Siblings))
		for i, sib := range s.Siblings {
			sibs[i] = fmt.Sprintf("#%d", sib)
		}
		text += " siblings " + strings.Join(sibs, " ")
	}
	n := ASTNodeOutput{Type: "Scope", Text: text, Span: s.Span}
	for _, itemID := range s.Items {
		item := t.Items.Get(itemID)
		n.Children = append(n.Children, leaf("Item", item.Kind.String()+" "+t.Name(item.Name), item.Span))
	}
	for _, child := range s.Children {
		n.Children = append(n.Children, scopeNode(t, child))
	}
	return n
}
