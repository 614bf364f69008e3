package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rlc/internal/ast"
	"rlc/internal/source"
)

// ASTNodeOutput is one node of the AST dump shared by the tree and JSON
// formats.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево разбора файла с отступами ├─ / └─.
// Со fs рядом с узлом печатается span в виде line:col-line:col.
func FormatASTPretty(w io.Writer, f *ast.File, fs *source.FileSet) error {
	if f == nil {
		return fmt.Errorf("file not found")
	}
	root := BuildAST(f)
	if _, err := fmt.Fprintln(w, nodeLabel(&root, fs)); err != nil {
		return err
	}
	return writeChildren(w, root.Children, fs, "")
}

// FormatASTJSON выводит дерево разбора в JSON.
func FormatASTJSON(w io.Writer, f *ast.File) error {
	if f == nil {
		return fmt.Errorf("file not found")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildAST(f))
}

func writeChildren(w io.Writer, children []ASTNodeOutput, fs *source.FileSet, prefix string) error {
	for i := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(&children[i], fs)); err != nil {
			return err
		}
		if err := writeChildren(w, children[i].Children, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n *ASTNodeOutput, fs *source.FileSet) string {
	label := n.Type
	if n.Text != "" {
		label += ": " + n.Text
	}
	if fs != nil {
		label += " (span: " + formatSpan(n.Span, fs) + ")"
	}
	return label
}

// BuildAST converts a parsed file into the dump tree.
func BuildAST(f *ast.File) ASTNodeOutput {
	root := ASTNodeOutput{Type: "File", Text: f.Path, Span: source.Span{File: f.Source}}
	for _, inc := range f.Includes {
		root.Children = append(root.Children, leaf("Include", fmt.Sprintf("%q", inc.Path), inc.Sp))
		root.Span = root.Span.Cover(inc.Sp)
	}
	for _, e := range f.Entries {
		root.Children = append(root.Children, entryNode(e))
		root.Span = root.Span.Cover(e.Span())
	}
	return root
}

func leaf(typ, text string, sp source.Span) ASTNodeOutput {
	return ASTNodeOutput{Type: typ, Text: text, Span: sp}
}

func titled(k ast.EntryKind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func entryNode(e ast.ScopeEntry) ASTNodeOutput {
	n := ASTNodeOutput{Type: titled(e.Kind()), Text: e.Name().Text, Span: e.Span()}
	if tpl := e.Templates(); tpl != nil {
		n.Children = append(n.Children, templateNode(tpl))
	}
	switch e := e.(type) {
	case *ast.Namespace:
		for _, sub := range e.Entries {
			n.Children = append(n.Children, entryNode(sub))
		}
	case *ast.Class:
		if e.Virtual {
			n.Text += " VIRTUAL"
		}
		for _, b := range e.Bases {
			text := b.Visibility.String() + " " + b.Base.String()
			if b.Virtual {
				text = b.Visibility.String() + " VIRTUAL " + b.Base.String()
			}
			n.Children = append(n.Children, leaf("Base", text, b.Sp))
		}
		n.Children = appendMembers(n.Children, e.Constructors)
		n.Children = appendMembers(n.Children, e.Members)
		if e.Destructor != nil {
			n.Children = append(n.Children, memberNode(e.Destructor))
		}
	case *ast.Union:
		n.Children = appendMembers(n.Children, e.Members)
	case *ast.Rawtype:
		n.Children = append(n.Children, leaf("Size", ast.FormatExpr(e.Size), e.Size.Span()))
		n.Children = appendMembers(n.Children, e.Members)
	case *ast.Typedef:
		n.Children = append(n.Children, leaf("Type", e.Type.String(), e.Type.Sp))
	case *ast.Enum:
		for _, c := range e.Constants {
			names := make([]string, len(c.Names))
			for i, t := range c.Names {
				names[i] = t.Text
			}
			n.Children = append(n.Children, leaf("Constant", strings.Join(names, " := "), c.Sp))
		}
	case *ast.Function:
		if e.Inline {
			n.Text = "INLINE " + n.Text
		}
		n.Children = appendArgs(n.Children, e.Args)
		if e.Result != nil {
			n.Children = append(n.Children, leaf("Result", e.Result.String(), e.Result.Sp))
		}
		switch {
		case e.Body != nil:
			n.Children = append(n.Children, stmtNode(e.Body))
		case e.Short != nil:
			n.Children = append(n.Children, leaf("Short", ast.FormatExpr(e.Short), e.Short.Span()))
		}
	case *ast.GlobalVariable:
		n.Text = variableText(e.Var)
	case *ast.ExternalSymbol:
		n.Children = appendArgs(n.Children, e.Args)
		if e.Type != nil {
			label := "Type"
			if e.Function {
				label = "Result"
			}
			n.Children = append(n.Children, leaf(label, e.Type.String(), e.Type.Sp))
		}
	}
	return n
}

func templateNode(tpl *ast.TemplateDecl) ASTNodeOutput {
	n := ASTNodeOutput{Type: "Template", Span: tpl.Sp}
	for _, p := range tpl.Params {
		kind := "TYPE"
		switch p.Kind {
		case ast.TemplateNumber:
			kind = "NUMBER"
		case ast.TemplateValue:
			kind = p.Type.String()
		}
		n.Children = append(n.Children, leaf("Param", p.Name.Text+": "+kind, p.Sp))
	}
	return n
}

func appendArgs(out []ASTNodeOutput, args []*ast.Argument) []ASTNodeOutput {
	for _, a := range args {
		text := a.Name.Text + ": " + a.Type.String()
		if a.Default != nil {
			text += " := " + ast.FormatExpr(a.Default)
		}
		out = append(out, leaf("Arg", text, a.Sp))
	}
	return out
}

func appendMembers(out []ASTNodeOutput, members []*ast.Member) []ASTNodeOutput {
	for _, m := range members {
		out = append(out, memberNode(m))
	}
	return out
}

func memberNode(m *ast.Member) ASTNodeOutput {
	var n ASTNodeOutput
	switch m.Kind {
	case ast.MemberConstructor:
		c := m.Constructor
		n = ASTNodeOutput{Type: "Constructor", Span: c.Sp}
		if c.Template != nil {
			n.Children = append(n.Children, templateNode(c.Template))
		}
		n.Children = appendArgs(n.Children, c.Args)
		for _, init := range c.Inits {
			args := make([]string, len(init.Args))
			for i, a := range init.Args {
				args[i] = ast.FormatExpr(a)
			}
			n.Children = append(n.Children, leaf("Init", init.Name.Text+"("+strings.Join(args, ", ")+")", init.Sp))
		}
		if c.Body != nil {
			n.Children = append(n.Children, stmtNode(c.Body))
		}
	case ast.MemberDestructor:
		n = ASTNodeOutput{Type: "Destructor", Span: m.Destructor.Sp}
		n.Children = append(n.Children, stmtNode(m.Destructor.Body))
	default:
		n = entryNode(m.Entry)
	}

	mods := []string{m.Visibility.String()}
	if m.Static {
		mods = append(mods, "STATIC")
	}
	if m.Attribute != ast.AttrNone {
		mods = append(mods, m.Attribute.String())
	}
	n.Text = strings.TrimSpace(n.Text + " [" + strings.Join(mods, " ") + "]")
	return n
}

func variableText(v *ast.Variable) string {
	var sb strings.Builder
	sb.WriteString(v.Name.Text)
	if v.Type == nil {
		sb.WriteString(" ::= ")
		sb.WriteString(ast.FormatExpr(v.Init))
		return sb.String()
	}
	sb.WriteString(": ")
	sb.WriteString(v.Type.String())
	if v.HasArgs {
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = ast.FormatExpr(a)
		}
		sb.WriteString("(" + strings.Join(args, ", ") + ")")
	}
	if v.Init != nil {
		sb.WriteString(" := ")
		sb.WriteString(ast.FormatExpr(v.Init))
	}
	return sb.String()
}

func conditionNode(label string, c *ast.Condition) ASTNodeOutput {
	if c.Var != nil {
		return leaf(label, variableText(c.Var), c.Span())
	}
	return leaf(label, ast.FormatExpr(c.Expr), c.Span())
}

func optExpr(e ast.Expr) string {
	if e == nil {
		return ""
	}
	return ast.FormatExpr(e)
}

var loopNames = [...]string{ast.LoopWhile: "WHILE", ast.LoopDoWhile: "DO", ast.LoopFor: "FOR"}

func stmtNode(s ast.Stmt) ASTNodeOutput {
	switch s := s.(type) {
	case *ast.ExprStmt:
		return leaf("Expr", ast.FormatExpr(s.X), s.Sp)
	case *ast.BlockStmt:
		n := ASTNodeOutput{Type: "Block", Span: s.Sp}
		for _, st := range s.Stmts {
			n.Children = append(n.Children, stmtNode(st))
		}
		return n
	case *ast.IfStmt:
		n := ASTNodeOutput{Type: "If", Span: s.Sp}
		n.Children = append(n.Children, conditionNode("Cond", s.Cond), stmtNode(s.Then))
		if s.Else != nil {
			n.Children = append(n.Children, ASTNodeOutput{Type: "Else", Span: s.Else.Span(), Children: []ASTNodeOutput{stmtNode(s.Else)}})
		}
		return n
	case *ast.LoopStmt:
		n := ASTNodeOutput{Type: "Loop", Text: loopNames[s.Loop], Span: s.Sp}
		if s.Init != nil {
			n.Children = append(n.Children, conditionNode("Init", s.Init))
		}
		if s.Cond != nil {
			n.Children = append(n.Children, conditionNode("Cond", s.Cond))
		}
		if s.Step != nil {
			n.Children = append(n.Children, leaf("Step", ast.FormatExpr(s.Step), s.Step.Span()))
		}
		n.Children = append(n.Children, stmtNode(s.Body))
		return n
	case *ast.VariableStmt:
		return leaf("Variable", variableText(s.Var), s.Sp)
	case *ast.ReturnStmt:
		return leaf("Return", optExpr(s.Value), s.Sp)
	case *ast.ThrowStmt:
		return leaf("Throw", optExpr(s.Value), s.Sp)
	case *ast.BreakStmt:
		return leaf("Break", "", s.Sp)
	case *ast.ContinueStmt:
		return leaf("Continue", "", s.Sp)
	case *ast.SwitchStmt:
		n := ASTNodeOutput{Type: "Switch", Text: ast.FormatExpr(s.Value), Span: s.Sp}
		for _, c := range s.Cases {
			n.Children = append(n.Children, stmtNode(c))
		}
		return n
	case *ast.CaseStmt:
		text := "DEFAULT"
		if !s.Default {
			vals := make([]string, len(s.Values))
			for i, v := range s.Values {
				vals[i] = ast.FormatExpr(v)
			}
			text = strings.Join(vals, ", ")
		}
		n := ASTNodeOutput{Type: "Case", Text: text, Span: s.Sp}
		for _, st := range s.Body {
			n.Children = append(n.Children, stmtNode(st))
		}
		return n
	case *ast.TryStmt:
		n := ASTNodeOutput{Type: "Try", Span: s.Sp}
		n.Children = append(n.Children, stmtNode(s.Body))
		for _, c := range s.Catches {
			text := "VOID"
			if !c.Void {
				text = c.Name.Text + ": " + c.Type.String()
			}
			n.Children = append(n.Children, ASTNodeOutput{Type: "Catch", Text: text, Span: c.Sp, Children: []ASTNodeOutput{stmtNode(c.Body)}})
		}
		if s.Finally != nil {
			n.Children = append(n.Children, ASTNodeOutput{Type: "Finally", Span: s.Finally.Span(), Children: []ASTNodeOutput{stmtNode(s.Finally)}})
		}
		return n
	}
	return leaf("Stmt", "?", s.Span())
}
