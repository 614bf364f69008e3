package scoper

import (
	"rlc/internal/ast"
	"rlc/internal/source"
	"rlc/internal/token"
)

// Populate builds the scope tree of one parsed file and returns its root.
// Every file of a build must be populated before Link.
func (t *Table) Populate(f *ast.File) ScopeID {
	root := t.FileRoot(f.Source)
	t.files = append(t.files, f.Source)
	pp := populator{t: t}
	for _, e := range f.Entries {
		pp.entry(root, e, nil, "")
	}
	return root
}

type populator struct {
	t *Table
}

func (pp *populator) declare(scope ScopeID, kind ItemKind, name string, node ast.Node, member *ast.Member, sp source.Span) ItemID {
	return pp.t.declare(scope, &Item{
		Name:   pp.t.Intern(name),
		Kind:   kind,
		Node:   node,
		Member: member,
		Span:   sp,
	})
}

// open создаёт собственную область элемента и запоминает её за узлом.
func (pp *populator) open(kind ScopeKind, parent ScopeID, id ItemID, node ast.Node) ScopeID {
	own := pp.t.NewScope(kind, parent, Owner{Kind: OwnerItem, Item: id}, node.Span())
	pp.t.Items.Get(id).Own = own
	pp.t.nodeScope[node] = own
	return own
}

func (pp *populator) entry(scope ScopeID, e ast.ScopeEntry, member *ast.Member, prefix string) {
	name := e.Name()
	switch e := e.(type) {
	case *ast.Namespace:
		id := pp.declare(scope, ItemNamespace, name.Text, e, member, name.Span)
		own := pp.open(ScopeNamespace, scope, id, e)
		q := pp.t.Name(pp.t.Items.Get(id).Name)
		if prefix != "" {
			q = prefix + "::" + q
		}
		pp.t.nsByName[q] = append(pp.t.nsByName[q], own)
		pp.t.nsName[own] = q
		for _, sub := range e.Entries {
			pp.entry(own, sub, nil, q)
		}
	case *ast.Class:
		id := pp.declare(scope, ItemClass, name.Text, e, member, name.Span)
		own := pp.open(ScopeType, scope, id, e)
		pp.templates(own, e.Template)
		for _, m := range e.Constructors {
			pp.member(own, m)
		}
		for _, m := range e.Members {
			pp.member(own, m)
		}
		if e.Destructor != nil {
			pp.member(own, e.Destructor)
		}
	case *ast.Union:
		id := pp.declare(scope, ItemUnion, name.Text, e, member, name.Span)
		own := pp.open(ScopeType, scope, id, e)
		pp.templates(own, e.Template)
		for _, m := range e.Members {
			pp.member(own, m)
		}
	case *ast.Rawtype:
		id := pp.declare(scope, ItemRawtype, name.Text, e, member, name.Span)
		own := pp.open(ScopeType, scope, id, e)
		pp.templates(own, e.Template)
		for _, m := range e.Members {
			pp.member(own, m)
		}
	case *ast.Typedef:
		id := pp.declare(scope, ItemTypedef, name.Text, e, member, name.Span)
		if e.Template != nil {
			own := pp.open(ScopeFunction, scope, id, e)
			pp.templates(own, e.Template)
		}
	case *ast.Enum:
		id := pp.declare(scope, ItemEnum, name.Text, e, member, name.Span)
		own := pp.open(ScopeType, scope, id, e)
		for i := range e.Constants {
			c := &e.Constants[i]
			for _, n := range c.Names {
				pp.declare(own, ItemEnumConstant, n.Text, c, nil, n.Span)
			}
		}
	case *ast.Function:
		id := pp.declare(scope, ItemFunction, name.Text, e, member, name.Span)
		own := pp.open(ScopeFunction, scope, id, e)
		pp.templates(own, e.Template)
		pp.arguments(own, e.Args)
		if e.Body != nil {
			pp.block(own, e.Body)
		}
	case *ast.GlobalVariable:
		pp.declare(scope, ItemVariable, name.Text, e, member, name.Span)
	case *ast.ExternalSymbol:
		id := pp.declare(scope, ItemExternal, name.Text, e, member, name.Span)
		if e.Function {
			own := pp.open(ScopeFunction, scope, id, e)
			pp.arguments(own, e.Args)
		}
	}
}

func (pp *populator) member(scope ScopeID, m *ast.Member) {
	switch m.Kind {
	case ast.MemberConstructor:
		c := m.Constructor
		id := pp.declare(scope, ItemConstructor, "CONSTRUCTOR", c, m, c.Keyword.Span)
		own := pp.open(ScopeFunction, scope, id, c)
		pp.templates(own, c.Template)
		pp.arguments(own, c.Args)
		if c.Body != nil {
			pp.block(own, c.Body)
		}
	case ast.MemberDestructor:
		d := m.Destructor
		id := pp.declare(scope, ItemDestructor, "DESTRUCTOR", d, m, d.Keyword.Span)
		own := pp.open(ScopeFunction, scope, id, d)
		pp.block(own, d.Body)
	default:
		pp.entry(scope, m.Entry, m, "")
	}
}

func (pp *populator) templates(scope ScopeID, tpl *ast.TemplateDecl) {
	if tpl == nil {
		return
	}
	for i := range tpl.Params {
		p := &tpl.Params[i]
		pp.declare(scope, ItemTemplateParam, p.Name.Text, p, nil, p.Name.Span)
	}
}

func (pp *populator) arguments(scope ScopeID, args []*ast.Argument) {
	for _, a := range args {
		pp.declare(scope, ItemArgument, a.Name.Text, a, nil, a.Name.Span)
	}
}

// local открывает область для одной локальной переменной: она видна только
// в последующих операторах.
func (pp *populator) local(parent ScopeID, owner ast.Node, name token.Token) ScopeID {
	s := pp.t.NewScope(ScopeStatement, parent, Owner{Kind: OwnerStmt, Stmt: owner}, owner.Span())
	pp.declare(s, ItemLocal, name.Text, owner, nil, name.Span)
	pp.t.nodeScope[owner] = s
	return s
}

func (pp *populator) block(parent ScopeID, b *ast.BlockStmt) {
	s := pp.t.NewScope(ScopeStatement, parent, Owner{Kind: OwnerStmt, Stmt: b}, b.Sp)
	pp.t.nodeScope[b] = s
	pp.stmts(s, b.Stmts)
}

func (pp *populator) stmts(cur ScopeID, list []ast.Stmt) {
	for _, st := range list {
		if vs, ok := st.(*ast.VariableStmt); ok {
			cur = pp.local(cur, vs, vs.Var.Name)
			continue
		}
		pp.stmt(cur, st)
	}
}

func (pp *populator) condition(cur ScopeID, c *ast.Condition) ScopeID {
	if c == nil || c.Var == nil {
		return cur
	}
	return pp.local(cur, c.Var, c.Var.Name)
}

func (pp *populator) stmt(cur ScopeID, st ast.Stmt) {
	switch st := st.(type) {
	case *ast.BlockStmt:
		pp.block(cur, st)
	case *ast.VariableStmt:
		pp.local(cur, st, st.Var.Name)
	case *ast.IfStmt:
		inner := pp.condition(cur, st.Cond)
		pp.stmt(inner, st.Then)
		if st.Else != nil {
			pp.stmt(inner, st.Else)
		}
	case *ast.LoopStmt:
		inner := pp.condition(cur, st.Init)
		inner = pp.condition(inner, st.Cond)
		pp.stmt(inner, st.Body)
	case *ast.SwitchStmt:
		for _, c := range st.Cases {
			s := pp.t.NewScope(ScopeStatement, cur, Owner{Kind: OwnerStmt, Stmt: c}, c.Sp)
			pp.t.nodeScope[c] = s
			pp.stmts(s, c.Body)
		}
	case *ast.TryStmt:
		pp.stmt(cur, st.Body)
		for _, c := range st.Catches {
			inner := cur
			if !c.Void {
				inner = pp.local(cur, c, c.Name)
			}
			pp.stmt(inner, c.Body)
		}
		if st.Finally != nil {
			pp.stmt(cur, st.Finally)
		}
	}
}
