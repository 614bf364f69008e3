package scoper

import (
	"fmt"
	"strings"

	"rlc/internal/ast"
	"rlc/internal/diag"
	"rlc/internal/source"
)

// Resolve binds every symbol reference of a populated file to an item.
// The first unresolved reference is reported through reporter and stops the
// walk; Resolve returns false in that case.
func (t *Table) Resolve(f *ast.File, reporter diag.Reporter) bool {
	r := resolver{t: t, file: f.Source, reporter: reporter}
	root := t.FileRoot(f.Source)
	for _, e := range f.Entries {
		r.entry(root, e)
		if r.errors > 0 {
			return false
		}
	}
	return true
}

type resolver struct {
	t        *Table
	file     source.FileID
	reporter diag.Reporter
	errors   uint
}

func (r *resolver) fail(code diag.Code, sp source.Span, msg string) {
	r.errors++
	if r.errors == 1 && r.reporter != nil {
		r.reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (r *resolver) failed() bool { return r.errors > 0 }

// own возвращает собственную область узла; для узлов без неё остаётся fallback.
func (r *resolver) own(node ast.Node, fallback ScopeID) ScopeID {
	if s, ok := r.t.nodeScope[node]; ok {
		return s
	}
	return fallback
}

func (r *resolver) entry(scope ScopeID, e ast.ScopeEntry) {
	switch e := e.(type) {
	case *ast.Namespace:
		own := r.own(e, scope)
		for _, sub := range e.Entries {
			r.entry(own, sub)
			if r.failed() {
				return
			}
		}
	case *ast.Class:
		own := r.own(e, scope)
		r.templates(own, e.Template)
		for i := range e.Bases {
			if r.failed() {
				return
			}
			r.symbol(own, e.Bases[i].Base)
		}
		r.members(own, e.Constructors)
		r.members(own, e.Members)
		if e.Destructor != nil {
			r.member(own, e.Destructor)
		}
	case *ast.Union:
		own := r.own(e, scope)
		r.templates(own, e.Template)
		r.members(own, e.Members)
	case *ast.Rawtype:
		own := r.own(e, scope)
		r.templates(own, e.Template)
		r.expr(own, e.Size)
		r.members(own, e.Members)
	case *ast.Typedef:
		own := r.own(e, scope)
		r.templates(own, e.Template)
		r.typeName(own, e.Type)
	case *ast.Enum:
		// константы не ссылаются на символы
	case *ast.Function:
		own := r.own(e, scope)
		r.templates(own, e.Template)
		r.arguments(own, e.Args)
		r.typeName(own, e.Result)
		if e.Body != nil {
			r.block(own, e.Body)
		}
		r.expr(own, e.Short)
	case *ast.GlobalVariable:
		r.variable(scope, e.Var)
	case *ast.ExternalSymbol:
		own := r.own(e, scope)
		r.arguments(own, e.Args)
		r.typeName(own, e.Type)
	}
}

func (r *resolver) members(scope ScopeID, list []*ast.Member) {
	for _, m := range list {
		if r.failed() {
			return
		}
		r.member(scope, m)
	}
}

func (r *resolver) member(scope ScopeID, m *ast.Member) {
	switch m.Kind {
	case ast.MemberConstructor:
		c := m.Constructor
		own := r.own(c, scope)
		r.templates(own, c.Template)
		r.arguments(own, c.Args)
		for i := range c.Inits {
			if r.failed() {
				return
			}
			init := &c.Inits[i]
			var found ItemID
			r.t.Filter(own, r.t.Intern(init.Name.Text), FirstMatch(&found), true, true)
			if !found.IsValid() {
				r.fail(diag.SemUnresolvedSymbol, init.Name.Span,
					fmt.Sprintf("unknown member or base '%s' in initializer", init.Name.Text))
				return
			}
			r.exprs(own, init.Args)
		}
		if c.Body != nil {
			r.block(own, c.Body)
		}
	case ast.MemberDestructor:
		r.block(r.own(m.Destructor, scope), m.Destructor.Body)
	default:
		r.entry(scope, m.Entry)
	}
}

func (r *resolver) templates(scope ScopeID, tpl *ast.TemplateDecl) {
	if tpl == nil {
		return
	}
	for i := range tpl.Params {
		r.typeName(scope, tpl.Params[i].Type)
	}
}

func (r *resolver) arguments(scope ScopeID, args []*ast.Argument) {
	for _, a := range args {
		r.typeName(scope, a.Type)
		r.expr(scope, a.Default)
	}
}

// variable разрешает тип и инициализатор во внешней области: сама переменная
// в них ещё не видна.
func (r *resolver) variable(scope ScopeID, v *ast.Variable) {
	if v == nil {
		return
	}
	r.typeName(scope, v.Type)
	r.expr(scope, v.Init)
	r.exprs(scope, v.Args)
}

func (r *resolver) block(parent ScopeID, b *ast.BlockStmt) {
	if b == nil {
		return
	}
	r.stmts(r.own(b, parent), b.Stmts)
}

func (r *resolver) stmts(cur ScopeID, list []ast.Stmt) {
	for _, st := range list {
		if r.failed() {
			return
		}
		if vs, ok := st.(*ast.VariableStmt); ok {
			r.variable(cur, vs.Var)
			cur = r.own(vs, cur)
			continue
		}
		r.stmt(cur, st)
	}
}

func (r *resolver) condition(cur ScopeID, c *ast.Condition) ScopeID {
	if c == nil {
		return cur
	}
	if c.Var != nil {
		r.variable(cur, c.Var)
		return r.own(c.Var, cur)
	}
	r.expr(cur, c.Expr)
	return cur
}

func (r *resolver) stmt(cur ScopeID, st ast.Stmt) {
	if st == nil || r.failed() {
		return
	}
	switch st := st.(type) {
	case *ast.BlockStmt:
		r.block(cur, st)
	case *ast.VariableStmt:
		r.variable(cur, st.Var)
	case *ast.ExprStmt:
		r.expr(cur, st.X)
	case *ast.IfStmt:
		inner := r.condition(cur, st.Cond)
		r.stmt(inner, st.Then)
		r.stmt(inner, st.Else)
	case *ast.LoopStmt:
		inner := r.condition(cur, st.Init)
		inner = r.condition(inner, st.Cond)
		r.expr(inner, st.Step)
		r.stmt(inner, st.Body)
	case *ast.ReturnStmt:
		r.expr(cur, st.Value)
	case *ast.ThrowStmt:
		r.expr(cur, st.Value)
	case *ast.SwitchStmt:
		r.expr(cur, st.Value)
		for _, c := range st.Cases {
			r.exprs(cur, c.Values)
			r.stmts(r.own(c, cur), c.Body)
		}
	case *ast.TryStmt:
		r.stmt(cur, st.Body)
		for _, c := range st.Catches {
			inner := cur
			if !c.Void {
				r.typeName(cur, c.Type)
				inner = r.own(c, cur)
			}
			r.stmt(inner, c.Body)
		}
		r.stmt(cur, st.Finally)
	}
}

func (r *resolver) exprs(scope ScopeID, list []ast.Expr) {
	for _, e := range list {
		r.expr(scope, e)
	}
}

func (r *resolver) expr(scope ScopeID, e ast.Expr) {
	if e == nil || r.failed() {
		return
	}
	switch e := e.(type) {
	case *ast.SymbolExpr:
		r.symbol(scope, e.Symbol)
	case *ast.SymbolChildExpr:
		// имя члена зависит от типа объекта и здесь не разрешается
		r.expr(scope, e.Object)
		r.templateArgs(scope, e.Child.Templates)
	case *ast.OperatorExpr:
		r.exprs(scope, e.Operands)
	case *ast.CastExpr:
		r.typeName(scope, e.Type)
		r.expr(scope, e.Value)
	case *ast.SizeofExpr:
		r.typeName(scope, e.Type)
		r.expr(scope, e.Value)
	}
}

func (r *resolver) typeName(scope ScopeID, tn *ast.TypeName) {
	if tn == nil || r.failed() {
		return
	}
	switch tn.Value {
	case ast.TypeSymbol:
		r.symbol(scope, tn.Name)
	case ast.TypeFunction:
		for _, a := range tn.Function.Args {
			r.typeName(scope, a)
		}
		r.typeName(scope, tn.Function.Result)
	}
}

func (r *resolver) templateArgs(scope ScopeID, args []ast.TemplateArg) {
	for _, a := range args {
		if a.IsValue() {
			r.expr(scope, a.Value)
		} else {
			r.typeName(scope, a.Type)
		}
	}
}

// symbol разрешает путь по сегментам. Первый сегмент ищется с родителями
// (для "::" только в корне файла и его соседях), каждый следующий только в
// собственной области предыдущего элемента. Для пространства имён это все
// его фрагменты, видимые из текущего файла.
func (r *resolver) symbol(scope ScopeID, sym *ast.Symbol) {
	if sym == nil || r.failed() {
		return
	}
	start, parents := scope, true
	if sym.Root {
		start, parents = r.t.FileRoot(r.file), false
	}
	var cur ItemID
	for i := range sym.Segments {
		seg := &sym.Segments[i]
		r.templateArgs(scope, seg.Templates)
		if r.failed() {
			return
		}
		key := r.t.Intern(seg.Text())
		found := NoItemID
		if i == 0 {
			r.t.Filter(start, key, FirstMatch(&found), parents, true)
		} else {
			prev := r.t.Items.Get(cur)
			if !prev.Own.IsValid() {
				r.fail(diag.SemNoMembers, seg.Sp,
					fmt.Sprintf("%s '%s' has no members", prev.Kind, prefixText(sym, i)))
				return
			}
			// пространство имён может быть открыто в нескольких файлах:
			// смотрим все фрагменты, видимые из текущего файла
			for _, frag := range r.t.Fragments(prev.Own, r.file) {
				if r.t.Filter(frag, key, FirstMatch(&found), false, true) {
					break
				}
			}
		}
		if !found.IsValid() {
			msg := fmt.Sprintf("unknown symbol '%s'", seg.Text())
			if i > 0 {
				msg = fmt.Sprintf("'%s' is not a member of '%s'", seg.Text(), prefixText(sym, i))
			}
			r.fail(diag.SemUnresolvedSymbol, seg.Sp, msg)
			return
		}
		cur = found
	}
	r.t.resolved[sym] = cur
}

// prefixText печатает первые n сегментов символа без шаблонных аргументов.
func prefixText(sym *ast.Symbol, n int) string {
	var sb strings.Builder
	if sym.Root {
		sb.WriteString("::")
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString("::")
		}
		sb.WriteString(sym.Segments[i].Text())
	}
	return sb.String()
}
