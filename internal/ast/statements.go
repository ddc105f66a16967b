package ast

import (
	"bytes"

	"github.com/kiinaq/hexen-sub005/internal/token"
)

// VarDecl is a `val`/`mut` declaration: `NAME (: TYPE)? = (EXPR | undef)`.
type VarDecl struct {
	Tok       token.Token // the 'val' or 'mut' token
	Name      string
	Mutable   bool
	TypeAnn   string // "" if no annotation was given
	Value     Expression
	IsUndef   bool // Value is nil and RHS was the literal `undef`
}

func (v *VarDecl) TokenLiteral() string { return v.Tok.Literal }
func (v *VarDecl) Pos() token.Position  { return v.Tok.Pos }
func (v *VarDecl) statementNode()       {}
func (v *VarDecl) String() string {
	var out bytes.Buffer
	if v.Mutable {
		out.WriteString("mut ")
	} else {
		out.WriteString("val ")
	}
	out.WriteString(v.Name)
	if v.TypeAnn != "" {
		out.WriteString(" : ")
		out.WriteString(v.TypeAnn)
	}
	out.WriteString(" = ")
	if v.IsUndef {
		out.WriteString("undef")
	} else if v.Value != nil {
		out.WriteString(v.Value.String())
	}
	return out.String()
}

// Assign is a `NAME = EXPR` assignment statement.
type Assign struct {
	Tok   token.Token // the identifier token
	Name  string
	Value Expression
}

func (a *Assign) TokenLiteral() string { return a.Tok.Literal }
func (a *Assign) Pos() token.Position  { return a.Tok.Pos }
func (a *Assign) statementNode()       {}
func (a *Assign) String() string {
	return a.Name + " = " + a.Value.String()
}

// Return is a `return EXPR?` statement.
type Return struct {
	Tok   token.Token // the 'return' token
	Value Expression  // nil for a bare `return`
}

func (r *Return) TokenLiteral() string { return r.Tok.Literal }
func (r *Return) Pos() token.Position  { return r.Tok.Pos }
func (r *Return) statementNode()       {}
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// ExprStmt wraps an expression used in statement position (e.g. a call
// whose result is discarded).
type ExprStmt struct {
	Tok        token.Token
	Expression Expression
}

func (e *ExprStmt) TokenLiteral() string { return e.Tok.Literal }
func (e *ExprStmt) Pos() token.Position  { return e.Tok.Pos }
func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) String() string       { return e.Expression.String() }
