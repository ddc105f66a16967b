package ast

import (
	"bytes"
	"strings"

	"github.com/kiinaq/hexen-sub005/internal/token"
)

// Identifier is a reference to a declared symbol.
type Identifier struct {
	Tok   token.Token
	Value string
	baseExpr
}

func (i *Identifier) TokenLiteral() string { return i.Tok.Literal }
func (i *Identifier) Pos() token.Position  { return i.Tok.Pos }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) String() string       { return i.Value }

// NumberLit is an integer or float literal. Lexeme preserves the exact
// textual form so the type system decides comptime_int vs comptime_float
// from the presence of a decimal point or exponent.
type NumberLit struct {
	Tok     token.Token
	Lexeme  string
	IsFloat bool
	baseExpr
}

func (n *NumberLit) TokenLiteral() string { return n.Tok.Literal }
func (n *NumberLit) Pos() token.Position  { return n.Tok.Pos }
func (n *NumberLit) expressionNode()      {}
func (n *NumberLit) String() string       { return n.Lexeme }

// StringLit is a string literal.
type StringLit struct {
	Tok   token.Token
	Value string
	baseExpr
}

func (s *StringLit) TokenLiteral() string { return s.Tok.Literal }
func (s *StringLit) Pos() token.Position  { return s.Tok.Pos }
func (s *StringLit) expressionNode()      {}
func (s *StringLit) String() string       { return `"` + s.Value + `"` }

// BoolLit is `true` or `false`.
type BoolLit struct {
	Tok   token.Token
	Value bool
	baseExpr
}

func (b *BoolLit) TokenLiteral() string { return b.Tok.Literal }
func (b *BoolLit) Pos() token.Position  { return b.Tok.Pos }
func (b *BoolLit) expressionNode()      {}
func (b *BoolLit) String() string       { return b.Tok.Literal }

// Binary is a binary operator expression.
type Binary struct {
	Tok   token.Token // the operator token
	Op    string
	Left  Expression
	Right Expression
	baseExpr
}

func (b *Binary) TokenLiteral() string { return b.Tok.Literal }
func (b *Binary) Pos() token.Position  { return b.Tok.Pos }
func (b *Binary) expressionNode()      {}
func (b *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Op + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// Unary is a prefix unary operator expression (`-x`, `!x`).
type Unary struct {
	Tok     token.Token
	Op      string
	Operand Expression
	baseExpr
}

func (u *Unary) TokenLiteral() string { return u.Tok.Literal }
func (u *Unary) Pos() token.Position  { return u.Tok.Pos }
func (u *Unary) expressionNode()      {}
func (u *Unary) String() string       { return "(" + u.Op + u.Operand.String() + ")" }

// Conversion is the explicit `expr : Type` conversion operator — the
// only way to cross concrete-to-concrete type boundaries.
type Conversion struct {
	Tok    token.Token // the ':' token
	Value  Expression
	ToType string
	baseExpr
}

func (c *Conversion) TokenLiteral() string { return c.Tok.Literal }
func (c *Conversion) Pos() token.Position  { return c.Tok.Pos }
func (c *Conversion) expressionNode()      {}
func (c *Conversion) String() string {
	return "(" + c.Value.String() + " : " + c.ToType + ")"
}

// Call is a function call `NAME(args...)`.
type Call struct {
	Tok  token.Token // the identifier token
	Name string
	Args []Expression
	baseExpr
}

func (c *Call) TokenLiteral() string { return c.Tok.Literal }
func (c *Call) Pos() token.Position  { return c.Tok.Pos }
func (c *Call) expressionNode()      {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}
