// Package ast defines the abstract syntax tree produced by the parser and
// annotated (never structurally mutated) by the semantic analyzer.
package ast

import (
	"bytes"
	"strings"

	"github.com/kiinaq/hexen-sub005/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	// ResolvedType holds the name of the type analysis assigned to this
	// expression; empty until analyzed. An expression analyzed as a whole
	// (an initializer, assignment value, return value or call argument)
	// gets a concrete type, or keeps its comptime type when it does not
	// coerce to its target. An operand of a binary or unary operator
	// keeps the type the operator saw, which may be comptime_int or
	// comptime_float; it is not re-stamped with the operator's final
	// concrete type.
	ResolvedType() string
	SetResolvedType(name string)
}

// Statement is any node that performs an action without itself producing
// a value.
type Statement interface {
	Node
	statementNode()
}

// baseExpr centralizes the resolved-type bookkeeping every Expression
// implementation needs; embedding it avoids repeating the same four
// lines on every node type.
type baseExpr struct {
	resolvedType string
}

func (b *baseExpr) ResolvedType() string          { return b.resolvedType }
func (b *baseExpr) SetResolvedType(name string)    { b.resolvedType = name }

// Program is the root node: a sequence of function definitions.
type Program struct {
	Functions []*Function
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, fn := range p.Functions {
		out.WriteString(fn.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Param is a single function parameter.
type Param struct {
	Name string
	Type string // declared concrete type name
	Tok  token.Token
}

// Function is a top-level `func NAME(params?) : TYPE = { ... }` definition.
type Function struct {
	Tok        token.Token // the 'func' token
	Name       string
	Params     []*Param
	ReturnType string // declared return type name ("void" allowed)
	Body       *Block
}

func (f *Function) TokenLiteral() string { return f.Tok.Literal }
func (f *Function) Pos() token.Position  { return f.Tok.Pos }
func (f *Function) String() string {
	var out bytes.Buffer
	out.WriteString("func ")
	out.WriteString(f.Name)
	out.WriteString("(")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name + ": " + p.Type
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(") : ")
	out.WriteString(f.ReturnType)
	out.WriteString(" = ")
	out.WriteString(f.Body.String())
	return out.String()
}

// Block is a `{ statement* }` sequence. The same node shape represents
// function bodies, statement blocks, and expression blocks; classifying
// which kind a given Block is is the BlockAnalyzer's job, not the
// parser's — the parser only records syntactic shape, and a Block can
// appear in either statement or expression position, so it implements
// both interfaces. ResolvedType is meaningful only when the block is
// used as an expression.
type Block struct {
	Tok        token.Token // the '{' token
	Statements []Statement
	baseExpr

	// ComptimeEvaluable is populated by BlockAnalyzer during traversal
	// and cached here to avoid re-walking the block: true if the block
	// contains no function calls, no identifier references, and no
	// non-comptime-evaluable nested block.
	ComptimeEvaluable bool
}

func (b *Block) TokenLiteral() string { return b.Tok.Literal }
func (b *Block) Pos() token.Position  { return b.Tok.Pos }
func (b *Block) expressionNode()      {}
func (b *Block) statementNode()       {}
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("; ")
	}
	out.WriteString("}")
	return out.String()
}
