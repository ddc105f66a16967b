package cmd

import (
	"fmt"

	"github.com/kiinaq/hexen-sub005/internal/ast"
)

// dumpProgram prints a tree view of an AST, mirroring the indentation
// style of a simple recursive dumper rather than any generic reflection
// walk — Hexen's node set is small enough to switch over directly.
func dumpProgram(program *ast.Program) {
	fmt.Println("Program:")
	for _, fn := range program.Functions {
		dumpFunction(fn, 1)
	}
}

func indent(level int) string {
	s := ""
	for i := 0; i < level; i++ {
		s += "  "
	}
	return s
}

func dumpFunction(fn *ast.Function, level int) {
	fmt.Printf("%sFunction %s(", indent(level), fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s: %s", p.Name, p.Type)
	}
	fmt.Printf(") : %s\n", fn.ReturnType)
	dumpBlock(fn.Body, level+1)
}

func dumpBlock(block *ast.Block, level int) {
	fmt.Printf("%sBlock (%d statements)\n", indent(level), len(block.Statements))
	for _, stmt := range block.Statements {
		dumpStatement(stmt, level+1)
	}
}

func dumpStatement(stmt ast.Statement, level int) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		kw := "val"
		if s.Mutable {
			kw = "mut"
		}
		fmt.Printf("%sVarDecl %s %s : %s\n", indent(level), kw, s.Name, s.TypeAnn)
		if s.Value != nil {
			dumpExpression(s.Value, level+1)
		}
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", indent(level), s.Name)
		dumpExpression(s.Value, level+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", indent(level))
		if s.Value != nil {
			dumpExpression(s.Value, level+1)
		}
	case *ast.ExprStmt:
		fmt.Printf("%sExprStmt\n", indent(level))
		dumpExpression(s.Expression, level+1)
	case *ast.Block:
		dumpBlock(s, level)
	default:
		fmt.Printf("%s%T\n", indent(level), stmt)
	}
}

func dumpExpression(expr ast.Expression, level int) {
	switch e := expr.(type) {
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", indent(level), e.Value)
	case *ast.NumberLit:
		fmt.Printf("%sNumberLit: %s\n", indent(level), e.Lexeme)
	case *ast.StringLit:
		fmt.Printf("%sStringLit: %q\n", indent(level), e.Value)
	case *ast.BoolLit:
		fmt.Printf("%sBoolLit: %v\n", indent(level), e.Value)
	case *ast.Binary:
		fmt.Printf("%sBinary (%s)\n", indent(level), e.Op)
		dumpExpression(e.Left, level+1)
		dumpExpression(e.Right, level+1)
	case *ast.Unary:
		fmt.Printf("%sUnary (%s)\n", indent(level), e.Op)
		dumpExpression(e.Operand, level+1)
	case *ast.Conversion:
		fmt.Printf("%sConversion : %s\n", indent(level), e.ToType)
		dumpExpression(e.Value, level+1)
	case *ast.Call:
		fmt.Printf("%sCall %s(%d args)\n", indent(level), e.Name, len(e.Args))
		for _, a := range e.Args {
			dumpExpression(a, level+1)
		}
	case *ast.Block:
		dumpBlock(e, level)
	default:
		fmt.Printf("%s%T\n", indent(level), expr)
	}
}
