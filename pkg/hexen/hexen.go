// Package hexen is the embeddable entry point to the Hexen front end:
// lexing, parsing, and semantic analysis, wired together into a single
// Compile call that external tools (the CLI, editor integrations, test
// harnesses) can drive without touching the internal/ packages directly.
package hexen

import (
	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/errors"
	"github.com/kiinaq/hexen-sub005/internal/lexer"
	"github.com/kiinaq/hexen-sub005/internal/parser"
	"github.com/kiinaq/hexen-sub005/internal/semantic"
)

// Result holds everything a caller needs after a Compile call: the
// parsed (and, if analysis ran, type-annotated) program plus every
// diagnostic collected along the way, already converted to display-ready
// CompilerErrors in source order.
type Result struct {
	Program *ast.Program
	Errors  []*errors.CompilerError
}

// OK reports whether source compiled with no diagnostics at all.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Compile runs the full front-end pipeline over source: lex, parse, and
// (if parsing succeeded with no syntax errors) semantically analyze.
// file is used only for diagnostic display; pass "" for anonymous input.
// Semantic analysis never runs over a syntactically invalid program —
// syntax errors are returned on their own.
func Compile(source, file string) *Result {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if perrs := p.Errors(); len(perrs) > 0 {
		out := make([]*errors.CompilerError, 0, len(perrs))
		for _, pe := range perrs {
			out = append(out, errors.NewCompilerError(pe.Pos, pe.Message, source, file))
		}
		return &Result{Program: program, Errors: out}
	}

	analyzer := semantic.NewAnalyzer()
	semErrs := analyzer.Analyze(program)

	out := make([]*errors.CompilerError, 0, len(semErrs))
	for _, se := range semErrs {
		out = append(out, se.ToCompilerError(source, file))
	}
	return &Result{Program: program, Errors: out}
}

// Parse runs only the lexer and parser, skipping semantic analysis —
// useful for tools that just want the syntax tree (e.g. `hexen parse`).
func Parse(source, file string) (*ast.Program, []*errors.CompilerError) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	perrs := p.Errors()
	out := make([]*errors.CompilerError, 0, len(perrs))
	for _, pe := range perrs {
		out = append(out, errors.NewCompilerError(pe.Pos, pe.Message, source, file))
	}
	return program, out
}
