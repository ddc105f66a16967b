// Package semantic implements Hexen's semantic analyzer: the
// comptime-aware type system driver, the unified block analyzer, and
// the symbol table. It consumes the AST produced by internal/parser and
// produces an annotated AST plus a batch of structured diagnostics.
package semantic

import (
	"fmt"

	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// FunctionSig is the compile-time signature of a declared function,
// recorded in a flat, program-wide table — Hexen has no nested function
// declarations, so there is exactly one namespace for them, distinct
// from the lexically-scoped variable symbol table.
type FunctionSig struct {
	Name       string
	ParamNames []string
	ParamTypes []types.Type
	ReturnType types.Type
}

// Analyzer drives semantic analysis of a Program. Each Analyzer instance
// owns its symbol table, function table, and error collector; there is
// no shared global state, so independent Analyzer instances may run
// concurrently on separate programs.
type Analyzer struct {
	symbols   *SymbolTable
	functions map[string]*FunctionSig
	collector *ErrorCollector

	currentFunction *FunctionSig
	blocks          *blockAnalyzer
}

// NewAnalyzer creates a fresh Analyzer ready to run Analyze.
func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		symbols:   NewSymbolTable(),
		functions: make(map[string]*FunctionSig),
		collector: newErrorCollector(),
	}
	a.blocks = &blockAnalyzer{analyzer: a}
	return a
}

// Analyze runs the full analysis pipeline over program and returns every
// diagnostic collected, in source order. An empty result means the
// program is semantically valid.
func (a *Analyzer) Analyze(program *ast.Program) []*SemanticError {
	a.registerFunctionSignatures(program)
	for _, fn := range program.Functions {
		a.analyzeFunction(fn)
	}
	return a.collector.Errors()
}

// registerFunctionSignatures performs the forward-declaration pass: every
// function's signature is known before any body is analyzed, so calls
// may appear in any order relative to declarations.
func (a *Analyzer) registerFunctionSignatures(program *ast.Program) {
	for _, fn := range program.Functions {
		if _, exists := a.functions[fn.Name]; exists {
			a.collector.duplicateSymbol(fn.Pos(), fn.Name)
			continue
		}

		returnType, ok := types.FromName(fn.ReturnType)
		if !ok {
			a.collector.unknownSymbol(fn.Pos(), fn.ReturnType)
			returnType = types.Unresolved
		}

		sig := &FunctionSig{Name: fn.Name, ReturnType: returnType}
		for _, p := range fn.Params {
			pt, ok := types.FromName(p.Type)
			if !ok {
				a.collector.unknownSymbol(p.Tok.Pos, p.Type)
				pt = types.Unresolved
			}
			sig.ParamNames = append(sig.ParamNames, p.Name)
			sig.ParamTypes = append(sig.ParamTypes, pt)
		}
		a.functions[fn.Name] = sig
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	sig, ok := a.functions[fn.Name]
	if !ok {
		// registerFunctionSignatures always populates every function in
		// the program; a miss here means the caller passed a different
		// AST than the one just registered.
		a.internalBug("function %q missing from signature table", fn.Name)
	}

	outer := a.symbols
	a.symbols = a.symbols.Enter(ScopeFunction)
	a.symbols.SetFunctionReturnType(sig.ReturnType)
	prevFunction := a.currentFunction
	a.currentFunction = sig

	for i, name := range sig.ParamNames {
		a.symbols.Declare(&Symbol{Name: name, Type: sig.ParamTypes[i], Mutable: false, Initialized: true})
	}

	a.blocks.analyzeStatementsInScope(fn.Body, functionBody)

	if sig.ReturnType.Kind != types.KindVoid && !terminatesWithReturn(fn.Body) {
		a.collector.missingReturn(fn.Pos(), fn.Name)
	}

	a.currentFunction = prevFunction
	a.symbols = a.symbols.Leave()
	if a.symbols != outer {
		a.internalBug("scope stack imbalance after function %q", fn.Name)
	}
}

// terminatesWithReturn reports whether the final statement of body (or,
// recursively, of a trailing nested statement block) is a Return
// carrying a value. With no conditional control flow in Hexen's AST,
// "reachable on every path" reduces to "is the last statement".
func terminatesWithReturn(body *ast.Block) bool {
	if len(body.Statements) == 0 {
		return false
	}
	last := body.Statements[len(body.Statements)-1]
	switch s := last.(type) {
	case *ast.Return:
		return s.Value != nil
	case *ast.Block:
		return terminatesWithReturn(s)
	default:
		return false
	}
}

func (a *Analyzer) internalBug(format string, args ...any) {
	panic(fmt.Sprintf("hexen: internal compiler error: "+format, args...))
}
