package semantic

import (
	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// blockKind classifies a Block by its syntactic position at the point of
// traversal. Classification is purely positional: it is decided by the
// parent node, never inferred from the block's content, and it is
// compositional — a block nested inside another block keeps whatever
// kind its own syntactic position implies.
type blockKind int

const (
	functionBody blockKind = iota
	expressionBlock
	statementBlock
)

// blockAnalyzer implements the per-block rules governing block
// classification: scope entry/exit, context propagation into the final
// producing expression of an expression block, and comptime-evaluability
// detection. It is kept as a distinct collaborator rather than folded
// into Analyzer's method set, isolating an orthogonal concern into its
// own pass.
type blockAnalyzer struct {
	analyzer *Analyzer
}

// analyzeStatementsInScope runs a Block in statement-block or
// function-body mode: every statement, including the last, is analyzed
// as an ordinary statement (a Return here always checks against the
// enclosing function's declared return type, never a propagated target).
func (b *blockAnalyzer) analyzeStatementsInScope(block *ast.Block, kind blockKind) {
	b.analyzer.symbols = b.analyzer.symbols.Enter(ScopeBlock)
	for _, stmt := range block.Statements {
		b.analyzer.analyzeStatement(stmt)
	}
	block.ComptimeEvaluable = isComptimeEvaluable(block)
	b.analyzer.symbols = b.analyzer.symbols.Leave()
}

// analyzeAsExpression runs a Block in expression-block mode: it must
// produce a value, and its final statement must be `return <expr>`,
// whose value is analyzed with target propagated into it (the mechanism
// that lets `val x : i64 = { ...; return 42 }` adapt the comptime_int
// literal to i64). Every other statement — including any return that is
// not the block's final statement — is analyzed exactly as it would be
// in statement position, i.e. any such return targets the *enclosing
// function*, not this block.
func (b *blockAnalyzer) analyzeAsExpression(block *ast.Block, target *types.Type) types.Type {
	b.analyzer.symbols = b.analyzer.symbols.Enter(ScopeBlock)
	defer func() { b.analyzer.symbols = b.analyzer.symbols.Leave() }()

	result := types.Unresolved
	n := len(block.Statements)

	for i, stmt := range block.Statements {
		if i == n-1 {
			if ret, ok := stmt.(*ast.Return); ok && ret.Value != nil {
				result = b.analyzer.analyzeExpression(ret.Value, target)
				continue
			}
			b.analyzer.collector.blockRequiresFinalReturn(block.Pos())
			continue
		}
		b.analyzer.analyzeStatement(stmt)
	}

	if n == 0 {
		b.analyzer.collector.blockRequiresFinalReturn(block.Pos())
	}

	block.ComptimeEvaluable = isComptimeEvaluable(block)
	block.SetResolvedType(result.String())
	return result
}

// isComptimeEvaluable is a pure predicate: a block is comptime-evaluable
// if it contains no function calls, no references
// to any declared symbol (every declared symbol already carries a fixed
// concrete type, so touching one ties the block to that type rather
// than leaving it free-floating comptime), and no non-comptime-evaluable
// nested block. Hexen's AST has no runtime-conditional control flow, so
// "no conditionals with runtime conditions" never disqualifies a block
// on its own.
func isComptimeEvaluable(block *ast.Block) bool {
	for _, stmt := range block.Statements {
		if !stmtIsComptimeEvaluable(stmt) {
			return false
		}
	}
	return true
}

func stmtIsComptimeEvaluable(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return s.Value == nil || exprIsComptimeEvaluable(s.Value)
	case *ast.Assign:
		return exprIsComptimeEvaluable(s.Value)
	case *ast.Return:
		return s.Value == nil || exprIsComptimeEvaluable(s.Value)
	case *ast.ExprStmt:
		return exprIsComptimeEvaluable(s.Expression)
	case *ast.Block:
		return isComptimeEvaluable(s)
	default:
		return false
	}
}

func exprIsComptimeEvaluable(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit:
		return true
	case *ast.Identifier:
		return false
	case *ast.Call:
		return false
	case *ast.Binary:
		return exprIsComptimeEvaluable(e.Left) && exprIsComptimeEvaluable(e.Right)
	case *ast.Unary:
		return exprIsComptimeEvaluable(e.Operand)
	case *ast.Conversion:
		return exprIsComptimeEvaluable(e.Value)
	case *ast.Block:
		return isComptimeEvaluable(e)
	default:
		return false
	}
}
