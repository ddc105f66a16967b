package semantic

import (
	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// analyzeBinary resolves a binary expression's operand types and asks
// internal/types to unify them, translating any operator-level failure
// into the structured diagnostic kind that best matches it. Operands are
// analyzed with no target of their own — through analyzeExpressionInner,
// not analyzeExpression, so a comptime operand stays comptime here
// rather than being defaulted to a concrete type before unify/
// DivisionResult ever sees it — and only the combined result is
// constrained against the caller's target.
func (a *Analyzer) analyzeBinary(bin *ast.Binary, target *types.Type) types.Type {
	leftType := a.analyzeExpressionInner(bin.Left, nil)
	bin.Left.SetResolvedType(leftType.String())
	rightType := a.analyzeExpressionInner(bin.Right, nil)
	bin.Right.SetResolvedType(rightType.String())

	result, err := types.BinaryResult(bin.Op, leftType, rightType, target)
	if err == nil {
		return result
	}

	switch e := err.(type) {
	case *types.NonBoolError:
		a.collector.nonBoolInLogical(bin.Pos(), e.Op, e.Type)
	case *types.NonIntegerError:
		a.collector.nonIntegerInIntDivision(bin.Pos(), e.Op, e.Left, e.Right)
	case *types.OpMismatchError:
		a.collector.typeMismatch(bin.Pos(),
			e.Error(),
			"operands must already share a type, or one side must be a comptime literal that coerces to the other")
	default:
		a.collector.typeMismatch(bin.Pos(), err.Error(), "")
	}
	return types.Unresolved
}

// analyzeUnary mirrors analyzeBinary: the operand is analyzed raw, with
// no target, so "-" on a comptime literal still returns a comptime
// result for whatever enclosing context eventually pins it down.
func (a *Analyzer) analyzeUnary(un *ast.Unary) types.Type {
	operandType := a.analyzeExpressionInner(un.Operand, nil)
	un.Operand.SetResolvedType(operandType.String())
	result, err := types.UnaryResult(un.Op, operandType)
	if err == nil {
		return result
	}
	switch e := err.(type) {
	case *types.NonBoolError:
		a.collector.nonBoolInLogical(un.Pos(), e.Op, e.Type)
	case *types.OpMismatchError:
		a.collector.typeMismatch(un.Pos(), e.Error(), "")
	default:
		a.collector.typeMismatch(un.Pos(), err.Error(), "")
	}
	return types.Unresolved
}
