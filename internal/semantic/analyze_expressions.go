package semantic

import (
	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// analyzeExpression resolves expr's type at a position that nothing
// further will unify against — a var's initializer, an assignment's
// right-hand side, a return value, a call argument. It is the one place
// a still-comptime result gets pinned down: to its default concrete type
// when there is no target, to target when the literal coerces to it, and
// otherwise it is left comptime. Every expression node reached this way
// has SetResolvedType called on it.
//
// Binary and unary operands do NOT go through here — they call
// analyzeExpressionInner directly so a comptime operand survives long
// enough for the operator's own unification to see it. Those callers
// stamp the operand node themselves.
func (a *Analyzer) analyzeExpression(expr ast.Expression, target *types.Type) types.Type {
	raw := a.analyzeExpressionInner(expr, target)
	final := raw
	if raw.IsComptime() {
		switch {
		case target == nil:
			final = types.DefaultConcrete(raw)
		case types.CanCoerce(raw, *target):
			final = *target
		}
		// else: leave final == raw, comptime and all, so the caller's
		// own Resolve-based check reports the mismatch against the
		// literal's true type instead of a silently-defaulted one.
	}
	expr.SetResolvedType(final.String())
	return final
}

func (a *Analyzer) analyzeExpressionInner(expr ast.Expression, target *types.Type) types.Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		return a.analyzeIdentifier(e)
	case *ast.NumberLit:
		return types.Classify(e.IsFloat)
	case *ast.StringLit:
		return types.StringType
	case *ast.BoolLit:
		return types.Bool
	case *ast.Binary:
		return a.analyzeBinary(e, target)
	case *ast.Unary:
		return a.analyzeUnary(e)
	case *ast.Conversion:
		return a.analyzeConversion(e)
	case *ast.Call:
		return a.analyzeCall(e, target)
	case *ast.Block:
		return a.blocks.analyzeAsExpression(e, target)
	default:
		a.internalBug("unknown expression kind %T", expr)
		return types.Unresolved
	}
}

func (a *Analyzer) analyzeIdentifier(ident *ast.Identifier) types.Type {
	sym, ok := a.symbols.Lookup(ident.Value)
	if !ok {
		a.collector.unknownSymbol(ident.Pos(), ident.Value)
		return types.Unresolved
	}
	if !sym.Initialized {
		a.collector.uninitializedRead(ident.Pos(), ident.Value)
		return types.Unresolved
	}
	return sym.Type
}

func (a *Analyzer) analyzeConversion(conv *ast.Conversion) types.Type {
	fromType := a.analyzeExpression(conv.Value, nil)
	toType, ok := types.FromName(conv.ToType)
	if !ok {
		a.collector.unknownSymbol(conv.Pos(), conv.ToType)
		return types.Unresolved
	}
	if fromType.Kind == types.KindUnresolved {
		return types.Unresolved
	}
	if !types.ConversionAllowed(fromType, toType) {
		a.collector.invalidCoercion(conv.Pos(), fromType, toType)
		return types.Unresolved
	}
	return toType
}

func (a *Analyzer) analyzeCall(call *ast.Call, target *types.Type) types.Type {
	sig, ok := a.functions[call.Name]
	if !ok {
		a.collector.unknownFunction(call.Pos(), call.Name)
		for _, arg := range call.Args {
			a.analyzeExpression(arg, nil)
		}
		return types.Unresolved
	}

	if len(call.Args) != len(sig.ParamTypes) {
		a.collector.argumentCountMismatch(call.Pos(), call.Name, len(sig.ParamTypes), len(call.Args))
		for _, arg := range call.Args {
			a.analyzeExpression(arg, nil)
		}
		return sig.ReturnType
	}

	for i, arg := range call.Args {
		paramType := sig.ParamTypes[i]
		argType := a.analyzeExpression(arg, &paramType)
		if argType.Kind == types.KindUnresolved {
			continue
		}
		if resolved, ok := types.Resolve(argType, &paramType); !ok || !resolved.Equals(paramType) {
			a.collector.invalidCoercion(arg.Pos(), argType, paramType)
		}
	}

	return sig.ReturnType
}
