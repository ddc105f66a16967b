package semantic

import (
	"fmt"

	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/token"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// analyzeStatement dispatches a single statement to its handler. A
// statement that cannot be resolved contributes diagnostics to the
// collector and otherwise lets analysis continue — it never aborts the
// traversal.
func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(s)
	case *ast.Assign:
		a.analyzeAssign(s)
	case *ast.Return:
		a.analyzeReturnStatement(s)
	case *ast.ExprStmt:
		a.analyzeExpression(s.Expression, nil)
	case *ast.Block:
		a.blocks.analyzeStatementsInScope(s, statementBlock)
	default:
		a.internalBug("unknown statement kind %T", stmt)
	}
}

func (a *Analyzer) analyzeVarDecl(decl *ast.VarDecl) {
	var declaredType *types.Type
	if decl.TypeAnn != "" {
		t, ok := types.FromName(decl.TypeAnn)
		if !ok {
			a.collector.unknownSymbol(decl.Pos(), decl.TypeAnn)
			t = types.Unresolved
		}
		declaredType = &t
	}

	if decl.IsUndef {
		if declaredType == nil {
			a.collector.undefRequiresAnnotation(decl.Pos(), decl.Name)
		}
		if !decl.Mutable {
			a.collector.undefRequiresMut(decl.Pos(), decl.Name)
		}
		finalType := types.Unresolved
		if declaredType != nil {
			finalType = *declaredType
		}
		a.declareSymbol(decl.Pos(), decl.Name, finalType, decl.Mutable, false)
		return
	}

	exprType := a.analyzeExpression(decl.Value, declaredType)

	var finalType types.Type
	if declaredType != nil {
		resolved, ok := types.Resolve(exprType, declaredType)
		if !ok && exprType.Kind != types.KindUnresolved {
			a.collector.invalidCoercion(decl.Value.Pos(), exprType, *declaredType)
			finalType = types.Unresolved
		} else {
			finalType = resolved
		}
	} else {
		finalType = types.DefaultConcrete(exprType)
	}

	a.declareSymbol(decl.Pos(), decl.Name, finalType, decl.Mutable, true)
}

func (a *Analyzer) declareSymbol(pos token.Position, name string, t types.Type, mutable, initialized bool) {
	sym := &Symbol{Name: name, Type: t, Mutable: mutable, Initialized: initialized}
	if !a.symbols.Declare(sym) {
		a.collector.duplicateSymbol(pos, name)
	}
}

func (a *Analyzer) analyzeAssign(assign *ast.Assign) {
	sym, ok := a.symbols.Lookup(assign.Name)
	if !ok {
		a.collector.unknownSymbol(assign.Pos(), assign.Name)
		a.analyzeExpression(assign.Value, nil)
		return
	}
	if !sym.Mutable {
		a.collector.immutableAssign(assign.Pos(), assign.Name)
	}

	target := sym.Type
	exprType := a.analyzeExpression(assign.Value, &target)

	if exprType.Kind != types.KindUnresolved && sym.Type.Kind != types.KindUnresolved {
		resolved, ok := types.Resolve(exprType, &sym.Type)
		if !ok {
			a.collector.invalidCoercion(assign.Value.Pos(), exprType, sym.Type)
		} else if !resolved.Equals(sym.Type) {
			a.collector.typeMismatch(assign.Pos(),
				fmt.Sprintf("cannot assign %s to %s variable '%s'", exprType, sym.Type, assign.Name),
				fmt.Sprintf("add an explicit conversion: `: %s`", sym.Type))
		}
	}

	a.symbols.MarkInitialized(assign.Name)
}

// analyzeReturnStatement handles a Return that appears in statement
// position — a plain function-body or statement-block return, which
// always checks against the enclosing function's declared return type.
func (a *Analyzer) analyzeReturnStatement(ret *ast.Return) {
	returnType, ok := a.symbols.EnclosingFunctionReturnType()
	if !ok {
		a.internalBug("return statement outside any function scope")
	}

	if returnType.Kind == types.KindVoid {
		if ret.Value != nil {
			a.analyzeExpression(ret.Value, nil)
			funcName := ""
			if a.currentFunction != nil {
				funcName = a.currentFunction.Name
			}
			a.collector.voidReturnsValue(ret.Pos(), funcName)
		}
		return
	}

	if ret.Value == nil {
		funcName := ""
		if a.currentFunction != nil {
			funcName = a.currentFunction.Name
		}
		a.collector.typeMismatch(ret.Pos(),
			fmt.Sprintf("function '%s' must return a value of type %s", funcName, returnType),
			fmt.Sprintf("add a return value: `return <%s expression>`", returnType))
		return
	}

	exprType := a.analyzeExpression(ret.Value, &returnType)
	if exprType.Kind == types.KindUnresolved {
		return
	}
	resolved, ok := types.Resolve(exprType, &returnType)
	if !ok {
		a.collector.invalidCoercion(ret.Value.Pos(), exprType, returnType)
		return
	}
	if !resolved.Equals(returnType) {
		a.collector.typeMismatch(ret.Pos(),
			fmt.Sprintf("cannot return %s from function returning %s", exprType, returnType),
			fmt.Sprintf("add an explicit conversion: `: %s`", returnType))
	}
}
