package semantic

import (
	"testing"

	"github.com/kiinaq/hexen-sub005/internal/lexer"
	"github.com/kiinaq/hexen-sub005/internal/parser"
)

// analyze parses and analyzes source, failing the test on any syntax
// error (syntax is not what these tests exercise).
func analyze(t *testing.T, source string) []*SemanticError {
	t.Helper()
	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, e := range p.Errors() {
			t.Errorf("unexpected syntax error: %s", e.Message)
		}
		t.FailNow()
	}
	return NewAnalyzer().Analyze(program)
}

func errKinds(errs []*SemanticError) []ErrorKind {
	kinds := make([]ErrorKind, len(errs))
	for i, e := range errs {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestS1_ComptimeIntDefaultsToI32(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { val x = 42; return x }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errKinds(errs))
	}
}

func TestS2_ComptimeIntAdaptsToAnnotatedI64(t *testing.T) {
	errs := analyze(t, `func main() : i64 = { val x : i64 = 42; return x }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errKinds(errs))
	}
}

func TestS3_ComptimeIntCannotCoerceToBool(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { val x : bool = 42; return 0 }`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errKinds(errs))
	}
	if errs[0].Kind != InvalidCoercion {
		t.Errorf("expected InvalidCoercion, got %s", errs[0].Kind)
	}
}

func TestS4_AssignToValIsImmutableAssign(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { val x = 42; x = 100; return x }`)
	if len(errs) != 1 || errs[0].Kind != ImmutableAssign {
		t.Fatalf("expected exactly 1 ImmutableAssign, got %v", errKinds(errs))
	}
}

func TestS5_ReadingUndefMutIsUninitializedRead(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { mut y : i32 = undef; val z = y; return z }`)
	if len(errs) != 1 || errs[0].Kind != UninitializedRead {
		t.Fatalf("expected exactly 1 UninitializedRead, got %v", errKinds(errs))
	}
}

func TestS6_MixedConcreteTypesRequireExplicitConversion(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { val a : i32 = 1; val b : i64 = 2; val c = a + b; return 0 }`)
	if len(errs) != 1 || errs[0].Kind != TypeMismatch {
		t.Fatalf("expected exactly 1 TypeMismatch, got %v", errKinds(errs))
	}
}

func TestS7_VoidFunctionCannotReturnValue(t *testing.T) {
	errs := analyze(t, `func f() : void = { return 0 }`)
	if len(errs) != 1 || errs[0].Kind != VoidReturnsValue {
		t.Fatalf("expected exactly 1 VoidReturnsValue, got %v", errKinds(errs))
	}
}

func TestS8_ExpressionBlockProducesValue(t *testing.T) {
	errs := analyze(t, `func main() : i32 = { val r = { val t = 42; return t }; return r }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errKinds(errs))
	}
}

func TestMissingReturnOnNonVoidFunction(t *testing.T) {
	errs := analyze(t, `func f() : i32 = { val x = 1 }`)
	if len(errs) != 1 || errs[0].Kind != MissingReturn {
		t.Fatalf("expected exactly 1 MissingReturn, got %v", errKinds(errs))
	}
}

func TestVoidFunctionWithBareReturnIsFine(t *testing.T) {
	errs := analyze(t, `func f() : void = { return }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errKinds(errs))
	}
}

func TestDuplicateSymbolInSameScope(t *testing.T) {
	errs := analyze(t, `func f() : i32 = { val x = 1; val x = 2; return x }`)
	if len(errs) != 1 || errs[0].Kind != DuplicateSymbol {
		t.Fatalf("expected exactly 1 DuplicateSymbol, got %v", errKinds(errs))
	}
}

func TestShadowingOuterScopeIsNotDuplicate(t *testing.T) {
	errs := analyze(t, `func f() : i32 = {
		val x = 1
		{
			val x = 2
		}
		return x
	}`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors (shadowing is allowed), got %v", errKinds(errs))
	}
}

func TestUndefRequiresMutAndAnnotation(t *testing.T) {
	errs := analyze(t, `func f() : i32 = { val x = undef; return 0 }`)
	kinds := errKinds(errs)
	hasMut, hasAnnotation := false, false
	for _, k := range kinds {
		if k == UndefRequiresMut {
			hasMut = true
		}
		if k == UndefRequiresAnnotation {
			hasAnnotation = true
		}
	}
	if !hasMut || !hasAnnotation {
		t.Fatalf("expected both UndefRequiresMut and UndefRequiresAnnotation, got %v", kinds)
	}
}

func TestUnknownFunctionCall(t *testing.T) {
	errs := analyze(t, `func f() : i32 = { return missing(1, 2) }`)
	if len(errs) != 1 || errs[0].Kind != UnknownFunction {
		t.Fatalf("expected exactly 1 UnknownFunction, got %v", errKinds(errs))
	}
}

func TestArgumentCountMismatch(t *testing.T) {
	errs := analyze(t, `
		func add(a: i32, b: i32) : i32 = { return a + b }
		func f() : i32 = { return add(1) }
	`)
	if len(errs) != 1 || errs[0].Kind != ArgumentCountMismatch {
		t.Fatalf("expected exactly 1 ArgumentCountMismatch, got %v", errKinds(errs))
	}
}

func TestForwardReferencedFunctionCallResolves(t *testing.T) {
	errs := analyze(t, `
		func f() : i32 = { return g() }
		func g() : i32 = { return 1 }
	`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors (forward reference should resolve), got %v", errKinds(errs))
	}
}

func TestIntegerDivisionRequiresIntegerOperands(t *testing.T) {
	errs := analyze(t, `func f() : i32 = { val x : f64 = 1.0; return 0 \ 1 }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for valid integer division, got %v", errKinds(errs))
	}

	errs = analyze(t, `func f() : i32 = {
		val x : f64 = 1.0
		val y = x \ 2
		return 0
	}`)
	if len(errs) != 1 || errs[0].Kind != NonIntegerInIntDivision {
		t.Fatalf("expected exactly 1 NonIntegerInIntDivision, got %v", errKinds(errs))
	}
}

func TestLogicalOperatorRequiresBool(t *testing.T) {
	errs := analyze(t, `func f() : i32 = {
		val x = 1
		val y = x && true
		return 0
	}`)
	if len(errs) != 1 || errs[0].Kind != NonBoolInLogical {
		t.Fatalf("expected exactly 1 NonBoolInLogical, got %v", errKinds(errs))
	}
}

func TestExpressionBlockWithoutFinalReturnIsAnError(t *testing.T) {
	errs := analyze(t, `func f() : i32 = {
		val r = { val t = 42 }
		return r
	}`)
	found := false
	for _, k := range errKinds(errs) {
		if k == BlockRequiresFinalReturn {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected BlockRequiresFinalReturn, got %v", errKinds(errs))
	}
}

func TestExplicitConversionOperatorAllowsNarrowing(t *testing.T) {
	errs := analyze(t, `func f() : i32 = {
		val x : i64 = 100
		return x : i32
	}`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errKinds(errs))
	}
}

func TestFunctionParametersAreImmutable(t *testing.T) {
	errs := analyze(t, `func f(a: i32) : i32 = { a = 1; return a }`)
	if len(errs) != 1 || errs[0].Kind != ImmutableAssign {
		t.Fatalf("expected exactly 1 ImmutableAssign, got %v", errKinds(errs))
	}
}
