// Package types implements Hexen's comptime-aware type system: concrete
// numeric/primitive types, the two abstract comptime literal types, and
// the coercion rules between them.
package types

import "fmt"

// Kind enumerates every type the analyzer can assign to an expression.
type Kind int

const (
	KindUnresolved Kind = iota

	// Concrete numeric types.
	KindI32
	KindI64
	KindF32
	KindF64

	// Other concrete types.
	KindString
	KindBool
	KindVoid

	// Comptime abstract types — never appear on a declared type
	// annotation; they exist only on not-yet-finalized expressions.
	KindComptimeInt
	KindComptimeFloat
)

func (k Kind) String() string {
	switch k {
	case KindUnresolved:
		return "unresolved"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindVoid:
		return "void"
	case KindComptimeInt:
		return "comptime_int"
	case KindComptimeFloat:
		return "comptime_float"
	default:
		return "?"
	}
}

// Type is a resolved or in-progress type assignment for an expression.
type Type struct {
	Kind Kind
}

func (t Type) String() string { return t.Kind.String() }

// Equals reports whether two types are exactly the same kind.
func (t Type) Equals(other Type) bool { return t.Kind == other.Kind }

// IsComptime reports whether t is one of the two abstract literal types.
func (t Type) IsComptime() bool {
	return t.Kind == KindComptimeInt || t.Kind == KindComptimeFloat
}

// IsConcrete reports whether t is a concrete (non-comptime,
// non-unresolved) type — the only kind legal on a declared annotation.
func (t Type) IsConcrete() bool {
	return !t.IsComptime() && t.Kind != KindUnresolved
}

// IsInteger reports whether t is an integer type, comptime or concrete.
func (t Type) IsInteger() bool {
	return t.Kind == KindI32 || t.Kind == KindI64 || t.Kind == KindComptimeInt
}

// IsFloat reports whether t is a floating-point type, comptime or
// concrete.
func (t Type) IsFloat() bool {
	return t.Kind == KindF32 || t.Kind == KindF64 || t.Kind == KindComptimeFloat
}

// IsNumeric reports whether t participates in arithmetic at all.
func (t Type) IsNumeric() bool { return t.IsInteger() || t.IsFloat() }

// Well-known singleton values.
var (
	Unresolved     = Type{KindUnresolved}
	I32            = Type{KindI32}
	I64            = Type{KindI64}
	F32            = Type{KindF32}
	F64            = Type{KindF64}
	StringType     = Type{KindString}
	Bool           = Type{KindBool}
	Void           = Type{KindVoid}
	ComptimeInt    = Type{KindComptimeInt}
	ComptimeFloat  = Type{KindComptimeFloat}
)

// FromName resolves a declared type-annotation name (as it appears in
// source: "i32", "i64", "f32", "f64", "string", "bool", "void") to a
// concrete Type. Comptime types never appear on an annotation, so they
// are deliberately not recognized here — an unknown name is reported by
// ok=false so the caller can raise UnknownSymbol/TypeMismatch as fits
// the context.
func FromName(name string) (Type, bool) {
	switch name {
	case "i32":
		return I32, true
	case "i64":
		return I64, true
	case "f32":
		return F32, true
	case "f64":
		return F64, true
	case "string":
		return StringType, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	default:
		return Unresolved, false
	}
}

// Classify returns the comptime type of a numeric literal from its
// textual lexeme: a decimal point or exponent marks it comptime_float,
// otherwise comptime_int.
func Classify(isFloatLexeme bool) Type {
	if isFloatLexeme {
		return ComptimeFloat
	}
	return ComptimeInt
}

// CanCoerce reports whether a value of type `from` may implicitly
// convert to `to` under contextual typing. bool is isolated: it never
// coerces to or from a numeric type, comptime or concrete.
func CanCoerce(from, to Type) bool {
	if from.Equals(to) {
		return true
	}
	switch from.Kind {
	case KindComptimeInt:
		switch to.Kind {
		case KindI32, KindI64, KindF32, KindF64:
			return true
		}
	case KindComptimeFloat:
		switch to.Kind {
		case KindF32, KindF64:
			return true
		}
	}
	return false
}

// DefaultConcrete returns the type a comptime value resolves to when no
// target type constrains it: comptime_int → i32, comptime_float → f64.
// Concrete types are returned unchanged.
func DefaultConcrete(t Type) Type {
	switch t.Kind {
	case KindComptimeInt:
		return I32
	case KindComptimeFloat:
		return F64
	default:
		return t
	}
}

// Resolve adapts an expression's type against an optional target type.
// With no target, comptime values take their default concrete type and
// concrete values pass through unchanged. With a target, the expression
// type must coerce to it (or already equal it); anything else is a
// coercion failure reported via ok=false.
func Resolve(exprType Type, target *Type) (Type, bool) {
	if target == nil {
		return DefaultConcrete(exprType), true
	}
	if exprType.Equals(*target) {
		return *target, true
	}
	if exprType.IsComptime() && CanCoerce(exprType, *target) {
		return *target, true
	}
	return Unresolved, false
}

// ConversionAllowed reports whether the explicit `expr : T` operator may
// convert a value of type `from` (a comptime source is taken at its
// default concrete type) to `to`. Any numeric-to-numeric pair is
// permitted, narrowing included (narrowing is a deliberate user act).
// Every other pair, including anything involving bool, string or void,
// is permitted only when both sides are the same type.
func ConversionAllowed(from, to Type) bool {
	if !to.IsConcrete() {
		return false
	}
	concreteFrom := DefaultConcrete(from)
	if concreteFrom.Kind == KindBool || to.Kind == KindBool {
		return concreteFrom.Kind == to.Kind
	}
	if concreteFrom.Kind == KindString || to.Kind == KindString {
		return concreteFrom.Kind == to.Kind
	}
	return concreteFrom.IsNumeric() && to.IsNumeric() || concreteFrom.Equals(to)
}

// CoercionError describes why a from→to coercion is invalid. It is a
// plain value (not wired into the error-kind taxonomy) so TypeSystem
// callers can format it however their caller's diagnostic kind demands.
type CoercionError struct {
	From Type
	To   Type
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s to %s", e.From, e.To)
}
