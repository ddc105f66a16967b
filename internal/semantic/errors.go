package semantic

import (
	"fmt"
	"sort"

	"github.com/kiinaq/hexen-sub005/internal/errors"
	"github.com/kiinaq/hexen-sub005/internal/token"
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// ErrorKind classifies a SemanticError.
type ErrorKind string

const (
	DuplicateSymbol         ErrorKind = "DuplicateSymbol"
	UnknownSymbol           ErrorKind = "UnknownSymbol"
	UninitializedRead       ErrorKind = "UninitializedRead"
	ImmutableAssign         ErrorKind = "ImmutableAssign"
	TypeMismatch            ErrorKind = "TypeMismatch"
	InvalidCoercion         ErrorKind = "InvalidCoercion"
	MissingReturn           ErrorKind = "MissingReturn"
	VoidReturnsValue        ErrorKind = "VoidReturnsValue"
	BlockRequiresFinalReturn ErrorKind = "BlockRequiresFinalReturn"
	NonBoolInLogical        ErrorKind = "NonBoolInLogical"
	NonIntegerInIntDivision ErrorKind = "NonIntegerInIntDivision"
	UndefRequiresAnnotation ErrorKind = "UndefRequiresAnnotation"
	UndefRequiresMut        ErrorKind = "UndefRequiresMut"
	UnknownFunction         ErrorKind = "UnknownFunction"
	ArgumentCountMismatch   ErrorKind = "ArgumentCountMismatch"
)

// SemanticError is one structured diagnostic: a kind, a user-facing
// message, a source position, and zero or more remedial hints.
type SemanticError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
	Hints   []string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Pos)
}

// ToCompilerError converts a SemanticError into the CLI's display-ready
// CompilerError, attaching the source text for the caret/context render.
func (e *SemanticError) ToCompilerError(source, file string) *errors.CompilerError {
	ce := errors.NewCompilerError(e.Pos, e.Message, source, file)
	ce.Hints = e.Hints
	return ce
}

// ErrorCollector batches every diagnostic raised during one analysis
// run. Errors are never raised as Go panics; panics are reserved for
// internal invariant violations (see internalBug in analyzer.go).
type ErrorCollector struct {
	errors []*SemanticError
}

func newErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

func (c *ErrorCollector) add(kind ErrorKind, pos token.Position, message string, hints ...string) {
	c.errors = append(c.errors, &SemanticError{Kind: kind, Message: message, Pos: pos, Hints: hints})
}

// Errors returns every collected diagnostic in source order: sorted by
// line and column, with diagnostics at the same position kept in the
// order analysis raised them.
func (c *ErrorCollector) Errors() []*SemanticError {
	sort.SliceStable(c.errors, func(i, j int) bool {
		pi, pj := c.errors[i].Pos, c.errors[j].Pos
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	return c.errors
}

func (c *ErrorCollector) duplicateSymbol(pos token.Position, name string) {
	c.add(DuplicateSymbol, pos, fmt.Sprintf("'%s' is already declared in this scope", name))
}

func (c *ErrorCollector) unknownSymbol(pos token.Position, name string) {
	c.add(UnknownSymbol, pos, fmt.Sprintf("undefined symbol '%s'", name))
}

func (c *ErrorCollector) uninitializedRead(pos token.Position, name string) {
	c.add(UninitializedRead, pos, fmt.Sprintf("'%s' is read before being assigned", name),
		fmt.Sprintf("assign a value to '%s' before this read", name))
}

func (c *ErrorCollector) immutableAssign(pos token.Position, name string) {
	c.add(ImmutableAssign, pos, fmt.Sprintf("cannot assign to '%s': declared with 'val'", name),
		fmt.Sprintf("declare '%s' with 'mut' if it needs to be reassigned", name))
}

func (c *ErrorCollector) typeMismatch(pos token.Position, message string, hint string) {
	c.add(TypeMismatch, pos, message, hint)
}

func (c *ErrorCollector) invalidCoercion(pos token.Position, from, to types.Type) {
	c.add(InvalidCoercion, pos,
		fmt.Sprintf("cannot coerce %s to %s", from, to),
		fmt.Sprintf("add an explicit conversion: `: %s`", to))
}

func (c *ErrorCollector) missingReturn(pos token.Position, funcName string) {
	c.add(MissingReturn, pos, fmt.Sprintf("function '%s' must return a value on every path", funcName))
}

func (c *ErrorCollector) voidReturnsValue(pos token.Position, funcName string) {
	c.add(VoidReturnsValue, pos, fmt.Sprintf("function '%s' returns void and cannot return a value", funcName),
		"use a bare `return` or remove the return type annotation")
}

func (c *ErrorCollector) blockRequiresFinalReturn(pos token.Position) {
	c.add(BlockRequiresFinalReturn, pos, "expression block must end with `return <expr>` to produce a value",
		"add a final `return <expr>` statement")
}

func (c *ErrorCollector) nonBoolInLogical(pos token.Position, op string, got types.Type) {
	c.add(NonBoolInLogical, pos, fmt.Sprintf("operator %q requires bool operands, got %s", op, got))
}

func (c *ErrorCollector) nonIntegerInIntDivision(pos token.Position, op string, left, right types.Type) {
	c.add(NonIntegerInIntDivision, pos,
		fmt.Sprintf("operator %q requires integer operands, got %s and %s", op, left, right),
		"use `/` for floating-point division")
}

func (c *ErrorCollector) undefRequiresAnnotation(pos token.Position, name string) {
	c.add(UndefRequiresAnnotation, pos, fmt.Sprintf("'%s = undef' requires an explicit type annotation", name),
		fmt.Sprintf("add a type annotation: `mut %s : <Type> = undef`", name))
}

func (c *ErrorCollector) undefRequiresMut(pos token.Position, name string) {
	c.add(UndefRequiresMut, pos, fmt.Sprintf("'%s' cannot be declared 'undef' with 'val'", name),
		fmt.Sprintf("declare '%s' with 'mut' instead", name))
}

func (c *ErrorCollector) unknownFunction(pos token.Position, name string) {
	c.add(UnknownFunction, pos, fmt.Sprintf("undefined function '%s'", name))
}

func (c *ErrorCollector) argumentCountMismatch(pos token.Position, name string, expected, got int) {
	c.add(ArgumentCountMismatch, pos,
		fmt.Sprintf("function '%s' expects %d argument(s), got %d", name, expected, got))
}
