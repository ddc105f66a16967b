package semantic

import (
	"github.com/kiinaq/hexen-sub005/internal/types"
)

// ScopeKind tags what syntactic construct introduced a scope frame.
type ScopeKind int

const (
	ScopeFunction ScopeKind = iota
	ScopeBlock
)

// Symbol is one declared name: its type, mutability, and initialization
// state.
type Symbol struct {
	Name        string
	Type        types.Type
	Mutable     bool
	Initialized bool
}

// SymbolTable is a stack of lexical scope frames, implemented as a chain
// of linked frames (innermost first) — entering a scope allocates a new
// frame whose outer pointer is the enclosing frame; leaving simply drops
// the reference, a strict LIFO discipline.
type SymbolTable struct {
	symbols map[string]*Symbol
	outer   *SymbolTable
	kind    ScopeKind

	// ReturnType is set only on Function frames; BlockAnalyzer and the
	// Return-statement check walk outward to the nearest Function frame
	// to find it.
	returnType    types.Type
	hasReturnType bool
}

// NewSymbolTable creates the root (program) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Enter pushes a new scope frame of the given kind.
func (st *SymbolTable) Enter(kind ScopeKind) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		outer:   st,
		kind:    kind,
	}
}

// Leave returns the enclosing scope. Calling Leave on the root scope
// returns nil; callers must never do this — it is an internal invariant
// violation (unbalanced enter/leave), not a user error.
func (st *SymbolTable) Leave() *SymbolTable {
	return st.outer
}

// Declare adds a new symbol to the current scope. It reports false if a
// symbol with the same name already exists in this exact scope —
// shadowing an outer scope's symbol is allowed and is not a duplicate.
func (st *SymbolTable) Declare(sym *Symbol) bool {
	if _, exists := st.symbols[sym.Name]; exists {
		return false
	}
	st.symbols[sym.Name] = sym
	return true
}

// Lookup resolves a name innermost-scope-first.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for s := st; s != nil; s = s.outer {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// MarkInitialized flips a mut symbol's initialized flag after its first
// assignment. No-op if the symbol cannot be found in any enclosing
// scope (the caller should already have confirmed it resolves).
func (st *SymbolTable) MarkInitialized(name string) {
	if sym, ok := st.Lookup(name); ok {
		sym.Initialized = true
	}
}

// SetFunctionReturnType records the declared return type on a Function
// scope frame.
func (st *SymbolTable) SetFunctionReturnType(t types.Type) {
	st.returnType = t
	st.hasReturnType = true
}

// EnclosingFunctionReturnType walks outward to the nearest Function
// frame and returns its declared return type. ok is false only if the
// symbol table was built without ever entering a Function scope, which
// is an internal invariant violation (every Return statement lives
// inside some function).
func (st *SymbolTable) EnclosingFunctionReturnType() (types.Type, bool) {
	for s := st; s != nil; s = s.outer {
		if s.kind == ScopeFunction && s.hasReturnType {
			return s.returnType, true
		}
	}
	return types.Unresolved, false
}
