package parser

import "github.com/kiinaq/hexen-sub005/internal/token"

// Precedence levels for Hexen's expression grammar, lowest to highest.
const (
	_ int = iota
	LOWEST
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALITY    // == !=
	RELATIONAL  // < <= > >=
	ADDITIVE    // + -
	MULTIPLICATIVE // * / \ %
	UNARY       // -x, !x
	CONVERSION  // expr : Type
	CALL        // function(args)
)

var precedences = map[token.Type]int{
	token.OR_OR:       LOGICAL_OR,
	token.AND_AND:     LOGICAL_AND,
	token.EQ:          EQUALITY,
	token.NOT_EQ:      EQUALITY,
	token.LESS:        RELATIONAL,
	token.LESS_EQ:     RELATIONAL,
	token.GREATER:     RELATIONAL,
	token.GREATER_EQ:  RELATIONAL,
	token.PLUS:        ADDITIVE,
	token.MINUS:       ADDITIVE,
	token.STAR:        MULTIPLICATIVE,
	token.SLASH:       MULTIPLICATIVE,
	token.BACKSLASH:   MULTIPLICATIVE,
	token.PERCENT:     MULTIPLICATIVE,
	token.COLON:       CONVERSION,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
