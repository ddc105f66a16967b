package parser

import "github.com/kiinaq/hexen-sub005/internal/token"

// ParserError is a single syntax diagnostic, collected rather than
// raised, so the parser can keep going past one bad token and report
// everything wrong with the source in one pass.
type ParserError struct {
	Message string
	Pos     token.Position
}

func (e *ParserError) Error() string { return e.Message }

func newParserError(pos token.Position, msg string) *ParserError {
	return &ParserError{Message: msg, Pos: pos}
}
