// Package parser implements Hexen's parser using Pratt (operator
// precedence) parsing, following the same prefix/infix registration
// technique as the wider example corpus's recursive-descent parsers.
package parser

import (
	"fmt"

	"github.com/kiinaq/hexen-sub005/internal/ast"
	"github.com/kiinaq/hexen-sub005/internal/lexer"
	"github.com/kiinaq/hexen-sub005/internal/token"
)

// prefixParseFn parses an expression that starts with tok (literals,
// identifiers, grouping, unary operators).
type prefixParseFn func(tok token.Token) ast.Expression

// infixParseFn parses an expression continuing from left, where tok is
// the operator token just consumed.
type infixParseFn func(left ast.Expression, tok token.Token) ast.Expression

// Parser turns a token stream into an *ast.Program. Syntax errors are
// collected rather than raised immediately — a single bad token does
// not stop the parser from reporting everything else wrong with the
// source in one pass.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*ParserError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l, primed with its first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT_LIT, p.parseNumberLit)
	p.registerPrefix(token.FLOAT_LIT, p.parseNumberLit)
	p.registerPrefix(token.STRING_LIT, p.parseStringLit)
	p.registerPrefix(token.TRUE, p.parseBoolLit)
	p.registerPrefix(token.FALSE, p.parseBoolLit)
	p.registerPrefix(token.MINUS, p.parseUnary)
	p.registerPrefix(token.BANG, p.parseUnary)
	p.registerPrefix(token.LPAREN, p.parseGrouped)
	p.registerPrefix(token.LBRACE, p.parseBlockExpr)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.BACKSLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.AND_AND, token.OR_OR,
	} {
		p.registerInfix(t, p.parseBinary)
	}
	p.registerInfix(token.COLON, p.parseConversion)

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax diagnostic collected during ParseProgram.
func (p *Parser) Errors() []*ParserError { return p.errors }

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.peekError(t.String())
	return false
}

func (p *Parser) expectTypeKeyword() bool {
	if token.IsTypeKeyword(p.peekToken.Type) {
		p.nextToken()
		return true
	}
	p.peekError("a type name")
	return false
}

func (p *Parser) peekError(expected string) {
	msg := fmt.Sprintf("expected %s, got %s instead", expected, p.peekToken.Type)
	p.errors = append(p.errors, newParserError(p.peekToken.Pos, msg))
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	msg := fmt.Sprintf("no prefix parse function for %s found", t.Type)
	p.errors = append(p.errors, newParserError(t.Pos, msg))
}

// consumeOptionalSemicolon swallows a trailing ';' if present — Hexen
// statements may be terminated by one, but a newline-ending statement
// is equally valid.
func (p *Parser) consumeOptionalSemicolon() {
	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream into a Program: a flat
// sequence of function definitions.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for p.curToken.Type != token.EOF {
		if p.curToken.Type != token.FUNC {
			p.errors = append(p.errors, newParserError(p.curToken.Pos,
				fmt.Sprintf("expected 'func', got %s instead", p.curToken.Type)))
			p.nextToken()
			continue
		}
		if fn := p.parseFunction(); fn != nil {
			program.Functions = append(program.Functions, fn)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseFunction() *ast.Function {
	tok := p.curToken

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParams()

	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectTypeKeyword() {
		return nil
	}
	returnType := p.curToken.Literal

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockBody(p.curToken)

	return &ast.Function{Tok: tok, Name: name, Params: params, ReturnType: returnType, Body: body}
}

func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, p.parseParam())

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}

	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	tok := p.curToken
	name := p.curToken.Literal

	if !p.expectPeek(token.COLON) {
		return &ast.Param{Name: name, Tok: tok}
	}
	if !p.expectTypeKeyword() {
		return &ast.Param{Name: name, Tok: tok}
	}
	return &ast.Param{Name: name, Type: p.curToken.Literal, Tok: tok}
}

// parseBlockBody parses the statements of a `{ ... }` block. tok is the
// already-current '{' token. On return, curToken is the matching '}'
// (or EOF if the block was never closed). Classifying the resulting
// Block as a function body, expression block, or statement block is the
// caller's job — the parser only records the shape.
func (p *Parser) parseBlockBody(tok token.Token) *ast.Block {
	block := &ast.Block{Tok: tok}
	p.nextToken()

	for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curToken.Type != token.RBRACE {
		p.errors = append(p.errors, newParserError(p.curToken.Pos, "expected '}' to close block, got EOF"))
	}

	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.VAL, token.MUT:
		return p.parseVarDecl()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlockBody(p.curToken)
	case token.IDENT:
		if p.peekToken.Type == token.ASSIGN {
			return p.parseAssign()
		}
		return p.parseExprStatement()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.curToken
	mutable := tok.Type == token.MUT

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	typeAnn := ""
	if p.peekToken.Type == token.COLON {
		p.nextToken()
		if !p.expectTypeKeyword() {
			return nil
		}
		typeAnn = p.curToken.Literal
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	isUndef := false
	var value ast.Expression
	if p.curToken.Type == token.UNDEF {
		isUndef = true
	} else {
		value = p.parseExpression(LOWEST)
	}

	p.consumeOptionalSemicolon()
	return &ast.VarDecl{Tok: tok, Name: name, Mutable: mutable, TypeAnn: typeAnn, Value: value, IsUndef: isUndef}
}

func (p *Parser) parseAssign() ast.Statement {
	tok := p.curToken
	name := p.curToken.Literal

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)

	p.consumeOptionalSemicolon()
	return &ast.Assign{Tok: tok, Name: name, Value: value}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken

	var value ast.Expression
	if p.peekToken.Type != token.SEMICOLON && p.peekToken.Type != token.RBRACE {
		p.nextToken()
		value = p.parseExpression(LOWEST)
	}

	p.consumeOptionalSemicolon()
	return &ast.Return{Tok: tok, Value: value}
}

func (p *Parser) parseExprStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	p.consumeOptionalSemicolon()
	return &ast.ExprStmt{Tok: tok, Expression: expr}
}

// parseExpression is the Pratt-parser core: parse a prefix expression,
// then keep folding in infix operators whose precedence exceeds the
// caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix(p.curToken)

	for p.peekToken.Type != token.SEMICOLON && precedence < precedenceOf(p.peekToken.Type) {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		tok := p.peekToken
		p.nextToken()
		left = infix(left, tok)
	}

	return left
}

func (p *Parser) parseIdentifier(tok token.Token) ast.Expression {
	if p.peekToken.Type == token.LPAREN {
		return p.parseCall(tok)
	}
	return &ast.Identifier{Tok: tok, Value: tok.Literal}
}

func (p *Parser) parseCall(tok token.Token) ast.Expression {
	p.nextToken() // consume the identifier, land on '('
	args := p.parseCallArgs()
	return &ast.Call{Tok: tok, Name: tok.Literal, Args: args}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	var args []ast.Expression

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	p.expectPeek(token.RPAREN)
	return args
}

func (p *Parser) parseNumberLit(tok token.Token) ast.Expression {
	return &ast.NumberLit{Tok: tok, Lexeme: tok.Literal, IsFloat: tok.Type == token.FLOAT_LIT}
}

func (p *Parser) parseStringLit(tok token.Token) ast.Expression {
	return &ast.StringLit{Tok: tok, Value: tok.Literal}
}

func (p *Parser) parseBoolLit(tok token.Token) ast.Expression {
	return &ast.BoolLit{Tok: tok, Value: tok.Type == token.TRUE}
}

func (p *Parser) parseUnary(tok token.Token) ast.Expression {
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.Unary{Tok: tok, Op: tok.Literal, Operand: operand}
}

func (p *Parser) parseGrouped(tok token.Token) ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return expr
	}
	return expr
}

func (p *Parser) parseBlockExpr(tok token.Token) ast.Expression {
	return p.parseBlockBody(tok)
}

func (p *Parser) parseBinary(left ast.Expression, tok token.Token) ast.Expression {
	prec := precedenceOf(tok.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.Binary{Tok: tok, Op: tok.Literal, Left: left, Right: right}
}

func (p *Parser) parseConversion(left ast.Expression, tok token.Token) ast.Expression {
	if !p.expectTypeKeyword() {
		return left
	}
	return &ast.Conversion{Tok: tok, Value: left, ToType: p.curToken.Literal}
}
