// internal/parser/parser.go
package parser

import (
	"jminus/internal/errors"
	"jminus/internal/lexer"
)

// Binary operator precedence, lowest first.
var precedence = map[lexer.TokenType]int{
	lexer.TokenDoubleEqual: 1, // ==
	lexer.TokenNotEqual:    1, // !=
	lexer.TokenLT:          2, // <
	lexer.TokenGT:          2, // >
	lexer.TokenLE:          2, // <=
	lexer.TokenGE:          2, // >=
	lexer.TokenPlus:        3, // +
	lexer.TokenMinus:       3, // -
	lexer.TokenStar:        4, // *
	lexer.TokenSlash:       4, // /
}

type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []error
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		Errors:  []error{},
	}
}

func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		before := p.current
		stmts = append(stmts, p.statement())
		if p.current == before {
			// No progress; skip the offending token so the loop terminates.
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) statement() Stmt {
	// Variable declaration
	if p.match(lexer.TokenLet) {
		nameTok := p.consume(lexer.TokenIdent, "Expect variable name after 'let'")
		p.consume(lexer.TokenEqual, "Expect '=' after variable name")
		init := p.expression()
		p.consume(lexer.TokenSemicolon, "Expect ';' after declaration")
		return &LetStmt{Name: nameTok.Lexeme, Init: init, Line: nameTok.Line}
	}

	// Print statement
	if p.match(lexer.TokenYap) {
		p.consume(lexer.TokenLParen, "Expect '(' after 'yap'")
		expr := p.expression()
		p.consume(lexer.TokenRParen, "Expect ')' after yap argument")
		p.consume(lexer.TokenSemicolon, "Expect ';' after yap statement")
		return &YapStmt{Expr: expr}
	}

	// If statement
	if p.match(lexer.TokenIf) {
		return p.ifStatement()
	}

	// While loop
	if p.match(lexer.TokenWhile) {
		return p.whileStatement()
	}

	// Block
	if p.match(lexer.TokenLBrace) {
		return p.blockStatement()
	}

	// Expression statement
	expr := p.expression()
	p.consume(lexer.TokenSemicolon, "Expect ';' after expression")
	return &ExpressionStmt{Expr: expr}
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.TokenLParen, "Expect '(' after 'if'")
	condition := p.expression()
	p.consume(lexer.TokenRParen, "Expect ')' after if condition")
	then := p.statement()

	var elseBranch Stmt
	if p.match(lexer.TokenElse) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.TokenLParen, "Expect '(' after 'while'")
	condition := p.expression()
	p.consume(lexer.TokenRParen, "Expect ')' after while condition")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) blockStatement() Stmt {
	var stmts []Stmt
	for !p.check(lexer.TokenRBrace) && !p.isAtEnd() {
		before := p.current
		stmts = append(stmts, p.statement())
		if p.current == before {
			p.advance()
		}
	}
	p.consume(lexer.TokenRBrace, "Expect '}' after block")
	return &BlockStmt{Statements: stmts}
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment parses `target = value` right-associatively. The result is
// an ordinary Binary node with operator "="; the compiler checks that the
// left side is a variable.
func (p *Parser) assignment() Expr {
	expr := p.binary(1)

	if p.check(lexer.TokenEqual) {
		eq := p.advance()
		value := p.assignment()
		return &Binary{Left: expr, Operator: eq.Lexeme, Right: value, Line: eq.Line}
	}
	return expr
}

// binary climbs the precedence table for left-associative operators.
func (p *Parser) binary(minPrec int) Expr {
	left := p.primary()

	for {
		prec, ok := precedence[p.peek().Type]
		if !ok || prec < minPrec {
			return left
		}
		op := p.advance()
		right := p.binary(prec + 1)
		left = &Binary{Left: left, Operator: op.Lexeme, Right: right, Line: op.Line}
	}
}

func (p *Parser) primary() Expr {
	if p.check(lexer.TokenInt) {
		tok := p.advance()
		return &Literal{Value: tok.Lexeme, Line: tok.Line}
	}
	if p.check(lexer.TokenIdent) {
		tok := p.advance()
		return &Variable{Name: tok.Lexeme, Line: tok.Line}
	}
	if p.match(lexer.TokenLParen) {
		expr := p.expression()
		p.consume(lexer.TokenRParen, "Expect ')' after expression")
		return &Grouping{Expression: expr}
	}

	tok := p.peek()
	p.Errors = append(p.Errors,
		errors.NewAt(errors.SyntaxError, "Expect expression, got "+string(tok.Type), tok.Line))
	return &Literal{Value: "0", Line: tok.Line}
}

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	tok := p.peek()
	p.Errors = append(p.Errors, errors.NewAt(errors.SyntaxError, message, tok.Line))
	return tok
}

func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}
