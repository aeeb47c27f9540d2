// File: parser.go
// Title: Calculator Recursive Descent Parser
// Description: Builds an expression tree from a token stream using one
//              function per precedence level. Tokens are pulled from the
//              stream one at a time and never rewound.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser
//
// Grammar:
//
//	statement  := KEYWORD(var) IDENTIFIER EQ expression | expression
//	expression := comparison ( (AND|OR) comparison )*
//	comparison := NOT comparison
//	            | additive ( (LT|GT|LTE|GTE|NE|EQEQ) additive )*
//	additive   := term ( (PLUS|MINUS) term )*
//	term       := factor ( (MULTIPLY|DIVIDE|MODULO) factor )*
//	factor     := (PLUS|MINUS) factor | power
//	power      := atom ( POWER factor )*
//	atom       := NUMBER | IDENTIFIER | LEFT_PAREN expression RIGHT_PAREN

package parser

import (
	mdwast "github.com/msto63/pascal/foundation/calc/ast"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

// Parser turns token streams into expression trees. A Parser keeps no
// state between calls to Parse but is not safe for concurrent use.
type Parser struct {
	tokens   TokenReader
	current  Token
	previous Token
	logger   *mdwlog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		logger: opts.Logger.WithField("component", "calc-parser"),
	}
}

// Parse parses tokens with a parser using the default logger
func Parse(tokens TokenReader) (mdwast.Node, error) {
	return New(Options{}).Parse(tokens)
}

// ParseString tokenizes and parses text
func ParseString(text string) (mdwast.Node, error) {
	return Parse(Tokenize(text))
}

var comparisonOps = map[TokenType]mdwast.Operator{
	TokenLT:   mdwast.OpLessThan,
	TokenGT:   mdwast.OpGreaterThan,
	TokenLTE:  mdwast.OpLessOrEqual,
	TokenGTE:  mdwast.OpGreaterOrEqual,
	TokenNE:   mdwast.OpNotEqual,
	TokenEqEq: mdwast.OpEqual,
}

// Parse consumes tokens and returns the tree. An empty stream yields a
// nil node and no error. Tokens after a complete statement are a syntax
// error.
func (p *Parser) Parse(tokens TokenReader) (mdwast.Node, error) {
	p.tokens = tokens
	p.current = Token{Type: TokenEOF, Position: -1}
	p.previous = p.current
	defer func() { p.tokens = nil }()

	if err := p.advance(); err != nil {
		return nil, p.fail(err)
	}
	if p.current.Type == TokenEOF {
		p.logger.Trace("empty token stream")
		return nil, nil
	}

	node, err := p.parseStatement()
	if err != nil {
		return nil, p.fail(err)
	}
	if p.current.Type != TokenEOF {
		return nil, p.fail(p.syntaxError())
	}

	p.logger.Trace("parse completed", mdwlog.Fields{"tree": node.String()})
	return node, nil
}

func (p *Parser) fail(err error) error {
	p.logger.Debug("parse failed", mdwlog.Fields{
		"error":      err.Error(),
		"error_code": mdwerror.GetCode(err).String(),
	})
	return err
}

// parseStatement parses an assignment or a plain expression
func (p *Parser) parseStatement() (mdwast.Node, error) {
	if p.current.Type != TokenKeyword || p.current.Text != "var" {
		return p.parseExpression()
	}

	pos := p.position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.current.Type != TokenIdentifier {
		return nil, p.syntaxError()
	}
	name := p.current.Text

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.current.Type != TokenEq {
		return nil, p.syntaxError()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &mdwast.Assignment{Name: name, Value: value, Pos: pos}, nil
}

// parseExpression parses comparisons joined by && and ||
func (p *Parser) parseExpression() (mdwast.Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAnd || p.current.Type == TokenOr {
		op := mdwast.OpAnd
		if p.current.Type == TokenOr {
			op = mdwast.OpOr
		}
		if left, err = p.binary(left, op, p.parseComparison); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseComparison parses a negation or a chain of comparisons
func (p *Parser) parseComparison() (mdwast.Node, error) {
	if p.current.Type == TokenNot {
		pos := p.position()
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &mdwast.Unary{Op: mdwast.OpNot, Operand: operand, Pos: pos}, nil
	}

	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.current.Type]
		if !ok {
			return left, nil
		}
		if left, err = p.binary(left, op, p.parseAdditive); err != nil {
			return nil, err
		}
	}
}

// parseAdditive parses terms joined by + and -
func (p *Parser) parseAdditive() (mdwast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op mdwast.Operator
		switch p.current.Type {
		case TokenPlus:
			op = mdwast.OpAdd
		case TokenMinus:
			op = mdwast.OpSubtract
		default:
			return left, nil
		}
		if left, err = p.binary(left, op, p.parseTerm); err != nil {
			return nil, err
		}
	}
}

// parseTerm parses factors joined by *, / and %
func (p *Parser) parseTerm() (mdwast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op mdwast.Operator
		switch p.current.Type {
		case TokenMultiply:
			op = mdwast.OpMultiply
		case TokenDivide:
			op = mdwast.OpDivide
		case TokenModulo:
			op = mdwast.OpModulo
		default:
			return left, nil
		}
		if left, err = p.binary(left, op, p.parseFactor); err != nil {
			return nil, err
		}
	}
}

// parseFactor parses any number of sign prefixes followed by a power
func (p *Parser) parseFactor() (mdwast.Node, error) {
	var op mdwast.Operator
	switch p.current.Type {
	case TokenEOF:
		return nil, p.unexpectedEOF()
	case TokenPlus:
		op = mdwast.OpPlus
	case TokenMinus:
		op = mdwast.OpMinus
	default:
		return p.parsePower()
	}

	pos := p.position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &mdwast.Unary{Op: op, Operand: operand, Pos: pos}, nil
}

// parsePower parses an atom raised to a factor. The exponent is a full
// factor, so chains nest to the right and signed exponents are allowed.
func (p *Parser) parsePower() (mdwast.Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenPower {
		if left, err = p.binary(left, mdwast.OpPower, p.parseFactor); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parseAtom parses a number, a variable or a parenthesised expression
func (p *Parser) parseAtom() (mdwast.Node, error) {
	tok := p.current
	pos := p.position()

	switch tok.Type {
	case TokenEOF:
		return nil, p.unexpectedEOF()

	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &mdwast.NumberLiteral{Value: tok.Number, Pos: pos}, nil

	case TokenIdentifier:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &mdwast.ValueAccess{Name: tok.Text, Pos: pos}, nil

	case TokenLeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRightParen {
			return nil, p.syntaxError()
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, p.syntaxError()
}

// binary consumes the operator token, parses the right operand with next
// and returns the combined node
func (p *Parser) binary(left mdwast.Node, op mdwast.Operator, next func() (mdwast.Node, error)) (mdwast.Node, error) {
	pos := p.position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := next()
	if err != nil {
		return nil, err
	}
	return &mdwast.Binary{Op: op, Left: left, Right: right, Pos: pos}, nil
}

// advance pulls the next token from the stream
func (p *Parser) advance() error {
	p.previous = p.current
	tok, done, err := p.tokens.Next()
	if err != nil {
		return err
	}
	if done {
		p.current = Token{Type: TokenEOF, Position: -1}
		return nil
	}
	p.current = tok
	return nil
}

func (p *Parser) position() mdwast.Position {
	return mdwast.Position{Offset: p.current.Position}
}

func (p *Parser) syntaxError() error {
	err := mdwerror.New("Invalid syntax").
		WithCode(mdwerror.CodeSyntaxError).
		WithDetail("found", p.current.String())
	if p.current.Position >= 0 {
		err.WithDetail("offset", p.current.Position)
	}
	return err
}

func (p *Parser) unexpectedEOF() error {
	return mdwerror.New("Unexpected EOF").
		WithCode(mdwerror.CodeUnexpectedEOF).
		WithDetail("after", p.previous.String())
}
