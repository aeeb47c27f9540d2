// File: token.go
// Title: Calculator Tokens
// Description: Token kinds and the Token type produced by the lexer, plus
//              the TokenReader abstraction the parser consumes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token set

package parser

import (
	"fmt"

	"github.com/msto63/pascal/foundation/utils/mathx"
)

// TokenType represents the kind of a lexical token
type TokenType int

const (
	// TokenEOF marks the end of the stream inside the parser. The lexer
	// never emits it.
	TokenEOF TokenType = iota

	TokenNumber     // 12, 0.5, .5, 3.
	TokenKeyword    // var
	TokenIdentifier // my_var1

	TokenPlus       // +
	TokenMinus      // -
	TokenMultiply   // *
	TokenDivide     // /
	TokenPower      // ^
	TokenModulo     // %
	TokenLeftParen  // (
	TokenRightParen // )

	TokenEq   // =
	TokenEqEq // ==
	TokenLT   // <
	TokenGT   // >
	TokenLTE  // <=
	TokenGTE  // >=
	TokenNE   // !=
	TokenNot  // !
	TokenAnd  // &&
	TokenOr   // ||
)

var tokenNames = [...]string{
	TokenEOF:        "EOF",
	TokenNumber:     "NUMBER",
	TokenKeyword:    "KEYWORD",
	TokenIdentifier: "IDENTIFIER",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenMultiply:   "MULTIPLY",
	TokenDivide:     "DIVIDE",
	TokenPower:      "POWER",
	TokenModulo:     "MODULO",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
	TokenEq:         "EQ",
	TokenEqEq:       "EQEQ",
	TokenLT:         "LT",
	TokenGT:         "GT",
	TokenLTE:        "LTE",
	TokenGTE:        "GTE",
	TokenNE:         "NE",
	TokenNot:        "NOT",
	TokenAnd:        "AND",
	TokenOr:         "OR",
}

// String returns the upper case name of the token type
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[tt]
}

// keywords is the fixed keyword set
var keywords = map[string]bool{
	"var": true,
}

// Token is a classified lexical unit. Number is set for TokenNumber and
// Text for TokenKeyword and TokenIdentifier.
type Token struct {
	Type     TokenType
	Number   mathx.Decimal
	Text     string
	Position int // byte offset in the input, -1 when unknown
}

// NumberToken returns a NUMBER token
func NumberToken(value mathx.Decimal) Token {
	return Token{Type: TokenNumber, Number: value, Position: -1}
}

// IdentifierToken returns an IDENTIFIER token
func IdentifierToken(name string) Token {
	return Token{Type: TokenIdentifier, Text: name, Position: -1}
}

// KeywordToken returns a KEYWORD token
func KeywordToken(word string) Token {
	return Token{Type: TokenKeyword, Text: word, Position: -1}
}

// OperatorToken returns a token without payload
func OperatorToken(tt TokenType) Token {
	return Token{Type: tt, Position: -1}
}

// Equal compares kind and payload; positions are ignored
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type {
		return false
	}
	switch t.Type {
	case TokenNumber:
		return t.Number.Equal(other.Number)
	case TokenKeyword, TokenIdentifier:
		return t.Text == other.Text
	default:
		return true
	}
}

// String returns e.g. NUMBER(0.70), IDENTIFIER(x) or PLUS
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return fmt.Sprintf("%s(%s)", t.Type, t.Number)
	case TokenKeyword, TokenIdentifier:
		return fmt.Sprintf("%s(%s)", t.Type, t.Text)
	default:
		return t.Type.String()
	}
}

// TokenReader is a single pass token stream. Next returns done=true once
// the stream is exhausted; after an error the stream must not be used.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
}

// Collect drains r into a slice
func Collect(r TokenReader) ([]Token, error) {
	var tokens []Token
	for {
		tok, done, err := r.Next()
		if err != nil {
			return tokens, err
		}
		if done {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// TokenBuffer replays a fixed slice of tokens
type TokenBuffer struct {
	tokens []Token
	pos    int
}

// FromTokens returns a reader over tokens
func FromTokens(tokens ...Token) *TokenBuffer {
	return &TokenBuffer{tokens: tokens}
}

// Next implements TokenReader
func (b *TokenBuffer) Next() (Token, bool, error) {
	if b.pos >= len(b.tokens) {
		return Token{}, true, nil
	}
	tok := b.tokens[b.pos]
	b.pos++
	return tok, false, nil
}
