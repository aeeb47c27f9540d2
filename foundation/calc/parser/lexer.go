// File: lexer.go
// Title: Calculator Lexical Analyzer
// Description: Turns an input line into a lazy stream of tokens. Each call
//              to Next scans exactly one token; the input is read once,
//              front to back.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer

package parser

import (
	"fmt"
	"unicode/utf8"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/foundation/utils/mathx"
)

// Lexer scans one input string. It is not restartable.
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char, 0 at end of input
	err      error
}

// Tokenize returns a lexer over text. Nothing is scanned until Next is
// called, so illegal characters surface from Next.
func Tokenize(text string) *Lexer {
	l := &Lexer{input: text}
	l.readChar()
	return l
}

// Next returns the next token. done is true at end of input. After an
// error every further call returns the same error.
func (l *Lexer) Next() (Token, bool, error) {
	if l.err != nil {
		return Token{}, true, l.err
	}

	l.skipWhitespace()
	if l.atEnd() {
		return Token{}, true, nil
	}

	pos := l.position
	if isDigit(l.ch) || l.ch == '.' {
		tok, err := l.readNumber()
		if err != nil {
			l.err = err
			return Token{}, true, err
		}
		return tok, false, nil
	}
	if isLetter(l.ch) {
		text := l.readIdentifier()
		if keywords[text] {
			return Token{Type: TokenKeyword, Text: text, Position: pos}, false, nil
		}
		return Token{Type: TokenIdentifier, Text: text, Position: pos}, false, nil
	}

	tt, ok := l.readOperator()
	if !ok {
		l.err = l.illegalCharacter(pos)
		return Token{}, true, l.err
	}
	return Token{Type: tt, Position: pos}, false, nil
}

// readOperator consumes a one or two character operator
func (l *Lexer) readOperator() (TokenType, bool) {
	var tt TokenType
	switch l.ch {
	case '+':
		tt = TokenPlus
	case '-':
		tt = TokenMinus
	case '*':
		tt = TokenMultiply
	case '/':
		tt = TokenDivide
	case '^':
		tt = TokenPower
	case '%':
		tt = TokenModulo
	case '(':
		tt = TokenLeftParen
	case ')':
		tt = TokenRightParen
	case '=':
		tt = l.either('=', TokenEqEq, TokenEq)
	case '<':
		tt = l.either('=', TokenLTE, TokenLT)
	case '>':
		tt = l.either('=', TokenGTE, TokenGT)
	case '!':
		tt = l.either('=', TokenNE, TokenNot)
	case '&':
		if l.peekChar() != '&' {
			return 0, false
		}
		l.readChar()
		tt = TokenAnd
	case '|':
		if l.peekChar() != '|' {
			return 0, false
		}
		l.readChar()
		tt = TokenOr
	default:
		return 0, false
	}
	l.readChar()
	return tt, true
}

// either consumes the next char and returns two if it equals next,
// otherwise returns one
func (l *Lexer) either(next byte, two, one TokenType) TokenType {
	if l.peekChar() == next {
		l.readChar()
		return two
	}
	return one
}

// readNumber reads digits with at most one decimal point. A second point
// ends the number and is left for the next token.
func (l *Lexer) readNumber() (Token, error) {
	start := l.position
	seenPoint := false
	for !l.atEnd() && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if seenPoint {
				break
			}
			seenPoint = true
		}
		l.readChar()
	}

	text := l.input[start:l.position]
	if text[0] == '.' {
		text = "0" + text
	}
	if text[len(text)-1] == '.' {
		text += "0"
	}

	value, err := mathx.NewDecimal(text)
	if err != nil {
		return Token{}, mdwerror.Wrap(err, "invalid number literal").
			WithCode(mdwerror.CodeInternal).
			WithDetail("offset", start)
	}
	return Token{Type: TokenNumber, Number: value, Position: start}, nil
}

// readIdentifier reads a letter followed by letters, digits and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch) || l.ch == '_') {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) illegalCharacter(pos int) error {
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return mdwerror.New(fmt.Sprintf("Illegal character, '%c'", r)).
		WithCode(mdwerror.CodeIllegalCharacter).
		WithDetail("offset", pos).
		WithDetail("char", string(r))
}

// readChar advances to the next byte
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	if l.readPos <= len(l.input) {
		l.readPos++
	}
}

// peekChar returns the byte after the current one without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

// isLetter accepts ASCII letters only
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
