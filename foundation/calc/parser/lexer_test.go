// File: lexer_test.go
// Title: Calculator Lexer Unit Tests
// Description: Tests for number normalisation, identifiers and keywords,
//              operators, whitespace, illegal characters and laziness.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/foundation/utils/mathx"
)

func numTok(s string) Token {
	return NumberToken(mathx.MustNewDecimal(s))
}

func op(tt TokenType) Token {
	return OperatorToken(tt)
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\r\n ", nil},
		{"integer", "12", []Token{numTok("12")}},
		{"decimal", "3.25", []Token{numTok("3.25")}},
		{
			"operators",
			"+ - * / ^ % ( )",
			[]Token{
				op(TokenPlus), op(TokenMinus), op(TokenMultiply), op(TokenDivide),
				op(TokenPower), op(TokenModulo), op(TokenLeftParen), op(TokenRightParen),
			},
		},
		{
			"comparison operators",
			"= == < > <= >= ! != && ||",
			[]Token{
				op(TokenEq), op(TokenEqEq), op(TokenLT), op(TokenGT), op(TokenLTE),
				op(TokenGTE), op(TokenNot), op(TokenNE), op(TokenAnd), op(TokenOr),
			},
		},
		{
			"operators without spaces",
			"a<=b==!c",
			[]Token{
				IdentifierToken("a"), op(TokenLTE), IdentifierToken("b"),
				op(TokenEqEq), op(TokenNot), IdentifierToken("c"),
			},
		},
		{
			"assignment",
			"var my_var1 = 100 * 2",
			[]Token{
				KeywordToken("var"), IdentifierToken("my_var1"), op(TokenEq),
				numTok("100"), op(TokenMultiply), numTok("2"),
			},
		},
		{"keyword prefix is an identifier", "variable", []Token{IdentifierToken("variable")}},
		{"keyword is case sensitive", "VAR", []Token{IdentifierToken("VAR")}},
		{
			"identifier followed by number",
			"x1 1x",
			[]Token{IdentifierToken("x1"), numTok("1"), IdentifierToken("x")},
		},
		{
			"second point starts a new number",
			"1.2.3",
			[]Token{numTok("1.2"), numTok("0.3")},
		},
		{
			"expression",
			"(-3 + +0.2) * 18.0",
			[]Token{
				op(TokenLeftParen), op(TokenMinus), numTok("3"), op(TokenPlus),
				op(TokenPlus), numTok("0.2"), op(TokenRightParen), op(TokenMultiply),
				numTok("18.0"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(Tokenize(tt.input))
			if err != nil {
				t.Fatalf("Collect() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_NumberNormalisation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{".70", "0.70"},
		{"12.", "12.0"},
		{".", "0.0"},
		{"007", "007"},
		{"0.5", "0.5"},
		{"100.000", "100.000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Collect(Tokenize(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 1 || tokens[0].Type != TokenNumber {
				t.Fatalf("Expected exactly one NUMBER token, got %v", tokens)
			}
			want := mathx.MustNewDecimal(tt.want)
			if !tokens[0].Number.Equal(want) || tokens[0].Number.Scale() != want.Scale() {
				t.Errorf("payload = %s (scale %d), want %s (scale %d)",
					tokens[0].Number, tokens[0].Number.Scale(), want, want.Scale())
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := Collect(Tokenize("  ab <= 1.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 5, 8}
	for i, tok := range tokens {
		if tok.Position != want[i] {
			t.Errorf("token %d position = %d, want %d", i, tok.Position, want[i])
		}
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		char    string
		offset  int
		message string
	}{
		{"dollar", "1 + $", "$", 4, "Illegal character, '$'"},
		{"lone ampersand", "1 & 2", "&", 2, "Illegal character, '&'"},
		{"lone pipe", "a | b", "|", 2, "Illegal character, '|'"},
		{"trailing ampersand", "a &", "&", 2, "Illegal character, '&'"},
		{"non ascii letter", "ä", "ä", 0, "Illegal character, 'ä'"},
		{"underscore start", "_x", "_", 0, "Illegal character, '_'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect(Tokenize(tt.input))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeIllegalCharacter) {
				t.Errorf("Expected ILLEGAL_CHARACTER, got %v", mdwerror.GetCode(err))
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}

			var mdwErr *mdwerror.Error
			if e, ok := err.(*mdwerror.Error); ok {
				mdwErr = e
			} else {
				t.Fatalf("Expected *error.Error, got %T", err)
			}
			if v, _ := mdwErr.Detail("offset"); v != tt.offset {
				t.Errorf("offset = %v, want %d", v, tt.offset)
			}
			if v, _ := mdwErr.Detail("char"); v != tt.char {
				t.Errorf("char = %v, want %q", v, tt.char)
			}
		})
	}
}

func TestLexer_IsLazy(t *testing.T) {
	lexer := Tokenize("1 $")

	tok, done, err := lexer.Next()
	if err != nil || done {
		t.Fatalf("first Next() = %v, %v, %v; want a token", tok, done, err)
	}
	if !tok.Equal(numTok("1")) {
		t.Errorf("first token = %v, want NUMBER(1)", tok)
	}

	_, _, err = lexer.Next()
	if !mdwerror.HasCode(err, mdwerror.CodeIllegalCharacter) {
		t.Fatalf("second Next() error = %v, want ILLEGAL_CHARACTER", err)
	}

	_, done, again := lexer.Next()
	if again != err || !done {
		t.Errorf("Next() after an error must repeat it, got %v", again)
	}
}

func TestLexer_DoneIsSticky(t *testing.T) {
	lexer := Tokenize("x")
	if _, done, _ := lexer.Next(); done {
		t.Fatal("Expected one token")
	}
	for i := 0; i < 3; i++ {
		if _, done, err := lexer.Next(); !done || err != nil {
			t.Fatalf("Next() #%d after end = done %v, err %v", i, done, err)
		}
	}
}

func TestToken_EqualAndString(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Token
		equal bool
	}{
		{"same number different scale", numTok("0.70"), numTok("0.7"), true},
		{"different numbers", numTok("1"), numTok("2"), false},
		{"identifiers", IdentifierToken("a"), IdentifierToken("a"), true},
		{"identifier vs keyword", IdentifierToken("var"), KeywordToken("var"), false},
		{"operators ignore position", Token{Type: TokenPlus, Position: 3}, op(TokenPlus), true},
		{"different operators", op(TokenLT), op(TokenLTE), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
		})
	}

	if got := numTok("0.70").String(); got != "NUMBER(0.70)" {
		t.Errorf("String() = %q", got)
	}
	if got := IdentifierToken("x").String(); got != "IDENTIFIER(x)" {
		t.Errorf("String() = %q", got)
	}
	if got := op(TokenGTE).String(); got != "GTE" {
		t.Errorf("String() = %q", got)
	}
	if got := TokenType(-1).String(); got != "UNKNOWN" {
		t.Errorf("String() = %q", got)
	}
}

func TestFromTokensReplays(t *testing.T) {
	want := []Token{numTok("1"), op(TokenPlus), numTok("2")}
	got, err := Collect(FromTokens(want...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}
