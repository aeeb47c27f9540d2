// File: calc_test.go
// Title: Calculator Session Tests
// Description: End to end tests of the session pipeline: evaluation,
//              variables across lines, error codes, input limits and
//              logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial session tests

package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwparser "github.com/msto63/pascal/foundation/calc/parser"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

func newTestSession() *Session {
	return NewSession(Options{Logger: mdwlog.Discard()})
}

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "7"},
		{"10.0 % 6", "4.0"},
		{".70 + 12.", "12.70"},
		{"4*5/2%3", "1"},
		{"!0 && (20+5 <= 80*15)", "true"},
		{"(-3 + +0.2) * 18.0", "-50.40"},
		{"2 ^ 3 ^ 2", "512"},
		{"1 < 0 || 0", "false"},
	}

	s := newTestSession()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := s.Eval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestSession_BlankInput(t *testing.T) {
	s := newTestSession()
	for _, input := range []string{"", "  ", "\t"} {
		v, err := s.Eval(input)
		require.NoError(t, err)
		assert.True(t, v.IsVoid(), "input %q", input)
	}
}

func TestSession_Variables(t *testing.T) {
	s := newTestSession()

	v, err := s.Eval("var a = 2")
	require.NoError(t, err)
	assert.True(t, v.IsVoid())

	_, err = s.Eval("var a = 30")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAlreadyDefined))
	assert.Equal(t, "'a' is already defined", err.Error())

	v, err = s.Eval("a")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())

	_, err = s.Eval("var rate = 0.19")
	require.NoError(t, err)
	v, err = s.Eval("100 * (1 + rate)")
	require.NoError(t, err)
	assert.Equal(t, "119.00", v.String())

	assert.Equal(t, []string{"a", "rate"}, s.Symbols().Names())
}

func TestSession_ErrorsDoNotBreakSession(t *testing.T) {
	s := newTestSession()

	steps := []struct {
		input string
		code  mdwerror.Code
	}{
		{"1 + $", mdwerror.CodeIllegalCharacter},
		{"1 2", mdwerror.CodeSyntaxError},
		{"(1 + 2", mdwerror.CodeSyntaxError},
		{"3 *", mdwerror.CodeUnexpectedEOF},
		{"nope", mdwerror.CodeUndefinedVariable},
		{"1 / 0", mdwerror.CodeMathError},
		{"(0 - 8) ^ 2", mdwerror.CodeMathError},
		{"(1 < 2) == 1", mdwerror.CodeTypeMismatch},
	}

	for _, step := range steps {
		_, err := s.Eval(step.input)
		require.Error(t, err, step.input)
		assert.Equal(t, step.code, mdwerror.GetCode(err), step.input)
	}

	v, err := s.Eval("6 * 7")
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	stats := s.Stats()
	assert.Equal(t, len(steps)+1, stats.Evaluations)
	assert.Equal(t, len(steps), stats.Failures)
	assert.Equal(t, s.ID(), stats.SessionID)
}

func TestSession_MaxInputLength(t *testing.T) {
	s := NewSession(Options{Logger: mdwlog.Discard(), MaxInputLength: 8})

	_, err := s.Eval("1+1+1+1+1")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	v, err := s.Eval("1+1+1+1")
	require.NoError(t, err)
	assert.Equal(t, "4", v.String())

	_, err = s.Tokens(strings.Repeat("1", 9))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestSession_MaxExponent(t *testing.T) {
	s := NewSession(Options{Logger: mdwlog.Discard(), MaxExponent: 3})

	_, err := s.Eval("2 ^ 4")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMathError))

	v, err := s.Eval("2 ^ 3")
	require.NoError(t, err)
	assert.Equal(t, "8", v.String())
}

func TestSession_PowerResultSize(t *testing.T) {
	s := newTestSession()

	_, err := s.Eval("var big = 9 ^ 10000")
	require.NoError(t, err)

	_, err = s.Eval("(9 ^ 10000) ^ 1000")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMathError))
	assert.Equal(t, "Runtime math error: power result too large", err.Error())

	v, err := s.Eval("big / big")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	small := NewSession(Options{Logger: mdwlog.Discard(), MaxPowerDigits: 10})
	_, err = small.Eval("2 ^ 100")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMathError))
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	_, err := s.Eval("var x = 1")
	require.NoError(t, err)

	s.Reset()
	assert.Empty(t, s.Symbols().Names())

	_, err = s.Eval("x")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeUndefinedVariable))

	_, err = s.Eval("var x = 5")
	assert.NoError(t, err)
}

func TestSession_ParseAndTokens(t *testing.T) {
	s := newTestSession()

	node, err := s.Parse("var y = 2 ^ -1")
	require.NoError(t, err)
	assert.Equal(t, "var y = (2 ^ (-1))", node.String())

	node, err = s.Parse("   ")
	require.NoError(t, err)
	assert.Nil(t, node)

	tokens, err := s.Tokens("x <= .5")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, mdwparser.TokenIdentifier, tokens[0].Type)
	assert.Equal(t, mdwparser.TokenLTE, tokens[1].Type)
	assert.Equal(t, "NUMBER(0.5)", tokens[2].String())
}

func TestSession_ID(t *testing.T) {
	a := newTestSession()
	b := newTestSession()

	_, err := uuid.Parse(a.ID())
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	s := NewSession(Options{Logger: logger})

	_, err := s.Eval("1 +")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"session_id":"`+s.ID()+`"`)
	assert.Contains(t, out, `"error_code":"UNEXPECTED_EOF"`)
	assert.Contains(t, out, `"stage":"parse"`)
	assert.Contains(t, out, `"component":"calc-session"`)
}
