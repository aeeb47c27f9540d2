// File: calc.go
// Title: Calculator Session Engine
// Description: Wires the lexer, parser and evaluator into a session that
//              owns one symbol table. A session evaluates one input line at
//              a time and stays usable after any error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial session engine

package calc

import (
	"time"

	"github.com/google/uuid"

	mdwast "github.com/msto63/pascal/foundation/calc/ast"
	mdwevaluator "github.com/msto63/pascal/foundation/calc/evaluator"
	mdwparser "github.com/msto63/pascal/foundation/calc/parser"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

// DefaultMaxInputLength is the longest accepted input line in bytes
const DefaultMaxInputLength = 4096

// Value is the result of evaluating one line
type Value = mdwevaluator.Value

// Session evaluates input lines against its own symbol table. A Session
// is not safe for concurrent use.
type Session struct {
	id        string
	parser    *mdwparser.Parser
	evaluator *mdwevaluator.Evaluator
	symbols   *mdwevaluator.SymbolTable
	logger    *mdwlog.Logger
	options   Options
	started   time.Time
	evals     int
	failures  int
}

// Options configures a session
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
	MaxExponent    int64
	MaxPowerDigits int64
}

// Stats summarizes the activity of a session
type Stats struct {
	SessionID   string
	Started     time.Time
	Evaluations int
	Failures    int
	Variables   int
}

// NewSession creates a session with an empty symbol table
func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxExponent <= 0 {
		opts.MaxExponent = mdwevaluator.DefaultMaxExponent
	}
	if opts.MaxPowerDigits <= 0 {
		opts.MaxPowerDigits = mdwevaluator.DefaultMaxPowerDigits
	}

	id := uuid.New().String()
	base := opts.Logger.WithField("session_id", id)

	s := &Session{
		id:     id,
		parser: mdwparser.New(mdwparser.Options{Logger: base}),
		evaluator: mdwevaluator.New(mdwevaluator.Options{
			Logger:         base,
			MaxExponent:    opts.MaxExponent,
			MaxPowerDigits: opts.MaxPowerDigits,
		}),
		symbols: mdwevaluator.NewSymbolTable(),
		logger:  base.WithField("component", "calc-session"),
		options: opts,
		started: time.Now(),
	}

	s.logger.Debug("session started", mdwlog.Fields{
		"max_input_length": opts.MaxInputLength,
		"max_exponent":     opts.MaxExponent,
		"max_power_digits": opts.MaxPowerDigits,
	})
	return s
}

// ID returns the unique session identifier
func (s *Session) ID() string {
	return s.id
}

// Symbols returns the table holding the session's variables
func (s *Session) Symbols() *mdwevaluator.SymbolTable {
	return s.symbols
}

// Eval tokenizes, parses and evaluates line. Blank input returns Void
// without error; assignments return Void.
func (s *Session) Eval(line string) (Value, error) {
	s.evals++
	timer := s.logger.StartTimer("eval").WithField("input_length", len(line))

	node, err := s.Parse(line)
	if err != nil {
		return mdwevaluator.Void, s.fail("parse", err, timer)
	}

	value, err := s.evaluator.Evaluate(node, s.symbols)
	if err != nil {
		return mdwevaluator.Void, s.fail("evaluate", err, timer)
	}

	timer.Stop()
	return value, nil
}

// Parse tokenizes and parses line without evaluating it. Blank input
// returns a nil node.
func (s *Session) Parse(line string) (mdwast.Node, error) {
	if err := s.checkLength(line); err != nil {
		return nil, err
	}
	return s.parser.Parse(mdwparser.Tokenize(line))
}

// Tokens returns every token of line
func (s *Session) Tokens(line string) ([]mdwparser.Token, error) {
	if err := s.checkLength(line); err != nil {
		return nil, err
	}
	return mdwparser.Collect(mdwparser.Tokenize(line))
}

// Reset discards all variables
func (s *Session) Reset() {
	s.logger.Debug("session reset", mdwlog.Fields{"variables": s.symbols.Len()})
	s.symbols = mdwevaluator.NewSymbolTable()
}

// Stats returns counters for the session
func (s *Session) Stats() Stats {
	return Stats{
		SessionID:   s.id,
		Started:     s.started,
		Evaluations: s.evals,
		Failures:    s.failures,
		Variables:   len(s.symbols.Names()),
	}
}

func (s *Session) checkLength(line string) error {
	if len(line) <= s.options.MaxInputLength {
		return nil
	}
	return mdwerror.Newf("input exceeds %d bytes", s.options.MaxInputLength).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("length", len(line)).
		WithDetail("max_length", s.options.MaxInputLength)
}

func (s *Session) fail(stage string, err error, timer *mdwlog.Timer) error {
	s.failures++
	timer.WithField("stage", stage).
		WithField("error_code", mdwerror.GetCode(err).String()).
		StopWithError(err)
	return err
}
