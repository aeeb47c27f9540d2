// Package repl implements the interactive line front end of the
// calculator. Each input line is evaluated in one calc.Session; results
// and errors are written back and the loop continues until the exit
// command, end of input or context cancellation.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/msto63/pascal/foundation/calc"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

const (
	// DefaultPrompt is printed before each line
	DefaultPrompt = "🐱 ► "
	// DefaultExitCommand ends the loop
	DefaultExitCommand = "exit()"

	// maxLineBytes bounds a single scanned line. Longer input is cut off
	// by the session's own length check well before this.
	maxLineBytes = 1 << 20
)

// Options configures the loop
type Options struct {
	In          io.Reader
	Out         io.Writer
	Session     *calc.Session
	Logger      *mdwlog.Logger
	Prompt      string
	ExitCommand string
	Color       bool
}

type loop struct {
	out     io.Writer
	session *calc.Session
	logger  *mdwlog.Logger
	opts    Options
	paint   painter
}

// Run reads lines from opts.In until the exit command or end of input
func Run(ctx context.Context, opts Options) error {
	if opts.In == nil || opts.Out == nil {
		return mdwerror.New("input and output are required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("repl.Run")
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Session == nil {
		opts.Session = calc.NewSession(calc.Options{Logger: opts.Logger})
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.ExitCommand == "" {
		opts.ExitCommand = DefaultExitCommand
	}

	l := &loop{
		out:     opts.Out,
		session: opts.Session,
		logger: opts.Logger.WithFields(mdwlog.Fields{
			"component":  "repl",
			"session_id": opts.Session.ID(),
		}),
		opts:  opts,
		paint: painter{color: opts.Color},
	}

	l.logger.Debug("repl started")
	defer func() {
		stats := l.session.Stats()
		l.logger.Debug("repl stopped", mdwlog.Fields{
			"evaluations": stats.Evaluations,
			"failures":    stats.Failures,
		})
	}()

	scanner := bufio.NewScanner(opts.In)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(l.out, l.paint.prompt(opts.Prompt))
		if !scanner.Scan() {
			break
		}

		if done := l.handle(scanner.Text()); done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		l.logger.ErrorWithErr("input read failed", err)
		return mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("repl.Run")
	}
	return nil
}

// handle processes one line and reports whether the loop should end
func (l *loop) handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == l.opts.ExitCommand {
		fmt.Fprintln(l.out, l.paint.info("bye"))
		return true
	}

	cmd, arg, _ := strings.Cut(input, " ")
	switch cmd {
	case "vars":
		if arg == "" {
			l.printVars()
			return false
		}
	case "reset":
		if arg == "" {
			l.session.Reset()
			fmt.Fprintln(l.out, l.paint.info("variables cleared"))
			return false
		}
	case "help":
		if arg == "" {
			l.printHelp()
			return false
		}
	case "tokens":
		l.printTokens(arg)
		return false
	case "ast":
		l.printTree(arg)
		return false
	}

	value, err := l.session.Eval(line)
	if err != nil {
		l.printError(err)
		return false
	}
	if !value.IsVoid() {
		fmt.Fprintln(l.out, l.paint.result(value.String()))
	}
	return false
}

func (l *loop) printVars() {
	table := l.session.Symbols()
	for _, name := range table.Names() {
		v, _ := table.Lookup(name)
		fmt.Fprintf(l.out, "%s = %s\n", name, l.paint.result(v.String()))
	}
}

func (l *loop) printTokens(expr string) {
	tokens, err := l.session.Tokens(expr)
	if err != nil {
		l.printError(err)
		return
	}
	if len(tokens) == 0 {
		return
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	fmt.Fprintln(l.out, l.paint.info(strings.Join(parts, " ")))
}

func (l *loop) printTree(expr string) {
	node, err := l.session.Parse(expr)
	if err != nil {
		l.printError(err)
		return
	}
	if node != nil {
		fmt.Fprintln(l.out, l.paint.info(node.String()))
	}
}

func (l *loop) printError(err error) {
	fmt.Fprintln(l.out, l.paint.err("error: "+err.Error()))
}

func (l *loop) printHelp() {
	help := []string{
		"expressions   1 + 2 * 3, (1 < 2) && !0, 2 ^ 10",
		"assignment    var x = 10",
		"vars          list variables",
		"reset         clear all variables",
		"tokens <expr> show the tokens of an expression",
		"ast <expr>    show the parsed form of an expression",
		fmt.Sprintf("%-14squit", l.opts.ExitCommand),
	}
	for _, line := range help {
		fmt.Fprintln(l.out, l.paint.info(line))
	}
}
