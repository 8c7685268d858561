/*
File    : beeline/beeline/beeline.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package beeline ties the language pipeline together: source text in,
// tokens through the lexer, statements through the parser, side effects
// through the evaluator. The package owns the generic error kind that every
// specific pipeline fault collapses into at the process boundary.
package beeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/akashmaji946/beeline/eval"
	"github.com/akashmaji946/beeline/lexer"
	"github.com/akashmaji946/beeline/parser"
)

// BeelineError is the generic error kind surfaced to the process boundary.
// Lexing, parse, and runtime faults all collapse into this type when Run
// returns; the message keeps the specific kind's own rendering.
type BeelineError struct {
	Message string
}

// Error renders the error as "BeelineError: <message>".
func (e *BeelineError) Error() string {
	return fmt.Sprintf("BeelineError: %s", e.Message)
}

// Beeline runs complete programs from source text. All entities created
// during a Run live until it returns; the interpreter keeps no state
// between runs.
type Beeline struct {
	Logger zerolog.Logger // Diagnostics sink, shared with the pipeline stages
	Writer io.Writer      // Print output destination (default: os.Stdout)
}

// New creates a Beeline interpreter that logs diagnostics through the given
// logger and prints to standard output.
func New(logger zerolog.Logger) *Beeline {
	return &Beeline{
		Logger: logger,
		Writer: os.Stdout,
	}
}

// SetWriter redirects print output, which is how tests capture it.
func (b *Beeline) SetWriter(w io.Writer) {
	b.Writer = w
}

// Run executes the given source text: scan, parse, evaluate. The token
// stream and the stringified form of each parsed statement are logged at
// DEBUG. A fault in any stage stops the pipeline; the specific fault is
// logged at ERROR and returned collapsed into a BeelineError.
func (b *Beeline) Run(input string) error {
	// Individual lexer faults were already logged at ERROR as they were
	// scanned; only the collapse into the generic kind happens here.
	tokens, err := lexer.NewLexer(input, b.Logger).Scan()
	if err != nil {
		return &BeelineError{Message: err.Error()}
	}
	for _, token := range tokens {
		b.Logger.Debug().Msg(token.String())
	}

	par := parser.NewParser(tokens, b.Logger)
	root := par.Parse()
	if par.HasErrors() {
		return &BeelineError{Message: joinErrors(par.GetErrors()).Error()}
	}
	for _, stmt := range root.Statements {
		b.Logger.Debug().Msg(parser.Stringify(stmt))
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(b.Writer)
	if err := evaluator.Interpret(root); err != nil {
		b.Logger.Error().Msg(err.Error())
		return &BeelineError{Message: err.Error()}
	}
	return nil
}

// joinErrors bundles the parser's collected faults into one error whose
// message lists them one per line.
func joinErrors(errs []error) error {
	combined := &multierror.Error{
		Errors: errs,
		ErrorFormat: func(errs []error) string {
			rendered := make([]string, 0, len(errs))
			for _, err := range errs {
				rendered = append(rendered, err.Error())
			}
			return strings.Join(rendered, "\n")
		},
	}
	return combined
}
