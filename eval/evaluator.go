/*
File    : beeline/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for Beeline.
// Statements execute in parse order against a chain of lexical scopes;
// expressions produce values from the objects package. Any runtime fault
// aborts evaluation immediately: no statement after the faulting one runs.
package eval

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/beeline/lexer"
	"github.com/akashmaji946/beeline/objects"
	"github.com/akashmaji946/beeline/parser"
	"github.com/akashmaji946/beeline/scope"
)

// BeelineRuntimeError is a fault raised during evaluation: a type mismatch,
// an undefined or duplicate variable, a division by zero, or a bad operand.
// It carries the position of the token the fault is attributed to.
type BeelineRuntimeError struct {
	Message  string         // What went wrong (e.g., "division by zero")
	Position lexer.Position // The source range the fault is attributed to
}

// Error renders the fault as "BeelineRuntimeError: <message> at <position>".
func (e *BeelineRuntimeError) Error() string {
	return fmt.Sprintf("BeelineRuntimeError: %s at %s", e.Message, e.Position)
}

// Evaluator holds the state for executing Beeline AST nodes: the active
// scope chain and the output writer used by print statements.
// It serves as the main execution engine for the Beeline interpreter.
type Evaluator struct {
	Scp    *scope.Scope // Current scope for variable bindings and lexical scoping
	Writer io.Writer    // Output destination for print statements (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator with a fresh root
// scope and standard output as the print destination.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
}

// SetWriter configures the output destination for print statements.
//
// This is particularly useful for testing (capturing output to verify
// program behavior) and for embedding the interpreter with a custom sink.
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf) // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Interpret executes the program's statements in order against the root
// scope. The first runtime fault aborts execution and is returned; a nil
// return means the whole program ran.
func (e *Evaluator) Interpret(root *parser.RootNode) error {
	for _, stmt := range root.Statements {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// runtimeError builds a BeelineRuntimeError attributed to the given token.
func (e *Evaluator) runtimeError(token lexer.Token, message string) *BeelineRuntimeError {
	return &BeelineRuntimeError{Message: message, Position: token.Position}
}

// requireType checks that a value has the wanted kind and raises the given
// fault otherwise.
func (e *Evaluator) requireType(value objects.BeelineObject, wanted objects.BeelineType, token lexer.Token, message string) error {
	if value.GetType() != wanted {
		return e.runtimeError(token, message)
	}
	return nil
}

// toDisplayString renders a value for string concatenation.
// Numbers use the fixed-point rendering stripped of trailing zeros and a
// trailing dot ("3.000000" becomes "3", "0.500000" becomes "0.5");
// booleans become "true"/"false"; strings pass through unchanged.
// Null is not coercible: callers reject it before coming here.
func toDisplayString(value objects.BeelineObject) string {
	if value.GetType() == objects.NumberType {
		rendered := strings.TrimRight(value.ToString(), "0")
		return strings.TrimRight(rendered, ".")
	}
	return value.ToString()
}
