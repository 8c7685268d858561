/*
File    : beeline/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/beeline/objects"
	"github.com/akashmaji946/beeline/parser"
	"github.com/akashmaji946/beeline/scope"
)

// execStatement is the statement dispatcher. Each statement either produces
// side effects (printing), mutates the scope chain, or runs nested
// statements. The first fault aborts the dispatch chain.
func (e *Evaluator) execStatement(n parser.StatementNode) error {
	switch n := n.(type) {
	case *parser.ExpressionStatementNode:
		// Evaluate for effects (assignments), discard the value
		_, err := e.evalExpression(n.Expr)
		return err
	case *parser.PrintStatementNode:
		return e.execPrintStatement(n)
	case *parser.DeclarativeStatementNode:
		return e.execDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.execBlockStatement(n)
	case *parser.IfElseStatementNode:
		return e.execIfElseStatement(n)
	case *parser.WhileLoopStatementNode:
		return e.execWhileLoopStatement(n)
	}
	return nil
}

// execPrintStatement evaluates the operand and writes it to the configured
// writer without a trailing newline. The operand must already be a string:
// numbers and booleans are rendered by concatenating with "" first, never
// coerced here.
func (e *Evaluator) execPrintStatement(n *parser.PrintStatementNode) error {
	value, err := e.evalExpression(n.Expr)
	if err != nil {
		return err
	}
	if err := e.requireType(value, objects.StringType, n.Keyword, "operand must be a string"); err != nil {
		return err
	}
	fmt.Fprint(e.Writer, value.(*objects.String).Value)
	return nil
}

// execDeclarativeStatement evaluates the initializer (or defaults to null)
// and binds the name in the current scope. A second binding of the same
// name in the same scope is a runtime fault; shadowing an outer binding is
// allowed.
func (e *Evaluator) execDeclarativeStatement(n *parser.DeclarativeStatementNode) error {
	var value objects.BeelineObject = &objects.Null{}
	if n.Initializer != nil {
		evaluated, err := e.evalExpression(n.Initializer)
		if err != nil {
			return err
		}
		value = evaluated
	}
	if redeclared := e.Scp.Bind(n.Name.Lexeme, value); redeclared {
		return e.runtimeError(n.Name, fmt.Sprintf("variable '%s' is already defined", n.Name.Lexeme))
	}
	return nil
}

// execBlockStatement runs the block's statements inside a fresh scope whose
// parent is the active one. The previous scope is restored on every exit
// path, fault included, so nested blocks keep strict stack discipline.
func (e *Evaluator) execBlockStatement(n *parser.BlockStatementNode) error {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	defer func() {
		e.Scp = previous
	}()
	for _, stmt := range n.Statements {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execIfElseStatement evaluates the condition, which must be a boolean, and
// runs the matching branch.
func (e *Evaluator) execIfElseStatement(n *parser.IfElseStatementNode) error {
	condition, err := e.evalExpression(n.Condition)
	if err != nil {
		return err
	}
	if err := e.requireType(condition, objects.BooleanType, n.IfKeyword, "condition must evaluate to a boolean"); err != nil {
		return err
	}
	if condition.(*objects.Boolean).Value {
		return e.execStatement(n.Then)
	}
	if n.Else != nil {
		return e.execStatement(n.Else)
	}
	return nil
}

// execWhileLoopStatement re-evaluates the condition before every iteration;
// it must be a boolean each time. The body runs while the condition holds.
func (e *Evaluator) execWhileLoopStatement(n *parser.WhileLoopStatementNode) error {
	for {
		condition, err := e.evalExpression(n.Condition)
		if err != nil {
			return err
		}
		if err := e.requireType(condition, objects.BooleanType, n.Keyword, "condition must evaluate to a boolean"); err != nil {
			return err
		}
		if !condition.(*objects.Boolean).Value {
			return nil
		}
		if err := e.execStatement(n.Body); err != nil {
			return err
		}
	}
}
