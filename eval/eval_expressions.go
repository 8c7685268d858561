/*
File    : beeline/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/beeline/lexer"
	"github.com/akashmaji946/beeline/objects"
	"github.com/akashmaji946/beeline/parser"
)

// evalExpression is the expression dispatcher, producing a value from the
// objects package or the first fault encountered. Subtrees evaluate
// left-to-right except for the short-circuit cases of 'and' and 'or'.
func (e *Evaluator) evalExpression(n parser.ExpressionNode) (objects.BeelineObject, error) {
	switch n := n.(type) {
	case *parser.LiteralExpressionNode:
		return n.Token.Literal, nil
	case *parser.GroupingExpressionNode:
		return e.evalExpression(n.Expr)
	case *parser.VariableExpressionNode:
		return e.evalVariableExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		if n.Operation.Type == lexer.AND_KEY || n.Operation.Type == lexer.OR_KEY {
			return e.evalLogicalExpression(n)
		}
		return e.evalBinaryExpression(n)
	}
	return &objects.Null{}, nil
}

// evalVariableExpression resolves a variable reference through the scope
// chain, innermost scope outward.
func (e *Evaluator) evalVariableExpression(n *parser.VariableExpressionNode) (objects.BeelineObject, error) {
	value, ok := e.Scp.LookUp(n.Name.Lexeme)
	if !ok {
		return nil, e.runtimeError(n.Name, fmt.Sprintf("variable '%s' is undefined", n.Name.Lexeme))
	}
	return value, nil
}

// evalAssignmentExpression evaluates the right-hand side, then mutates the
// nearest existing binding of the name in the scope chain. The assigned
// value is also the value of the whole expression, so assignments chain.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) (objects.BeelineObject, error) {
	value, err := e.evalExpression(n.Value)
	if err != nil {
		return nil, err
	}
	if ok := e.Scp.Assign(n.Name.Lexeme, value); !ok {
		return nil, e.runtimeError(n.Name, fmt.Sprintf("variable '%s' is undefined", n.Name.Lexeme))
	}
	return value, nil
}

// evalUnaryExpression evaluates '-' (numeric negation) and '!' (boolean not).
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) (objects.BeelineObject, error) {
	right, err := e.evalExpression(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operation.Type {
	case lexer.MINUS_OP:
		if err := e.requireType(right, objects.NumberType, n.Operation, "operand must be a number"); err != nil {
			return nil, err
		}
		return &objects.Number{Value: -right.(*objects.Number).Value}, nil
	case lexer.NOT_OP:
		if err := e.requireType(right, objects.BooleanType, n.Operation, "operand must be a boolean"); err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: !right.(*objects.Boolean).Value}, nil
	}
	return nil, e.runtimeError(n.Operation, "unhandled unary operator")
}

// evalLogicalExpression evaluates 'and' and 'or' with short-circuiting:
// the right operand is evaluated only when the left one does not already
// decide the result. Both operands must be booleans when evaluated.
func (e *Evaluator) evalLogicalExpression(n *parser.BinaryExpressionNode) (objects.BeelineObject, error) {
	left, err := e.evalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	if err := e.requireType(left, objects.BooleanType, n.Operation, "left operand must be a boolean"); err != nil {
		return nil, err
	}
	leftValue := left.(*objects.Boolean).Value
	if n.Operation.Type == lexer.AND_KEY && !leftValue {
		return &objects.Boolean{Value: false}, nil
	}
	if n.Operation.Type == lexer.OR_KEY && leftValue {
		return &objects.Boolean{Value: true}, nil
	}
	right, err := e.evalExpression(n.Right)
	if err != nil {
		return nil, err
	}
	if err := e.requireType(right, objects.BooleanType, n.Operation, "right operand must be a boolean"); err != nil {
		return nil, err
	}
	return &objects.Boolean{Value: right.(*objects.Boolean).Value}, nil
}

// evalBinaryExpression evaluates the arithmetic, comparison, and equality
// operators. Both operands are evaluated, left first.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) (objects.BeelineObject, error) {
	left, err := e.evalExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(n.Right)
	if err != nil {
		return nil, err
	}

	op := n.Operation
	switch op.Type {
	case lexer.MINUS_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Number{Value: left.(*objects.Number).Value - right.(*objects.Number).Value}, nil
	case lexer.MUL_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Number{Value: left.(*objects.Number).Value * right.(*objects.Number).Value}, nil
	case lexer.DIV_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		if right.(*objects.Number).Value == 0 {
			return nil, e.runtimeError(op, "division by zero")
		}
		return &objects.Number{Value: left.(*objects.Number).Value / right.(*objects.Number).Value}, nil
	case lexer.PLUS_OP:
		return e.evalAddition(left, right, op)
	case lexer.GT_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: left.(*objects.Number).Value > right.(*objects.Number).Value}, nil
	case lexer.GE_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: left.(*objects.Number).Value >= right.(*objects.Number).Value}, nil
	case lexer.LT_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: left.(*objects.Number).Value < right.(*objects.Number).Value}, nil
	case lexer.LE_OP:
		if err := e.requireNumbers(left, right, op); err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: left.(*objects.Number).Value <= right.(*objects.Number).Value}, nil
	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.Equals(left, right)}, nil
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.Equals(left, right)}, nil
	}
	return nil, e.runtimeError(op, "unhandled binary operator")
}

// evalAddition implements '+', which is overloaded: numeric addition when
// both operands are numbers, string concatenation when either side is a
// string (the other side rendered via the display form). Neither operand
// may be null, and two booleans cannot be added.
func (e *Evaluator) evalAddition(left, right objects.BeelineObject, op lexer.Token) (objects.BeelineObject, error) {
	if left.GetType() == objects.NullType {
		return nil, e.runtimeError(op, "left operand must not be null")
	}
	if right.GetType() == objects.NullType {
		return nil, e.runtimeError(op, "right operand must not be null")
	}
	if left.GetType() == objects.BooleanType && right.GetType() == objects.BooleanType {
		return nil, e.runtimeError(op, "cannot add two booleans")
	}
	// A lone boolean operand joins the string domain before the
	// concatenation check, so true + 1 concatenates as "true1".
	if left.GetType() == objects.BooleanType {
		left = &objects.String{Value: toDisplayString(left)}
	} else if right.GetType() == objects.BooleanType {
		right = &objects.String{Value: toDisplayString(right)}
	}
	if left.GetType() == objects.StringType || right.GetType() == objects.StringType {
		return &objects.String{Value: toDisplayString(left) + toDisplayString(right)}, nil
	}
	return &objects.Number{Value: left.(*objects.Number).Value + right.(*objects.Number).Value}, nil
}

// requireNumbers checks that both operands of an arithmetic or relational
// operator are numbers, reporting the offending side.
func (e *Evaluator) requireNumbers(left, right objects.BeelineObject, op lexer.Token) error {
	if err := e.requireType(left, objects.NumberType, op, "left operand must be a number"); err != nil {
		return err
	}
	return e.requireType(right, objects.NumberType, op, "right operand must be a number")
}
