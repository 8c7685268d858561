/*
File    : beeline/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/beeline/lexer"
)

// parseExpression is the entry point for parsing a complete expression.
// It starts the Pratt loop at the minimum priority so that every operator
// is accepted.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseExpressionWithPrecedence(MINIMUM_PRIORITY)
}

// parseExpressionWithPrecedence implements the Pratt parsing core.
//
// The token that begins the expression is dispatched through UnaryFuncs;
// then, as long as the upcoming token is a binary operator binding tighter
// than minPrecedence, the operator is dispatched through BinaryFuncs with
// the expression parsed so far as its left operand.
//
// Convention: on entry CurrToken is the first token of the expression; on
// exit CurrToken is the last token of the expression. Returns nil after
// recording a fault.
func (par *Parser) parseExpressionWithPrecedence(minPrecedence int) ExpressionNode {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError("expected expression", par.CurrToken)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for getPrecedence(par.NextToken.Type) > minPrecedence {
		binary, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			break
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseLiteralExpression parses a literal token (number, string, true,
// false, null) into a LiteralExpressionNode. The denoted value was already
// attached to the token by the lexer.
func (par *Parser) parseLiteralExpression() ExpressionNode {
	return &LiteralExpressionNode{Token: par.CurrToken}
}

// parseVariableExpression parses an identifier token into a variable
// reference.
func (par *Parser) parseVariableExpression() ExpressionNode {
	return &VariableExpressionNode{Name: par.CurrToken}
}

// parseGroupingExpression parses a parenthesized expression.
// CurrToken is on '(' on entry and on ')' on exit. A missing ')' is a
// parse fault.
func (par *Parser) parseGroupingExpression() ExpressionNode {
	par.advance() // consume '('
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.addError("expected ')' after expression", par.NextToken)
		return nil
	}
	par.advance() // CurrToken = ')'
	return &GroupingExpressionNode{Expr: expr}
}

// parseUnaryExpression parses a prefix operator (! or -) and its operand.
// Unary operators nest right-to-left: "--x" is -(-x).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpressionWithPrecedence(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{Operation: operation, Right: right}
}

// parseBinaryExpression parses the right operand of a left-associative
// binary operator and combines it with the given left operand. Called with
// CurrToken on the operator.
//
// Left associativity falls out of passing the operator's own precedence as
// the minimum: an upcoming operator of the same precedence stops the inner
// loop and is picked up by the outer one.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseExpressionWithPrecedence(getPrecedence(operation.Type))
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseAssignmentExpression parses the right-hand side of an assignment and
// validates the target. Called with CurrToken on '='.
//
// Assignment is right-associative, so the right-hand side is parsed with a
// minimum priority one below the operator's own: "a = b = 1" nests as
// "a = (b = 1)". The left-hand side must be a plain variable reference;
// anything else ("(a+b) = 1") is a parse fault at the '=' token.
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	equals := par.CurrToken
	par.advance()
	value := par.parseExpressionWithPrecedence(ASSIGN_PRIORITY - 1)
	if value == nil {
		return nil
	}
	variable, ok := left.(*VariableExpressionNode)
	if !ok {
		par.addError("left-hand side of assignment must be a variable", equals)
		return nil
	}
	return &AssignmentExpressionNode{Name: variable.Name, Value: value}
}
