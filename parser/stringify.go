/*
File    : beeline/parser/stringify.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
)

// StringifyVisitor renders AST nodes as a parenthesized prefix/infix text
// form used for debug output. Expressions show their full grouping, so the
// rendering makes precedence decisions visible:
//
//	1 + 2 * 3   =>  (1.000000 + (2.000000 * 3.000000))
//	print "hi"  =>  (print hi)
//
// Number literals render in the six-decimal fixed-point form of the value
// domain; strings render as their raw contents, null as "nullptr".
type StringifyVisitor struct {
	Buf strings.Builder // Accumulates the rendered text
}

// Stringify renders a single AST node to its textual form.
func Stringify(node Node) string {
	visitor := &StringifyVisitor{}
	node.Accept(visitor)
	return visitor.String()
}

// String returns the text accumulated so far.
func (s *StringifyVisitor) String() string {
	return s.Buf.String()
}

// VisitRootNode renders every top-level statement, space-separated.
func (s *StringifyVisitor) VisitRootNode(node RootNode) {
	for i, stmt := range node.Statements {
		if i > 0 {
			s.Buf.WriteString(" ")
		}
		stmt.Accept(s)
	}
}

// VisitLiteralExpressionNode renders the literal's denoted value.
func (s *StringifyVisitor) VisitLiteralExpressionNode(node LiteralExpressionNode) {
	s.Buf.WriteString(node.Token.Literal.ToString())
}

// VisitGroupingExpressionNode renders "(" expr ")".
func (s *StringifyVisitor) VisitGroupingExpressionNode(node GroupingExpressionNode) {
	s.Buf.WriteString("(")
	node.Expr.Accept(s)
	s.Buf.WriteString(")")
}

// VisitUnaryExpressionNode renders "(" op " " right ")".
func (s *StringifyVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	s.Buf.WriteString("(")
	s.Buf.WriteString(node.Operation.Lexeme)
	s.Buf.WriteString(" ")
	node.Right.Accept(s)
	s.Buf.WriteString(")")
}

// VisitBinaryExpressionNode renders "(" left " " op " " right ")".
func (s *StringifyVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	s.Buf.WriteString("(")
	node.Left.Accept(s)
	s.Buf.WriteString(" ")
	s.Buf.WriteString(node.Operation.Lexeme)
	s.Buf.WriteString(" ")
	node.Right.Accept(s)
	s.Buf.WriteString(")")
}

// VisitVariableExpressionNode renders the variable's name.
func (s *StringifyVisitor) VisitVariableExpressionNode(node VariableExpressionNode) {
	s.Buf.WriteString(node.Name.Lexeme)
}

// VisitAssignmentExpressionNode renders "(" name " = " value ")".
func (s *StringifyVisitor) VisitAssignmentExpressionNode(node AssignmentExpressionNode) {
	s.Buf.WriteString("(")
	s.Buf.WriteString(node.Name.Lexeme)
	s.Buf.WriteString(" = ")
	node.Value.Accept(s)
	s.Buf.WriteString(")")
}

// VisitExpressionStatementNode renders the wrapped expression.
func (s *StringifyVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	node.Expr.Accept(s)
}

// VisitPrintStatementNode renders "(print " expr ")".
func (s *StringifyVisitor) VisitPrintStatementNode(node PrintStatementNode) {
	s.Buf.WriteString("(print ")
	node.Expr.Accept(s)
	s.Buf.WriteString(")")
}

// VisitDeclarativeStatementNode renders "(var " name ( " = " init )? ")".
func (s *StringifyVisitor) VisitDeclarativeStatementNode(node DeclarativeStatementNode) {
	s.Buf.WriteString("(var ")
	s.Buf.WriteString(node.Name.Lexeme)
	if node.Initializer != nil {
		s.Buf.WriteString(" = ")
		node.Initializer.Accept(s)
	}
	s.Buf.WriteString(")")
}

// VisitBlockStatementNode renders "{" with every statement followed by a
// space, then "}".
func (s *StringifyVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	s.Buf.WriteString("{")
	for _, stmt := range node.Statements {
		stmt.Accept(s)
		s.Buf.WriteString(" ")
	}
	s.Buf.WriteString("}")
}

// VisitIfElseStatementNode renders "(if " cond " then " then ( " else " else )? ")".
func (s *StringifyVisitor) VisitIfElseStatementNode(node IfElseStatementNode) {
	s.Buf.WriteString("(if ")
	node.Condition.Accept(s)
	s.Buf.WriteString(" then ")
	node.Then.Accept(s)
	if node.Else != nil {
		s.Buf.WriteString(" else ")
		node.Else.Accept(s)
	}
	s.Buf.WriteString(")")
}

// VisitWhileLoopStatementNode renders "(while " cond " do " body ")".
func (s *StringifyVisitor) VisitWhileLoopStatementNode(node WhileLoopStatementNode) {
	s.Buf.WriteString("(while ")
	node.Condition.Accept(s)
	s.Buf.WriteString(" do ")
	node.Body.Accept(s)
	s.Buf.WriteString(")")
}
