/*
File    : beeline/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/beeline/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or analysis.
// A visitor carries its own mutable state across calls; dispatch is by node type through Accept.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Expression visitors
	VisitLiteralExpressionNode(node LiteralExpressionNode)       // Literals: 42, "hello", true, null
	VisitGroupingExpressionNode(node GroupingExpressionNode)     // Parenthesized expressions: (expr)
	VisitUnaryExpressionNode(node UnaryExpressionNode)           // Unary operations: -x, !flag
	VisitBinaryExpressionNode(node BinaryExpressionNode)         // Binary operations: +, -, *, /, comparisons, and, or
	VisitVariableExpressionNode(node VariableExpressionNode)     // Variable references: x, counter
	VisitAssignmentExpressionNode(node AssignmentExpressionNode) // Assignments: x = 10

	// Statement visitors
	VisitExpressionStatementNode(node ExpressionStatementNode)   // Bare expression statements
	VisitPrintStatementNode(node PrintStatementNode)             // Print statements: print expr
	VisitDeclarativeStatementNode(node DeclarativeStatementNode) // Variable declarations: var x = 10
	VisitBlockStatementNode(node BlockStatementNode)             // Code blocks: { stmt1 stmt2 }
	VisitIfElseStatementNode(node IfElseStatementNode)           // If-else conditionals
	VisitWhileLoopStatementNode(node WhileLoopStatementNode)     // While loops
}

// Node: base interface for all nodes of the AST
// Literal(): returns a compact source-like representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Every expression can also stand as a statement.
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: the ordered sequence of top-level statements
type RootNode struct {
	Statements []StatementNode // every parsed top-level statement, in source order
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
		res += ";"
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg StringifyVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// LiteralExpressionNode: represents a literal value in the source
// Example: 42, 3.14, "hello", true, false, null
type LiteralExpressionNode struct {
	Token lexer.Token // The literal token, carrying the denoted value
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

// LiteralExpressionNode.Accept(): accepts a visitor
func (node *LiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralExpressionNode(*node)
}

// LiteralExpressionNode.Statement(): every expression is also a statement
func (node *LiteralExpressionNode) Statement() {

}

// LiteralExpressionNode.Expression(): marks the node as an expression
func (node *LiteralExpressionNode) Expression() {

}

// GroupingExpressionNode: represents an expression wrapped in parentheses
// Example: (2 + 3)
type GroupingExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// GroupingExpressionNode.Literal(): string representation of the node
func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupingExpressionNode.Accept(): accepts a visitor
func (node *GroupingExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupingExpressionNode(*node)
}

// GroupingExpressionNode.Statement(): every expression is also a statement
func (node *GroupingExpressionNode) Statement() {

}

// GroupingExpressionNode.Expression(): marks the node as an expression
func (node *GroupingExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a unary operation with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (- or !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Lexeme + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {

}

// UnaryExpressionNode.Expression(): marks the node as an expression
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary operation with two operands.
// Covers arithmetic, comparison, equality, and the logical 'and'/'or'
// operators (which the evaluator treats with short-circuit semantics).
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Lexeme + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {

}

// BinaryExpressionNode.Expression(): marks the node as an expression
func (node *BinaryExpressionNode) Expression() {

}

// VariableExpressionNode: represents a reference to a variable by name
// Example: x, counter
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token naming the variable
}

// VariableExpressionNode.Literal(): string representation of the node
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

// VariableExpressionNode.Accept(): accepts a visitor
func (node *VariableExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableExpressionNode(*node)
}

// VariableExpressionNode.Statement(): every expression is also a statement
func (node *VariableExpressionNode) Statement() {

}

// VariableExpressionNode.Expression(): marks the node as an expression
func (node *VariableExpressionNode) Expression() {

}

// AssignmentExpressionNode: represents assignment to an existing variable
// Example: x = 10
// The parser guarantees the target is a variable; anything else is a parse
// fault at the '=' token.
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The identifier token naming the assignment target
	Value ExpressionNode // The expression whose value is assigned
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Lexeme + "=" + node.Value.Literal()
}

// AssignmentExpressionNode.Accept(): accepts a visitor
func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(*node)
}

// AssignmentExpressionNode.Statement(): every expression is also a statement
func (node *AssignmentExpressionNode) Statement() {

}

// AssignmentExpressionNode.Expression(): marks the node as an expression
func (node *AssignmentExpressionNode) Expression() {

}

// ExpressionStatementNode: represents an expression used as a statement
// Example: x = x + 1
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression, evaluated for its effects
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal()
}

// ExpressionStatementNode.Accept(): accepts a visitor
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

// ExpressionStatementNode.Statement(): marks the node as a statement
func (node *ExpressionStatementNode) Statement() {

}

// PrintStatementNode: represents a print statement
// Example: print "hello"
type PrintStatementNode struct {
	Keyword lexer.Token    // The 'print' keyword token, kept for fault positions
	Expr    ExpressionNode // The expression whose value is printed
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return node.Keyword.Lexeme + " " + node.Expr.Literal()
}

// PrintStatementNode.Accept(): accepts a visitor
func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(*node)
}

// PrintStatementNode.Statement(): marks the node as a statement
func (node *PrintStatementNode) Statement() {

}

// DeclarativeStatementNode: represents a variable declaration statement
// Example: var x = 10 or var y
// Initializer is nil when the declaration has no '=' clause; the variable
// is then bound to the null value.
type DeclarativeStatementNode struct {
	Name        lexer.Token    // The identifier token naming the variable
	Initializer ExpressionNode // The initialization expression, or nil
}

// DeclarativeStatementNode.Literal(): string representation of the node
func (node *DeclarativeStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Lexeme
	}
	return "var " + node.Name.Lexeme + "=" + node.Initializer.Literal()
}

// DeclarativeStatementNode.Accept(): accepts a visitor
func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(*node)
}

// DeclarativeStatementNode.Statement(): marks the node as a statement
func (node *DeclarativeStatementNode) Statement() {

}

// BlockStatementNode: represents a block of statements enclosed in braces
// Example: { var x = 1
//           print x + "" }
// The evaluator gives every block its own nested scope.
type BlockStatementNode struct {
	Statements []StatementNode // List of statements in the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
		str += ";"
	}
	str += "}"
	return str
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

// BlockStatementNode.Statement(): marks the node as a statement
func (node *BlockStatementNode) Statement() {

}

// IfElseStatementNode: represents an if statement with an optional else branch
// Example: if (x > 0) print "positive" else print "non-positive"
type IfElseStatementNode struct {
	IfKeyword lexer.Token    // The 'if' keyword token, kept for fault positions
	Condition ExpressionNode // The condition, which must evaluate to a boolean
	Then      StatementNode  // Statement run when the condition is true
	Else      StatementNode  // Statement run when the condition is false, or nil
}

// IfElseStatementNode.Literal(): string representation of the node
func (node *IfElseStatementNode) Literal() string {
	str := "if(" + node.Condition.Literal() + ")" + node.Then.Literal()
	if node.Else != nil {
		str += "else" + node.Else.Literal()
	}
	return str
}

// IfElseStatementNode.Accept(): accepts a visitor
func (node *IfElseStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfElseStatementNode(*node)
}

// IfElseStatementNode.Statement(): marks the node as a statement
func (node *IfElseStatementNode) Statement() {

}

// WhileLoopStatementNode: represents a while loop
// Example: while (i < 3) { i = i + 1 }
type WhileLoopStatementNode struct {
	Keyword   lexer.Token    // The 'while' keyword token, kept for fault positions
	Condition ExpressionNode // The condition, re-checked before every iteration
	Body      StatementNode  // The loop body
}

// WhileLoopStatementNode.Literal(): string representation of the node
func (node *WhileLoopStatementNode) Literal() string {
	return "while(" + node.Condition.Literal() + ")" + node.Body.Literal()
}

// WhileLoopStatementNode.Accept(): accepts a visitor
func (node *WhileLoopStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileLoopStatementNode(*node)
}

// WhileLoopStatementNode.Statement(): marks the node as a statement
func (node *WhileLoopStatementNode) Statement() {

}
