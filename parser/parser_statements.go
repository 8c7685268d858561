/*
File    : beeline/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/beeline/lexer"
)

// parseDeclaration parses one declaration: a run of blank lines, then
// either a variable declaration or a statement, then any trailing blank
// lines. Returns nil without recording a fault when the newline run ends
// the input (a blank or whitespace-only tail is an empty program, not an
// error).
//
// Convention for all statement-parsing functions: on entry CurrToken is the
// first token of the construct; on success CurrToken is the first token
// after it (terminator included); on fault they record the error and
// return nil.
func (par *Parser) parseDeclaration() StatementNode {
	par.consumeNewlines()
	if par.isDone() {
		return nil
	}
	var stmt StatementNode
	if par.CurrToken.Type == lexer.VAR_KEY {
		stmt = par.parseVariableDeclaration()
	} else {
		stmt = par.parseStatement()
	}
	if stmt == nil {
		return nil
	}
	par.consumeNewlines()
	return stmt
}

// parseStatement dispatches on the statement-leading token.
// Anything that does not begin a known statement form is parsed as an
// expression statement.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.PRINT_KEY:
		return par.parsePrintStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseVariableDeclaration parses "var IDENTIFIER ( '=' expression )?"
// followed by a statement terminator. A declaration without an initializer
// binds the variable to null at evaluation time.
func (par *Parser) parseVariableDeclaration() StatementNode {
	par.advance() // consume 'var'
	if par.CurrToken.Type != lexer.IDENTIFIER_ID {
		par.addError("expected identifier", par.CurrToken)
		return nil
	}
	name := par.CurrToken

	var initializer ExpressionNode
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // CurrToken = '='
		par.advance() // CurrToken = first token of the initializer
		initializer = par.parseExpression()
		if initializer == nil {
			return nil
		}
	}
	if !par.requireTerminator("expected newline or EOF after variable declaration") {
		return nil
	}
	return &DeclarativeStatementNode{Name: name, Initializer: initializer}
}

// parsePrintStatement parses "print expression" followed by a statement
// terminator.
func (par *Parser) parsePrintStatement() StatementNode {
	keyword := par.CurrToken
	par.advance() // consume 'print'
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.requireTerminator("expected newline or EOF after expression") {
		return nil
	}
	return &PrintStatementNode{Keyword: keyword, Expr: expr}
}

// parseExpressionStatement parses a bare expression followed by a statement
// terminator.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.requireTerminator("expected newline or EOF after expression") {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}

// parseBlockStatement parses "'{' declaration* '}'".
// Blocks derive their termination from the closing brace, so no newline is
// required after one. A fault inside the block propagates out so that
// recovery happens at the top level.
func (par *Parser) parseBlockStatement() StatementNode {
	par.advance() // consume '{'
	statements := make([]StatementNode, 0)
	for {
		par.consumeNewlines()
		if par.CurrToken.Type == lexer.RIGHT_BRACE || par.isDone() {
			break
		}
		errorsBefore := len(par.Errors)
		stmt := par.parseDeclaration()
		if len(par.Errors) > errorsBefore {
			return nil
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError("expected '}' after block", par.CurrToken)
		return nil
	}
	par.advance() // consume '}'
	return &BlockStatementNode{Statements: statements}
}

// parseIfStatement parses "if '(' expression ')' statement (else statement)?".
// The branches are full statements, so a block, another if, or any simple
// statement may follow; termination is derived from the branch statements
// themselves.
func (par *Parser) parseIfStatement() StatementNode {
	ifKeyword := par.CurrToken
	if par.NextToken.Type != lexer.LEFT_PAREN {
		par.addError("expected '(' after 'if'", par.NextToken)
		return nil
	}
	par.advance() // CurrToken = '('
	par.advance() // CurrToken = first token of the condition
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.addError("expected ')' after if condition", par.NextToken)
		return nil
	}
	par.advance() // CurrToken = ')'
	par.advance() // CurrToken = first token of the then-branch
	thenStmt := par.parseStatement()
	if thenStmt == nil {
		return nil
	}
	var elseStmt StatementNode
	if par.CurrToken.Type == lexer.ELSE_KEY {
		par.advance() // consume 'else'
		elseStmt = par.parseStatement()
		if elseStmt == nil {
			return nil
		}
	}
	return &IfElseStatementNode{IfKeyword: ifKeyword, Condition: condition, Then: thenStmt, Else: elseStmt}
}

// parseWhileStatement parses "while '(' expression ')' statement".
func (par *Parser) parseWhileStatement() StatementNode {
	keyword := par.CurrToken
	if par.NextToken.Type != lexer.LEFT_PAREN {
		par.addError("expected '(' after 'while'", par.NextToken)
		return nil
	}
	par.advance() // CurrToken = '('
	par.advance() // CurrToken = first token of the condition
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.addError("expected ')' after while condition", par.NextToken)
		return nil
	}
	par.advance() // CurrToken = ')'
	par.advance() // CurrToken = first token of the body
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileLoopStatementNode{Keyword: keyword, Condition: condition, Body: body}
}
