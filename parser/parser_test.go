/*
File    : beeline/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/beeline/lexer"
)

// parseSource is a test helper running the lexer and parser over source
// text with a silent logger.
func parseSource(t *testing.T, src string) (*RootNode, *Parser) {
	t.Helper()
	tokens, err := lexer.NewLexer(src, zerolog.Nop()).Scan()
	require.NoError(t, err)
	par := NewParser(tokens, zerolog.Nop())
	return par.Parse(), par
}

// TestParser_EmptyProgram verifies that empty and whitespace-only input
// parse to a program with zero statements
func TestParser_EmptyProgram(t *testing.T) {
	for _, src := range []string{"", "\n", " \t\r\n\n", "// just a comment\n"} {
		root, par := parseSource(t, src)
		assert.False(t, par.HasErrors(), "input %q", src)
		assert.Empty(t, root.Statements, "input %q", src)
	}
}

// TestParser_VariableDeclaration verifies var statements with and without
// an initializer
func TestParser_VariableDeclaration(t *testing.T) {
	root, par := parseSource(t, "var x = 10\nvar y\n")
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 2)

	decl, ok := root.Statements[0].(*DeclarativeStatementNode)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name.Lexeme)
	require.NotNil(t, decl.Initializer)

	bare, ok := root.Statements[1].(*DeclarativeStatementNode)
	require.True(t, ok)
	assert.Equal(t, "y", bare.Name.Lexeme)
	assert.Nil(t, bare.Initializer)
}

// TestParser_PrintStatement verifies print parses its operand expression
func TestParser_PrintStatement(t *testing.T) {
	root, par := parseSource(t, `print "hello"`)
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	printStmt, ok := root.Statements[0].(*PrintStatementNode)
	require.True(t, ok)
	assert.Equal(t, "print", printStmt.Keyword.Lexeme)
	_, ok = printStmt.Expr.(*LiteralExpressionNode)
	assert.True(t, ok)
}

// TestParser_Precedence verifies that the Pratt table realizes the grammar's
// precedence levels (checked through the stringifier's explicit grouping)
func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1.000000 + (2.000000 * 3.000000))"},
		{"1 * 2 + 3", "((1.000000 * 2.000000) + 3.000000)"},
		{"1 - 2 - 3", "((1.000000 - 2.000000) - 3.000000)"},
		{"8 / 4 / 2", "((8.000000 / 4.000000) / 2.000000)"},
		{"1 + 2 < 4", "((1.000000 + 2.000000) < 4.000000)"},
		{"1 < 2 == true", "((1.000000 < 2.000000) == true)"},
		{"true and false or true", "((true and false) or true)"},
		{"false or true and false", "(false or (true and false))"},
		{"!true == false", "((! true) == false)"},
		{"-1 + 2", "((- 1.000000) + 2.000000)"},
		{"--1", "(- (- 1.000000))"},
		{"(1 + 2) * 3", "(((1.000000 + 2.000000)) * 3.000000)"},
		{"a = b = 1", "(a = (b = 1.000000))"},
		{`"a" + "b" + "c"`, "((a + b) + c)"},
	}
	for _, tt := range tests {
		root, par := parseSource(t, tt.input)
		require.False(t, par.HasErrors(), "input %q", tt.input)
		require.Len(t, root.Statements, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, Stringify(root.Statements[0]), "input %q", tt.input)
	}
}

// TestParser_IfElse verifies if parsing with and without an else branch,
// including the single-line form
func TestParser_IfElse(t *testing.T) {
	root, par := parseSource(t, `if (true) print "y" else print "n"`)
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	ifStmt, ok := root.Statements[0].(*IfElseStatementNode)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)

	root, par = parseSource(t, "if (x > 0) { print \"p\" }\n")
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	ifStmt, ok = root.Statements[0].(*IfElseStatementNode)
	require.True(t, ok)
	assert.Nil(t, ifStmt.Else)
	_, ok = ifStmt.Then.(*BlockStatementNode)
	assert.True(t, ok)
}

// TestParser_While verifies while parsing with a block body
func TestParser_While(t *testing.T) {
	root, par := parseSource(t, "while (i < 3) { i = i + 1 }")
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	whileStmt, ok := root.Statements[0].(*WhileLoopStatementNode)
	require.True(t, ok)
	_, ok = whileStmt.Body.(*BlockStatementNode)
	assert.True(t, ok)
}

// TestParser_NestedBlocks verifies blocks nest and may omit the newline
// before the closing brace
func TestParser_NestedBlocks(t *testing.T) {
	src := "{ var x = 1\n { var x = 2\n print x + \"\" } \n print x + \"\" }"
	root, par := parseSource(t, src)
	require.False(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	outer, ok := root.Statements[0].(*BlockStatementNode)
	require.True(t, ok)
	require.Len(t, outer.Statements, 3)
	_, ok = outer.Statements[1].(*BlockStatementNode)
	assert.True(t, ok)
}

// TestParser_EmptyBlock verifies empty and blank-line-only blocks parse
func TestParser_EmptyBlock(t *testing.T) {
	for _, src := range []string{"{}", "{ }", "{\n}", "{\n\n}"} {
		root, par := parseSource(t, src)
		require.False(t, par.HasErrors(), "input %q", src)
		require.Len(t, root.Statements, 1, "input %q", src)
		block, ok := root.Statements[0].(*BlockStatementNode)
		require.True(t, ok, "input %q", src)
		assert.Empty(t, block.Statements, "input %q", src)
	}
}

// represents a test case for parse faults
type TestParseFault struct {
	Input           string
	ExpectedMessage string
}

// TestParser_Faults verifies the grammar violations the parser reports
func TestParser_Faults(t *testing.T) {
	tests := []TestParseFault{
		{Input: "(1 + 2\n", ExpectedMessage: "expected ')' after expression"},
		{Input: "(a+b) = 1\n", ExpectedMessage: "left-hand side of assignment must be a variable"},
		{Input: "var 1 = 2\n", ExpectedMessage: "expected identifier"},
		{Input: "if true\n", ExpectedMessage: "expected '(' after 'if'"},
		{Input: "if (true print \"x\"\n", ExpectedMessage: "expected ')' after if condition"},
		{Input: "while true\n", ExpectedMessage: "expected '(' after 'while'"},
		{Input: "while (true print \"x\"\n", ExpectedMessage: "expected ')' after while condition"},
		{Input: "{ var x = 1\n", ExpectedMessage: "expected '}' after block"},
		{Input: "+\n", ExpectedMessage: "expected expression"},
		{Input: "1 2\n", ExpectedMessage: "expected newline or EOF after expression"},
		{Input: "var x = 1 2\n", ExpectedMessage: "expected newline or EOF after variable declaration"},
	}
	for _, tt := range tests {
		_, par := parseSource(t, tt.Input)
		require.True(t, par.HasErrors(), "input %q", tt.Input)
		assert.Contains(t, par.GetErrors()[0].Error(), tt.ExpectedMessage, "input %q", tt.Input)
	}
}

// TestParser_FaultRendering verifies the diagnostic form of a parse error
func TestParser_FaultRendering(t *testing.T) {
	_, par := parseSource(t, "(a+b) = 1\n")
	require.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0].Error(), "BeelineParseError: left-hand side of assignment must be a variable at 1:7-7")
}

// TestParser_Recovery verifies panic-mode recovery: statements after a
// faulting one still parse, and each fault is reported once
func TestParser_Recovery(t *testing.T) {
	root, par := parseSource(t, "+\nvar x = 1\n")
	assert.Len(t, par.GetErrors(), 1)
	require.Len(t, root.Statements, 1)
	_, ok := root.Statements[0].(*DeclarativeStatementNode)
	assert.True(t, ok)

	root, par = parseSource(t, "+\n)\nvar x = 1\nprint x + \"\"\n")
	assert.Len(t, par.GetErrors(), 2)
	assert.Len(t, root.Statements, 2)
}

// TestParser_RecoveryAtKeyword verifies recovery also synchronizes on a
// statement-leading keyword without an intervening newline
func TestParser_RecoveryAtKeyword(t *testing.T) {
	root, par := parseSource(t, "1 2 print \"x\"\n")
	require.True(t, par.HasErrors())
	require.Len(t, root.Statements, 1)
	_, ok := root.Statements[0].(*PrintStatementNode)
	assert.True(t, ok)
}
