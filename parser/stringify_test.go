/*
File    : beeline/parser/stringify_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/beeline/lexer"
	"github.com/akashmaji946/beeline/objects"
)

// TestStringify_Expression verifies the rendering of a hand-built tree:
// the AST for -149.84 * (true).
func TestStringify_Expression(t *testing.T) {
	expression := &BinaryExpressionNode{
		Left: &UnaryExpressionNode{
			Operation: lexer.NewToken(lexer.MINUS_OP, "-", lexer.Position{}),
			Right: &LiteralExpressionNode{
				Token: lexer.NewTokenWithLiteral(lexer.NUMBER_LIT, "149.84", &objects.Number{Value: 149.84}, lexer.Position{}),
			},
		},
		Operation: lexer.NewToken(lexer.MUL_OP, "*", lexer.Position{}),
		Right: &GroupingExpressionNode{
			Expr: &LiteralExpressionNode{
				Token: lexer.NewTokenWithLiteral(lexer.TRUE_KEY, "true", &objects.Boolean{Value: true}, lexer.Position{}),
			},
		},
	}
	assert.Equal(t, "((- 149.840000) * (true))", Stringify(expression))
}

// stringifyFirst parses the source and renders its first statement.
func stringifyFirst(t *testing.T, src string) string {
	t.Helper()
	root, par := parseSource(t, src)
	require.False(t, par.HasErrors())
	require.NotEmpty(t, root.Statements)
	return Stringify(root.Statements[0])
}

// TestStringify_Statements verifies the statement renderings
func TestStringify_Statements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "hello"`, "(print hello)"},
		{"var x = 10\n", "(var x = 10.000000)"},
		{"var x\n", "(var x)"},
		{"var n = null\n", "(var n = nullptr)"},
		{"x = 1\n", "(x = 1.000000)"},
		{"{ var x = 1\n x = 2\n }", "{(var x = 1.000000) (x = 2.000000) }"},
		{"{}", "{}"},
		{`if (true) print "y" else print "n"`, "(if true then (print y) else (print n))"},
		{"if (x < 1) { }\n", "(if (x < 1.000000) then {})"},
		{"while (i < 3) i = i + 1\n", "(while (i < 3.000000) do (i = (i + 1.000000)))"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, stringifyFirst(t, tt.input), "input %q", tt.input)
	}
}

// TestStringify_Root verifies whole-program rendering joins statements with
// spaces
func TestStringify_Root(t *testing.T) {
	root, par := parseSource(t, "var x = 1\nprint x + \"\"\n")
	require.False(t, par.HasErrors())
	assert.Equal(t, "(var x = 1.000000) (print (x + ))", Stringify(root))
}
