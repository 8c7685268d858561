/*
File    : beeline/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/beeline/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Assignment (right-to-left associativity)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/Prefix operators
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment operator (lowest precedence, right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 40

	// Logical AND: and
	// Example: a and b binds tighter than a or b
	AND_PRIORITY = 50

	// Equality operators: == !=
	EQUALITY_PRIORITY = 90

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	PLUS_PRIORITY = 120

	// Multiplicative operators: * /
	MUL_PRIORITY = 130

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 140
)

// getPrecedence returns the infix precedence level for a given token type.
// This function is central to the Pratt parsing algorithm, determining how
// tightly operators bind to their operands.
//
// Returns -1 for tokens that are not binary operators, which stops the
// expression loop at statement terminators like NEWLINE and EOF.
func getPrecedence(tokenType lexer.TokenType) int {
	switch tokenType {

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < > <= >=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Logical AND: and
	case lexer.AND_KEY:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR_KEY:
		return OR_PRIORITY

	// Assignment (lowest precedence)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not a binary operator token
	}
}

// binaryParseFunction is a function type for parsing binary expressions.
// The already-parsed left operand is passed in; the function is called with
// CurrToken on the operator and returns the complete expression node.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions and
// other expression-leading tokens (literals, identifiers, groupings). The
// function is called with CurrToken on the leading token and leaves
// CurrToken on the last token of the parsed expression.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
