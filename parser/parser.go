/*
File    : beeline/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Beeline programming language.

The parser consumes the token sequence produced by the lexer and builds an
Abstract Syntax Tree (AST). It handles:
- Expressions (binary, unary, literals, variables, grouping, assignment)
- Statements (declarations, print, blocks, if-else, while)
- Operator precedence and associativity
- Newline statement terminators

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't abort on first error)
- Panic-mode recovery at statement boundaries, so one malformed statement
  does not hide faults in the rest of the program

After Parse returns, HasErrors reports whether any fault occurred; the
caller treats a non-empty fault list as a fatal outcome.
*/
package parser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akashmaji946/beeline/lexer"
)

// BeelineParseError is a grammar violation at a specific token.
// Multiple parse errors may be reported in one run thanks to panic-mode
// recovery.
type BeelineParseError struct {
	Message string      // What the parser expected or rejected
	Token   lexer.Token // The token at which the violation was detected
}

// Error renders the fault as "BeelineParseError: <message> at <position>".
func (e *BeelineParseError) Error() string {
	return fmt.Sprintf("BeelineParseError: %s at %s", e.Message, e.Token.Position)
}

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse a Beeline token
// sequence into an Abstract Syntax Tree (AST).
type Parser struct {
	Tokens    []lexer.Token // The token sequence, terminated by an EOF token
	CurrToken lexer.Token   // Current token being processed
	NextToken lexer.Token   // Next token (for lookahead)
	currIndex int           // Index of CurrToken in Tokens

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Tokens that can begin an expression
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/infix operators

	// Collect parsing errors instead of aborting
	// This allows reporting multiple errors in a single parse
	Errors []error

	Logger zerolog.Logger // Diagnostics sink, injected by the caller
}

// NewParser creates and initializes a new Parser instance for the given
// token sequence. The sequence must be terminated by an EOF token, as
// produced by lexer.Scan. The logger receives an ERROR-level line for each
// parse fault as it is observed.
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing.
func NewParser(tokens []lexer.Token, logger zerolog.Logger) *Parser {
	par := &Parser{
		Tokens: tokens,
		Logger: logger,
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]error, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Literals: 42, 3.14, "hello", true, false, null
	par.registerUnaryFuncs(par.parseLiteralExpression,
		lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupingExpression, lexer.LEFT_PAREN)

	// Identifiers: variable references
	par.registerUnaryFuncs(par.parseVariableExpression, lexer.IDENTIFIER_ID)

	// Unary operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison and equality operators: >, >=, <, <=, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP)

	// Logical operators: and, or (short-circuit semantics live in the evaluator)
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Assignment operator: = (right-associative, target-validated)
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.currIndex = -2
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the token sequence
//
// Past the end of the sequence both tokens saturate at the final EOF token.
func (par *Parser) advance() {
	par.currIndex++
	par.CurrToken = par.tokenAt(par.currIndex)
	par.NextToken = par.tokenAt(par.currIndex + 1)
}

// tokenAt returns the token at the given index, saturating at the
// terminating EOF token for indexes past the end. A negative index (only
// seen while init primes the lookahead) yields the zero Token.
func (par *Parser) tokenAt(index int) lexer.Token {
	if len(par.Tokens) == 0 {
		return lexer.Token{Type: lexer.EOF_TYPE}
	}
	if index < 0 {
		return lexer.Token{}
	}
	if index >= len(par.Tokens) {
		return par.Tokens[len(par.Tokens)-1]
	}
	return par.Tokens[index]
}

// isDone reports whether the parser has reached the EOF token.
func (par *Parser) isDone() bool {
	return par.CurrToken.Type == lexer.EOF_TYPE
}

// addError records a parse fault and logs it at ERROR level.
// The parser collects errors instead of aborting, allowing it to
// report multiple errors in a single parse.
func (par *Parser) addError(message string, token lexer.Token) {
	err := &BeelineParseError{Message: message, Token: token}
	par.Logger.Error().Msg(err.Error())
	par.Errors = append(par.Errors, err)
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was
// successful; any recorded error makes the overall outcome fatal.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
func (par *Parser) GetErrors() []error {
	return par.Errors
}

// Parse is the main parsing function that converts the token sequence into
// an AST. It repeatedly parses declarations until reaching the end of the
// sequence, building up a RootNode that contains all successfully parsed
// statements.
//
// On a parse fault the parser records the error and enters panic-mode
// recovery: tokens are discarded until a statement boundary (a consumed
// newline, or a token that begins a new statement), and parsing resumes
// there. The returned root therefore holds every statement that could be
// parsed, even when HasErrors reports faults.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	for !par.isDone() {
		errorsBefore := len(par.Errors)
		stmt := par.parseDeclaration()
		if len(par.Errors) > errorsBefore {
			par.recover()
			continue
		}
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}

	return root
}

// recover implements panic-mode error recovery.
// Tokens are discarded until either a NEWLINE has just been consumed or the
// next token begins a new statement (var, if, while, print), so that the
// parser can resume at a statement boundary.
func (par *Parser) recover() {
	for !par.isDone() {
		previous := par.CurrToken
		par.advance()
		if previous.Type == lexer.NEWLINE_TYPE {
			return
		}
		switch par.CurrToken.Type {
		case lexer.VAR_KEY, lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY:
			return
		}
	}
}

// consumeNewlines skips any run of NEWLINE tokens.
func (par *Parser) consumeNewlines() {
	for par.CurrToken.Type == lexer.NEWLINE_TYPE {
		par.advance()
	}
}

// requireTerminator enforces the statement terminator rule: after a
// statement-producing construct the parser requires a NEWLINE (consumed) or
// the end of input. The closing syntax of an enclosing statement ('}' of a
// block, 'else' of an if) also terminates, and is left for the enclosing
// rule to consume.
//
// On entry CurrToken is the last token of the construct; on success
// CurrToken is the first token after the statement.
func (par *Parser) requireTerminator(message string) bool {
	par.advance()
	if par.isDone() {
		return true
	}
	switch par.CurrToken.Type {
	case lexer.NEWLINE_TYPE:
		par.advance()
		return true
	case lexer.RIGHT_BRACE, lexer.ELSE_KEY:
		return true
	}
	par.addError(message, par.CurrToken)
	return false
}
