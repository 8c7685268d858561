/*
File    : beeline/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/akashmaji946/beeline/objects"
)

// Lexer performs lexical analysis (tokenization) of Beeline source code.
// It scans through the source text byte by byte, identifying and creating
// tokens that represent the syntactic elements of the language.
//
// The lexer maintains state about its current position in the source code,
// including line and column numbers for error reporting, and a snapshot of
// where the token currently being scanned started. It handles:
//   - Operators (arithmetic, comparison, assignment)
//   - Keywords (if, else, while, var, print, and, or, true, false, null)
//   - Literals (numbers, strings)
//   - Identifiers (variable names)
//   - Line comments (// ...)
//   - Whitespace (skipped) and newlines (emitted as NEWLINE tokens)
//
// A scan never aborts on the first fault: each syntax fault is logged,
// collected, and scanning resumes from the next byte. After end of input
// the collected faults, if any, are surfaced as one BeelineLexingError.
type Lexer struct {
	Src       string // Entire source code in plain text format
	SrcLength int    // Length of source string

	Offset int // Current byte offset in the source code (0-indexed)
	Line   int // Current line number in source (1-indexed)
	Column int // Current column number in source (1-indexed)

	// Snapshot of the position at the start of the token being scanned.
	// Fault positions and token positions are both built from it.
	StartOffset int
	StartLine   int
	StartColumn int

	Tokens []Token        // Tokens produced so far
	Logger zerolog.Logger // Diagnostics sink, injected by the caller
}

// NewLexer creates and initializes a new Lexer for the given source code.
// Position tracking starts at line 1, column 1. The logger receives an
// ERROR-level line for each syntax fault as it is observed.
func NewLexer(src string, logger zerolog.Logger) *Lexer {
	return &Lexer{
		Src:       src,
		SrcLength: len(src),
		Offset:    0,
		Line:      1,
		Column:    1,
		Tokens:    make([]Token, 0),
		Logger:    logger,
	}
}

// Scan tokenizes the entire source and returns the token sequence,
// terminated by a single EOF token. If any syntax fault was observed the
// returned error is a BeelineLexingError bundling every fault, and the
// token sequence must not be used.
func (lex *Lexer) Scan() ([]Token, error) {
	var faults *multierror.Error
	for !lex.isDone() {
		lex.snapshotStart()
		if err := lex.scanNextToken(); err != nil {
			lex.Logger.Error().Msg(err.Error())
			faults = multierror.Append(faults, err)
		}
	}
	lex.snapshotStart()
	lex.addToken(EOF_TYPE)
	if faults != nil {
		return nil, newBeelineLexingError(faults)
	}
	return lex.Tokens, nil
}

// snapshotStart records the current position as the start of the next token.
func (lex *Lexer) snapshotStart() {
	lex.StartOffset = lex.Offset
	lex.StartLine = lex.Line
	lex.StartColumn = lex.Column
}

// scanNextToken consumes one token (or one skippable run of input) starting
// at the current position. A returned error is always a *BeelineSyntaxError
// positioned at the snapshot taken by the caller.
func (lex *Lexer) scanNextToken() error {
	c := lex.advance()
	switch c {
	case '(':
		lex.addToken(LEFT_PAREN)
	case ')':
		lex.addToken(RIGHT_PAREN)
	case '{':
		lex.addToken(LEFT_BRACE)
	case '}':
		lex.addToken(RIGHT_BRACE)
	case '-':
		lex.addToken(MINUS_OP)
	case '+':
		lex.addToken(PLUS_OP)
	case '*':
		lex.addToken(MUL_OP)
	case '!':
		// Could be '!' (logical NOT) or '!=' (not equal)
		if lex.tryConsumeMatch('=') {
			lex.addToken(NE_OP)
		} else {
			lex.addToken(NOT_OP)
		}
	case '=':
		// Could be '=' (assignment) or '==' (equality)
		if lex.tryConsumeMatch('=') {
			lex.addToken(EQ_OP)
		} else {
			lex.addToken(ASSIGN_OP)
		}
	case '<':
		if lex.tryConsumeMatch('=') {
			lex.addToken(LE_OP)
		} else {
			lex.addToken(LT_OP)
		}
	case '>':
		if lex.tryConsumeMatch('=') {
			lex.addToken(GE_OP)
		} else {
			lex.addToken(GT_OP)
		}
	case '.':
		// A leading dot is only valid when a fractional part follows;
		// the integer part is then implicitly zero.
		if !isDigit(lex.peek()) {
			return lex.syntaxError("missing digit after decimal point")
		}
		return lex.numberAfterDecimalPoint()
	case '/':
		if lex.tryConsumeMatch('/') {
			// Line comment: consume up to but not including the newline,
			// so the NEWLINE token is still emitted for the terminator.
			for lex.peek() != '\n' && !lex.isDone() {
				lex.advance()
			}
		} else {
			lex.addToken(DIV_OP)
		}
	case ' ', '\r', '\t':
		// Whitespace between tokens carries no meaning
	case '\n':
		lex.addToken(NEWLINE_TYPE)
	case '"':
		return lex.scanString()
	default:
		if isDigit(c) {
			return lex.scanNumber()
		} else if isAlpha(c) || c == '_' {
			lex.scanIdentifier()
		} else {
			return lex.syntaxError("unexpected character")
		}
	}
	return nil
}

// advance consumes and returns the byte at the current offset.
// Consuming a newline advances the line counter and resets the column;
// any other byte advances the column.
func (lex *Lexer) advance() byte {
	c := lex.Src[lex.Offset]
	if c == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Offset++
	return c
}

// peek looks at the next unconsumed byte without consuming it.
// Returns 0 at end of input.
func (lex *Lexer) peek() byte {
	return lex.peekAhead(0)
}

// peekAhead looks `ahead` bytes past the next unconsumed byte.
// Returns 0 past the end of input.
func (lex *Lexer) peekAhead(ahead int) byte {
	if lex.isPastEnd(lex.Offset + ahead) {
		return 0
	}
	return lex.Src[lex.Offset+ahead]
}

// tryConsumeMatch consumes the next byte iff it equals expected.
func (lex *Lexer) tryConsumeMatch(expected byte) bool {
	if lex.isDone() || lex.Src[lex.Offset] != expected {
		return false
	}
	lex.advance()
	return true
}

// isDone reports whether the whole source has been consumed.
func (lex *Lexer) isDone() bool {
	return lex.isPastEnd(lex.Offset)
}

// isPastEnd reports whether the given offset lies past the end of the source.
func (lex *Lexer) isPastEnd(offset int) bool {
	return offset >= lex.SrcLength
}

// scanString consumes a string literal after its opening quote has been
// consumed. Newlines are allowed inside strings and advance the line
// counter. The stored literal is the contents without the delimiters.
func (lex *Lexer) scanString() error {
	for lex.peek() != '"' && !lex.isDone() {
		lex.advance()
	}
	if lex.isDone() {
		return lex.syntaxError("unterminated string")
	}
	lex.advance() // Consume closing quote
	quoted := lex.currentLexeme()
	lex.addTokenWithLiteral(STRING_LIT, &objects.String{Value: quoted[1 : len(quoted)-1]})
	return nil
}

// scanNumber consumes a numeric literal after its first digit has been
// consumed. A fractional part is consumed only when a dot is immediately
// followed by a digit, so that "12." lexes as the number 12 followed by a
// (faulting) dot token.
func (lex *Lexer) scanNumber() error {
	for isDigit(lex.peek()) {
		lex.advance()
	}
	if lex.peek() == '.' && isDigit(lex.peekAhead(1)) {
		lex.advance()
		return lex.numberAfterDecimalPoint()
	}
	return lex.addNumberToken()
}

// numberAfterDecimalPoint consumes the fractional digits of a numeric
// literal, after the decimal point itself has been consumed.
func (lex *Lexer) numberAfterDecimalPoint() error {
	for isDigit(lex.peek()) {
		lex.advance()
	}
	return lex.addNumberToken()
}

// addNumberToken converts the current lexeme to an IEEE-754 double and
// emits the number token.
func (lex *Lexer) addNumberToken() error {
	value, err := strconv.ParseFloat(lex.currentLexeme(), 64)
	if err != nil {
		// Unreachable for lexemes produced by the scanning rules above,
		// kept as a fault rather than a crash.
		return lex.syntaxError("malformed number literal")
	}
	lex.addTokenWithLiteral(NUMBER_LIT, &objects.Number{Value: value})
	return nil
}

// scanIdentifier consumes an identifier or keyword after its first byte has
// been consumed. Keyword literals (true, false, null) carry their denoted
// value on the token.
func (lex *Lexer) scanIdentifier() {
	for isAlphanumeric(lex.peek()) || lex.peek() == '_' {
		lex.advance()
	}
	tokenType := lookupIdent(lex.currentLexeme())
	switch tokenType {
	case TRUE_KEY:
		lex.addTokenWithLiteral(tokenType, &objects.Boolean{Value: true})
	case FALSE_KEY:
		lex.addTokenWithLiteral(tokenType, &objects.Boolean{Value: false})
	default:
		// NULL_KEY deliberately falls here: its literal is the null value,
		// which every non-literal token carries anyway.
		lex.addToken(tokenType)
	}
}

// addToken emits a token of the given type spanning the current snapshot,
// carrying the null literal.
func (lex *Lexer) addToken(tokenType TokenType) {
	lex.Tokens = append(lex.Tokens, NewToken(tokenType, lex.currentLexeme(), lex.currentPosition()))
}

// addTokenWithLiteral emits a token of the given type spanning the current
// snapshot, carrying the given literal value.
func (lex *Lexer) addTokenWithLiteral(tokenType TokenType, literal objects.BeelineObject) {
	lex.Tokens = append(lex.Tokens, NewTokenWithLiteral(tokenType, lex.currentLexeme(), literal, lex.currentPosition()))
}

// currentPosition builds the position of the token being scanned: the
// snapshot start, with the length covering everything consumed since.
func (lex *Lexer) currentPosition() Position {
	return Position{
		Offset: lex.StartOffset,
		Line:   lex.StartLine,
		Column: lex.StartColumn,
		Length: lex.Offset - lex.StartOffset,
	}
}

// currentLexeme returns the source substring consumed for the token being
// scanned.
func (lex *Lexer) currentLexeme() string {
	return lex.Src[lex.StartOffset:lex.Offset]
}

// syntaxError builds a BeelineSyntaxError at the position of the token
// being scanned.
func (lex *Lexer) syntaxError(message string) error {
	return &BeelineSyntaxError{Message: message, Position: lex.currentPosition()}
}
