/*
File    : beeline/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// BeelineSyntaxError is a single lexical fault: an input byte sequence that
// cannot form a valid token. It carries the starting position of the
// offending token, with the length covering everything consumed before the
// fault was detected.
type BeelineSyntaxError struct {
	Message  string   // What went wrong (e.g., "unexpected character")
	Position Position // Where in the source the offending token starts
}

// Error renders the fault as "BeelineSyntaxError: <message> at <position>".
func (e *BeelineSyntaxError) Error() string {
	return fmt.Sprintf("BeelineSyntaxError: %s at %s", e.Message, e.Position)
}

// BeelineLexingError is the fatal outcome of a scan that observed at least
// one syntax fault. Scanning does not abort on the first fault; every fault
// is collected and the aggregate is surfaced once after end of input.
type BeelineLexingError struct {
	Message string // The newline-joined renderings of every collected fault
}

// Error renders the aggregate as "BeelineLexingError: <message>".
func (e *BeelineLexingError) Error() string {
	return fmt.Sprintf("BeelineLexingError: %s", e.Message)
}

// newBeelineLexingError bundles the collected syntax faults into the single
// lexing error surfaced by Scan.
func newBeelineLexingError(faults *multierror.Error) *BeelineLexingError {
	faults.ErrorFormat = joinedErrorFormat
	return &BeelineLexingError{Message: faults.Error()}
}

// joinedErrorFormat joins the collected faults one per line, without the
// bullet-list framing multierror uses by default.
func joinedErrorFormat(errs []error) string {
	rendered := make([]string, 0, len(errs))
	for _, err := range errs {
		rendered = append(rendered, err.Error())
	}
	return strings.Join(rendered, "\n")
}
