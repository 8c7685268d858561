/*
File    : beeline/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the runtime value domain of the Beeline language.
// Beeline is dynamically typed over a small closed set of value kinds:
// null, string, number (IEEE-754 double), and boolean. Every token literal
// and every value produced by the evaluator is one of these four kinds.
// All kinds implement the BeelineObject interface, which allows for type
// checking, string representation, and object inspection.
package objects

import (
	"fmt" // fmt is used for string formatting in ToString and ToObject methods
)

// BeelineType represents the kind of a Beeline value as a string constant.
// These constants are used to identify the kind of values in the language,
// enabling type checking and operator dispatch across the value domain.
type BeelineType string

const (
	// NullType represents the null value
	NullType BeelineType = "null"
	// StringType represents string values
	StringType BeelineType = "string"
	// NumberType represents 64-bit floating-point values
	NumberType BeelineType = "number"
	// BooleanType represents boolean (true/false) values
	BooleanType BeelineType = "bool"
)

// BeelineObject is the core interface that all Beeline values implement.
// It provides methods for kind identification, string representation for
// display, and value inspection for debugging purposes.
type BeelineObject interface {
	// GetType returns the BeelineType of the value, used for type checking
	GetType() BeelineType
	// ToString returns a human-readable string representation of the value
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and value inspection
	ToObject() string
}

// Null represents the null value in Beeline.
type Null struct{}

// GetType returns the type of the Null value
func (n *Null) GetType() BeelineType {
	return NullType
}

// ToString returns the string "nullptr"
func (n *Null) ToString() string {
	return "nullptr"
}

// ToObject returns a detailed representation "<null()>"
func (n *Null) ToObject() string {
	return "<null()>"
}

// String represents a string value in Beeline.
// It wraps a Go string and provides methods for kind identification and display.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String value
func (s *String) GetType() BeelineType {
	return StringType
}

// ToString returns the string value itself (e.g., "hello")
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g., "<string(hello)>")
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Number represents a numeric value in Beeline.
// All Beeline numbers are 64-bit IEEE-754 doubles, even when written
// without a fractional part in the source.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number value
func (n *Number) GetType() BeelineType {
	return NumberType
}

// ToString returns the fixed-point rendering of the number with six
// decimal places (e.g., "3.140000"). Display contexts that want the
// short form trim trailing zeros and the trailing dot themselves.
func (n *Number) ToString() string {
	return fmt.Sprintf("%f", n.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<number(3.140000)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%f)>", n.Value)
}

// Boolean represents a boolean value in Beeline.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean value
func (b *Boolean) GetType() BeelineType {
	return BooleanType
}

// ToString returns the string representation of the boolean value ("true" or "false")
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Equals reports whether two Beeline values are structurally equal.
// Values of different kinds are never equal; values of the same kind
// compare by their underlying Go values. Two nulls are equal.
func Equals(left BeelineObject, right BeelineObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}
	switch left.GetType() {
	case NullType:
		return true
	case StringType:
		return left.(*String).Value == right.(*String).Value
	case NumberType:
		return left.(*Number).Value == right.(*Number).Value
	case BooleanType:
		return left.(*Boolean).Value == right.(*Boolean).Value
	}
	return false
}
