/*
File    : beeline/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/beeline/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping.
// Each scope maintains its own variable bindings and can access variables
// from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Block scoping: each block gets its own scope for the duration of its run
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup and assignment. The Parent reference is non-owning: by lexical
// construction the enclosing scope always outlives the nested one.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.BeelineObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the root scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates the root scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Example usage:
//
//	rootScope := NewScope(nil)        // Create root scope
//	blockScope := NewScope(rootScope) // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.BeelineObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical
// scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that variables in inner scopes shadow those
// in outer scopes, and that the nearest binding is always returned.
//
// Returns:
//   - objects.BeelineObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.BeelineObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a new variable binding in the current scope.
//
// This method adds a binding in the current scope only, without affecting
// parent scopes. Shadowing a variable from a parent scope is allowed; a
// second binding of the same name in the SAME scope is not, and the caller
// turns it into a runtime fault.
//
// Returns:
//   - bool: true if the variable already existed in THIS scope
//     (redeclaration), false if the binding is new
func (s *Scope) Bind(varName string, obj objects.BeelineObject) bool {
	_, has := s.Variables[varName]
	if has {
		return true
	}
	s.Variables[varName] = obj
	return false
}

// Assign updates an existing variable in the scope where it was defined.
//
// Unlike Bind (which creates new bindings in the current scope), Assign:
// 1. Searches for the variable in the current scope
// 2. If found, updates it in place
// 3. If not found, recursively searches parent scopes
//
// This ensures assignments mutate the nearest existing binding rather than
// creating a new one in the current scope.
//
// Returns:
//   - bool: true if the variable was found and updated, false if it is
//     unbound in the whole chain
func (s *Scope) Assign(varName string, obj objects.BeelineObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
