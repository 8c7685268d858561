/*
File    : beeline/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/beeline/objects"
)

// TestScope_BindAndLookUp verifies basic binding and resolution
func TestScope_BindAndLookUp(t *testing.T) {
	root := NewScope(nil)
	redeclared := root.Bind("x", &objects.Number{Value: 10})
	assert.False(t, redeclared)

	value, ok := root.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, 10.0, value.(*objects.Number).Value)

	_, ok = root.LookUp("y")
	assert.False(t, ok)
}

// TestScope_RebindSameScope verifies redeclaration in the same scope is
// reported and leaves the original binding untouched
func TestScope_RebindSameScope(t *testing.T) {
	root := NewScope(nil)
	root.Bind("x", &objects.Number{Value: 1})
	redeclared := root.Bind("x", &objects.Number{Value: 2})
	assert.True(t, redeclared)

	value, ok := root.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, value.(*objects.Number).Value)
}

// TestScope_Shadowing verifies an inner scope may rebind an outer name and
// the outer binding survives
func TestScope_Shadowing(t *testing.T) {
	root := NewScope(nil)
	root.Bind("x", &objects.Number{Value: 1})
	inner := NewScope(root)
	redeclared := inner.Bind("x", &objects.Number{Value: 2})
	assert.False(t, redeclared)

	value, ok := inner.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, 2.0, value.(*objects.Number).Value)

	value, ok = root.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, value.(*objects.Number).Value)
}

// TestScope_AssignWalksChain verifies assignment mutates the nearest
// existing binding, wherever it lives in the chain
func TestScope_AssignWalksChain(t *testing.T) {
	root := NewScope(nil)
	root.Bind("x", &objects.Number{Value: 1})
	inner := NewScope(root)

	ok := inner.Assign("x", &objects.Number{Value: 5})
	require.True(t, ok)

	value, found := root.LookUp("x")
	require.True(t, found)
	assert.Equal(t, 5.0, value.(*objects.Number).Value)
	assert.Empty(t, inner.Variables)
}

// TestScope_AssignUnbound verifies assignment to an unbound name fails
// through the whole chain
func TestScope_AssignUnbound(t *testing.T) {
	root := NewScope(nil)
	inner := NewScope(root)
	assert.False(t, inner.Assign("x", &objects.Number{Value: 1}))
}

// TestScope_LookUpWalksChain verifies lookup resolves innermost outward
func TestScope_LookUpWalksChain(t *testing.T) {
	root := NewScope(nil)
	root.Bind("a", &objects.String{Value: "outer"})
	middle := NewScope(root)
	inner := NewScope(middle)

	value, ok := inner.LookUp("a")
	require.True(t, ok)
	assert.Equal(t, "outer", value.(*objects.String).Value)
}
