// Package guard provides a constructor guard for value objects, commands, and queries.
// Embedding a ConstructorGuard lets a type detect whether it was created through its
// designated constructor or left as a zero value, keeping invariants enforceable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is provided
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value fails
// validation, so types embedding it cannot be used without going through their
// constructor function.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
