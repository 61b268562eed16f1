// Package guard provides a defensive construction check for commands,
// queries, and value objects. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so objects that bypassed their
// constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded
// object was not constructed and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag is only set by NewConstructorGuard, so any struct created
// by direct initialization fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was constructed through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
