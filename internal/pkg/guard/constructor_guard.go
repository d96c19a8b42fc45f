// Package guard implements the constructor guard pattern used by value
// objects and commands across the application. Embedding a ConstructorGuard
// in a struct makes zero-value instances detectable: only objects built
// through their designated constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate, which is the whole
// point: a struct literal bypassing the constructor is caught before use.
//
// Example:
//
//	type AddCartItemCommand struct {
//	    buyerID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAddCartItemCommand(buyerID kernel.UUID) (AddCartItemCommand, error) {
//	    // ... validation ...
//	    return AddCartItemCommand{buyerID: buyerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddCartItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor,
// otherwise the provided validation error (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
