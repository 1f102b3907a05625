// Package guard provides the ConstructorGuard pattern used by commands,
// queries and value objects to detect zero-value construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed for a guard that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. Embedding a guard in a struct makes zero-value
// instances detectable: the internal flag is only set by NewConstructorGuard,
// so Validate fails for any struct that bypassed its constructor.
//
// Example:
//
//	var ErrTakeOrderCommandIsNotConstructed = errors.New("TakeOrderCommand must be created via NewTakeOrderCommand")
//
//	type TakeOrderCommand struct {
//	    orderID  kernel.UUID
//	    expertID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c TakeOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it from the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
