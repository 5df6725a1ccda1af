// Package guard marks values that must only be obtained through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates. Its zero value
// is invalid, so a struct literal that bypassed NewX fails Validate.
//
// Example:
//
//	type ApproveDispatchCommand struct {
//	    tripID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c ApproveDispatchCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveDispatchCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
