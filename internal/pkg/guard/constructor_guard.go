// Package guard provides the constructor guard pattern used by domain objects,
// commands, and queries across the application. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so objects that bypass their
// designated constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error. Validation always fails with a meaningful message, even when
// no object-specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its designated
// constructor function. The zero value is "not constructed".
//
// Example:
//
//	type Assignment struct {
//	    technicianID kernel.UUID
//	    guard        guard.ConstructorGuard
//	}
//
//	func NewAssignment(technicianID kernel.UUID) (Assignment, error) {
//	    if err := technicianID.Validate(); err != nil {
//	        return Assignment{}, err
//	    }
//	    return Assignment{
//	        technicianID: technicianID,
//	        guard:        guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (a Assignment) Validate() error {
//	    return a.guard.Validate(ErrAssignmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value objects it returns validationError, or
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
