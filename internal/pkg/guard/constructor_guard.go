// Package guard implements the constructor-guard pattern used by value objects
// and commands throughout the application. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable: only instances produced by the
// designated constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor. The zero value fails validation, which prevents bypassing
// constructor invariants via direct struct initialization.
//
// Example:
//
//	type Coordinate struct {
//	    lat, lon float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCoordinate(lat, lon float64) (Coordinate, error) {
//	    // validate lat/lon ...
//	    return Coordinate{lat: lat, lon: lon, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Coordinate) Validate() error {
//	    return c.guard.Validate(ErrCoordinateIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it from the owning type's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built via its constructor.
// For a zero-value guard it returns validationError, falling back to
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
