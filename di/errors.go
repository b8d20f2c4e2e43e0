package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilTarget is returned when a nil instance (or a typed nil pointer)
	// is passed to TryDispatch or Dispatch.
	ErrNilTarget = errors.New("di: nil target instance")

	// ErrZeroKey is returned by Build when a binding was provided under the zero TypeKey.
	ErrZeroKey = errors.New("di: zero type key")
)

const (
	noSupertypesBound = "No injector factory bound for Class<"
	supertypesBound   = "Injector factories were bound for supertypes of "
	subtypeHint       = "Did you mean to bind an injector factory for the subtype?"
)

// UnresolvedBindingError is returned by Dispatch when no factory is bound for
// the exact dynamic type of the instance.
//
// Supertypes lists, sorted, the bound keys the instance is also an instance of.
// Those bindings are never used for the instance: dispatch matches exact types
// only, so the usual fix is to bind a factory for the concrete subtype.
type UnresolvedBindingError struct {
	// Type is the instance's dynamic type name.
	Type string

	// Supertypes are the bound supertype names, sorted lexicographically.
	Supertypes []string
}

// Error implements the error interface.
func (e UnresolvedBindingError) Error() string {
	// Example: No injector factory bound for Class<*app.Admin>. Injector factories were bound
	// for supertypes of *app.Admin: *app.User. Did you mean to bind an injector factory for the subtype?
	var b strings.Builder
	b.WriteString(noSupertypesBound)
	b.WriteString(e.Type)
	b.WriteString(">")
	if len(e.Supertypes) == 0 {
		return b.String()
	}
	b.WriteString(". ")
	b.WriteString(supertypesBound)
	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(strings.Join(e.Supertypes, ", "))
	b.WriteString(". ")
	b.WriteString(subtypeHint)
	return b.String()
}

// InstanceTypeError is returned by a Handler (or HandlerFactory) asked to
// work on an instance whose dynamic type it does not inject.
type InstanceTypeError struct {
	Want TypeKey
	Got  TypeKey
}

// Error implements the error interface.
func (e InstanceTypeError) Error() string {
	// Example: di: instance has type *app.Basket, want *app.User
	return "di: instance has type " + e.Got.String() + ", want " + e.Want.String()
}

// BindingMismatchError is returned when the factory bound under an instance's
// type produces a handler for a different type. It is a wiring defect: the
// key a factory was bound under does not match what the factory injects.
type BindingMismatchError struct {
	// Factory is the bound factory's name.
	Factory string

	// Type is the instance's dynamic type name.
	Type string

	// Err is the InstanceTypeError reported by the factory or handler.
	Err error
}

// Error implements the error interface.
func (e BindingMismatchError) Error() string {
	// Example: di: examples.userFactory does not implement Factory[*app.Basket]
	return "di: " + e.Factory + " does not implement Factory[" + e.Type + "]"
}

// Unwrap returns the underlying InstanceTypeError.
func (e BindingMismatchError) Unwrap() error { return e.Err }

// ContractViolationError is returned when a bound factory breaks its contract
// by returning no handler. It indicates a broken factory, not a usage error.
type ContractViolationError struct {
	Factory string
	Key     TypeKey
}

// Error implements the error interface.
func (e ContractViolationError) Error() string {
	// Example: di: examples.userFactory.Create should not return nil (key *app.User)
	return "di: " + e.Factory + ".Create should not return nil (key " + e.Key.String() + ")"
}

// DuplicateKeyError is returned by Build when two factories were provided for the same key.
type DuplicateKeyError struct{ Key TypeKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate binding for key "*app.User"
	return "di: duplicate binding for key " + strconv.Quote(e.Key.String())
}

// NilFactoryError is returned by Build when a nil factory was provided for a key.
type NilFactoryError struct{ Key TypeKey }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	return "di: nil factory for key " + strconv.Quote(e.Key.String())
}

// KeyTypeError is returned by Build when a key is not assignable to the
// registry's base type.
type KeyTypeError struct {
	Key  TypeKey
	Base string
}

// Error implements the error interface.
func (e KeyTypeError) Error() string {
	// Example: di: key "string" is not assignable to app.Component
	return "di: key " + strconv.Quote(e.Key.String()) + " is not assignable to " + e.Base
}
