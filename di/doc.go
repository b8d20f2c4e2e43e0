// Package di performs members injection on objects the application did not
// construct itself, dispatching on the object's exact dynamic type.
//
// A framework often builds objects on its own (HTTP handlers, screens,
// plugins) and hands them to application code afterwards. Such objects cannot
// receive dependencies through a constructor. Instead, a Factory bound for the
// object's concrete type creates a MembersInjector that fills in the members.
//
// The pieces:
//
//   - Factory[C] / MembersInjector[C]: typed code written by callers.
//   - Bindings[T]: the assembly step. Each concrete type gets its own entry,
//     even if it embeds (or implements) a type that is already bound.
//   - DispatchRegistry[T]: the sealed, read-only mapping. TryDispatch reports
//     a missing binding as false; Dispatch turns it into an
//     UnresolvedBindingError that lists any bound supertypes.
//
// Exact matching is deliberate. A binding for *BaseHandler is never used for a
// *UserHandler that embeds it; the error message points at that mistake.
//
// Errors
//
// All failures are typed values you can assert in tests:
//
//   - UnresolvedBindingError: nothing bound for the exact type (Dispatch only).
//   - BindingMismatchError: the factory bound for a key injects another type.
//   - ContractViolationError: a factory returned no handler.
//   - DuplicateKeyError, NilFactoryError, KeyTypeError, ErrZeroKey: assembly errors from Build.
//
// Concurrency
//
// A DispatchRegistry is immutable after Build and safe for concurrent use
// without locking. Handlers are created per call and never shared.
//
// Import
//
//	"github.com/sghaida/odispatch/di"
package di
