package di

import (
	"errors"
	"log/slog"
	"sort"
)

// DispatchRegistry maps concrete types to the factories that inject them.
//
// It is read-only once built and safe for concurrent use. Lookups use the
// exact dynamic type of the instance: a factory bound for an embedded struct
// or an implemented interface is never used in place of the concrete type's
// own binding.
type DispatchRegistry[T any] struct {
	factories map[TypeKey]HandlerFactory
	logger    *slog.Logger
}

// TryDispatch injects instance if a factory is bound for its exact type.
//
// It returns (false, nil) when nothing is bound, without creating any handler.
// Only the missing binding is folded into the boolean; every other failure is returned.
func (r *DispatchRegistry[T]) TryDispatch(instance T) (bool, error) {
	if isNil(instance) {
		return false, ErrNilTarget
	}
	key := KeyOf(instance)

	f, ok := r.factories[key]
	if !ok {
		r.log().Debug("no injector factory bound", slog.String("type", key.String()))
		return false, nil
	}
	if isNil(f) {
		r.log().Warn("nil injector factory bound", slog.String("type", key.String()))
		return false, ContractViolationError{Factory: "<nil>", Key: key}
	}

	h, err := f.Create(instance)
	if err != nil {
		return false, r.handlerError(f, key, err)
	}
	if isNil(h) {
		r.log().Warn("injector factory returned no handler",
			slog.String("type", key.String()),
			slog.String("factory", f.Name()),
		)
		return false, ContractViolationError{Factory: f.Name(), Key: key}
	}

	if err := h.Apply(instance); err != nil {
		return false, r.handlerError(f, key, err)
	}

	r.log().Debug("members injected",
		slog.String("type", key.String()),
		slog.String("factory", f.Name()),
	)
	return true, nil
}

// Dispatch injects instance, failing if no factory is bound for its exact type.
//
// A missing binding is reported as an UnresolvedBindingError listing the bound
// supertypes of the instance's type, if any.
func (r *DispatchRegistry[T]) Dispatch(instance T) error {
	ok, err := r.TryDispatch(instance)
	if err != nil {
		return err
	}
	if !ok {
		return r.Unresolved(KeyOf(instance))
	}
	return nil
}

// MustDispatch is like Dispatch but panics on error.
func (r *DispatchRegistry[T]) MustDispatch(instance T) {
	if err := r.Dispatch(instance); err != nil {
		panic(err)
	}
}

// Unresolved builds the error Dispatch reports when key has no binding.
//
// It scans every bound key for supertypes of key and sorts their names so the
// message is deterministic.
func (r *DispatchRegistry[T]) Unresolved(key TypeKey) UnresolvedBindingError {
	var supers []string
	for k := range r.factories {
		if k.IsSupertypeOf(key) {
			supers = append(supers, k.String())
		}
	}
	sort.Strings(supers)

	r.log().Debug("unresolved injector binding",
		slog.String("type", key.String()),
		slog.Any("supertypes", supers),
	)
	return UnresolvedBindingError{Type: key.String(), Supertypes: supers}
}

// Has reports whether a factory is bound for exactly key.
func (r *DispatchRegistry[T]) Has(key TypeKey) bool {
	_, ok := r.factories[key]
	return ok
}

// Len returns the number of bindings.
func (r *DispatchRegistry[T]) Len() int { return len(r.factories) }

// Keys returns the bound keys sorted by type name.
func (r *DispatchRegistry[T]) Keys() []TypeKey {
	keys := make([]TypeKey, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// handlerError converts an InstanceTypeError into a BindingMismatchError and
// passes any other error through unchanged.
func (r *DispatchRegistry[T]) handlerError(f HandlerFactory, key TypeKey, err error) error {
	var ite InstanceTypeError
	if !errors.As(err, &ite) {
		return err
	}
	r.log().Warn("injector binding mismatch",
		slog.String("type", key.String()),
		slog.String("factory", f.Name()),
	)
	return BindingMismatchError{Factory: f.Name(), Type: key.String(), Err: err}
}

var discard = slog.New(slog.DiscardHandler)

func (r *DispatchRegistry[T]) log() *slog.Logger {
	if r.logger == nil {
		return discard
	}
	return r.logger
}
