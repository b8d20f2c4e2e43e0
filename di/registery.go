package di

import (
	"log/slog"
	"maps"
	"reflect"
)

// Bindings collects factories for a DispatchRegistry.
//
// It is the assembly step: populate it once (usually in main), then Build a
// read-only registry from it. Methods chain, and the first error is kept and
// returned by Build, so wiring stays a single expression:
//
//	reg, err := di.Bind(di.Bind(di.NewBindings[Component](), userFactory), basketFactory).Build()
//
// T is the base type of everything the registry dispatches; every key must be
// assignable to it. Bindings is not safe for concurrent use.
type Bindings[T any] struct {
	items map[TypeKey]HandlerFactory
	err   error
}

func NewBindings[T any]() *Bindings[T] {
	return &Bindings[T]{items: map[TypeKey]HandlerFactory{}}
}

// Bind binds a typed factory under the key of its own type parameter C.
//
// This is a package-level function because Go does not allow generic methods.
func Bind[T any, C any](b *Bindings[T], f Factory[C]) *Bindings[T] {
	return BindKey(b, KeyFor[C](), f)
}

// BindKey binds a typed factory under an explicit key.
//
// The key is trusted: binding a Factory[*A] under the key of *B is accepted
// here and reported as a BindingMismatchError when a *B is dispatched.
func BindKey[T any, C any](b *Bindings[T], key TypeKey, f Factory[C]) *Bindings[T] {
	if isNil(f) {
		b.fail(NilFactoryError{Key: key})
		return b
	}
	return b.Provide(key, Erase(f))
}

// Provide stores a type-erased factory under key and returns the bindings for chaining.
func (b *Bindings[T]) Provide(key TypeKey, f HandlerFactory) *Bindings[T] {
	if b.err != nil {
		return b
	}
	switch {
	case key.IsZero():
		b.fail(ErrZeroKey)
	case isNil(f):
		b.fail(NilFactoryError{Key: key})
	case !key.t.AssignableTo(reflect.TypeFor[T]()):
		b.fail(KeyTypeError{Key: key, Base: reflect.TypeFor[T]().String()})
	default:
		if _, exists := b.items[key]; exists {
			b.fail(DuplicateKeyError{Key: key})
			return b
		}
		b.items[key] = f
	}
	return b
}

// Err returns the first assembly error, if any.
func (b *Bindings[T]) Err() error { return b.err }

// Len returns the number of bindings collected so far.
func (b *Bindings[T]) Len() int { return len(b.items) }

// Build seals a copy of the bindings into a DispatchRegistry.
//
// Later changes to b do not affect the returned registry.
func (b *Bindings[T]) Build(opts ...Option) (*DispatchRegistry[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewDispatchRegistry[T](b.items, opts...), nil
}

// MustBuild is like Build but panics on an assembly error.
// Useful in main and tests where bad wiring should fail fast.
func (b *Bindings[T]) MustBuild(opts ...Option) *DispatchRegistry[T] {
	r, err := b.Build(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *Bindings[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Option configures a DispatchRegistry.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for dispatch diagnostics.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: discard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewDispatchRegistry builds a registry from an already assembled mapping.
//
// The map is copied; entries are not validated. Prefer Bindings, which
// checks keys and factories before sealing them.
func NewDispatchRegistry[T any](factories map[TypeKey]HandlerFactory, opts ...Option) *DispatchRegistry[T] {
	o := newOptions(opts)
	f := maps.Clone(factories)
	if f == nil {
		f = map[TypeKey]HandlerFactory{}
	}
	return &DispatchRegistry[T]{factories: f, logger: o.logger}
}
