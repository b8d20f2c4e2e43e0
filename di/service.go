package di

// MembersInjector injects the members of an instance of C.
type MembersInjector[C any] interface {
	InjectMembers(instance C)
}

// MembersInjectorFunc adapts a function to MembersInjector.
type MembersInjectorFunc[C any] func(instance C)

// InjectMembers implements MembersInjector.
func (f MembersInjectorFunc[C]) InjectMembers(instance C) { f(instance) }

// Factory creates a MembersInjector for an instance of C.
//
// Create is called once per dispatch; it must not return nil.
type Factory[C any] interface {
	Create(instance C) MembersInjector[C]
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc[C any] func(instance C) MembersInjector[C]

// Create implements Factory.
func (f FactoryFunc[C]) Create(instance C) MembersInjector[C] { return f(instance) }

// NewFactory returns create as a Factory[C], letting C be inferred from the function.
func NewFactory[C any](create func(instance C) MembersInjector[C]) Factory[C] {
	return FactoryFunc[C](create)
}

// Injecting builds a MembersInjector that binds a single dependency into the instance.
//
// Example:
//
//	di.Injecting(db, func(h *UserHandler, d *DB) { h.DB = d })
func Injecting[C any, D any](dep D, bind func(instance C, dependency D)) MembersInjector[C] {
	return MembersInjectorFunc[C](func(instance C) {
		bind(instance, dep)
	})
}

// Members combines injectors into one that applies them in order.
//
// Nil injectors are skipped.
func Members[C any](injs ...MembersInjector[C]) MembersInjector[C] {
	return MembersInjectorFunc[C](func(instance C) {
		for _, inj := range injs {
			if isNil(inj) {
				continue
			}
			inj.InjectMembers(instance)
		}
	})
}

// Handler is the type-erased form of a MembersInjector.
//
// Apply returns an InstanceTypeError if instance is not of the type the
// handler injects. Any other error is returned to the dispatch caller unchanged.
type Handler interface {
	Apply(instance any) error
}

// HandlerFactory is the type-erased form of a Factory, as stored by a DispatchRegistry.
type HandlerFactory interface {
	// Name identifies the factory in error messages.
	Name() string

	// Create returns a new Handler for instance. Returning (nil, nil) breaks
	// the contract and is reported as a ContractViolationError.
	Create(instance any) (Handler, error)
}

// Erase converts a typed Factory into a HandlerFactory.
//
// The returned factory checks at use that the instance really is a C; on any
// other type it fails with an InstanceTypeError instead of panicking.
// If f has a non-empty Name() string method, that name is used in error
// messages; otherwise the factory's type name is.
func Erase[C any](f Factory[C]) HandlerFactory {
	if isNil(f) {
		return nil
	}
	name := KeyOf(f).String()
	if n, ok := f.(interface{ Name() string }); ok && n.Name() != "" {
		name = n.Name()
	}
	return typedFactory[C]{factory: f, name: name}
}

type typedFactory[C any] struct {
	factory Factory[C]
	name    string
}

func (f typedFactory[C]) Name() string { return f.name }

func (f typedFactory[C]) Create(instance any) (Handler, error) {
	c, ok := instance.(C)
	if !ok {
		return nil, InstanceTypeError{Want: KeyFor[C](), Got: KeyOf(instance)}
	}
	inj := f.factory.Create(c)
	if isNil(inj) {
		return nil, nil
	}
	return typedHandler[C]{injector: inj}, nil
}

type typedHandler[C any] struct {
	injector MembersInjector[C]
}

func (h typedHandler[C]) Apply(instance any) error {
	c, ok := instance.(C)
	if !ok {
		return InstanceTypeError{Want: KeyFor[C](), Got: KeyOf(instance)}
	}
	h.injector.InjectMembers(c)
	return nil
}
