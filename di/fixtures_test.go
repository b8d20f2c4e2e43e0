package di_test

import (
	"sync/atomic"

	"github.com/sghaida/odispatch/di"
)

/*
   Shared fixtures.

   Animal is the registry base type. The concrete types form a small
   embedding hierarchy so supertype diagnostics can be exercised:

     *Pet   implements Animal
     *Dog   embeds Pet
     *Cat   embeds Pet
     *Puppy embeds *Dog (and so, transitively, Pet)
*/

type Animal interface {
	Sound() string
}

type Pet struct {
	Name  string
	Owner string
}

func (p *Pet) Sound() string { return "..." }

type Dog struct {
	Pet
	Vet string
}

func (d *Dog) Sound() string { return "woof" }

type Cat struct {
	Pet
}

type Puppy struct {
	*Dog
}

// node embeds a pointer to itself; supertype checks must still terminate.
type node struct {
	*node
}

func (n *node) Sound() string { return "" }

// counting is a named Factory[C] that records how many injectors it created
// and how many injections ran.
type counting[C any] struct {
	name     string
	created  atomic.Int32
	injected atomic.Int32
	inject   func(C)
}

func newCounting[C any](name string, inject func(C)) *counting[C] {
	return &counting[C]{name: name, inject: inject}
}

func (f *counting[C]) Name() string { return f.name }

func (f *counting[C]) Create(C) di.MembersInjector[C] {
	f.created.Add(1)
	return di.MembersInjectorFunc[C](func(instance C) {
		f.injected.Add(1)
		if f.inject != nil {
			f.inject(instance)
		}
	})
}

// nilFactory breaks the Factory contract by returning no injector.
type nilFactory[C any] struct{}

func (nilFactory[C]) Name() string { return "nilFactory" }

func (nilFactory[C]) Create(C) di.MembersInjector[C] { return nil }

// erasedFactory is a hand-written HandlerFactory.
type erasedFactory struct {
	name    string
	handler di.Handler
	err     error
}

func (f erasedFactory) Name() string { return f.name }

func (f erasedFactory) Create(any) (di.Handler, error) { return f.handler, f.err }

type handlerFunc func(instance any) error

func (h handlerFunc) Apply(instance any) error { return h(instance) }
