// Package odispatch is the root of an exact-type members-injection library for Go.
//
// Objects a framework constructs on its own get
// their dependencies after construction. A registry maps each concrete type
// to a factory that creates an injector for it, and dispatches instances to
// the factory bound for their exact dynamic type.
//
// See subpackages:
//   - di: the registry, bindings, typed/erased factories and errors
//   - cmd/odispatch: CLI that assembles a registry from a YAML manifest
//   - examples: component catalog and a runnable walk-through (examples/dispatch)
package odispatch
