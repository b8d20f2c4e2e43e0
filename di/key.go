package di

import "reflect"

// TypeKey identifies a runtime type in a DispatchRegistry.
//
// Keys are comparable and are used directly as map keys. A registry looks up
// the key of an instance's exact dynamic type; it never walks interfaces or
// embedded structs to find a "close enough" binding.
//
// Example:
//
//	di.KeyFor[*UserHandler]()   // key of the concrete pointer type
//	di.KeyOf(&UserHandler{})    // same key, computed from a value
type TypeKey struct {
	t reflect.Type
}

// KeyFor returns the key of the static type C.
//
// C may be an interface type. Such a key never matches an instance during
// dispatch (instances always have a concrete dynamic type) but still shows up
// in the supertype suggestions of an UnresolvedBindingError.
func KeyFor[C any]() TypeKey { return TypeKey{t: reflect.TypeFor[C]()} }

// KeyOf returns the key of v's dynamic type, or the zero key for a nil v.
func KeyOf(v any) TypeKey {
	if v == nil {
		return TypeKey{}
	}
	return TypeKey{t: reflect.TypeOf(v)}
}

// Type returns the underlying reflect.Type (nil for the zero key).
func (k TypeKey) Type() reflect.Type { return k.t }

// IsZero reports whether k is the zero key.
func (k TypeKey) IsZero() bool { return k.t == nil }

// String returns the package-qualified type name, e.g. "*examples.UserHandler".
func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// IsSupertypeOf reports whether every instance of sub is also an instance of k,
// with k != sub.
//
// In Go terms k is a supertype of sub when:
//   - k is an interface type implemented by sub, or
//   - k names a struct (or pointer to struct) embedded in sub's struct,
//     directly or through other embedded structs.
func (k TypeKey) IsSupertypeOf(sub TypeKey) bool {
	if k.t == nil || sub.t == nil || k == sub {
		return false
	}
	if k.t.Kind() == reflect.Interface {
		return sub.t.Implements(k.t)
	}
	base := deref(k.t)
	if base.Kind() != reflect.Struct {
		return false
	}
	return embeds(deref(sub.t), base, map[reflect.Type]bool{})
}

// embeds walks the anonymous fields of s looking for base.
func embeds(s, base reflect.Type, seen map[reflect.Type]bool) bool {
	if s.Kind() != reflect.Struct || seen[s] {
		return false
	}
	seen[s] = true

	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := deref(f.Type)
		if ft == base || embeds(ft, base, seen) {
			return true
		}
	}
	return false
}

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// func, map, slice or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
