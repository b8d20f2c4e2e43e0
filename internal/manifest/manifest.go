// Package manifest loads a YAML bindings manifest and assembles a dispatch
// registry from it.
//
// Example manifest:
//
//	bindings:
//	  - type: user
//	  - type: basket
//	  - type: admin
//	    factory: user   # explicit factory; here a deliberate mismatch
//
// type names the catalog component whose key is bound; factory (default: the
// same name) names the catalog component whose factory is used.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/odispatch/di"
	"github.com/sghaida/odispatch/examples"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyType     = errors.New("manifest: binding type cannot be empty")
	ErrDuplicateType = errors.New("manifest: type bound more than once")
	ErrUnknownName   = errors.New("manifest: unknown catalog name")
)

// Binding is one manifest entry.
type Binding struct {
	Type    string `yaml:"type"`
	Factory string `yaml:"factory,omitempty"`
}

// FactoryName returns the catalog name whose factory is used for the binding.
func (b Binding) FactoryName() string {
	if b.Factory == "" {
		return b.Type
	}
	return b.Factory
}

// Manifest is the decoded bindings file.
type Manifest struct {
	Bindings []Binding `yaml:"bindings"`
}

// Load decodes and validates a manifest. Unknown fields are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads and decodes the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// Validate checks for empty and duplicate types.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Bindings))
	for i, b := range m.Bindings {
		if b.Type == "" {
			return fmt.Errorf("%w (binding %d)", ErrEmptyType, i)
		}
		if _, dup := seen[b.Type]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateType, b.Type)
		}
		seen[b.Type] = struct{}{}
	}
	return nil
}

// Assemble turns the manifest into a registry using catalog entries.
func Assemble(m *Manifest, catalog map[string]examples.Entry, opts ...di.Option) (*di.DispatchRegistry[examples.Component], error) {
	b := di.NewBindings[examples.Component]()
	for _, binding := range m.Bindings {
		target, ok := catalog[binding.Type]
		if !ok {
			return nil, fmt.Errorf("%w: type %q", ErrUnknownName, binding.Type)
		}
		source, ok := catalog[binding.FactoryName()]
		if !ok {
			return nil, fmt.Errorf("%w: factory %q", ErrUnknownName, binding.FactoryName())
		}
		b.Provide(target.Key, source.Factory)
	}
	return b.Build(opts...)
}
