package thinning

import "fmt"

// Registry maps algorithm names to descriptors. It is read-only once built.
type Registry struct {
	names  []string
	byName map[string]Descriptor
}

// NewRegistry builds a registry from descs, keeping their order for Names.
// Empty or duplicate names and descriptors without a constructor are rejected.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		names:  make([]string, 0, len(descs)),
		byName: make(map[string]Descriptor, len(descs)),
	}
	for _, d := range descs {
		if d.Name == "" {
			return nil, fmt.Errorf("algorithm descriptor has no name")
		}
		if d.New == nil {
			return nil, fmt.Errorf("algorithm %q has no constructor", d.Name)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("algorithm %q registered twice", d.Name)
		}
		r.names = append(r.names, d.Name)
		r.byName[d.Name] = d
	}
	return r, nil
}

var defaultRegistry = mustRegistry(
	morphDescriptor(),
	zhangSuenDescriptor(ZhangSuenFast, true),
	zhangSuenDescriptor(ZhangSuen, false),
	guoHallDescriptor(GuoHallFast, true),
	guoHallDescriptor(GuoHall, false),
)

func mustRegistry(descs ...Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry holding every built-in algorithm.
func Default() *Registry {
	return defaultRegistry
}

// IsValid reports whether name is registered.
func (r *Registry) IsValid(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns the registered names in registration order.
// The returned slice is a copy.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownAlgorithm, name, r.names)
	}
	return d, nil
}

// ListAlgorithms returns the names of the built-in algorithms.
func ListAlgorithms() []string {
	return defaultRegistry.Names()
}

// IsValid reports whether name is a built-in algorithm.
func IsValid(name string) bool {
	return defaultRegistry.IsValid(name)
}
