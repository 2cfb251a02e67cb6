package graph

// PropertyRegistry is the ordered set of property names known to a graph.
type PropertyRegistry struct {
	names []string
	index map[string]int
}

// NewRegistry builds a registry from the declared property names, or from
// the properties asserted on instances (first-seen order) when none are declared.
func NewRegistry(declared []string, instances []*Instance) *PropertyRegistry {
	r := &PropertyRegistry{index: make(map[string]int)}
	if len(declared) > 0 {
		for _, name := range declared {
			r.add(name)
		}
		return r
	}
	for _, inst := range instances {
		for _, name := range inst.PropertyNames() {
			r.add(name)
		}
	}
	return r
}

func (r *PropertyRegistry) add(name string) {
	if name == "" {
		return
	}
	if _, ok := r.index[name]; ok {
		return
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
}

// Names returns the known property names in registry order.
func (r *PropertyRegistry) Names() []string {
	if r == nil {
		return nil
	}
	return r.names
}

// Contains reports whether name is a known property.
func (r *PropertyRegistry) Contains(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.index[name]
	return ok
}

// Len returns the number of known properties.
func (r *PropertyRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}
