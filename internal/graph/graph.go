package graph

import (
	"fmt"

	"github.com/spf13/cast"
)

// Literal is a single asserted property value: a string, number or boolean.
type Literal struct {
	v any
}

// NewLiteral wraps a raw value.
func NewLiteral(v any) Literal {
	return Literal{v: v}
}

// Value returns the raw value as it was loaded.
func (l Literal) Value() any {
	return l.v
}

// String coerces the literal to its string form regardless of source type.
func (l Literal) String() string {
	s, err := cast.ToStringE(l.v)
	if err != nil {
		return fmt.Sprint(l.v)
	}
	return s
}

// Instance is a typed individual of the semantic graph.
type Instance struct {
	Ontology string
	Name     string
	// Types is the classification chain, most specific first.
	Types []string

	properties map[string][]Literal
	order      []string
}

// NewInstance creates an instance with no asserted properties.
func NewInstance(ontology, name string, types ...string) *Instance {
	return &Instance{
		Ontology:   ontology,
		Name:       name,
		Types:      types,
		properties: make(map[string][]Literal),
	}
}

// Assert appends values to a property. Repeated assertions accumulate in order.
func (i *Instance) Assert(property string, values ...any) *Instance {
	if _, ok := i.properties[property]; !ok {
		i.order = append(i.order, property)
		i.properties[property] = nil
	}
	for _, v := range values {
		i.properties[property] = append(i.properties[property], NewLiteral(v))
	}
	return i
}

// Values returns the literals asserted for a property, or nil.
func (i *Instance) Values(property string) []Literal {
	return i.properties[property]
}

// PropertyNames returns asserted property names in assertion order.
func (i *Instance) PropertyNames() []string {
	return i.order
}

// QualifiedName is the printed identity of the instance, e.g. "2024.Kubernetes".
func (i *Instance) QualifiedName() string {
	if i.Ontology == "" {
		return i.Name
	}
	return i.Ontology + "." + i.Name
}

func (i *Instance) String() string {
	return i.QualifiedName()
}

// Graph is the read-only input of a synthesis run.
type Graph struct {
	Instances []*Instance
	Registry  *PropertyRegistry
}

// New builds a graph. When declared is empty the property registry is
// derived from the instances in document order.
func New(instances []*Instance, declared ...string) *Graph {
	return &Graph{
		Instances: instances,
		Registry:  NewRegistry(declared, instances),
	}
}
