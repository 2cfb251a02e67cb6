// Package extract flattens graph instances into records the synthesis
// engine can fold into descriptors.
package extract

import (
	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/model"
)

// Record is the flattened view of one instance.
type Record struct {
	LinkageKey string
	// Env holds environment entries in registry order, duplicates included.
	Env []model.EnvVar

	fields map[Field]string
	lists  map[Field][]string
}

// Lookup returns a single-valued field.
func (r *Record) Lookup(f Field) (string, bool) {
	v, ok := r.fields[f]
	return v, ok
}

// Get returns a single-valued field, or "" when it was not asserted.
func (r *Record) Get(f Field) string {
	return r.fields[f]
}

// List returns a multi-valued field in assertion order.
func (r *Record) List(f Field) []string {
	return r.lists[f]
}

// binding ties a registry property to what it feeds: a field or an
// environment variable.
type binding struct {
	property string
	field    Field
	envKey   string
}

// Extractor turns instances into records using a fixed table of bindings
// built once from the graph's property registry.
type Extractor struct {
	bindings []binding
	resolver LinkageResolver
	rep      *diag.Reporter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithResolver overrides the linkage key resolver.
func WithResolver(r LinkageResolver) Option {
	return func(e *Extractor) {
		if r != nil {
			e.resolver = r
		}
	}
}

// New builds an extractor for the properties in reg.
func New(reg *graph.PropertyRegistry, rep *diag.Reporter, opts ...Option) *Extractor {
	if rep == nil {
		rep = diag.Discard()
	}
	e := &Extractor{
		resolver: PrefixResolver{},
		rep:      rep,
	}
	for _, opt := range opts {
		opt(e)
	}

	log := rep.Logger()
	for _, name := range reg.Names() {
		if key, ok := EnvKey(name); ok {
			e.bindings = append(e.bindings, binding{property: name, envKey: key})
			continue
		}
		if f, ok := LookupField(name); ok {
			e.bindings = append(e.bindings, binding{property: name, field: f})
			continue
		}
		log.V(2).Info("Ignoring property with no known field", "property", name)
	}
	return e
}

// Extract reads every bound property of inst. Missing values are skipped;
// extra values on single-valued fields are dropped with a note.
func (e *Extractor) Extract(inst *graph.Instance) *Record {
	rec := &Record{
		LinkageKey: e.resolver.LinkageKey(inst),
		fields:     make(map[Field]string),
		lists:      make(map[Field][]string),
	}
	subject := inst.QualifiedName()
	log := e.rep.Logger()

	for _, b := range e.bindings {
		values := inst.Values(b.property)
		if len(values) == 0 {
			log.V(2).Info("No values asserted", "instance", subject, "property", b.property)
			continue
		}

		switch {
		case b.envKey != "":
			if len(values) > 1 {
				e.rep.Infof(subject, "%s has %d values, using the first", b.property, len(values))
			}
			rec.Env = append(rec.Env, model.EnvVar{Name: b.envKey, Value: values[0].String()})

		case IsMultiValued(b.field):
			for _, v := range values {
				rec.lists[b.field] = append(rec.lists[b.field], v.String())
			}

		default:
			if prev, ok := rec.fields[b.field]; ok {
				e.rep.Infof(subject, "%s already set to %q by another property, ignoring %s", b.field, prev, b.property)
				continue
			}
			if len(values) > 1 {
				e.rep.Infof(subject, "%s has %d values, using the first", b.property, len(values))
			}
			rec.fields[b.field] = values[0].String()
		}
	}
	return rec
}
