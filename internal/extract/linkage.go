package extract

import (
	"strings"

	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
)

// LinkageResolver derives the key that joins a volume instance to the
// deployable units mounting it.
type LinkageResolver interface {
	LinkageKey(inst *graph.Instance) string
}

// DefaultSeparator splits an instance name into linkage key and rest.
const DefaultSeparator = "_"

// PrefixResolver uses the naming convention <key>_<rest>: the text before
// the first separator is the key. A name without separator is its own key.
type PrefixResolver struct {
	Separator string
}

func (r PrefixResolver) LinkageKey(inst *graph.Instance) string {
	sep := r.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	key, _, _ := strings.Cut(inst.Name, sep)
	return key
}

// PropertyResolver reads the key from an explicit owning-unit property and
// falls back to another resolver when the property is not asserted.
type PropertyResolver struct {
	Property string
	Fallback LinkageResolver
}

func (r PropertyResolver) LinkageKey(inst *graph.Instance) string {
	if r.Property != "" {
		for _, v := range inst.Values(r.Property) {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	if r.Fallback == nil {
		return PrefixResolver{}.LinkageKey(inst)
	}
	return r.Fallback.LinkageKey(inst)
}
