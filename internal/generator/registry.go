package generator

import (
	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
)

// RegisteredGenerator defines the interface for self-registering platform
// generators.
type RegisteredGenerator interface {
	Metadata() GeneratorMetadata
	Configure(section map[string]any) error
	Validate() []ValidationError
	Identifiers() []string
	Enabled(plan platform.Plan) bool
	Generate(g *graph.Graph, rep *diag.Reporter, out *Output) error
}

// GeneratorMetadata describes a generator for discovery and documentation.
type GeneratorMetadata struct {
	Name        string          // internal key, e.g. "kubernetes"
	DisplayName string          // human-readable, e.g. "Kubernetes"
	Description string          // one-line description
	ConfigKey   string          // YAML key under platforms, e.g. "kubernetes"
	Family      platform.Family // platform family the generator serves
	VerifyHint  string          // binary used by --verify, e.g. "kubectl"
}

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "platforms.kubernetes.default_capacity"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry []func() RegisteredGenerator

// Register adds a generator factory to the global registry.
// Each generator calls this in its init().
func Register(factory func() RegisteredGenerator) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered generator.
func All() []RegisteredGenerator {
	out := make([]RegisteredGenerator, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
