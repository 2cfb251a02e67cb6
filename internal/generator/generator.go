// Package generator runs the registered platform generators over one
// instance graph.
package generator

import (
	"errors"
	"fmt"

	"github.com/Efficient-Computing-Lab/CADO/internal/config"
	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
)

// GenerateResult holds the result of a single generator run.
type GenerateResult struct {
	Name    string
	Skipped bool
	Detail  string
	Err     error
}

// Configured returns every registered generator configured from its
// platforms.<key> section. Configuration and validation failures are
// returned as GeneratorError.
func Configured(rawPlatforms map[string]any) ([]RegisteredGenerator, error) {
	gens := All()
	for _, gen := range gens {
		meta := gen.Metadata()
		section, _ := rawPlatforms[meta.ConfigKey].(map[string]any)
		if err := gen.Configure(section); err != nil {
			return nil, &GeneratorError{Generator: meta.DisplayName, Err: err}
		}
		if errs := gen.Validate(); len(errs) > 0 {
			ve := errs[0]
			return nil, &GeneratorError{Generator: meta.DisplayName, Err: fmt.Errorf("%s: %s", ve.Field, ve.Message)}
		}
	}
	return gens, nil
}

// Identifiers gathers the platform identifiers of the configured generators.
func Identifiers(gens []RegisteredGenerator) platform.Identifiers {
	var ids platform.Identifiers
	for _, gen := range gens {
		switch gen.Metadata().Family {
		case platform.Kubernetes:
			ids.Kubernetes = append(ids.Kubernetes, gen.Identifiers()...)
		case platform.Compose:
			ids.Compose = append(ids.Compose, gen.Identifiers()...)
		}
	}
	return ids
}

// Run classifies g and runs every generator whose platform it requests.
// Graph anomalies end up in rep; only configuration problems and engine
// failures are returned as errors.
func Run(cfg *config.Config, g *graph.Graph, rep *diag.Reporter) (*Output, []GenerateResult, error) {
	if g == nil {
		return nil, nil, errors.New("no instance graph")
	}
	if rep == nil {
		rep = diag.Discard()
	}

	gens, err := Configured(cfg.RawPlatforms)
	if err != nil {
		return nil, nil, err
	}

	plan := platform.Classify(g.Instances, Identifiers(gens))
	rep.Logger().V(1).Info("Classified graph", "kubernetes", plan.Kubernetes, "compose", plan.Compose)
	if plan.Empty() {
		rep.Warnf("", "no platform identifier found in the graph, nothing to generate")
	}

	out := &Output{Plan: plan}
	var results []GenerateResult

	for _, gen := range gens {
		meta := gen.Metadata()

		if !gen.Enabled(plan) {
			results = append(results, GenerateResult{Name: meta.DisplayName, Skipped: true})
			continue
		}

		if err := gen.Generate(g, rep, out); err != nil {
			gerr := &GeneratorError{Generator: meta.DisplayName, Err: err}
			results = append(results, GenerateResult{Name: meta.DisplayName, Err: gerr})
			return nil, results, gerr
		}

		results = append(results, GenerateResult{Name: meta.DisplayName, Detail: out.Summary(meta.Family)})
	}

	return out, results, nil
}
