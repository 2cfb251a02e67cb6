// Package platform decides which target platform families a graph asks for.
package platform

import "github.com/Efficient-Computing-Lab/CADO/internal/graph"

// Family identifies a target platform family.
type Family string

const (
	Kubernetes Family = "kubernetes"
	Compose    Family = "compose"
)

// Default identifiers, matched against Instance.QualifiedName.
var (
	DefaultComposeIdentifiers = []string{
		"2024.Docker_Compose",
		"2024.Docker_Swarm",
		"2024.Docker_Engine",
		"2024.Docker",
	}
	DefaultKubernetesIdentifiers = []string{
		"2024.Kubernetes",
	}
)

// Identifiers holds the exact instance labels that request each family.
type Identifiers struct {
	Kubernetes []string
	Compose    []string
}

// DefaultIdentifiers returns the built-in identifier sets.
func DefaultIdentifiers() Identifiers {
	return Identifiers{
		Kubernetes: append([]string(nil), DefaultKubernetesIdentifiers...),
		Compose:    append([]string(nil), DefaultComposeIdentifiers...),
	}
}

// Plan records the families requested by a graph.
type Plan struct {
	Kubernetes bool
	Compose    bool
}

// Requested reports whether f is part of the plan.
func (p Plan) Requested(f Family) bool {
	switch f {
	case Kubernetes:
		return p.Kubernetes
	case Compose:
		return p.Compose
	}
	return false
}

// Empty reports whether nothing should be generated.
func (p Plan) Empty() bool {
	return !p.Kubernetes && !p.Compose
}

// Families lists the requested families in generation order.
func (p Plan) Families() []Family {
	var out []Family
	if p.Kubernetes {
		out = append(out, Kubernetes)
	}
	if p.Compose {
		out = append(out, Compose)
	}
	return out
}

// Classify scans instances for platform identifiers. Matching is exact and
// case-sensitive; the scan stops once both families are found.
func Classify(instances []*graph.Instance, ids Identifiers) Plan {
	kube := toSet(ids.Kubernetes)
	compose := toSet(ids.Compose)

	var plan Plan
	for _, inst := range instances {
		name := inst.QualifiedName()
		if compose[name] {
			plan.Compose = true
		}
		if kube[name] {
			plan.Kubernetes = true
		}
		if plan.Compose && plan.Kubernetes {
			break
		}
	}
	return plan
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
