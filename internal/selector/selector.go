// Package selector narrows the instance set down to the entities relevant
// to one platform family.
package selector

import (
	"strings"

	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
)

// Kind names the role a rule assigns to a matched instance.
type Kind string

const (
	KindPod    Kind = "pod"
	KindVolume Kind = "volume"
)

// Rule assigns Kind to instances matching Keyword.
type Rule struct {
	Kind    Kind
	Keyword string
}

// Match is an instance together with the rule it was assigned to.
type Match struct {
	Instance *graph.Instance
	Kind     Kind
}

// Matches reports whether inst's own name, or any type in its
// classification chain, contains keyword. Matching is case-sensitive.
func Matches(inst *graph.Instance, keyword string) bool {
	if keyword == "" {
		return false
	}
	if strings.Contains(inst.Name, keyword) {
		return true
	}
	for _, t := range inst.Types {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

// Select returns the instances matching keyword, in document order.
func Select(instances []*graph.Instance, keyword string) []*graph.Instance {
	var out []*graph.Instance
	for _, inst := range instances {
		if Matches(inst, keyword) {
			out = append(out, inst)
		}
	}
	return out
}

// Partition assigns every instance to the first rule it matches. Rules are
// checked in the order given, so an instance matching several keywords is
// only returned once.
func Partition(instances []*graph.Instance, rules ...Rule) []Match {
	var out []Match
	for _, inst := range instances {
		for _, r := range rules {
			if Matches(inst, r.Keyword) {
				out = append(out, Match{Instance: inst, Kind: r.Kind})
				break
			}
		}
	}
	return out
}

// Count returns how many matches have kind k.
func Count(matches []Match, k Kind) int {
	n := 0
	for _, m := range matches {
		if m.Kind == k {
			n++
		}
	}
	return n
}
