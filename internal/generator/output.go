package generator

import (
	"fmt"

	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

// Output collects what the enabled generators produced in one run.
type Output struct {
	Plan      platform.Plan
	Manifests *synth.Manifests
	Compose   *synth.ComposeFile
}

// Empty reports whether no generator produced anything to write.
func (o *Output) Empty() bool {
	return (o.Manifests == nil || o.Manifests.Empty()) && o.Compose == nil
}

// Summary describes what was generated for family f.
func (o *Output) Summary(f platform.Family) string {
	switch f {
	case platform.Kubernetes:
		if o.Manifests == nil {
			return ""
		}
		m := o.Manifests
		ns := 0
		if m.Namespace != nil {
			ns = 1
		}
		return fmt.Sprintf("%d deployments, %d volumes, %d claims, %d namespaces",
			len(m.Deployments), len(m.PersistentVolumes), len(m.Claims), ns)
	case platform.Compose:
		if o.Compose == nil {
			return ""
		}
		return fmt.Sprintf("%d services, %d networks, %d volumes",
			len(o.Compose.Services), len(o.Compose.Networks), len(o.Compose.Volumes))
	default:
		return ""
	}
}
