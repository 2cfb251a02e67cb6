package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xlab/treeprint"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

// ResourceTree renders the generated descriptors as a tree, grouped by
// platform. Empty input yields an empty string.
func ResourceTree(m *synth.Manifests, c *synth.ComposeFile) string {
	if (m == nil || m.Empty()) && c == nil {
		return ""
	}
	tree := treeprint.NewWithRoot("generated")

	if m != nil && !m.Empty() {
		k8s := tree.AddBranch("kubernetes")
		if m.Namespace != nil {
			k8s.AddMetaNode("Namespace", m.Namespace.Name)
		}
		for _, d := range m.Deployments {
			replicas := int32(1)
			if d.Spec.Replicas != nil {
				replicas = *d.Spec.Replicas
			}
			dep := k8s.AddMetaBranch("Deployment", fmt.Sprintf("%s (replicas %d)", d.Name, replicas))
			for _, ctr := range d.Spec.Template.Spec.Containers {
				dep.AddMetaNode("container", fmt.Sprintf("%s %s", ctr.Name, ctr.Image))
			}
			for _, v := range d.Spec.Template.Spec.Volumes {
				if v.PersistentVolumeClaim != nil {
					dep.AddMetaNode("claim", v.PersistentVolumeClaim.ClaimName)
				}
			}
		}
		for _, pv := range m.PersistentVolumes {
			k8s.AddMetaNode("PersistentVolume", pv.Name)
		}
		for _, pvc := range m.Claims {
			k8s.AddMetaNode("PersistentVolumeClaim", pvc.Name)
		}
	}

	if c != nil {
		compose := tree.AddMetaBranch("compose", "version "+c.Version)
		for _, name := range c.ServiceNames() {
			svc := c.Services[name]
			if svc.Image != "" {
				compose.AddMetaNode("service", name+" "+svc.Image)
			} else {
				compose.AddMetaNode("service", name)
			}
		}
	}

	return tree.String()
}

// FileList prints the written files relative to dir.
func FileList(w io.Writer, dir string, paths []string) {
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("->"), rel)
	}
}

// Diagnostics prints warnings in full and summarizes info notes, which are
// only shown with -v.
func Diagnostics(w io.Writer, diags []diag.Diagnostic) {
	infos := 0
	for _, d := range diags {
		if d.Severity != diag.Warning {
			infos++
			continue
		}
		fmt.Fprintln(w, warnStyle.Render("Warning: "+d.String()))
	}
	if infos > 0 {
		fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf("%d notes (run with -v to see them)", infos)))
	}
}
