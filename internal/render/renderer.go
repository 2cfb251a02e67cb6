// Package render turns generated descriptors into YAML documents and
// writes them out.
package render

import (
	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
)

// Document is one output file.
type Document struct {
	Name    string
	Kind    string // descriptor kind, e.g. "Deployment" or "Compose"
	Content []byte
}

// Options controls how documents are laid out.
type Options struct {
	// SingleFile puts every Kubernetes descriptor in one multi-document file.
	SingleFile bool
}

// Renderer defines the interface for descriptor serializers.
type Renderer interface {
	Render(out *generator.Output, opts Options) ([]Document, error)
}

// Render serializes everything in out: Kubernetes documents first, then
// the compose document.
func Render(out *generator.Output, opts Options) ([]Document, error) {
	var docs []Document
	for _, r := range []Renderer{&KubernetesRenderer{}, &ComposeRenderer{}} {
		d, err := r.Render(out, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d...)
	}
	return docs, nil
}
