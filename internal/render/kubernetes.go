package render

import (
	"bytes"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"

	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/util"
)

// SingleKubernetesFile is the file name used with Options.SingleFile.
const SingleKubernetesFile = "kubernetes.generated.yml"

// KubernetesRenderer serializes manifests through their unstructured form
// so field names and casing match what kubectl expects.
type KubernetesRenderer struct{}

func (r *KubernetesRenderer) Render(out *generator.Output, opts Options) ([]Document, error) {
	if out == nil || out.Manifests == nil || out.Manifests.Empty() {
		return nil, nil
	}
	m := out.Manifests

	var docs []Document
	add := func(stem string, index int, obj runtime.Object) error {
		content, err := MarshalObject(obj)
		if err != nil {
			return err
		}
		docs = append(docs, Document{
			Name:    util.GeneratedName(stem, index),
			Kind:    obj.GetObjectKind().GroupVersionKind().Kind,
			Content: content,
		})
		return nil
	}

	if m.Namespace != nil {
		if err := add("kubernetes-namespace", 0, m.Namespace); err != nil {
			return nil, err
		}
	}
	for i, d := range m.Deployments {
		if err := add("kubernetes-deployment", i+1, d); err != nil {
			return nil, err
		}
	}
	for i, pv := range m.PersistentVolumes {
		if err := add("kubernetes-volume", i+1, pv); err != nil {
			return nil, err
		}
	}
	for i, pvc := range m.Claims {
		if err := add("kubernetes-pvc", i+1, pvc); err != nil {
			return nil, err
		}
	}

	if opts.SingleFile {
		return []Document{joinDocuments(SingleKubernetesFile, docs)}, nil
	}
	return docs, nil
}

// MarshalObject renders obj as YAML without server-populated noise such as
// status, creationTimestamp or empty resources.
func MarshalObject(obj runtime.Object) ([]byte, error) {
	u, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", obj.GetObjectKind().GroupVersionKind().Kind, err)
	}
	prune(u)
	return yaml.Marshal(u)
}

// prune drops nil values and maps left empty after pruning. Empty strings
// and empty lists are kept: storageClassName "" is meaningful.
func prune(m map[string]any) {
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			prune(val)
			if len(val) == 0 {
				delete(m, k)
			}
		case []any:
			for _, item := range val {
				if im, ok := item.(map[string]any); ok {
					prune(im)
				}
			}
		}
	}
}

func joinDocuments(name string, docs []Document) Document {
	var buf bytes.Buffer
	for i, d := range docs {
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(d.Content)
	}
	return Document{Name: name, Kind: "List", Content: buf.Bytes()}
}
