package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a flattened instance graph.
type document struct {
	Ontology   string        `yaml:"ontology"`
	Properties []string      `yaml:"properties"`
	Instances  []instanceDoc `yaml:"instances"`
}

type instanceDoc struct {
	Name       string    `yaml:"name"`
	Ontology   *string   `yaml:"ontology"`
	Types      []string  `yaml:"types"`
	Properties yaml.Node `yaml:"properties"`
}

// LoadFile reads a graph document (YAML or JSON) from disk.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing graph %s: %w", path, err)
	}
	return g, nil
}

// Load decodes a graph document from r.
func Load(r io.Reader) (*Graph, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return Parse(buf.Bytes())
}

// Parse decodes a graph document. Instances keep document order.
func Parse(data []byte) (*Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}

	instances := make([]*Instance, 0, len(doc.Instances))
	seen := make(map[string]bool)
	for i, raw := range doc.Instances {
		if raw.Name == "" {
			return nil, fmt.Errorf("instances[%d]: missing name", i)
		}
		ontology := doc.Ontology
		if raw.Ontology != nil {
			ontology = *raw.Ontology
		}
		inst := NewInstance(ontology, raw.Name, raw.Types...)
		if seen[inst.QualifiedName()] {
			return nil, fmt.Errorf("instances[%d]: duplicate instance %s", i, inst.QualifiedName())
		}
		seen[inst.QualifiedName()] = true

		if err := decodeProperties(inst, &raw.Properties); err != nil {
			return nil, fmt.Errorf("instance %s: %w", inst.QualifiedName(), err)
		}
		instances = append(instances, inst)
	}

	return New(instances, doc.Properties...), nil
}

func decodeProperties(inst *Instance, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		values, err := decodeValues(value)
		if err != nil {
			return fmt.Errorf("property %s: %w", key.Value, err)
		}
		inst.Assert(key.Value, values...)
	}
	return nil
}

func decodeValues(node *yaml.Node) ([]any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		v, err := decodeScalar(node)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: values must be literals", item.Line)
			}
			if item.ShortTag() == "!!null" {
				continue
			}
			v, err := decodeScalar(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: values must be a literal or a list of literals", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return v, nil
}
