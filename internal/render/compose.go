package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/util"
)

// ComposeFileName is the name of the compose output file.
var ComposeFileName = util.GeneratedName("docker-compose", 0)

// ComposeRenderer serializes the compose document.
type ComposeRenderer struct{}

func (r *ComposeRenderer) Render(out *generator.Output, _ Options) ([]Document, error) {
	if out == nil || out.Compose == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out.Compose); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}
	return []Document{{Name: ComposeFileName, Kind: "Compose", Content: buf.Bytes()}}, nil
}
