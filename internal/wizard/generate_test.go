package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfigMinimal(t *testing.T) {
	answers := WizardAnswers{
		GraphPath:        "shop.graph.yaml",
		EnableKubernetes: true,
	}

	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	assert.Contains(t, out, "graph: shop.graph.yaml")
	assert.Contains(t, out, "dir: generated")
	assert.Contains(t, out, "single_file: false")
	assert.NotContains(t, out, "linkage:")
}

func TestGenerateConfigFull(t *testing.T) {
	answers := WizardAnswers{
		GraphPath:        "graphs/edge.graph.yml",
		OutputDir:        "deploy",
		SingleFile:       true,
		EnableKubernetes: true,
		EnableCompose:    true,
		LinkageProperty:  "owner",
		ComposeVersion:   "3.8",
	}

	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	var doc struct {
		Graph  string `yaml:"graph"`
		Output struct {
			Dir        string `yaml:"dir"`
			SingleFile bool   `yaml:"single_file"`
		} `yaml:"output"`
		Platforms struct {
			Kubernetes struct {
				Enabled bool `yaml:"enabled"`
				Linkage struct {
					Property string `yaml:"property"`
				} `yaml:"linkage"`
			} `yaml:"kubernetes"`
			Compose struct {
				Enabled bool   `yaml:"enabled"`
				Version string `yaml:"version"`
			} `yaml:"compose"`
		} `yaml:"platforms"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "graphs/edge.graph.yml", doc.Graph)
	assert.Equal(t, "deploy", doc.Output.Dir)
	assert.True(t, doc.Output.SingleFile)
	assert.True(t, doc.Platforms.Kubernetes.Enabled)
	assert.Equal(t, "owner", doc.Platforms.Kubernetes.Linkage.Property)
	assert.True(t, doc.Platforms.Compose.Enabled)
	assert.Equal(t, "3.8", doc.Platforms.Compose.Version)
}

func TestGenerateConfigDefaults(t *testing.T) {
	out, err := GenerateConfig(WizardAnswers{})
	require.NoError(t, err)

	assert.Contains(t, out, "graph: graph.yaml")
	assert.Contains(t, out, `version: "3.9"`)
	assert.Contains(t, out, "enabled: false")
}
