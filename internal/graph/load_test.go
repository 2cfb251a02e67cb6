package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGraph = `
ontology: "2024"
instances:
  - name: Kubernetes
    types: [Platform]
  - name: p1_pod
    types: [Kubernetes_Pod, Pod]
    properties:
      deployment_name: web
      replicas: 3
      env_port: ["8080", 9090]
      volume_mount_path:
        - /app/data
  - name: p1_volume
    types: [Kubernetes_Volume]
    properties:
      volume_name: data
      volume_host_path: /srv
      reserved_storage: ~
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sampleGraph))
	require.NoError(t, err)
	require.Len(t, g.Instances, 3)

	assert.Equal(t, "2024.Kubernetes", g.Instances[0].QualifiedName())

	pod := g.Instances[1]
	assert.Equal(t, "p1_pod", pod.Name)
	assert.Equal(t, []string{"Kubernetes_Pod", "Pod"}, pod.Types)
	require.Len(t, pod.Values("replicas"), 1)
	assert.Equal(t, "3", pod.Values("replicas")[0].String())
	assert.Equal(t, 3, pod.Values("replicas")[0].Value())

	env := pod.Values("env_port")
	require.Len(t, env, 2)
	assert.Equal(t, "8080", env[0].String())
	assert.Equal(t, "9090", env[1].String())

	vol := g.Instances[2]
	assert.Empty(t, vol.Values("reserved_storage"))
	assert.Contains(t, vol.PropertyNames(), "reserved_storage")
}

func TestParseRegistryFirstSeen(t *testing.T) {
	g, err := Parse([]byte(sampleGraph))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"deployment_name",
		"replicas",
		"env_port",
		"volume_mount_path",
		"volume_name",
		"volume_host_path",
		"reserved_storage",
	}, g.Registry.Names())
}

func TestParseDeclaredRegistry(t *testing.T) {
	doc := `
properties: [replicas, deployment_name, replicas]
instances:
  - name: a_pod
    properties:
      deployment_name: web
      replicas: 2
      undeclared: x
`
	g, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"replicas", "deployment_name"}, g.Registry.Names())
	assert.False(t, g.Registry.Contains("undeclared"))
	assert.Equal(t, "a_pod", g.Instances[0].QualifiedName())
}

func TestParseJSON(t *testing.T) {
	doc := `{"ontology": "2024", "instances": [{"name": "Docker", "properties": {"flag": true}}]}`
	g, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, g.Instances, 1)
	assert.Equal(t, "2024.Docker", g.Instances[0].QualifiedName())
	assert.Equal(t, "true", g.Instances[0].Values("flag")[0].String())
}

func TestParseInstanceOntologyOverride(t *testing.T) {
	doc := `
ontology: "2024"
instances:
  - name: Kubernetes
    ontology: platforms
`
	g, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "platforms.Kubernetes", g.Instances[0].QualifiedName())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", "instances:\n  - types: [Pod]\n", "missing name"},
		{"duplicate", "instances:\n  - name: a\n  - name: a\n", "duplicate instance"},
		{"nested value", "instances:\n  - name: a\n    properties:\n      x: {y: 1}\n", "literal"},
		{"properties list", "instances:\n  - name: a\n    properties: [1, 2]\n", "mapping"},
		{"bad yaml", "instances: [", "yaml parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"nginx", "nginx"},
		{3, "3"},
		{2.5, "2.5"},
		{float64(4), "4"},
		{true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLiteral(tt.in).String())
		})
	}
}
