package wizard

import (
	"bytes"
	"text/template"

	"github.com/Efficient-Computing-Lab/CADO/internal/config"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	GraphPath  string
	OutputDir  string
	SingleFile bool

	// Platforms to generate for when the graph requests them
	EnableKubernetes bool
	EnableCompose    bool

	// Kubernetes settings
	LinkageProperty string

	// Compose settings
	ComposeVersion string
}

const configTemplate = `# cado configuration

graph: {{ .GraphPath }}

output:
  dir: {{ .OutputDir }}
  single_file: {{ if .SingleFile }}true{{ else }}false{{ end }}

platforms:
  kubernetes:
    enabled: {{ if .EnableKubernetes }}true{{ else }}false{{ end }}
{{- if .LinkageProperty }}
    linkage:
      property: {{ .LinkageProperty }}
{{- end }}
  compose:
    enabled: {{ if .EnableCompose }}true{{ else }}false{{ end }}
    version: "{{ .ComposeVersion }}"
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	if answers.GraphPath == "" {
		answers.GraphPath = "graph.yaml"
	}
	if answers.OutputDir == "" {
		answers.OutputDir = config.DefaultOutputDir
	}
	if answers.ComposeVersion == "" {
		answers.ComposeVersion = synth.DefaultComposeVersion
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
