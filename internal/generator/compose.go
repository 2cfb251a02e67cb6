package generator

import (
	"fmt"
	"regexp"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

func init() {
	Register(func() RegisteredGenerator { return NewComposeGenerator() })
}

var composeVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// ComposeSettings is the platforms.compose config section.
type ComposeSettings struct {
	Enabled          bool     `mapstructure:"enabled"`
	Identifiers      []string `mapstructure:"identifiers"`
	ContainerKeyword string   `mapstructure:"container_keyword"`
	Version          string   `mapstructure:"version"`
	ServiceSuffix    string   `mapstructure:"service_suffix"`
}

// ComposeGenerator synthesizes a single compose document.
type ComposeGenerator struct {
	Settings ComposeSettings
}

// NewComposeGenerator returns a generator with default settings.
func NewComposeGenerator() *ComposeGenerator {
	def := synth.DefaultComposeOptions()
	return &ComposeGenerator{Settings: ComposeSettings{
		Enabled:          true,
		Identifiers:      append([]string(nil), platform.DefaultComposeIdentifiers...),
		ContainerKeyword: def.ContainerKeyword,
		Version:          def.Version,
		ServiceSuffix:    def.ServiceSuffix,
	}}
}

func (cg *ComposeGenerator) Metadata() GeneratorMetadata {
	return GeneratorMetadata{
		Name:        "compose",
		DisplayName: "Docker Compose",
		Description: "One compose service per container instance",
		ConfigKey:   "compose",
		Family:      platform.Compose,
		VerifyHint:  "docker",
	}
}

func (cg *ComposeGenerator) Configure(section map[string]any) error {
	if _, ok := section["identifiers"]; ok {
		cg.Settings.Identifiers = nil
	}
	return decodeSection(section, &cg.Settings)
}

func (cg *ComposeGenerator) Validate() []ValidationError {
	var errs []ValidationError
	s := cg.Settings
	if !nonEmpty(s.Identifiers) {
		errs = append(errs, ValidationError{
			Field:      "platforms.compose.identifiers",
			Message:    "no platform identifier configured",
			Suggestion: fmt.Sprintf("remove the key to use %v", platform.DefaultComposeIdentifiers),
		})
	}
	if s.ContainerKeyword == "" {
		errs = append(errs, ValidationError{
			Field:      "platforms.compose.container_keyword",
			Message:    "must not be empty",
			Suggestion: "remove the key to use the default",
		})
	}
	if !composeVersion.MatchString(s.Version) {
		errs = append(errs, ValidationError{
			Field:      "platforms.compose.version",
			Message:    fmt.Sprintf("%q is not a version number", s.Version),
			Suggestion: fmt.Sprintf("use %q", synth.DefaultComposeVersion),
		})
	}
	return errs
}

func (cg *ComposeGenerator) Identifiers() []string {
	return cg.Settings.Identifiers
}

func (cg *ComposeGenerator) Enabled(plan platform.Plan) bool {
	return cg.Settings.Enabled && plan.Requested(platform.Compose)
}

func (cg *ComposeGenerator) Generate(g *graph.Graph, rep *diag.Reporter, out *Output) error {
	engine := synth.NewComposeEngine(synth.ComposeOptions{
		ContainerKeyword: cg.Settings.ContainerKeyword,
		Version:          cg.Settings.Version,
		ServiceSuffix:    cg.Settings.ServiceSuffix,
	}, rep)
	f, err := engine.Synthesize(g)
	if err != nil {
		return err
	}
	out.Compose = f
	return nil
}
