package generator

import (
	"fmt"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/extract"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/model"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

func init() {
	Register(func() RegisteredGenerator { return NewKubernetesGenerator() })
}

// KubernetesSettings is the platforms.kubernetes config section.
type KubernetesSettings struct {
	Enabled         bool     `mapstructure:"enabled"`
	Identifiers     []string `mapstructure:"identifiers"`
	PodKeyword      string   `mapstructure:"pod_keyword"`
	VolumeKeyword   string   `mapstructure:"volume_keyword"`
	ClaimSuffix     string   `mapstructure:"claim_suffix"`
	DefaultCapacity string   `mapstructure:"default_capacity"`
	Linkage         Linkage  `mapstructure:"linkage"`
}

// Linkage selects how volumes are joined to the units that mount them.
type Linkage struct {
	// Property names an owning-unit property; empty keeps the name prefix rule.
	Property  string `mapstructure:"property"`
	Separator string `mapstructure:"separator"`
}

// KubernetesGenerator synthesizes Deployments, volumes, claims and the
// namespace.
type KubernetesGenerator struct {
	Settings KubernetesSettings
}

// NewKubernetesGenerator returns a generator with default settings.
func NewKubernetesGenerator() *KubernetesGenerator {
	def := synth.DefaultKubernetesOptions()
	return &KubernetesGenerator{Settings: KubernetesSettings{
		Enabled:         true,
		Identifiers:     append([]string(nil), platform.DefaultKubernetesIdentifiers...),
		PodKeyword:      def.PodKeyword,
		VolumeKeyword:   def.VolumeKeyword,
		ClaimSuffix:     def.ClaimSuffix,
		DefaultCapacity: def.DefaultCapacity,
		Linkage:         Linkage{Separator: extract.DefaultSeparator},
	}}
}

func (kg *KubernetesGenerator) Metadata() GeneratorMetadata {
	return GeneratorMetadata{
		Name:        "kubernetes",
		DisplayName: "Kubernetes",
		Description: "Deployments, PersistentVolumes, claims and a Namespace",
		ConfigKey:   "kubernetes",
		Family:      platform.Kubernetes,
		VerifyHint:  "kubectl",
	}
}

func (kg *KubernetesGenerator) Configure(section map[string]any) error {
	// A configured list replaces the defaults instead of merging into them.
	if _, ok := section["identifiers"]; ok {
		kg.Settings.Identifiers = nil
	}
	return decodeSection(section, &kg.Settings)
}

func (kg *KubernetesGenerator) Validate() []ValidationError {
	var errs []ValidationError
	s := kg.Settings
	if !nonEmpty(s.Identifiers) {
		errs = append(errs, ValidationError{
			Field:      "platforms.kubernetes.identifiers",
			Message:    "no platform identifier configured",
			Suggestion: fmt.Sprintf("remove the key to use %v", platform.DefaultKubernetesIdentifiers),
		})
	}
	if s.PodKeyword == "" || s.VolumeKeyword == "" {
		errs = append(errs, ValidationError{
			Field:      "platforms.kubernetes",
			Message:    "pod_keyword and volume_keyword must not be empty",
			Suggestion: "remove the keys to use the defaults",
		})
	}
	if _, err := extract.ParseCapacity(s.DefaultCapacity); err != nil {
		errs = append(errs, ValidationError{
			Field:      "platforms.kubernetes.default_capacity",
			Message:    err.Error(),
			Suggestion: fmt.Sprintf("use a quantity such as %q", model.DefaultCapacity),
		})
	}
	if s.Linkage.Property == "" && s.Linkage.Separator == "" {
		errs = append(errs, ValidationError{
			Field:      "platforms.kubernetes.linkage.separator",
			Message:    "separator must not be empty",
			Suggestion: fmt.Sprintf("use %q or set linkage.property", extract.DefaultSeparator),
		})
	}
	return errs
}

func (kg *KubernetesGenerator) Identifiers() []string {
	return kg.Settings.Identifiers
}

func (kg *KubernetesGenerator) Enabled(plan platform.Plan) bool {
	return kg.Settings.Enabled && plan.Requested(platform.Kubernetes)
}

func (kg *KubernetesGenerator) Generate(g *graph.Graph, rep *diag.Reporter, out *Output) error {
	engine := synth.NewKubernetesEngine(kg.options(), rep)
	m, err := engine.Synthesize(g)
	if err != nil {
		return err
	}
	out.Manifests = m
	return nil
}

func (kg *KubernetesGenerator) options() synth.KubernetesOptions {
	s := kg.Settings
	var resolver extract.LinkageResolver = extract.PrefixResolver{Separator: s.Linkage.Separator}
	if s.Linkage.Property != "" {
		resolver = extract.PropertyResolver{Property: s.Linkage.Property, Fallback: resolver}
	}
	return synth.KubernetesOptions{
		PodKeyword:      s.PodKeyword,
		VolumeKeyword:   s.VolumeKeyword,
		ClaimSuffix:     s.ClaimSuffix,
		DefaultCapacity: s.DefaultCapacity,
		Resolver:        resolver,
	}
}
