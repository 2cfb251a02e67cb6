package synth

import (
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/format"
	"github.com/compose-spec/compose-go/v2/types"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/extract"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/model"
	"github.com/Efficient-Computing-Lab/CADO/internal/selector"
	"github.com/Efficient-Computing-Lab/CADO/internal/util"
)

// DefaultComposeVersion is written to the version key of every document.
const DefaultComposeVersion = "3.9"

// ComposeOptions tunes the compose engine.
type ComposeOptions struct {
	ContainerKeyword string
	Version          string
	ServiceSuffix    string
}

// DefaultComposeOptions returns the built-in settings.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		ContainerKeyword: "Docker_Container",
		Version:          DefaultComposeVersion,
		ServiceSuffix:    "_docker_container",
	}
}

// EmptyObject marshals as {} for top-level network and volume entries.
type EmptyObject struct{}

// ComposeFile is a compose document. Map keys are emitted sorted.
type ComposeFile struct {
	Version  string                     `yaml:"version"`
	Services map[string]*ComposeService `yaml:"services"`
	Networks map[string]EmptyObject     `yaml:"networks,omitempty"`
	Volumes  map[string]EmptyObject     `yaml:"volumes,omitempty"`
}

// ServiceNames returns the service names in sorted order.
func (f *ComposeFile) ServiceNames() []string {
	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComposeService is one service entry.
type ComposeService struct {
	Image         string            `yaml:"image,omitempty"`
	ContainerName string            `yaml:"container_name,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Networks      []string          `yaml:"networks,omitempty"`
	Restart       string            `yaml:"restart,omitempty"`
	Environment   map[string]string `yaml:"environment,omitempty"`
	Ports         []string          `yaml:"ports,omitempty"`
}

// ComposeEngine synthesizes one compose document per run.
type ComposeEngine struct {
	opts ComposeOptions
	rep  *diag.Reporter
}

// NewComposeEngine builds an engine; zero option fields take defaults.
func NewComposeEngine(opts ComposeOptions, rep *diag.Reporter) *ComposeEngine {
	def := DefaultComposeOptions()
	if opts.ContainerKeyword == "" {
		opts.ContainerKeyword = def.ContainerKeyword
	}
	if opts.Version == "" {
		opts.Version = def.Version
	}
	if opts.ServiceSuffix == "" {
		opts.ServiceSuffix = def.ServiceSuffix
	}
	if rep == nil {
		rep = diag.Discard()
	}
	return &ComposeEngine{opts: opts, rep: rep}
}

// Synthesize builds the compose document for every container instance in g.
func (e *ComposeEngine) Synthesize(g *graph.Graph) (*ComposeFile, error) {
	if g == nil {
		return nil, ErrNoGraph
	}

	containers := selector.Select(g.Instances, e.opts.ContainerKeyword)
	e.rep.Logger().V(1).Info("Selected compose instances", "containers", len(containers))

	ex := extract.New(g.Registry, e.rep)
	out := &ComposeFile{
		Version:  e.opts.Version,
		Services: make(map[string]*ComposeService, len(containers)),
	}
	owner := make(map[string]string, len(containers))

	for _, inst := range containers {
		subject := inst.QualifiedName()
		name := util.ServiceName(inst.Name, e.opts.ServiceSuffix)
		if prev, ok := owner[name]; ok {
			e.rep.Warnf(subject, "service %q already defined by %s, replacing it", name, prev)
		}
		owner[name] = subject
		out.Services[name] = e.service(ex.Extract(inst), subject)
	}

	out.Networks, out.Volumes = e.topLevel(out)
	return out, nil
}

func (e *ComposeEngine) service(rec *extract.Record, subject string) *ComposeService {
	svc := &ComposeService{
		Image:         rec.Get(extract.FieldImage),
		ContainerName: rec.Get(extract.FieldContainerName),
		Volumes:       rec.List(extract.FieldVolumes),
		Networks:      rec.List(extract.FieldNetworks),
		Restart:       rec.Get(extract.FieldRestart),
	}

	var env model.Environment
	for _, ev := range rec.Env {
		env.Set(ev.Name, ev.Value)
	}
	svc.Environment = env.Map()

	for _, pm := range parsePorts(rec.List(extract.FieldPorts), subject, e.rep) {
		svc.Ports = append(svc.Ports, pm.String())
	}
	return svc
}

// topLevel derives the top-level network and volume declarations from
// every service, each name once.
func (e *ComposeEngine) topLevel(f *ComposeFile) (map[string]EmptyObject, map[string]EmptyObject) {
	var networks, volumes map[string]EmptyObject
	for _, name := range f.ServiceNames() {
		svc := f.Services[name]
		for _, n := range svc.Networks {
			if n == "" {
				continue
			}
			if networks == nil {
				networks = make(map[string]EmptyObject)
			}
			networks[n] = EmptyObject{}
		}
		for _, spec := range svc.Volumes {
			v, ok := e.volumeName(name, spec)
			if !ok {
				continue
			}
			if volumes == nil {
				volumes = make(map[string]EmptyObject)
			}
			volumes[v] = EmptyObject{}
		}
	}
	return networks, volumes
}

// volumeName returns the named volume a service volume spec refers to.
// Bind mounts and anonymous volumes declare nothing top-level.
func (e *ComposeEngine) volumeName(service, spec string) (string, bool) {
	cfg, err := format.ParseVolume(spec)
	if err != nil {
		name, _, _ := strings.Cut(spec, ":")
		e.rep.Warnf(service, "volume %q: %v, declaring %q", spec, err, name)
		return name, name != ""
	}
	if cfg.Type != types.VolumeTypeVolume || cfg.Source == "" {
		return "", false
	}
	return cfg.Source, true
}
