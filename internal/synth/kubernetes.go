// Package synth is the resource synthesis engine: it folds extracted
// instance data into Kubernetes manifests and compose documents.
package synth

import (
	"errors"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/extract"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/model"
	"github.com/Efficient-Computing-Lab/CADO/internal/selector"
)

// ErrNoGraph is returned when synthesis is asked to run without input.
var ErrNoGraph = errors.New("synth: no instance graph")

// KubernetesOptions tunes the Kubernetes engine.
type KubernetesOptions struct {
	PodKeyword      string
	VolumeKeyword   string
	ClaimSuffix     string
	DefaultCapacity string
	Resolver        extract.LinkageResolver
}

// DefaultKubernetesOptions returns the built-in settings.
func DefaultKubernetesOptions() KubernetesOptions {
	return KubernetesOptions{
		PodKeyword:      "Pod",
		VolumeKeyword:   "Kubernetes_Volume",
		ClaimSuffix:     "c",
		DefaultCapacity: model.DefaultCapacity,
		Resolver:        extract.PrefixResolver{},
	}
}

// KubernetesEngine synthesizes Deployments, PersistentVolumes, claims and
// at most one Namespace. An engine holds no state between runs.
type KubernetesEngine struct {
	opts            KubernetesOptions
	defaultCapacity resource.Quantity
	rep             *diag.Reporter
}

// NewKubernetesEngine builds an engine; zero option fields take defaults.
func NewKubernetesEngine(opts KubernetesOptions, rep *diag.Reporter) *KubernetesEngine {
	def := DefaultKubernetesOptions()
	if opts.PodKeyword == "" {
		opts.PodKeyword = def.PodKeyword
	}
	if opts.VolumeKeyword == "" {
		opts.VolumeKeyword = def.VolumeKeyword
	}
	if opts.ClaimSuffix == "" {
		opts.ClaimSuffix = def.ClaimSuffix
	}
	if opts.Resolver == nil {
		opts.Resolver = def.Resolver
	}
	if rep == nil {
		rep = diag.Discard()
	}

	capacity, err := extract.ParseCapacity(opts.DefaultCapacity)
	if err != nil {
		capacity = resource.MustParse(model.DefaultCapacity)
	}
	return &KubernetesEngine{opts: opts, defaultCapacity: capacity, rep: rep}
}

// aggregation is written by pass 1 and only read by pass 2.
type aggregation struct {
	units       map[string]*model.DeployableUnit
	unitOrder   []string
	volumes     map[string]*model.VolumeResource
	volumeOrder []string
	namespaces  map[string]bool
}

func newAggregation() *aggregation {
	return &aggregation{
		units:      make(map[string]*model.DeployableUnit),
		volumes:    make(map[string]*model.VolumeResource),
		namespaces: make(map[string]bool),
	}
}

// resolvedUnit is a unit with its mounts resolved against the volume table.
type resolvedUnit struct {
	*model.DeployableUnit
	mounts  []corev1.VolumeMount
	volumes []corev1.Volume
}

// Synthesize runs both passes over g. Per-entity anomalies become
// diagnostics; only a missing graph is an error.
func (e *KubernetesEngine) Synthesize(g *graph.Graph) (*Manifests, error) {
	if g == nil {
		return nil, ErrNoGraph
	}

	matches := selector.Partition(g.Instances,
		selector.Rule{Kind: selector.KindVolume, Keyword: e.opts.VolumeKeyword},
		selector.Rule{Kind: selector.KindPod, Keyword: e.opts.PodKeyword},
	)
	e.rep.Logger().V(1).Info("Selected kubernetes instances",
		"pods", selector.Count(matches, selector.KindPod),
		"volumes", selector.Count(matches, selector.KindVolume))

	ex := extract.New(g.Registry, e.rep, extract.WithResolver(e.opts.Resolver))
	agg := e.aggregate(matches, ex)
	return e.build(agg), nil
}

// aggregate is pass 1.
func (e *KubernetesEngine) aggregate(matches []selector.Match, ex *extract.Extractor) *aggregation {
	agg := newAggregation()
	for _, m := range matches {
		rec := ex.Extract(m.Instance)
		subject := m.Instance.QualifiedName()
		switch m.Kind {
		case selector.KindVolume:
			e.addVolume(agg, rec, subject)
		case selector.KindPod:
			e.addPod(agg, rec, subject)
		}
	}
	return agg
}

func (e *KubernetesEngine) addVolume(agg *aggregation, rec *extract.Record, subject string) {
	name := rec.Get(extract.FieldVolumeName)
	hostPath := rec.Get(extract.FieldHostPath)
	if name == "" || hostPath == "" {
		e.rep.Infof(subject, "volume needs %s and %s, skipped", extract.FieldVolumeName, extract.FieldHostPath)
		return
	}

	capacity := e.defaultCapacity.DeepCopy()
	if raw, ok := rec.Lookup(extract.FieldStorage); ok {
		q, err := extract.ParseCapacity(raw)
		if err != nil {
			e.rep.Warnf(subject, "%v, using %s", err, capacity.String())
		} else {
			capacity = q
		}
	}

	key := rec.LinkageKey
	if prev, ok := agg.volumes[key]; ok {
		e.rep.Infof(subject, "overrides volume %q from %s for linkage key %q", prev.Name, prev.Source, key)
	} else {
		agg.volumeOrder = append(agg.volumeOrder, key)
	}
	agg.volumes[key] = &model.VolumeResource{
		LinkageKey: key,
		Name:       name,
		HostPath:   hostPath,
		Capacity:   capacity,
		AccessMode: model.DefaultAccessMode,
		ClaimName:  name + e.opts.ClaimSuffix,
		Source:     subject,
	}
}

func (e *KubernetesEngine) addPod(agg *aggregation, rec *extract.Record, subject string) {
	name := rec.Get(extract.FieldDeploymentName)
	if name == "" {
		e.rep.Infof(subject, "no %s, instance contributes no deployment", extract.FieldDeploymentName)
		return
	}

	unit, ok := agg.units[name]
	if !ok {
		unit = model.NewDeployableUnit(name)
		agg.units[name] = unit
		agg.unitOrder = append(agg.unitOrder, name)
	}
	unit.Sources = append(unit.Sources, subject)

	if ns := rec.Get(extract.FieldNamespace); ns != "" {
		unit.Namespace = ns
		agg.namespaces[ns] = true
	}

	if raw, ok := rec.Lookup(extract.FieldReplicas); ok {
		n, err := extract.ParseReplicas(raw)
		if err != nil {
			e.rep.Warnf(subject, "%v, keeping %d", err, unit.Replicas)
		} else {
			unit.Replicas = n
		}
	}

	if c := e.container(rec, subject); c != nil {
		unit.AddContainer(c)
	}

	for _, path := range rec.List(extract.FieldMountPath) {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		unit.Mounts = append(unit.Mounts, model.MountRequest{LinkageKey: rec.LinkageKey, MountPath: path})
	}
}

func (e *KubernetesEngine) container(rec *extract.Record, subject string) *model.ContainerSpec {
	c := &model.ContainerSpec{
		Name:  rec.Get(extract.FieldContainerName),
		Image: rec.Get(extract.FieldImage),
	}
	if c.Name == "" && c.Image == "" {
		if len(rec.Env) > 0 || len(rec.List(extract.FieldPorts)) > 0 {
			e.rep.Infof(subject, "no %s or %s, container data skipped", extract.FieldContainerName, extract.FieldImage)
		}
		return nil
	}
	if c.Name == "" {
		e.rep.Warnf(subject, "container for image %q has no name", c.Image)
	}
	for _, ev := range rec.Env {
		c.Env.Set(ev.Name, ev.Value)
	}
	c.Ports = parsePorts(rec.List(extract.FieldPorts), subject, e.rep)
	return c
}

// build is pass 2.
func (e *KubernetesEngine) build(agg *aggregation) *Manifests {
	out := &Manifests{}

	namespace := selectNamespace(agg.namespaces)
	if namespace != "" {
		checkLabel(e.rep, "namespace", namespace)
		out.Namespace = newNamespace(namespace)
	}

	for _, name := range agg.unitOrder {
		unit := e.resolve(agg.units[name], agg)
		checkSubdomain(e.rep, "deployment", unit.Name)
		if len(unit.Containers) == 0 {
			e.rep.Warnf(unit.Name, "deployment has no container (from %s)", strings.Join(unit.Sources, ", "))
		}
		for _, c := range unit.Containers {
			if c.Name != "" {
				checkLabel(e.rep, "container", c.Name)
			}
		}
		out.Deployments = append(out.Deployments, newDeployment(unit))
	}

	// volume name -> linkage key that first claimed it
	emitted := make(map[string]string)
	for _, key := range agg.volumeOrder {
		v := agg.volumes[key]
		if prev, ok := emitted[v.Name]; ok {
			e.rep.Warnf(v.Source, "volume %q already emitted for linkage key %q, skipped", v.Name, prev)
			continue
		}
		emitted[v.Name] = key
		checkSubdomain(e.rep, "volume", v.Name)
		checkSubdomain(e.rep, "claim", v.ClaimName)
		out.PersistentVolumes = append(out.PersistentVolumes, newPersistentVolume(v))
		out.Claims = append(out.Claims, newClaim(v, namespace))
	}
	return out
}

// resolve looks up every mount request of unit by linkage key. Unresolved
// requests are dropped. A mount path is bound once; each volume name yields
// one pod volume.
func (e *KubernetesEngine) resolve(unit *model.DeployableUnit, agg *aggregation) resolvedUnit {
	ru := resolvedUnit{DeployableUnit: unit}
	byPath := make(map[string]string)
	seenName := make(map[string]bool)

	for _, req := range unit.Mounts {
		vol, ok := agg.volumes[req.LinkageKey]
		if !ok {
			e.rep.Warnf(unit.Name, "mount %s: no volume for linkage key %q, dropped", req.MountPath, req.LinkageKey)
			continue
		}
		if prev, ok := byPath[req.MountPath]; ok {
			if prev != req.LinkageKey {
				e.rep.Warnf(unit.Name, "mount %s: already bound to linkage key %q, %q dropped", req.MountPath, prev, req.LinkageKey)
			}
			continue
		}
		byPath[req.MountPath] = req.LinkageKey
		ru.mounts = append(ru.mounts, corev1.VolumeMount{Name: vol.Name, MountPath: req.MountPath})

		if !seenName[vol.Name] {
			seenName[vol.Name] = true
			ru.volumes = append(ru.volumes, corev1.Volume{
				Name: vol.Name,
				VolumeSource: corev1.VolumeSource{
					PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{ClaimName: vol.ClaimName},
				},
			})
		}
	}
	return ru
}

// selectNamespace picks the single namespace to emit: the lexicographically
// smallest asserted name other than "default". Only one namespace is ever
// emitted per run.
func selectNamespace(asserted map[string]bool) string {
	var names []string
	for ns := range asserted {
		if strings.EqualFold(ns, model.DefaultNamespace) {
			continue
		}
		names = append(names, ns)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

func parsePorts(raw []string, subject string, rep *diag.Reporter) []model.PortMapping {
	var out []model.PortMapping
	for _, s := range raw {
		pm, err := model.ParsePortMapping(s)
		if err != nil {
			rep.Warnf(subject, "%v, dropped", err)
			continue
		}
		out = append(out, pm)
	}
	return out
}
