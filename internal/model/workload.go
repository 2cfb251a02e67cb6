package model

// Defaults applied to deployable units.
const (
	DefaultNamespace       = "default"
	DefaultReplicas  int32 = 1
)

// ContainerSpec is one container of a deployable unit.
type ContainerSpec struct {
	Name  string
	Image string
	Env   Environment
	Ports []PortMapping
}

// MountRequest is a mount path waiting to be resolved against the volume
// table through its linkage key.
type MountRequest struct {
	LinkageKey string
	MountPath  string
}

// DeployableUnit is one schedulable workload, aggregated from every
// instance that names the same deployment.
type DeployableUnit struct {
	Name       string
	Namespace  string
	Replicas   int32
	Containers []*ContainerSpec
	Mounts     []MountRequest
	// Sources lists the instances that contributed to the unit.
	Sources []string
}

// NewDeployableUnit returns a unit with default namespace and replicas.
func NewDeployableUnit(name string) *DeployableUnit {
	return &DeployableUnit{
		Name:      name,
		Namespace: DefaultNamespace,
		Replicas:  DefaultReplicas,
	}
}

// AddContainer appends a container spec.
func (u *DeployableUnit) AddContainer(c *ContainerSpec) {
	u.Containers = append(u.Containers, c)
}

// AppLabel is the selector label value: the first container's name, or the
// unit name when no container is named.
func (u *DeployableUnit) AppLabel() string {
	if len(u.Containers) > 0 && u.Containers[0].Name != "" {
		return u.Containers[0].Name
	}
	return u.Name
}
