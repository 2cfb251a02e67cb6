package synth

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"

	"github.com/Efficient-Computing-Lab/CADO/internal/model"
)

// Manifests is the Kubernetes descriptor set of one run.
type Manifests struct {
	// Namespace is nil unless a non-default namespace was asserted.
	Namespace         *corev1.Namespace
	Deployments       []*appsv1.Deployment
	PersistentVolumes []*corev1.PersistentVolume
	Claims            []*corev1.PersistentVolumeClaim
}

// Objects returns every descriptor in emission order: namespace,
// deployments, volumes, claims.
func (m *Manifests) Objects() []runtime.Object {
	var out []runtime.Object
	if m.Namespace != nil {
		out = append(out, m.Namespace)
	}
	for _, d := range m.Deployments {
		out = append(out, d)
	}
	for _, pv := range m.PersistentVolumes {
		out = append(out, pv)
	}
	for _, pvc := range m.Claims {
		out = append(out, pvc)
	}
	return out
}

// Empty reports whether there is nothing to emit.
func (m *Manifests) Empty() bool {
	return len(m.Objects()) == 0
}

func newNamespace(name string) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Namespace"},
		ObjectMeta: metav1.ObjectMeta{Name: name},
	}
}

func newDeployment(unit resolvedUnit) *appsv1.Deployment {
	labels := map[string]string{"app": unit.AppLabel()}

	containers := make([]corev1.Container, 0, len(unit.Containers))
	for _, spec := range unit.Containers {
		c := corev1.Container{
			Name:         spec.Name,
			Image:        spec.Image,
			VolumeMounts: append([]corev1.VolumeMount(nil), unit.mounts...),
		}
		for _, ev := range spec.Env.Vars() {
			c.Env = append(c.Env, corev1.EnvVar{Name: ev.Name, Value: ev.Value})
		}
		for _, p := range spec.Ports {
			c.Ports = append(c.Ports, corev1.ContainerPort{
				ContainerPort: int32(p.ContainerPort),
				Protocol:      protocol(p.Protocol),
			})
		}
		containers = append(containers, c)
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      unit.Name,
			Namespace: unit.Namespace,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(unit.Replicas),
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: copyLabels(labels)},
				Spec: corev1.PodSpec{
					Containers: containers,
					Volumes:    unit.volumes,
				},
			},
		},
	}
}

func newPersistentVolume(v *model.VolumeResource) *corev1.PersistentVolume {
	return &corev1.PersistentVolume{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "PersistentVolume"},
		ObjectMeta: metav1.ObjectMeta{Name: v.Name},
		Spec: corev1.PersistentVolumeSpec{
			Capacity:    corev1.ResourceList{corev1.ResourceStorage: v.Capacity.DeepCopy()},
			AccessModes: []corev1.PersistentVolumeAccessMode{v.AccessMode},
			PersistentVolumeSource: corev1.PersistentVolumeSource{
				HostPath: &corev1.HostPathVolumeSource{Path: v.HostPath},
			},
		},
	}
}

func newClaim(v *model.VolumeResource, namespace string) *corev1.PersistentVolumeClaim {
	return &corev1.PersistentVolumeClaim{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "PersistentVolumeClaim"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      v.ClaimName,
			Namespace: namespace,
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: []corev1.PersistentVolumeAccessMode{v.AccessMode},
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{corev1.ResourceStorage: v.Capacity.DeepCopy()},
			},
			// Empty class binds the claim to the statically defined volume.
			StorageClassName: ptr.To(""),
		},
	}
}

func protocol(p string) corev1.Protocol {
	switch p {
	case "udp":
		return corev1.ProtocolUDP
	case "sctp":
		return corev1.ProtocolSCTP
	default:
		return corev1.ProtocolTCP
	}
}

func copyLabels(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
