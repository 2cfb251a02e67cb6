package model

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Storage defaults.
const (
	DefaultCapacity   = "1Gi"
	DefaultAccessMode = corev1.ReadWriteOnce
)

// VolumeResource is a storage definition keyed by linkage key.
type VolumeResource struct {
	LinkageKey string
	Name       string
	HostPath   string
	Capacity   resource.Quantity
	AccessMode corev1.PersistentVolumeAccessMode
	ClaimName  string
	// Source is the instance that defined the volume.
	Source string
}
