package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeployableUnitDefaults(t *testing.T) {
	u := NewDeployableUnit("web")
	assert.Equal(t, "default", u.Namespace)
	assert.Equal(t, int32(1), u.Replicas)
	assert.Empty(t, u.Containers)
}

func TestAppLabel(t *testing.T) {
	u := NewDeployableUnit("web")
	assert.Equal(t, "web", u.AppLabel())

	u.AddContainer(&ContainerSpec{Image: "nginx"})
	assert.Equal(t, "web", u.AppLabel())

	u.Containers[0].Name = "c1"
	u.AddContainer(&ContainerSpec{Name: "c2"})
	assert.Equal(t, "c1", u.AppLabel())
}
