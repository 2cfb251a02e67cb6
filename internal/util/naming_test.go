package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Redis_Docker_Container", "redis"},
		{"web_docker_container", "web"},
		{"Cache", "cache"},
		{"my service_Docker_Container", "my-service"},
		{"api/v1_Docker_Container", "api-v1"},
		{"special@chars!", "specialchars"},
		{"_Docker_Container", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ServiceName(tt.input, "_docker_container"))
		})
	}
}

func TestServiceNameNoSuffix(t *testing.T) {
	assert.Equal(t, "web_docker_container", ServiceName("Web_Docker_Container", ""))
}

func TestGeneratedName(t *testing.T) {
	assert.Equal(t, "docker-compose.generated.yml", GeneratedName("docker-compose", 0))
	assert.Equal(t, "kubernetes-deployment1.generated.yml", GeneratedName("kubernetes-deployment", 1))
	assert.Equal(t, "kubernetes-pvc12.generated.yml", GeneratedName("kubernetes-pvc", 12))
}
