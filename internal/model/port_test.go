package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected PortMapping
	}{
		{
			"8080",
			PortMapping{ContainerPort: 8080, Protocol: "tcp"},
		},
		{
			"8080:80",
			PortMapping{HostPort: 8080, ContainerPort: 80, Protocol: "tcp"},
		},
		{
			"127.0.0.1:8080:80",
			PortMapping{HostIP: "127.0.0.1", HostPort: 8080, ContainerPort: 80, Protocol: "tcp"},
		},
		{
			"8080:80/UDP",
			PortMapping{HostPort: 8080, ContainerPort: 80, Protocol: "udp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePortMapping(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePortMappingErrors(t *testing.T) {
	for _, input := range []string{"http", "80:x", "0", "70000", "1:2:3:4", "80/icmp"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePortMapping(input)
			assert.Error(t, err)
		})
	}
}

func TestPortMappingString(t *testing.T) {
	tests := []struct {
		pm       PortMapping
		expected string
	}{
		{PortMapping{ContainerPort: 8080, Protocol: "tcp"}, "8080"},
		{PortMapping{HostPort: 8080, ContainerPort: 80, Protocol: "tcp"}, "8080:80"},
		{PortMapping{HostPort: 8080, ContainerPort: 80, Protocol: "udp"}, "8080:80/udp"},
		{PortMapping{HostIP: "127.0.0.1", HostPort: 53, ContainerPort: 53, Protocol: "udp"}, "127.0.0.1:53:53/udp"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pm.String())
		})
	}
}
