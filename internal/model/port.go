package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PortMapping represents a port binding.
type PortMapping struct {
	HostIP        string
	HostPort      int
	ContainerPort int
	Protocol      string // tcp or udp
}

// String returns the compose short syntax, e.g. "8080:80" or "127.0.0.1:53:53/udp".
func (p PortMapping) String() string {
	proto := ""
	if p.Protocol != "" && p.Protocol != "tcp" {
		proto = "/" + p.Protocol
	}
	var s string
	switch {
	case p.HostPort == 0:
		s = strconv.Itoa(p.ContainerPort)
	case p.HostIP != "":
		s = fmt.Sprintf("%s:%d:%d", p.HostIP, p.HostPort, p.ContainerPort)
	default:
		s = fmt.Sprintf("%d:%d", p.HostPort, p.ContainerPort)
	}
	return s + proto
}

// ParsePortMapping parses a Docker port string like "80", "8080:80" or
// "127.0.0.1:8080:80/tcp". A single port only sets the container port.
func ParsePortMapping(s string) (PortMapping, error) {
	pm := PortMapping{Protocol: "tcp"}
	raw := s
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "/"); idx != -1 {
		pm.Protocol = strings.ToLower(s[idx+1:])
		s = s[:idx]
	}
	if pm.Protocol != "tcp" && pm.Protocol != "udp" && pm.Protocol != "sctp" {
		return PortMapping{}, fmt.Errorf("port %q: unknown protocol %q", raw, pm.Protocol)
	}

	parts := strings.Split(s, ":")
	var err error
	switch len(parts) {
	case 1:
		pm.ContainerPort, err = parsePort(parts[0])
	case 2:
		if pm.HostPort, err = parsePort(parts[0]); err == nil {
			pm.ContainerPort, err = parsePort(parts[1])
		}
	case 3:
		pm.HostIP = parts[0]
		if pm.HostPort, err = parsePort(parts[1]); err == nil {
			pm.ContainerPort, err = parsePort(parts[2])
		}
	default:
		err = fmt.Errorf("too many fields")
	}
	if err != nil {
		return PortMapping{}, fmt.Errorf("port %q: %w", raw, err)
	}
	return pm, nil
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return n, nil
}
