package extract

import (
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"
)

// ParseReplicas parses a replica count. Only positive integers are accepted;
// callers substitute their default on error.
func ParseReplicas(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("replicas %q is not an integer", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("replicas %d is not positive", n)
	}
	return int32(n), nil
}

// ParseCapacity parses a storage size such as "1Gi" or "500M".
func ParseCapacity(s string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(strings.TrimSpace(s))
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("capacity %q: %w", s, err)
	}
	if q.Sign() <= 0 {
		return resource.Quantity{}, fmt.Errorf("capacity %q is not positive", s)
	}
	return q, nil
}
