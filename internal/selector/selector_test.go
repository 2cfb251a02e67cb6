package selector

import (
	"testing"

	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(insts []*graph.Instance) []string {
	var out []string
	for _, i := range insts {
		out = append(out, i.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	all := []*graph.Instance{
		graph.NewInstance("2024", "web_Pod"),
		graph.NewInstance("2024", "p1_pod", "Kubernetes_Pod"),
		graph.NewInstance("2024", "p1_volume", "Kubernetes_Volume"),
		graph.NewInstance("2024", "api_pod", "Workload"),
		graph.NewInstance("2024", "Kubernetes"),
	}

	assert.Equal(t, []string{"web_Pod", "p1_pod"}, names(Select(all, "Pod")))
	assert.Equal(t, []string{"p1_volume"}, names(Select(all, "Kubernetes_Volume")))
	assert.Empty(t, Select(all, "Docker_Container"))
	assert.Empty(t, Select(all, ""))
}

func TestPartitionFirstRuleWins(t *testing.T) {
	// Matches both the volume and the pod keyword.
	both := graph.NewInstance("2024", "p1_Kubernetes_Volume", "Pod_Storage")
	pod := graph.NewInstance("2024", "p1_pod", "Pod")
	other := graph.NewInstance("2024", "Kubernetes")

	got := Partition([]*graph.Instance{pod, both, other},
		Rule{Kind: KindVolume, Keyword: "Kubernetes_Volume"},
		Rule{Kind: KindPod, Keyword: "Pod"},
	)

	require.Len(t, got, 2)
	assert.Equal(t, Match{Instance: pod, Kind: KindPod}, got[0])
	assert.Equal(t, Match{Instance: both, Kind: KindVolume}, got[1])
	assert.Equal(t, 1, Count(got, KindPod))
	assert.Equal(t, 1, Count(got, KindVolume))
}

func TestPartitionEmpty(t *testing.T) {
	assert.Empty(t, Partition(nil, Rule{Kind: KindPod, Keyword: "Pod"}))
}
