package synth

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
)

func container(name string) *graph.Instance {
	return graph.NewInstance("2024", name, "Docker_Container")
}

func compose(t *testing.T, instances ...*graph.Instance) (*ComposeFile, *diag.Reporter) {
	t.Helper()
	rep := diag.Discard()
	f, err := NewComposeEngine(DefaultComposeOptions(), rep).Synthesize(graph.New(instances))
	require.NoError(t, err)
	return f, rep
}

func TestComposeService(t *testing.T) {
	f, rep := compose(t,
		container("Web_Docker_Container").
			Assert("related_image", "nginx:1.27").
			Assert("container_name", "web").
			Assert("volumes", "static:/usr/share/nginx/html", "./conf:/etc/nginx/conf.d").
			Assert("networks", "front").
			Assert("restart_policy", "always").
			Assert("env_tz", "UTC").
			Assert("ports", "8080:80"),
	)
	assert.Empty(t, rep.Warnings())

	assert.Equal(t, "3.9", f.Version)
	require.Contains(t, f.Services, "web")
	assert.Equal(t, &ComposeService{
		Image:         "nginx:1.27",
		ContainerName: "web",
		Volumes:       []string{"static:/usr/share/nginx/html", "./conf:/etc/nginx/conf.d"},
		Networks:      []string{"front"},
		Restart:       "always",
		Environment:   map[string]string{"TZ": "UTC"},
		Ports:         []string{"8080:80"},
	}, f.Services["web"])

	assert.Equal(t, map[string]EmptyObject{"front": {}}, f.Networks)
	assert.Equal(t, map[string]EmptyObject{"static": {}}, f.Volumes)
}

func TestComposeSharedVolumeDeclaredOnce(t *testing.T) {
	f, _ := compose(t,
		container("Redis_Docker_Container").Assert("image", "redis").Assert("volumes", "cache:/tmp"),
		container("Worker_Docker_Container").Assert("image", "worker").Assert("volumes", "cache:/tmp"),
	)
	assert.Len(t, f.Services, 2)
	assert.Equal(t, map[string]EmptyObject{"cache": {}}, f.Volumes)
}

func TestComposeTopLevelVolumes(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want map[string]EmptyObject
	}{
		{"named", "data:/var/lib/data", map[string]EmptyObject{"data": {}}},
		{"named read only", "data:/var/lib/data:ro", map[string]EmptyObject{"data": {}}},
		{"bind", "/srv/data:/data", nil},
		{"relative bind", "./data:/data", nil},
		{"anonymous", "/data", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := compose(t, container("App_Docker_Container").Assert("volumes", tt.spec))
			assert.Equal(t, tt.want, f.Volumes)
		})
	}
}

func TestComposeDuplicateServiceLastWins(t *testing.T) {
	f, rep := compose(t,
		container("Web_Docker_Container").Assert("image", "nginx:1"),
		graph.NewInstance("2024", "web_docker_container", "Docker_Container").Assert("image", "nginx:2"),
	)
	require.Len(t, f.Services, 1)
	assert.Equal(t, "nginx:2", f.Services["web"].Image)
	require.Len(t, rep.Warnings(), 1)
	assert.Equal(t, "2024.web_docker_container", rep.Warnings()[0].Subject)
}

func TestComposeEnvironmentLastWriteWins(t *testing.T) {
	f, _ := compose(t,
		container("App_Docker_Container").
			Assert("env_mode", "A").
			Assert("Env_Mode", "B"),
	)
	assert.Equal(t, map[string]string{"MODE": "B"}, f.Services["app"].Environment)
}

func TestComposeEmptyService(t *testing.T) {
	f, _ := compose(t, container("Bare_Docker_Container"))
	require.Contains(t, f.Services, "bare")
	assert.Equal(t, &ComposeService{}, f.Services["bare"])
	assert.Nil(t, f.Networks)
	assert.Nil(t, f.Volumes)
}

func TestComposeSelectsByName(t *testing.T) {
	f, _ := compose(t,
		graph.NewInstance("2024", "Db_Docker_Container").Assert("image", "postgres"),
		pod("p1_pod").Assert("deployment_name", "web"),
	)
	assert.Equal(t, []string{"db"}, f.ServiceNames())
}

func TestComposeIdempotent(t *testing.T) {
	g := graph.New([]*graph.Instance{
		container("B_Docker_Container").Assert("networks", "n2", "n1").Assert("volumes", "v2:/b"),
		container("A_Docker_Container").Assert("networks", "n1").Assert("volumes", "v1:/a"),
	})

	first, err := NewComposeEngine(DefaultComposeOptions(), nil).Synthesize(g)
	require.NoError(t, err)
	second, err := NewComposeEngine(DefaultComposeOptions(), nil).Synthesize(g)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestComposeNilGraph(t *testing.T) {
	_, err := NewComposeEngine(ComposeOptions{}, nil).Synthesize(nil)
	assert.ErrorIs(t, err, ErrNoGraph)
}
