package render

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

func testOutput(t *testing.T) *generator.Output {
	t.Helper()
	g := graph.New([]*graph.Instance{
		graph.NewInstance("2024", "p1_pod", "Kubernetes_Pod").
			Assert("deployment_name", "web").
			Assert("container_name", "c1").
			Assert("related_image", "nginx").
			Assert("replicas", "3").
			Assert("namespace", "shop").
			Assert("env_mode", "prod").
			Assert("volume_mount_path", "/app/data"),
		graph.NewInstance("2024", "p1_volume", "Kubernetes_Volume").
			Assert("volume_name", "data").
			Assert("volume_host_path", "/srv"),
		graph.NewInstance("2024", "Redis_Docker_Container").
			Assert("related_image", "redis:7").
			Assert("volumes", "cache:/data").
			Assert("networks", "back"),
	})

	m, err := synth.NewKubernetesEngine(synth.DefaultKubernetesOptions(), nil).Synthesize(g)
	require.NoError(t, err)
	c, err := synth.NewComposeEngine(synth.DefaultComposeOptions(), nil).Synthesize(g)
	require.NoError(t, err)
	return &generator.Output{Manifests: m, Compose: c}
}

func names(docs []Document) []string {
	var out []string
	for _, d := range docs {
		out = append(out, d.Name)
	}
	return out
}

func TestRenderFileNames(t *testing.T) {
	docs, err := Render(testOutput(t), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"kubernetes-namespace.generated.yml",
		"kubernetes-deployment1.generated.yml",
		"kubernetes-volume1.generated.yml",
		"kubernetes-pvc1.generated.yml",
		"docker-compose.generated.yml",
	}, names(docs))
	assert.Equal(t, "Deployment", docs[1].Kind)
}

func TestRenderDeployment(t *testing.T) {
	docs, err := (&KubernetesRenderer{}).Render(testOutput(t), Options{})
	require.NoError(t, err)

	want := `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: shop
spec:
  replicas: 3
  selector:
    matchLabels:
      app: c1
  template:
    metadata:
      labels:
        app: c1
    spec:
      containers:
      - env:
        - name: MODE
          value: prod
        image: nginx
        name: c1
        volumeMounts:
        - mountPath: /app/data
          name: data
      volumes:
      - name: data
        persistentVolumeClaim:
          claimName: datac
`
	assert.Equal(t, want, string(docs[1].Content))
}

func TestRenderClaimKeepsEmptyStorageClass(t *testing.T) {
	docs, err := (&KubernetesRenderer{}).Render(testOutput(t), Options{})
	require.NoError(t, err)

	want := `apiVersion: v1
kind: PersistentVolumeClaim
metadata:
  name: datac
  namespace: shop
spec:
  accessModes:
  - ReadWriteOnce
  resources:
    requests:
      storage: 1Gi
  storageClassName: ""
`
	assert.Equal(t, want, string(docs[3].Content))
}

func TestRenderNamespaceAndVolume(t *testing.T) {
	docs, err := (&KubernetesRenderer{}).Render(testOutput(t), Options{})
	require.NoError(t, err)

	assert.Equal(t, "apiVersion: v1\nkind: Namespace\nmetadata:\n  name: shop\n", string(docs[0].Content))

	var pv map[string]any
	require.NoError(t, sigsyaml.Unmarshal(docs[2].Content, &pv))
	assert.Equal(t, "PersistentVolume", pv["kind"])
	spec := pv["spec"].(map[string]any)
	assert.Equal(t, map[string]any{"storage": "1Gi"}, spec["capacity"])
	assert.Equal(t, map[string]any{"path": "/srv"}, spec["hostPath"])
	assert.NotContains(t, pv, "status")
}

func TestRenderSingleFile(t *testing.T) {
	docs, err := Render(testOutput(t), Options{SingleFile: true})
	require.NoError(t, err)

	assert.Equal(t, []string{SingleKubernetesFile, ComposeFileName}, names(docs))
	parts := strings.Split(string(docs[0].Content), "---\n")
	assert.Len(t, parts, 4)
	assert.True(t, strings.HasPrefix(parts[0], "apiVersion: v1\nkind: Namespace"))
}

func TestRenderCompose(t *testing.T) {
	docs, err := (&ComposeRenderer{}).Render(testOutput(t), Options{})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	want := `version: "3.9"
services:
  redis:
    image: redis:7
    volumes:
      - cache:/data
    networks:
      - back
networks:
  back: {}
volumes:
  cache: {}
`
	assert.Equal(t, want, string(docs[0].Content))
}

func TestRenderNothing(t *testing.T) {
	docs, err := Render(&generator.Output{}, Options{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRenderIdempotent(t *testing.T) {
	first, err := Render(testOutput(t), Options{})
	require.NoError(t, err)
	second, err := Render(testOutput(t), Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	docs := []Document{
		{Name: "a.generated.yml", Content: []byte("a: 1\n")},
		{Name: "b.generated.yml", Content: []byte("b: 2\n")},
	}

	written, err := Write(fs, "out/k8s", docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"out/k8s/a.generated.yml", "out/k8s/b.generated.yml"}, written)

	data, err := afero.ReadFile(fs, "out/k8s/b.generated.yml")
	require.NoError(t, err)
	assert.Equal(t, "b: 2\n", string(data))
}

func TestWriteCollectsErrors(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := Write(fs, "out", []Document{{Name: "a.yml"}})
	require.Error(t, err)
}
