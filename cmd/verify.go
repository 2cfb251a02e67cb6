package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/render"
	"github.com/Efficient-Computing-Lab/CADO/internal/ui"
)

// verifyTools maps each platform family to the binary its generator
// names for --verify.
func verifyTools(gens []generator.RegisteredGenerator) map[platform.Family]string {
	tools := make(map[platform.Family]string)
	for _, gen := range gens {
		meta := gen.Metadata()
		if meta.VerifyHint != "" {
			tools[meta.Family] = meta.VerifyHint
		}
	}
	return tools
}

// verifyOutputs hands the written files to the platform tools when they
// are installed. Failures are reported, not returned: the files are
// already written.
func verifyOutputs(out *generator.Output, dir string, written []string, composePath string) {
	tools := verifyTools(generator.All())

	if tool, ok := tools[platform.Compose]; ok && out.Compose != nil {
		if err := verifyCompose(tool, composePath); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(tool+" compose rejected the compose file", err.Error(), "install "+tool+": https://docs.docker.com/get-docker/"))
		} else {
			ui.Success(tool + " compose config: ok")
		}
	}

	var manifests []string
	for _, p := range written {
		if !strings.HasSuffix(p, render.ComposeFileName) {
			manifests = append(manifests, p)
		}
	}
	if tool, ok := tools[platform.Kubernetes]; ok && len(manifests) > 0 {
		if err := verifyManifests(tool, manifests); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(tool+" rejected the manifests", err.Error(), "install "+tool+": https://kubernetes.io/docs/tasks/tools/"))
		} else {
			ui.Success(fmt.Sprintf("%s dry run: ok (%s)", tool, dir))
		}
	}
}

func verifyCompose(tool, path string) error {
	bin, err := findExecutable(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}

	cmd := execCommand(bin, "compose", "-f", path, "config", "-q")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s compose config failed: %w", tool, err)
	}
	return nil
}

func verifyManifests(tool string, paths []string) error {
	bin, err := findExecutable(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}

	args := []string{"apply", "--dry-run=client", "--validate=false"}
	for _, p := range paths {
		args = append(args, "-f", p)
	}
	cmd := execCommand(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s apply --dry-run failed: %w", tool, err)
	}
	return nil
}
