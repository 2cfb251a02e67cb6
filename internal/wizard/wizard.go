package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Efficient-Computing-Lab/CADO/internal/config"
	"github.com/Efficient-Computing-Lab/CADO/internal/synth"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		GraphPath:        "graph.yaml",
		OutputDir:        config.DefaultOutputDir,
		EnableKubernetes: true,
		EnableCompose:    true,
		ComposeVersion:   synth.DefaultComposeVersion,
	}
	if len(detection.GraphFiles) > 0 {
		answers.GraphPath = detection.GraphFiles[0]
	}

	// Build detection summary
	var hints []string
	if detection.KubectlAvailable {
		hints = append(hints, "kubectl detected (generate --verify can dry-run manifests)")
	}
	if detection.DockerAvailable {
		hints = append(hints, "docker detected (generate --verify can check the compose file)")
	}
	if len(detection.GraphFiles) > 0 {
		hints = append(hints, fmt.Sprintf("Graph files found: %s", strings.Join(detection.GraphFiles, ", ")))
	}

	// Step 1: Input and output
	desc := "Path to the instance graph (YAML or JSON)."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	var platforms []string
	ioForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Instance graph").
				Description(desc).
				Value(&answers.GraphPath),
			huh.NewInput().
				Title("Output directory").
				Value(&answers.OutputDir),
			huh.NewConfirm().
				Title("Write all Kubernetes descriptors to a single file?").
				Value(&answers.SingleFile),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which platforms may be generated?").
				Description("A platform is only generated when the graph asks for it.").
				Options(
					huh.NewOption("Kubernetes", "kubernetes").Selected(true),
					huh.NewOption("Docker Compose", "compose").Selected(true),
				).
				Value(&platforms),
		),
	)

	if err := ioForm.Run(); err != nil {
		return nil, err
	}

	answers.EnableKubernetes = contains(platforms, "kubernetes")
	answers.EnableCompose = contains(platforms, "compose")

	// Step 2: Platform-specific config
	var groups []*huh.Group

	if answers.EnableKubernetes {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Volume owner property (optional)").
				Description("Joins volumes to pods by this property instead of the name prefix").
				Placeholder("owner").
				Value(&answers.LinkageProperty),
		))
	}

	if answers.EnableCompose {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Compose file version").
				Value(&answers.ComposeVersion),
		))
	}

	if len(groups) > 0 {
		form := huh.NewForm(groups...)
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
