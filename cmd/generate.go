package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Efficient-Computing-Lab/CADO/internal/config"
	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/render"
	"github.com/Efficient-Computing-Lab/CADO/internal/ui"
	"github.com/Efficient-Computing-Lab/CADO/internal/util"
)

var (
	graphFile  string
	outputDir  string
	singleFile bool
	dryRun     bool
	verify     bool
	check      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate descriptors from an instance graph",
	Long: `Load the instance graph, detect the requested platforms and write
Kubernetes manifests and/or a Docker Compose file to the output directory.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&graphFile, "graph", "g", "", "instance graph file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "output directory")
	generateCmd.Flags().BoolVar(&singleFile, "single-file", false, "write all Kubernetes descriptors to one file")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print documents instead of writing them")
	generateCmd.Flags().BoolVar(&check, "check", false, "reload the written compose file with the compose loader")
	generateCmd.Flags().BoolVar(&verify, "verify", false, "validate output with docker compose / kubectl when installed")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'cado init' to create a config file"))
		return err
	}

	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid config", err.Error(), "pass --graph or set graph: in cado.yml"))
		return err
	}

	g, err := graph.LoadFile(util.ExpandPath(cfg.Graph))
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load graph", err.Error(), ""))
		return err
	}

	rep := diag.NewReporter(newLogger(cfg.Verbosity))

	fmt.Println(ui.Bold("Generating descriptors..."))

	out, results, err := generator.Run(cfg, g, rep)

	for _, r := range results {
		if r.Skipped {
			ui.GeneratorSkipped(r.Name)
		} else if r.Err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(r.Name+" failed", r.Err.Error(), ""))
		} else {
			ui.GeneratorDone(r.Name, r.Detail)
		}
	}

	if err != nil {
		if len(results) == 0 {
			fmt.Fprint(os.Stderr, ui.FormatError("Invalid platform config", err.Error(), "run 'cado validate' for details"))
		}
		return err
	}

	ui.Diagnostics(os.Stderr, rep.Diagnostics())

	docs, err := render.Render(out, render.Options{SingleFile: cfg.Output.SingleFile})
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render output", err.Error(), ""))
		return err
	}

	if len(docs) == 0 {
		ui.Warn(emptyOutputMessage(out.Plan))
		return nil
	}

	if dryRun {
		for i, d := range docs {
			if i > 0 {
				fmt.Println("---")
			}
			fmt.Printf("# %s\n%s", d.Name, d.Content)
		}
		return nil
	}

	dir := util.ExpandPath(cfg.Output.Dir)
	written, err := render.Write(afero.NewOsFs(), dir, docs)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %d files in %s", len(written), dir))
	ui.FileList(os.Stdout, dir, written)
	if tree := ui.ResourceTree(out.Manifests, out.Compose); tree != "" {
		fmt.Println()
		fmt.Print(tree)
	}

	composePath := filepath.Join(dir, render.ComposeFileName)
	if check && out.Compose != nil {
		project, err := render.CheckCompose(context.Background(), composePath)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Compose check failed", err.Error(), ""))
			return err
		}
		ui.Success(fmt.Sprintf("Compose file loads cleanly (%d services)", len(project.Services)))
	}

	if verify {
		verifyOutputs(out, dir, written, composePath)
	}

	return nil
}

// emptyOutputMessage explains why a run produced no documents.
func emptyOutputMessage(plan platform.Plan) string {
	if plan.Empty() {
		return "nothing to generate: the graph requests no platform"
	}
	return fmt.Sprintf("nothing to generate: %v requested but no matching instances produced output", plan.Families())
}

func applyFlagOverrides(cfg *config.Config) {
	if graphFile != "" {
		cfg.Graph = graphFile
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if singleFile {
		cfg.Output.SingleFile = true
	}
}
