package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Efficient-Computing-Lab/CADO/internal/config"
	"github.com/Efficient-Computing-Lab/CADO/internal/generator"
	"github.com/Efficient-Computing-Lab/CADO/internal/graph"
	"github.com/Efficient-Computing-Lab/CADO/internal/platform"
	"github.com/Efficient-Computing-Lab/CADO/internal/ui"
	"github.com/Efficient-Computing-Lab/CADO/internal/util"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your cado.yml configuration and graph file",
	Long: `Check that the configuration is well-formed, every platform section is
valid and the instance graph loads.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&graphFile, "graph", "g", "", "instance graph file (YAML or JSON)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'cado init' to create a config file"))
		return err
	}
	if graphFile != "" {
		cfg.Graph = graphFile
	}

	fmt.Println(ui.Bold("Validating cado.yml..."))

	passed := 0
	failed := 0

	if err := cfg.Validate(); err != nil {
		ui.ValidationErr("config", err.Error(), "")
		failed++
	} else {
		ui.ValidationOK("config", "settings valid")
		passed++
	}

	var gens []generator.RegisteredGenerator
	for _, gen := range generator.All() {
		meta := gen.Metadata()

		section, _ := cfg.RawPlatforms[meta.ConfigKey].(map[string]any)
		if err := gen.Configure(section); err != nil {
			ui.ValidationErr("platforms."+meta.ConfigKey, err.Error(), "")
			failed++
			continue
		}

		errs := gen.Validate()
		if len(errs) == 0 {
			ui.ValidationOK(meta.DisplayName, "configuration valid ("+meta.Description+")")
			gens = append(gens, gen)
			passed++
		} else {
			for _, ve := range errs {
				ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
				failed++
			}
		}
	}

	if cfg.Graph != "" {
		g, err := graph.LoadFile(util.ExpandPath(cfg.Graph))
		if err != nil {
			ui.ValidationErr("graph", err.Error(), "check the file path and YAML syntax")
			failed++
		} else {
			plan := platform.Classify(g.Instances, generator.Identifiers(gens))
			detail := fmt.Sprintf("%d instances, %d properties", len(g.Instances), g.Registry.Len())
			if plan.Empty() {
				detail += ", no platform requested"
			} else {
				detail += fmt.Sprintf(", platforms %v", plan.Families())
			}
			ui.ValidationOK("graph", detail)
			passed++
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
	} else {
		fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d validation errors", failed)
	}
	return nil
}
