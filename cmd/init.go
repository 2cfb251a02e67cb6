package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Efficient-Computing-Lab/CADO/internal/ui"
	"github.com/Efficient-Computing-Lab/CADO/internal/wizard"
)

const configFileName = "cado.yml"

var forceInit bool

// errKeepConfig aborts init without an error exit.
var errKeepConfig = errors.New("existing config kept")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a cado.yml config file interactively",
	Long: `Look for instance graph files and platform tooling (kubectl, docker),
then write a config file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing cado.yml without asking")
}

// confirmOverwrite asks before replacing an existing config.
var confirmOverwrite = func(path string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(path + " already exists. Overwrite it?").
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&ok).
		Run()
	return ok, err
}

func runInit(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	if err := checkOverwrite(fs, configFileName, forceInit); err != nil {
		if errors.Is(err, errKeepConfig) {
			fmt.Println("Aborted.")
			return nil
		}
		return err
	}

	fmt.Println(ui.Bold("Scanning environment..."))
	answers, err := wizard.Run(wizard.Detect(nil))
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}
	if err := afero.WriteFile(fs, configFileName, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success("Created " + configFileName)
	fmt.Printf("\nNext step: %s\n", ui.Bold("cado generate"))
	fmt.Printf("           %s\n", ui.Hint("or edit "+configFileName+" to fine-tune your config"))
	return nil
}

// checkOverwrite returns errKeepConfig when path exists and the user
// declines to replace it.
func checkOverwrite(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists || force {
		return nil
	}
	ok, err := confirmOverwrite(path)
	if err != nil {
		return fmt.Errorf("confirm overwrite: %w", err)
	}
	if !ok {
		return errKeepConfig
	}
	return nil
}
