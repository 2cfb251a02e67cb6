package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "cado",
	Short: "Generate Kubernetes and Docker Compose descriptors from an instance graph",
	Long: `cado reads a semantic instance graph describing a deployment and writes
the matching Kubernetes manifests and Docker Compose file.

Which platforms are generated is decided by the graph itself: an instance
named after a platform (e.g. 2024.Kubernetes or 2024.Docker_Compose)
requests it.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: cado.yml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (-v notes, -vv per-property detail)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cado")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("cado")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// newLogger returns the run logger. The flag wins over the config file.
func newLogger(configured int) logr.Logger {
	v := verbosity
	if v == 0 {
		v = configured
	}
	stdr.SetVerbosity(v)
	return stdr.New(log.New(os.Stderr, "", 0)).WithName("cado")
}
