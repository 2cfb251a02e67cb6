package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults for a run without a config file.
const (
	DefaultOutputDir = "generated"
	DefaultLogLevel  = 0
)

type Config struct {
	Graph        string `mapstructure:"graph"`
	Output       Output `mapstructure:"output"`
	Verbosity    int    `mapstructure:"verbosity"`
	RawPlatforms map[string]any
}

type Output struct {
	Dir        string `mapstructure:"dir"`
	SingleFile bool   `mapstructure:"single_file"`
}

// Validate checks the settings that do not belong to a platform section.
func (c *Config) Validate() error {
	if c.Graph == "" {
		return fmt.Errorf("graph: no graph file configured")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir: must not be empty")
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity: %d is negative", c.Verbosity)
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Output:    Output{Dir: DefaultOutputDir},
		Verbosity: DefaultLogLevel,
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Raw sections for the generator registry
	cfg.RawPlatforms = viper.GetStringMap("platforms")

	return cfg, nil
}
