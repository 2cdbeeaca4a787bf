package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abdul-hamid-achik/rgen/pkg/config"
)

// flagKeys maps command flags to rgen.yaml keys.
var flagKeys = map[string]string{
	"input":        "input",
	"output":       "output",
	"template":     "template",
	"template-dir": "template_dirs",
	"emitter":      "emitter",
	"debounce":     "watch.debounce",
}

// loadConfig resolves configuration for cmd. Precedence: flags, RGEN_*
// environment, config file, defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(configFile, func(v *viper.Viper) error {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// addInputFlags registers the flags shared by commands that read a Swift source.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Swift source file with annotated route enums")
}
