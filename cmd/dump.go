package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Prints the effective configuration as YAML",
	Long: `The dump command prints the fully resolved configuration - defaults,
config file, and environment overrides merged - in the YAML shape the
generation engine consumes. Disabled feeds appear as null, not "".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(siteCfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
