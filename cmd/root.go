package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/faisalnotes/siteconf/internal/config"
)

var (
	cfgFile string
	siteCfg *config.SiteConfig
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "siteconf",
	Short: "siteconf - site configuration loader and route checker",
	Long: `siteconf loads the declarative configuration of a static site,
validates it against the project tree, and resolves content metadata into
the URL and save-path pairs the generation engine will write to. It never
renders anything itself; that is the engine's job.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./siteconf.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.NewLoader(logger).Load(cfgFile)
	if err != nil {
		return err
	}
	siteCfg = cfg
	return nil
}
