package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/faisalnotes/siteconf/internal/config"
	"github.com/faisalnotes/siteconf/internal/plugin"
	"github.com/faisalnotes/siteconf/internal/statics"
)

var (
	checkRoot  string
	checkWatch bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the site configuration against the project tree",
	Long: `The check command validates the effective configuration: timezone and
language codes must parse, the filename metadata pattern must compile, every
URL/save-path template pair must agree, the pagination table must be sane,
and every static asset source must exist under the project root.

With --watch, check stays running and re-validates whenever the config file
changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !checkWatch {
			return runCheck(siteCfg, checkRoot)
		}
		return watchAndCheck(checkRoot)
	},
}

func runCheck(cfg *config.SiteConfig, root string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	contentDir := filepath.Join(root, cfg.ContentDir)
	if _, err := os.Stat(contentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found", contentDir)
	}

	if err := statics.CheckAll(root, cfg.StaticPaths); err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	// Plugin directories are optional; report the ones that resolve.
	dirs := plugin.SearchPath(cfg.PluginPaths).Dirs(root)
	for _, d := range dirs {
		fmt.Printf("Plugin directory: %s\n", d)
	}

	fmt.Printf("Configuration OK: %d route kinds, %d pagination patterns, %d static paths.\n",
		len(cfg.Routes), len(cfg.Pagination.Patterns), len(cfg.StaticPaths))
	return nil
}

// watchAndCheck re-runs validation when the config file changes, with a
// short debounce so editors that write in bursts trigger one check.
func watchAndCheck(root string) error {
	if err := runCheck(siteCfg, root); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchTarget := cfgFile
	if watchTarget == "" {
		watchTarget = config.DefaultConfigName + ".yaml"
	}
	// Watch the directory rather than the file: editors replace files on
	// save, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(watchTarget)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchTarget, err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var checkTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", watchTarget)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(watchTarget) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if checkTimer != nil {
					checkTimer.Stop()
				}
				checkTimer = time.AfterFunc(debounceDuration, func() {
					logger.Info("config changed, re-checking", "path", event.Name)
					cfg, err := config.NewLoader(logger).Load(cfgFile)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						return
					}
					siteCfg = cfg
					if err := runCheck(cfg, root); err != nil {
						fmt.Fprintln(os.Stderr, err)
					}
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)
		case <-interrupt:
			fmt.Println("Stopping watch.")
			return nil
		}
	}
}

func init() {
	checkCmd.Flags().StringVar(&checkRoot, "root", ".", "project root to validate against")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-validate when the config file changes")
	rootCmd.AddCommand(checkCmd)
}
