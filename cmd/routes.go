package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faisalnotes/siteconf/internal/routing"
)

var routesRoot string
var routesPages int

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Resolves content files into their URL and save-path pairs",
	Long: `The routes command walks the content directory, extracts routing
metadata from each file (filename pattern first, then front matter), and
prints the URL and save path the generation engine will produce for it.
With --pages N it also prints the paginated index routes for pages 1..N.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoutes(routesRoot, routesPages)
	},
}

func runRoutes(root string, pages int) error {
	contentDir := filepath.Join(root, siteCfg.ContentDir)
	if _, err := os.Stat(contentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found", contentDir)
	}

	pattern, err := siteCfg.FilenamePattern()
	if err != nil {
		return err
	}
	router := siteCfg.Router()

	walkErr := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		md, err := routing.FromFilename(pattern, d.Name())
		if err != nil {
			// Files outside the naming convention still route; the
			// bare name becomes the slug.
			logger.Debug("filename pattern miss", "file", d.Name(), "err", err)
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			md = routing.Metadata{Slug: base}
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}
		md, fmErr := routing.FromFrontMatter(f, md)
		f.Close()
		if fmErr != nil {
			logger.Warn("front matter unreadable, using filename metadata only", "file", path, "err", fmErr)
		}

		kind := kindForPath(contentDir, path)
		resolved, err := router.Route(kind, md)
		if err != nil {
			logger.Warn("not routed", "file", path, "err", err)
			return nil
		}

		rel, _ := filepath.Rel(root, path)
		fmt.Printf("%-9s %-40s url=/%s save=%s\n", kind, rel, resolved.URL, resolved.SavePath)
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("error during content walk: %w", walkErr)
	}

	if pages > 0 {
		fmt.Println()
		for n := 1; n <= pages; n++ {
			resolved, err := router.Paginated("", n)
			if err != nil {
				return err
			}
			fmt.Printf("index p%-2d url=/%s save=%s\n", n, strings.TrimPrefix(resolved.URL, "/"), strings.TrimPrefix(resolved.SavePath, "/"))
		}
	}
	return nil
}

// kindForPath maps a content file to its kind by the top-level directory it
// lives under: files in "pages" are pages, everything else is an article.
func kindForPath(contentDir, path string) routing.Kind {
	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		return routing.KindArticle
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) > 1 && parts[0] == "pages" {
		return routing.KindPage
	}
	return routing.KindArticle
}

func init() {
	routesCmd.Flags().StringVar(&routesRoot, "root", ".", "project root containing the content directory")
	routesCmd.Flags().IntVar(&routesPages, "pages", 0, "also print index pagination routes for pages 1..N")
	rootCmd.AddCommand(routesCmd)
}
