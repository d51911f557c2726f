package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faisalnotes/siteconf/internal/config"
	"github.com/faisalnotes/siteconf/internal/routing"
	"github.com/faisalnotes/siteconf/internal/statics"
)

func fixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"content/pages", "images", "extra"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "favicon.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "extra", "CNAME"), []byte("example.com"), 0o644))
	return root
}

func TestRunCheck(t *testing.T) {
	root := fixtureProject(t)
	assert.NoError(t, runCheck(config.Default(), root))
}

func TestRunCheckMissingContentDir(t *testing.T) {
	root := fixtureProject(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "content")))
	assert.Error(t, runCheck(config.Default(), root))
}

func TestRunCheckMissingStaticAsset(t *testing.T) {
	root := fixtureProject(t)

	cfg := config.Default()
	cfg.StaticPaths = append(cfg.StaticPaths, statics.Path{Source: "extra/robots.txt"})
	assert.Error(t, runCheck(cfg, root))
}

func TestRunCheckInvalidConfig(t *testing.T) {
	root := fixtureProject(t)

	cfg := config.Default()
	cfg.Timezone = "Nowhere/Particular"
	assert.Error(t, runCheck(cfg, root))
}

func TestKindForPath(t *testing.T) {
	contentDir := filepath.Join("proj", "content")

	assert.Equal(t, routing.KindArticle, kindForPath(contentDir, filepath.Join(contentDir, "2016-01-01-post.md")))
	assert.Equal(t, routing.KindPage, kindForPath(contentDir, filepath.Join(contentDir, "pages", "about.md")))
	assert.Equal(t, routing.KindArticle, kindForPath(contentDir, filepath.Join(contentDir, "notes", "2016-01-01-note.md")))
}
