package routing

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filenamePattern = regexp.MustCompile(`(?P<date>\d{4}-\d{2}-\d{2})-(?P<slug>.*)`)

func TestFromFilename(t *testing.T) {
	md, err := FromFilename(filenamePattern, "content/2016-03-14-pi-day-notes.md")
	require.NoError(t, err)
	assert.Equal(t, "pi-day-notes", md.Slug)
	assert.Equal(t, time.Date(2016, 3, 14, 0, 0, 0, 0, time.UTC), md.Date)
}

func TestFromFilenameNoMatch(t *testing.T) {
	_, err := FromFilename(filenamePattern, "about.md")
	assert.Error(t, err)
}

func TestFromFilenameBadDate(t *testing.T) {
	re := regexp.MustCompile(`(?P<date>.*?)--(?P<slug>.*)`)
	_, err := FromFilename(re, "9999-99-99--oops.md")
	assert.Error(t, err)
}

func TestFromFrontMatterOverridesFilename(t *testing.T) {
	doc := `---
title: A Proper Title
slug: overridden-slug
date: 2017-05-01
---
body text
`
	base := Metadata{Slug: "filename-slug", Date: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)}
	md, err := FromFrontMatter(strings.NewReader(doc), base)
	require.NoError(t, err)
	assert.Equal(t, "overridden-slug", md.Slug)
	assert.Equal(t, "A Proper Title", md.Title)
	assert.Equal(t, 2017, md.Date.Year())
}

func TestFromFrontMatterAbsent(t *testing.T) {
	base := Metadata{Slug: "plain-post"}
	md, err := FromFrontMatter(strings.NewReader("just markdown, no front matter\n"), base)
	require.NoError(t, err)
	assert.Equal(t, "plain-post", md.Slug)
	// Title falls back to the title-cased slug.
	assert.Equal(t, "Plain Post", md.Title)
}

func TestMetadataVars(t *testing.T) {
	md := Metadata{
		Slug: "hello",
		Date: time.Date(2016, 3, 14, 9, 26, 0, 0, time.UTC),
		Lang: "en",
	}
	vars := md.Vars()
	assert.Equal(t, "hello", vars["slug"])
	assert.Equal(t, "2016-03-14", vars["date"])
	assert.Equal(t, "en", vars["lang"])

	// Zero date stays out of the map so templates that use {date} fail
	// loudly instead of rendering a zero time.
	_, ok := Metadata{Slug: "x"}.Vars()["date"]
	assert.False(t, ok)
}

func TestRouterRoute(t *testing.T) {
	router := NewRouter(map[Kind]Pair{
		KindArticle:  {URL: "{slug}/", SaveAs: "{slug}/index.html"},
		KindCategory: {},
	}, Pagination{DefaultPageSize: 5, Patterns: DefaultPatterns()})

	res, err := router.Route(KindArticle, Metadata{Slug: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello/", res.URL)
	assert.Equal(t, "hello/index.html", res.SavePath)

	_, err = router.Route(KindCategory, Metadata{Slug: "hello"})
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = router.Route(Kind("unknown"), Metadata{Slug: "hello"})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestRouterCheck(t *testing.T) {
	good := NewRouter(map[Kind]Pair{
		KindArticle: {URL: "{slug}/", SaveAs: "{slug}/index.html"},
	}, Pagination{DefaultPageSize: 5, Patterns: DefaultPatterns()})
	assert.NoError(t, good.Check())

	bad := NewRouter(map[Kind]Pair{
		KindArticle: {URL: "{slug}/", SaveAs: "{slug}.html"},
	}, Pagination{DefaultPageSize: 5, Patterns: DefaultPatterns()})
	assert.Error(t, bad.Check())
}
