package routing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDisabled is returned when a route is resolved for a content kind whose
// URL and save-path templates are both empty.
var ErrDisabled = errors.New("routing disabled for this content kind")

// Kind identifies a class of generated content, each with its own route pair.
type Kind string

const (
	KindArticle  Kind = "article"
	KindPage     Kind = "page"
	KindTag      Kind = "tag"
	KindAuthor   Kind = "author"
	KindCategory Kind = "category"
	KindArchives Kind = "archives"
)

// Pair couples the human-facing URL template of a content kind with its
// on-disk save-path template. The two are kept separate because a
// directory-style URL ("{slug}/") omits the "index.html" suffix that the
// filesystem path requires; collapsing them into one string loses that
// distinction.
type Pair struct {
	URL    Template `mapstructure:"url" yaml:"url"`
	SaveAs Template `mapstructure:"saveAs" yaml:"saveAs"`
}

// Enabled reports whether this kind produces output at all. An empty pair is
// the engine's "flatten into site root" convention and generates nothing
// from this layer's point of view.
func (p Pair) Enabled() bool { return !p.URL.IsZero() || !p.SaveAs.IsZero() }

// Resolved is a fully substituted route: the hyperlink target and the
// relative output path the engine writes to.
type Resolved struct {
	URL      string
	SavePath string
}

// Resolve substitutes vars into both templates.
func (p Pair) Resolve(vars map[string]string) (Resolved, error) {
	if !p.Enabled() {
		return Resolved{}, ErrDisabled
	}
	u, err := p.URL.Substitute(vars)
	if err != nil {
		return Resolved{}, err
	}
	s, err := p.SaveAs.Substitute(vars)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{URL: u, SavePath: s}, nil
}

// Check verifies URL/save-path agreement under the given sample vars: a URL
// ending in "/" must save to "<url>index.html", any other URL must save to
// the URL path itself. Pairs with only one template set are left alone; the
// engine fills the other side from its own defaults.
func (p Pair) Check(vars map[string]string) error {
	if p.URL.IsZero() || p.SaveAs.IsZero() {
		return nil
	}
	r, err := p.Resolve(vars)
	if err != nil {
		return err
	}
	want := r.URL
	if strings.HasSuffix(r.URL, "/") || r.URL == "" {
		want = r.URL + "index.html"
	}
	if r.SavePath != want {
		return fmt.Errorf("url %q and save path %q disagree: want save path %q", r.URL, r.SavePath, want)
	}
	return nil
}

// SampleVars provides placeholder values for consistency checks. Every
// placeholder the default templates use is covered.
func SampleVars() map[string]string {
	return map[string]string{
		"slug":      "sample-post",
		"date":      "2016-01-02",
		"lang":      "en",
		"number":    "2",
		"base_name": "category/sample",
		"name":      "sample",
		"author":    "sample-author",
		"category":  "sample-category",
		"tag":       "sample-tag",
	}
}
