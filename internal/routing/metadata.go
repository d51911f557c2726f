package routing

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metadata carries the routing-relevant fields extracted from a content
// file's name and front matter. Only Slug is required to fill the default
// route templates.
type Metadata struct {
	Slug  string
	Date  time.Time
	Title string
	Lang  string
	Extra map[string]interface{}
}

// Vars returns the substitution map for route templates.
func (m Metadata) Vars() map[string]string {
	vars := map[string]string{
		"slug": m.Slug,
	}
	if !m.Date.IsZero() {
		vars["date"] = m.Date.Format("2006-01-02")
	}
	if m.Lang != "" {
		vars["lang"] = m.Lang
	}
	return vars
}

var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q: use YYYY-MM-DD or RFC3339", s)
}

// FromFilename extracts metadata from a content file name using the
// configured pattern, whose named groups (date, slug) map onto Metadata
// fields. The extension is stripped before matching.
func FromFilename(re *regexp.Regexp, name string) (Metadata, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var md Metadata
	match := re.FindStringSubmatch(base)
	if match == nil {
		return md, fmt.Errorf("filename %q does not match metadata pattern %q", base, re.String())
	}
	for i, group := range re.SubexpNames() {
		if i == 0 || group == "" || match[i] == "" {
			continue
		}
		switch group {
		case "slug":
			md.Slug = match[i]
		case "date":
			d, err := parseDate(match[i])
			if err != nil {
				return md, fmt.Errorf("filename %q: %w", base, err)
			}
			md.Date = d
		case "lang":
			md.Lang = match[i]
		}
	}
	return md, nil
}

// FromFrontMatter reads the file's front matter and merges it over base:
// front-matter fields win over filename-derived ones. When neither source
// yields a title, one is derived from the slug.
func FromFrontMatter(r io.Reader, base Metadata) (Metadata, error) {
	var fields map[string]interface{}
	if _, err := frontmatter.Parse(r, &fields); err != nil {
		return base, fmt.Errorf("parsing front matter: %w", err)
	}

	md := base
	md.Extra = fields
	if slug, ok := fields["slug"].(string); ok && slug != "" {
		md.Slug = slug
	}
	if title, ok := fields["title"].(string); ok && title != "" {
		md.Title = title
	}
	if lang, ok := fields["lang"].(string); ok && lang != "" {
		md.Lang = lang
	}
	if dateStr, ok := fields["date"].(string); ok && dateStr != "" {
		d, err := parseDate(dateStr)
		if err != nil {
			return md, err
		}
		md.Date = d
	}

	if md.Title == "" && md.Slug != "" {
		md.Title = titleFromSlug(md.Slug)
	}
	return md, nil
}

func titleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}
