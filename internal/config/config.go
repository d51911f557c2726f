// Package config defines the site configuration record consumed by the
// generation engine. The record is populated once at startup and never
// mutated afterwards; everything downstream treats it as a value.
package config

import (
	"fmt"
	"regexp"
	"time"

	"golang.org/x/text/language"

	"github.com/faisalnotes/siteconf/internal/routing"
	"github.com/faisalnotes/siteconf/internal/statics"
)

// Link is a titled hyperlink for the blogroll and social widgets.
type Link struct {
	Title string `mapstructure:"title" yaml:"title"`
	URL   string `mapstructure:"url" yaml:"url"`
}

// Feeds holds the per-feed output paths. A nil field disables that feed
// entirely, which is distinct from an empty string (enabled, engine default
// path): the engine checks the pointer, not the string.
type Feeds struct {
	AllAtom         *string `mapstructure:"allAtom" yaml:"allAtom"`
	CategoryAtom    *string `mapstructure:"categoryAtom" yaml:"categoryAtom"`
	TranslationAtom *string `mapstructure:"translationAtom" yaml:"translationAtom"`
	AuthorAtom      *string `mapstructure:"authorAtom" yaml:"authorAtom"`
	AuthorRSS       *string `mapstructure:"authorRSS" yaml:"authorRSS"`
}

// SiteConfig is the complete configuration the engine needs to route content
// into output paths and apply theming. Every field has a defined default or
// an explicit disabled sentinel.
type SiteConfig struct {
	Author   string `mapstructure:"author" yaml:"author"`
	SiteName string `mapstructure:"siteName" yaml:"siteName"`
	Tagline  string `mapstructure:"tagline" yaml:"tagline"`
	SiteURL  string `mapstructure:"siteURL" yaml:"siteURL"`

	// SiteSubtitles are alternate subtitles themes may rotate through.
	SiteSubtitles []string `mapstructure:"siteSubtitles" yaml:"siteSubtitles,omitempty"`

	Timezone    string            `mapstructure:"timezone" yaml:"timezone"`
	DefaultLang string            `mapstructure:"defaultLang" yaml:"defaultLang"`
	DateFormats map[string]string `mapstructure:"dateFormats" yaml:"dateFormats"`

	ContentDir string `mapstructure:"contentDir" yaml:"contentDir"`
	Theme      string `mapstructure:"theme" yaml:"theme"`

	// FilenameMetadata extracts routing metadata from content file names via
	// named groups, e.g. `(?P<date>\d{4}-\d{2}-\d{2})-(?P<slug>.*)`.
	FilenameMetadata string `mapstructure:"filenameMetadata" yaml:"filenameMetadata"`

	StaticPaths []statics.Path `mapstructure:"staticPaths" yaml:"staticPaths"`
	PluginPaths []string       `mapstructure:"pluginPaths" yaml:"pluginPaths"`

	Routes     map[routing.Kind]routing.Pair `mapstructure:"routes" yaml:"routes"`
	Pagination routing.Pagination            `mapstructure:"pagination" yaml:"pagination"`

	// DirectTemplates are listing templates the engine renders once per
	// site rather than once per content item.
	DirectTemplates []string `mapstructure:"directTemplates" yaml:"directTemplates"`

	Feeds Feeds `mapstructure:"feeds" yaml:"feeds"`

	Links  []Link `mapstructure:"links" yaml:"links,omitempty"`
	Social []Link `mapstructure:"social" yaml:"social,omitempty"`

	// RelativeURLs makes the engine emit document-relative links, useful
	// while developing without the canonical SiteURL.
	RelativeURLs bool `mapstructure:"relativeURLs" yaml:"relativeURLs"`
}

// Default returns the fully populated default configuration. Feeds default
// to disabled; they are usually not wanted while developing.
func Default() *SiteConfig {
	return &SiteConfig{
		Author:   "Faisal Khan",
		SiteName: "Faisal's Notes",
		Tagline:  "Data | Code | Visualization",
		SiteURL:  "http://faisalnotes.com",

		SiteSubtitles: []string{"Faisal's Notes", ""},

		Timezone:    "America/Chicago",
		DefaultLang: "en",
		DateFormats: map[string]string{"en": "2006-01-02"},

		ContentDir: "content",
		Theme:      "themes/pure-tech",

		FilenameMetadata: `(?P<date>\d{4}-\d{2}-\d{2})-(?P<slug>.*)`,

		StaticPaths: []statics.Path{
			{Source: "images"},
			{Source: "images/favicon.png", SaveAs: "favicon.png"},
			{Source: "extra/CNAME", SaveAs: "CNAME"},
		},
		PluginPaths: []string{"pelican-plugins", "plugins"},

		Routes: map[routing.Kind]routing.Pair{
			routing.KindArticle:  {URL: "{slug}/", SaveAs: "{slug}/index.html"},
			routing.KindPage:     {URL: "{slug}/", SaveAs: "{slug}/index.html"},
			routing.KindTag:      {URL: "tag/{slug}/", SaveAs: "tag/{slug}/index.html"},
			routing.KindAuthor:   {},
			routing.KindCategory: {},
			routing.KindArchives: {SaveAs: "archives/index.html"},
		},
		Pagination: routing.Pagination{
			DefaultPageSize: 5,
			Patterns:        routing.DefaultPatterns(),
		},

		DirectTemplates: []string{"index", "archives"},

		Feeds: Feeds{},
	}
}

// Router builds the route resolver for this configuration.
func (c *SiteConfig) Router() *routing.Router {
	return routing.NewRouter(c.Routes, c.Pagination)
}

// FilenamePattern compiles the filename metadata expression.
func (c *SiteConfig) FilenamePattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.FilenameMetadata)
	if err != nil {
		return nil, fmt.Errorf("filenameMetadata: %w", err)
	}
	return re, nil
}

// DateFormat returns the date layout for lang, falling back to the default
// language's layout and finally to ISO dates.
func (c *SiteConfig) DateFormat(lang string) string {
	if f, ok := c.DateFormats[lang]; ok {
		return f
	}
	if f, ok := c.DateFormats[c.DefaultLang]; ok {
		return f
	}
	return "2006-01-02"
}

// Validate checks the configuration's internal consistency: parseable
// timezone and language codes, a usable filename pattern, route pairs whose
// URL and save path agree, and a sane pagination table. Static path
// existence is a separate concern because it needs a project root; see
// statics.CheckAll.
func (c *SiteConfig) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("siteName is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("contentDir is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if _, err := language.Parse(c.DefaultLang); err != nil {
		return fmt.Errorf("defaultLang %q: %w", c.DefaultLang, err)
	}
	for lang := range c.DateFormats {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("dateFormats key %q: %w", lang, err)
		}
	}

	re, err := c.FilenamePattern()
	if err != nil {
		return err
	}
	hasSlug := false
	for _, name := range re.SubexpNames() {
		if name == "slug" {
			hasSlug = true
		}
	}
	if !hasSlug {
		return fmt.Errorf("filenameMetadata %q: missing required named group (?P<slug>...)", c.FilenameMetadata)
	}

	if err := c.Router().Check(); err != nil {
		return err
	}
	return nil
}
