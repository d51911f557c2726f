package routing

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoPatternMatch is returned when no pagination pattern covers a page
// index.
var ErrNoPatternMatch = errors.New("no pagination pattern matches page")

// PaginationPattern maps a range of page indices to a URL/save-path pair.
// From and To are inclusive bounds; To == 0 means unbounded. The templates
// may use {base_name} for the listing's canonical base and {number} for the
// page index.
type PaginationPattern struct {
	From   int      `mapstructure:"from" yaml:"from"`
	To     int      `mapstructure:"to" yaml:"to"`
	URL    Template `mapstructure:"url" yaml:"url"`
	SaveAs Template `mapstructure:"saveAs" yaml:"saveAs"`
}

// Matches reports whether page falls inside the pattern's range.
func (p PaginationPattern) Matches(page int) bool {
	if page < p.From {
		return false
	}
	return p.To == 0 || page <= p.To
}

// Pagination is an ordered pattern table plus the default page size.
// Matching is order-sensitive: the first pattern whose range covers the page
// index wins, so overlapping entries added later cannot shadow earlier ones.
type Pagination struct {
	DefaultPageSize int                 `mapstructure:"defaultPageSize" yaml:"defaultPageSize"`
	Patterns        []PaginationPattern `mapstructure:"patterns" yaml:"patterns"`
}

// DefaultPatterns is the canonical two-entry table: page 1 is the
// unpaginated index, pages 2 and up live under page/{number}/.
func DefaultPatterns() []PaginationPattern {
	return []PaginationPattern{
		{From: 1, To: 1, URL: "{base_name}/", SaveAs: "{base_name}/index.html"},
		{From: 2, URL: "{base_name}/page/{number}/", SaveAs: "{base_name}/page/{number}/index.html"},
	}
}

// Resolve returns the route for the given page of a listing rooted at
// baseName. baseName is the listing's path without a trailing slash, e.g.
// "tag/go" or "" for the site index.
func (p Pagination) Resolve(baseName string, page int) (Resolved, error) {
	if page < 1 {
		return Resolved{}, fmt.Errorf("page index %d: pages are numbered from 1", page)
	}
	vars := map[string]string{
		"base_name": baseName,
		"number":    strconv.Itoa(page),
	}
	for _, pat := range p.Patterns {
		if !pat.Matches(page) {
			continue
		}
		u, err := pat.URL.Substitute(vars)
		if err != nil {
			return Resolved{}, err
		}
		s, err := pat.SaveAs.Substitute(vars)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{URL: u, SavePath: s}, nil
	}
	return Resolved{}, fmt.Errorf("%w %d", ErrNoPatternMatch, page)
}

// Check validates the table shape: at least one pattern, page 1 covered by
// the first entry, and every pattern's templates in URL/save-path agreement.
func (p Pagination) Check() error {
	if p.DefaultPageSize < 1 {
		return fmt.Errorf("defaultPageSize %d: must be at least 1", p.DefaultPageSize)
	}
	if len(p.Patterns) == 0 {
		return errors.New("pagination pattern table is empty")
	}
	if !p.Patterns[0].Matches(1) {
		return errors.New("first pagination pattern must cover page 1")
	}
	for i, pat := range p.Patterns {
		if pat.From < 1 {
			return fmt.Errorf("pattern %d: from %d must be at least 1", i, pat.From)
		}
		if pat.To != 0 && pat.To < pat.From {
			return fmt.Errorf("pattern %d: to %d precedes from %d", i, pat.To, pat.From)
		}
		pair := Pair{URL: pat.URL, SaveAs: pat.SaveAs}
		if err := pair.Check(SampleVars()); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	return nil
}
