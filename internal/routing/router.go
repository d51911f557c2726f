// Package routing resolves content metadata into the URL/save-path pairs a
// static-site generation engine writes to. It performs no I/O of its own
// beyond readers handed to it.
package routing

import (
	"fmt"
)

// Router binds the configured route pairs and pagination table for a site.
// It is a pure lookup-and-substitute facility; construction copies nothing
// mutable, so a Router is safe to share.
type Router struct {
	pairs      map[Kind]Pair
	pagination Pagination
}

// NewRouter builds a Router over the given per-kind pairs and pagination
// table.
func NewRouter(pairs map[Kind]Pair, pagination Pagination) *Router {
	return &Router{pairs: pairs, pagination: pagination}
}

// Pair returns the route pair for kind. The zero Pair is returned for kinds
// the configuration does not route.
func (r *Router) Pair(kind Kind) Pair {
	return r.pairs[kind]
}

// Route resolves a single piece of content of the given kind.
func (r *Router) Route(kind Kind, md Metadata) (Resolved, error) {
	pair, ok := r.pairs[kind]
	if !ok || !pair.Enabled() {
		return Resolved{}, fmt.Errorf("kind %s: %w", kind, ErrDisabled)
	}
	res, err := pair.Resolve(md.Vars())
	if err != nil {
		return Resolved{}, fmt.Errorf("kind %s: %w", kind, err)
	}
	return res, nil
}

// Paginated resolves page n of the listing rooted at baseName, e.g. the
// third page of tag "go" with baseName "tag/go".
func (r *Router) Paginated(baseName string, page int) (Resolved, error) {
	return r.pagination.Resolve(baseName, page)
}

// Check runs the URL/save-path consistency checks over every enabled pair
// and the pagination table.
func (r *Router) Check() error {
	for kind, pair := range r.pairs {
		if err := pair.Check(SampleVars()); err != nil {
			return fmt.Errorf("kind %s: %w", kind, err)
		}
	}
	if err := r.pagination.Check(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}
