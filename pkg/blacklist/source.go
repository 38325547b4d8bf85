// Package blacklist provides membership sources for known-bad URLs. A
// source answers a single question — is this URL flagged? — and every
// implementation fails open: I/O and parse problems degrade to "no match"
// instead of failing the check.
package blacklist

import "context"

// Source is the uniform lookup contract shared by all blacklist providers.
type Source interface {
	// Name returns the unique name of this source (e.g., "local", "remote").
	Name() string

	// Contains reports whether the source flags the given normalized URL.
	// Implementations must absorb their own failures and return false.
	Contains(ctx context.Context, url string) bool
}

// Registry manages an ordered collection of blacklist sources so callers
// can consult them uniformly and new sources can be added without touching
// scoring logic.
type Registry struct {
	sources []Source
}

// NewRegistry creates a registry seeded with the given sources.
func NewRegistry(sources ...Source) *Registry {
	return &Registry{sources: sources}
}

// Register appends a source to the registry.
func (r *Registry) Register(s Source) {
	r.sources = append(r.sources, s)
}

// Sources returns the registered sources in registration order.
func (r *Registry) Sources() []Source {
	return r.sources
}

// CheckAll consults every source and reports whether any flagged the URL,
// along with the names of the sources that matched. All sources run even
// after a match so the caller can record every hit.
func (r *Registry) CheckAll(ctx context.Context, url string) (bool, []string) {
	var matched []string

	for _, s := range r.sources {
		if s.Contains(ctx, url) {
			matched = append(matched, s.Name())
		}
	}

	return len(matched) > 0, matched
}
