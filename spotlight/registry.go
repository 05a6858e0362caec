package spotlight

import "sort"

// Anchor is an opaque reference to a region's geometry. The registry only
// stores anchors; a Resolver turns them into rectangles at render time.
type Anchor any

// Entry is what a region declares under a key.
type Entry struct {
	Anchor Anchor
	Shape  Shape
}

// Contribution is a single key/entry pair emitted by one region.
type Contribution struct {
	Key   string
	Entry Entry
}

// Registry maps element keys to declared regions.
//
// It is rebuilt for every layout pass and never diffed. Repeated keys are
// not an error: the entry registered last wins, which lets nested regions
// override outer declarations. Callers that need unique keys must check
// separately.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// FromContributions folds contributions in order.
func FromContributions(contributions ...Contribution) *Registry {
	r := NewRegistry()
	for _, c := range contributions {
		r.Register(c.Key, c.Entry.Anchor, c.Entry.Shape)
	}
	return r
}

// Register declares anchor as the region named key, replacing any earlier
// entry. Empty keys are ignored since no element can reference them.
func (r *Registry) Register(key string, anchor Anchor, shape Shape) {
	if r == nil || key == "" {
		return
	}
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[key] = Entry{Anchor: anchor, Shape: shape}
}

// Lookup returns the entry registered under key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[key]
	return e, ok
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge folds parts left to right into a new registry; for a shared key
// the later part wins. Nil parts are skipped.
func Merge(parts ...*Registry) *Registry {
	out := NewRegistry()
	for _, part := range parts {
		if part == nil {
			continue
		}
		for k, e := range part.entries {
			out.entries[k] = e
		}
	}
	return out
}
