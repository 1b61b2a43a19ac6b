// Package derive provides explicit per-field lens registration for
// user-defined structures. It stands in for structure-introspecting code
// generation: a generator (or a developer, by hand) invokes the builder
// once per structure definition, calling Field for every record field and
// Case for every constructor of a sum-shaped type. No reflection is used.
package derive

import (
	"sort"
	"sync"

	"github.com/rgrinberg/fclabels/functional"
	"github.com/rgrinberg/fclabels/lens"
)

// Builder accumulates named lenses for one structure type. Registration
// and lookup are safe for concurrent use; the lenses themselves are
// immutable values.
type Builder[S any] struct {
	name string

	mu      sync.RWMutex
	entries map[string]any
}

// For creates a builder for the structure named name. The name is
// descriptive only; it scopes nothing.
func For[S any](name string) *Builder[S] {
	return &Builder[S]{name: name, entries: make(map[string]any)}
}

// Name returns the structure name the builder was created with.
func (b *Builder[S]) Name() string {
	return b.name
}

// Field registers a total lens for a record field and returns it.
// Registering the same name twice replaces the earlier entry.
func Field[S, A any](b *Builder[S], name string, get func(S) A, set func(S, A) S) lens.Lens[S, A] {
	l := lens.New(get, set)
	b.put(name, l)
	return l
}

// Case registers a partial lens for one constructor of a sum-shaped type
// and returns it. Lenses for the individual cases combine into a
// whichever-case-matched accessor with lens.Choice.
func Case[S, A any](b *Builder[S], name string, get func(S) functional.Option[A], set func(S, A) functional.Option[S]) lens.Partial[S, A] {
	l := lens.NewPartial(get, set)
	b.put(name, l)
	return l
}

// FieldLens looks up a previously registered total lens by name. The type
// parameters must match the registration; a mismatch reports absence.
func FieldLens[S, A any](b *Builder[S], name string) (lens.Lens[S, A], bool) {
	v, ok := b.get(name)
	if !ok {
		return lens.Lens[S, A]{}, false
	}
	l, ok := v.(lens.Lens[S, A])
	return l, ok
}

// CaseLens looks up a previously registered partial lens by name.
func CaseLens[S, A any](b *Builder[S], name string) (lens.Partial[S, A], bool) {
	v, ok := b.get(name)
	if !ok {
		return lens.Partial[S, A]{}, false
	}
	l, ok := v.(lens.Partial[S, A])
	return l, ok
}

// Fields returns the registered names in sorted order.
func (b *Builder[S]) Fields() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has returns true if a lens is registered under name.
func (b *Builder[S]) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.entries[name]
	return ok
}

// Len returns the number of registered lenses.
func (b *Builder[S]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

func (b *Builder[S]) put(name string, l any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[name] = l
}

func (b *Builder[S]) get(name string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.entries[name]
	return v, ok
}
