// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"
	"sort"

	"github.com/taibuivan/iso639/pkg/slice"
)

// Registry is the immutable set of [Language] records built from one dataset.
//
// # Concurrency
//
// A Registry is never modified after [NewRegistry] returns, so any number of
// goroutines may call its methods without synchronization.
type Registry struct {
	tables    *Tables
	languages map[string]*Language
	sorted    []*Language
	members   map[string][]*Language
}

// NewRegistry builds one record per active and retired code.
//
// It fails with a [*DataFormatError] if any record cannot be built (for
// example an unparseable retirement date); no partial registry is returned.
func NewRegistry(tables *Tables) (*Registry, error) {
	registry := &Registry{
		tables:    tables,
		languages: make(map[string]*Language, len(tables.codeOrder)+len(tables.retiredOrder)),
		members:   make(map[string][]*Language),
	}

	for _, order := range [][]string{tables.codeOrder, tables.retiredOrder} {
		for _, part3 := range order {
			lang, err := build(tables, part3)
			if err != nil {
				return nil, err
			}
			registry.languages[part3] = lang
			registry.sorted = append(registry.sorted, lang)
		}
	}

	sort.Slice(registry.sorted, func(i, j int) bool {
		return registry.sorted[i].Part3 < registry.sorted[j].Part3
	})

	for _, lang := range registry.sorted {
		if lang.Macrolanguage != nil {
			registry.members[*lang.Macrolanguage] = append(registry.members[*lang.Macrolanguage], lang)
		}
	}

	return registry, nil
}

// Load reads rows from source and builds a registry from them.
func Load(ctx context.Context, source Source) (*Registry, error) {
	rows, err := source.ReadRows(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := NewTables(*rows)
	if err != nil {
		return nil, err
	}

	return NewRegistry(tables)
}

// Len returns the number of records (active and retired).
func (r *Registry) Len() int {
	return len(r.sorted)
}

// All returns every record ordered by part3 code.
func (r *Registry) All() []*Language {
	return append([]*Language(nil), r.sorted...)
}

// Filter selects records by classification. Zero-valued fields match anything.
type Filter struct {
	Status Status
	Scope  Scope
	Type   Type
}

// matches treats zero-valued criteria as wildcards.
func (f Filter) matches(lang *Language) bool {
	if f.Status != "" && lang.Status != f.Status {
		return false
	}
	if f.Scope != "" && lang.Scope != f.Scope {
		return false
	}
	if f.Type != "" && (lang.Type == nil || *lang.Type != f.Type) {
		return false
	}
	return true
}

// Filter returns the records matching filter, ordered by part3 code.
func (r *Registry) Filter(filter Filter) []*Language {
	return slice.Filter(r.sorted, filter.matches)
}

// Collisions returns the reverse-index keys that were overwritten at load.
func (r *Registry) Collisions() []Collision {
	return r.tables.Collisions()
}

// # Relationships

// Macrolanguage returns the macrolanguage lang belongs to, if any.
func (r *Registry) Macrolanguage(lang *Language) (*Language, bool) {
	if lang.Macrolanguage == nil {
		return nil, false
	}
	macro, ok := r.languages[*lang.Macrolanguage]
	return macro, ok
}

// Members returns the individual languages of a macrolanguage in part3 order.
// It returns nil for anything that is not a macrolanguage.
func (r *Registry) Members(macro *Language) []*Language {
	return append([]*Language(nil), r.members[macro.Part3]...)
}

// Successor follows the retirement redirections starting at lang and returns
// the first active record. An active lang is its own successor.
//
// It fails with a [*NotFoundError] carrying lang's code when a retired record
// has no replacement (splits, non-existent codes), when a redirection points
// outside the dataset, or when the chain loops.
func (r *Registry) Successor(lang *Language) (*Language, error) {
	visited := make(map[string]struct{})
	current := lang

	for current.IsRetired() {
		if _, loop := visited[current.Part3]; loop || current.RetireChangeTo == nil {
			return nil, &NotFoundError{Input: lang.Part3}
		}
		visited[current.Part3] = struct{}{}

		next, ok := r.languages[*current.RetireChangeTo]
		if !ok {
			return nil, &NotFoundError{Input: lang.Part3}
		}
		current = next
	}

	return current, nil
}

// record returns the cached record of a part3 key produced by the tables.
func (r *Registry) record(part3 string) *Language {
	lang, ok := r.languages[part3]
	if !ok {
		panic(fmt.Sprintf("language: index points at unknown code %q", part3))
	}
	return lang
}
