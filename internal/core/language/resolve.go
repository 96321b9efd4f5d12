// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// CaseMode controls whether a failed lookup is retried with case transforms.
type CaseMode int

const (
	// CaseSensitive matches the input exactly (after trimming).
	CaseSensitive CaseMode = iota

	// CaseInsensitive retries a miss with the lowercase, then the title-case
	// form of the input.
	CaseInsensitive
)

// caseFold rewrites user input for another lookup attempt.
type caseFold func(string) string

// caseFolds are tried in order after an exact miss in [CaseInsensitive] mode.
var caseFolds = []caseFold{lowerCase, titleCase}

// lowerCase and titleCase build a new caser per call; casers are stateful.
func lowerCase(s string) string {
	return cases.Lower(xlanguage.Und).String(s)
}

func titleCase(s string) string {
	return cases.Title(xlanguage.Und).String(s)
}

// # Lookups

// Match resolves a code or name of any kind. Fields are tried in this order
// and the first hit wins:
//
//  1. ISO 639-3 codes (active)
//  2. ISO 639-2 bibliographic codes
//  3. ISO 639-2 terminological codes
//  4. ISO 639-1 codes
//  5. ISO 639-3 codes (retired)
//  6. reference names
//  7. alternative print names
//  8. alternative inverted names
//
// Surrounding whitespace is ignored. With [CaseInsensitive] a miss is retried
// on the lowercase and then the title-case input. Failure yields a
// [*NotFoundError] holding the input as given.
func (r *Registry) Match(input string, mode CaseMode) (*Language, error) {
	return r.resolve(input, matchOrder, mode)
}

// FromPart3 resolves an active or retired ISO 639-3 code.
func (r *Registry) FromPart3(input string) (*Language, error) {
	return r.resolve(input, part3Order, CaseSensitive)
}

// FromPart2B resolves an ISO 639-2 bibliographic code.
func (r *Registry) FromPart2B(input string) (*Language, error) {
	return r.resolve(input, part2BOrder, CaseSensitive)
}

// FromPart2T resolves an ISO 639-2 terminological code.
func (r *Registry) FromPart2T(input string) (*Language, error) {
	return r.resolve(input, part2TOrder, CaseSensitive)
}

// FromPart1 resolves an ISO 639-1 code.
func (r *Registry) FromPart1(input string) (*Language, error) {
	return r.resolve(input, part1Order, CaseSensitive)
}

// FromName resolves a reference, print or inverted name, in that order.
func (r *Registry) FromName(input string) (*Language, error) {
	return r.resolve(input, nameOrder, CaseSensitive)
}

// LookupFields are the names accepted by [Registry.Lookup], in display order.
var LookupFields = []string{"part3", "part2b", "part2t", "part1", "name"}

var lookups = map[string]func(*Registry, string) (*Language, error){
	"part3":  (*Registry).FromPart3,
	"part2b": (*Registry).FromPart2B,
	"part2t": (*Registry).FromPart2T,
	"part1":  (*Registry).FromPart1,
	"name":   (*Registry).FromName,
}

// Lookup dispatches to the From* method named by field (one of [LookupFields]).
func (r *Registry) Lookup(field, input string) (*Language, error) {
	lookup, ok := lookups[field]
	if !ok {
		return nil, fmt.Errorf("language: unknown lookup field %q", field)
	}
	return lookup(r, input)
}

// resolve runs the exact attempt, then each case fold when allowed.
func (r *Registry) resolve(input string, order []Field, mode CaseMode) (*Language, error) {
	if lang, ok := r.find(input, order); ok {
		return lang, nil
	}

	if mode == CaseInsensitive {
		for _, fold := range caseFolds {
			if lang, ok := r.find(fold(input), order); ok {
				return lang, nil
			}
		}
	}

	return nil, &NotFoundError{Input: input}
}

// find is a single attempt: trim, then walk the fields in order.
func (r *Registry) find(input string, order []Field) (*Language, bool) {
	key := strings.TrimSpace(input)
	if key == "" {
		return nil, false
	}

	for _, field := range order {
		if part3, ok := r.tables.lookup(field, key); ok {
			return r.record(part3), true
		}
	}

	return nil, false
}
