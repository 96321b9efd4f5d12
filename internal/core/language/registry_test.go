// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/iso639/internal/core/language"
)

func part3s(langs []*language.Language) []string {
	codes := make([]string, 0, len(langs))
	for _, lang := range langs {
		codes = append(codes, lang.Part3)
	}
	return codes
}

/*
TestRegistry_All verifies ordering, size and that callers get a copy.
*/
func TestRegistry_All(t *testing.T) {
	registry := loadSample(t)

	all := registry.All()
	require.Len(t, all, registry.Len())
	assert.Equal(t, 51, registry.Len())
	assert.True(t, sort.StringsAreSorted(part3s(all)))

	all[0] = nil
	assert.NotNil(t, registry.All()[0])
}

/*
TestRegistry_Filter verifies each classification filter.
*/
func TestRegistry_Filter(t *testing.T) {
	registry := loadSample(t)

	tests := []struct {
		name   string
		filter language.Filter
		want   []string
	}{
		{
			name:   "macrolanguages",
			filter: language.Filter{Scope: language.ScopeMacrolanguage},
			want:   []string{"ara", "est", "fas", "msa", "nor", "swa", "zho"},
		},
		{
			name:   "retired",
			filter: language.Filter{Status: language.StatusRetired},
			want:   []string{"aue", "bgm", "mol", "mwj", "nbf"},
		},
		{
			name:   "constructed",
			filter: language.Filter{Type: language.TypeConstructed},
			want:   []string{"epo", "tlh"},
		},
		{
			name:   "special and active",
			filter: language.Filter{Scope: language.ScopeSpecial, Status: language.StatusActive},
			want:   []string{"mis", "mul", "und", "zxx"},
		},
		{
			name:   "no match",
			filter: language.Filter{Scope: language.ScopeCollection},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, part3s(registry.Filter(tt.filter)))
		})
	}

	assert.Len(t, registry.Filter(language.Filter{}), registry.Len())
}

/*
TestRegistry_Macrolanguages verifies both directions of the membership link.
*/
func TestRegistry_Macrolanguages(t *testing.T) {
	registry := loadSample(t)

	assert.Equal(t, []string{"cmn", "yue"}, part3s(registry.Members(mustGet(t, registry, "zho"))))
	assert.Equal(t, []string{"nno", "nob"}, part3s(registry.Members(mustGet(t, registry, "nor"))))
	assert.Empty(t, registry.Members(mustGet(t, registry, "eng")))

	macro, ok := registry.Macrolanguage(mustGet(t, registry, "nob"))
	require.True(t, ok)
	assert.Equal(t, "nor", macro.Part3)

	_, ok = registry.Macrolanguage(mustGet(t, registry, "eng"))
	assert.False(t, ok)
}

/*
TestRegistry_Successor follows retirement redirections.
*/
func TestRegistry_Successor(t *testing.T) {
	registry := loadSample(t)

	tests := []struct {
		name    string
		part3   string
		want    string
		wantErr bool
	}{
		{name: "active is its own successor", part3: "eng", want: "eng"},
		{name: "merge", part3: "mol", want: "ron"},
		{name: "merge into non-ascii name", part3: "aue", want: "ktz"},
		{name: "merge of similar name", part3: "bgm", want: "bcg"},
		{name: "split has no single successor", part3: "nbf", wantErr: true},
		{name: "non-existent", part3: "mwj", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			successor, err := registry.Successor(mustGet(t, registry, tt.part3))
			if tt.wantErr {
				var missing *language.NotFoundError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, tt.part3, missing.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, successor.Part3)
			assert.False(t, successor.IsRetired())
		})
	}
}

/*
TestRegistry_SuccessorChains covers multi-step, looping and dangling chains.
*/
func TestRegistry_SuccessorChains(t *testing.T) {
	registry := buildRegistry(t, language.Rows{
		Codes: []language.CodeRow{
			{Part3: "new", Scope: "I", Type: "L", RefName: "New"},
		},
		Retirements: []language.RetirementRow{
			{Part3: "old", RefName: "Old", Reason: "C", ChangeTo: "mid", Effective: "2001-01-01"},
			{Part3: "mid", RefName: "Mid", Reason: "C", ChangeTo: "new", Effective: "2002-01-01"},
			{Part3: "cya", RefName: "Cycle A", Reason: "D", ChangeTo: "cyb", Effective: "2003-01-01"},
			{Part3: "cyb", RefName: "Cycle B", Reason: "D", ChangeTo: "cya", Effective: "2003-01-01"},
			{Part3: "dan", RefName: "Dangling", Reason: "C", ChangeTo: "zzz", Effective: "2004-01-01"},
		},
	})

	successor, err := registry.Successor(mustGet(t, registry, "old"))
	require.NoError(t, err)
	assert.Equal(t, "new", successor.Part3)

	for _, part3 := range []string{"cya", "dan"} {
		_, err := registry.Successor(mustGet(t, registry, part3))
		assert.ErrorIs(t, err, language.ErrNotFound, part3)
	}
}
