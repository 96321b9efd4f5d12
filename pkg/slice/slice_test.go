// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/iso639/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[string, int](nil, func(s string) int { return len(s) }))
	assert.Equal(t, []int{3, 2}, slice.Map([]string{"fra", "fr"}, func(s string) int { return len(s) }))
}

/*
TestFilter checks order preservation and the nil result for empty matches.
*/
func TestFilter(t *testing.T) {
	input := []string{"French", "Flemish", "German"}

	got := slice.Filter(input, func(s string) bool { return strings.HasPrefix(s, "F") })
	assert.Equal(t, []string{"French", "Flemish"}, got)

	assert.Nil(t, slice.Filter(input, func(string) bool { return false }))
	assert.Nil(t, slice.Filter([]string{}, func(string) bool { return true }))
}
