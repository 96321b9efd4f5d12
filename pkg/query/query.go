// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued URL query parameters.
package query

import "strings"

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings. Empty entries are dropped.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// UniqueStrings is [StringSlice] without repeated entries; the first
// occurrence of each value keeps its position.
func UniqueStrings(val string) []string {
	all := StringSlice(val)
	if all == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(all))
	res := all[:0]
	for _, v := range all {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
