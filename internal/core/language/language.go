// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package language resolves user-supplied language identifiers onto canonical
ISO 639-3 records.

The package is split into three stages:

  - Loading: a [Source] yields the four raw ISO 639-3 tables as [Rows];
    [NewTables] indexes them and validates their cross-table invariants.
  - Building: [NewRegistry] joins the tables into one immutable [Language]
    per ISO 639-3 code (active and retired).
  - Resolving: [Registry.Match] and the From* methods map codes and names
    onto those records in a fixed priority order.

A [Registry] is never mutated after construction and is safe for unrestricted
concurrent reads. The [Service] and [Handler] types expose it to the HTTP API.
*/
package language

import (
	"encoding/json"
	"time"
)

// DateLayout is the textual format of retirement effective dates.
const DateLayout = "2006-01-02"

// # Classification Codes

// Scope is the ISO 639-3 scope of a code.
type Scope string

const (
	ScopeIndividual    Scope = "I"
	ScopeMacrolanguage Scope = "M"
	ScopeSpecial       Scope = "S"
	ScopeCollection    Scope = "C"
)

// Description returns the registry's label for the scope.
func (s Scope) Description() string {
	switch s {
	case ScopeIndividual:
		return "Individual"
	case ScopeMacrolanguage:
		return "Macrolanguage"
	case ScopeSpecial:
		return "Special"
	case ScopeCollection:
		return "Collection"
	default:
		return string(s)
	}
}

// Type is the ISO 639-3 language type of an active code.
type Type string

const (
	TypeAncient     Type = "A"
	TypeConstructed Type = "C"
	TypeExtinct     Type = "E"
	TypeHistorical  Type = "H"
	TypeLiving      Type = "L"
	TypeSpecial     Type = "S"
)

// Description returns the registry's label for the type.
func (t Type) Description() string {
	switch t {
	case TypeAncient:
		return "Ancient"
	case TypeConstructed:
		return "Constructed"
	case TypeExtinct:
		return "Extinct"
	case TypeHistorical:
		return "Historical"
	case TypeLiving:
		return "Living"
	case TypeSpecial:
		return "Special"
	default:
		return string(t)
	}
}

// Status tells whether a code is in use or has been retired.
type Status string

const (
	StatusActive  Status = "A"
	StatusRetired Status = "R"
)

// Description returns the registry's label for the status.
func (s Status) Description() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusRetired:
		return "Retired"
	default:
		return string(s)
	}
}

// Retirement reason codes used in the retirements table.
const (
	RetireReasonChange      = "C"
	RetireReasonDuplicate   = "D"
	RetireReasonNonExistent = "N"
	RetireReasonSplit       = "S"
	RetireReasonMerge       = "M"
)

// RetireReasonDescription returns the label of a retirement reason code.
func RetireReasonDescription(code string) string {
	switch code {
	case RetireReasonChange:
		return "Change"
	case RetireReasonDuplicate:
		return "Duplicate"
	case RetireReasonNonExistent:
		return "Non-existent"
	case RetireReasonSplit:
		return "Split"
	case RetireReasonMerge:
		return "Merge"
	default:
		return code
	}
}

// # Records

// Name is an alternative display form of a language.
type Name struct {
	Print    string `json:"print"`
	Inverted string `json:"inverted"`
}

// Language is the canonical record of one ISO 639-3 code.
//
// Records handed out by a [Registry] are shared by every caller and must be
// treated as read-only. Two records are equal iff their Part3 codes match.
type Language struct {
	// From the codes table (or the retirements table for retired codes).
	Part3   string  `json:"part3"`
	Part2B  *string `json:"part2b,omitempty"`
	Part2T  *string `json:"part2t,omitempty"`
	Part1   *string `json:"part1,omitempty"`
	Scope   Scope   `json:"scope"`
	Type    *Type   `json:"type,omitempty"`
	Status  Status  `json:"status"`
	Name    string  `json:"name"`
	Comment *string `json:"comment,omitempty"`

	// From the name index table; nil when only the canonical name is listed.
	OtherNames []Name `json:"other_names,omitempty"`

	// Part3 code of the enclosing macrolanguage, from the macrolanguages table.
	Macrolanguage *string `json:"macrolanguage,omitempty"`

	// From the retirements table; set only when Status is StatusRetired.
	RetireReason   *string    `json:"retire_reason,omitempty"`
	RetireChangeTo *string    `json:"retire_change_to,omitempty"`
	RetireRemedy   *string    `json:"retire_remedy,omitempty"`
	RetireDate     *time.Time `json:"-"`
}

// Equal reports whether l and other describe the same ISO 639-3 code.
func (l *Language) Equal(other *Language) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Part3 == other.Part3
}

// IsRetired reports whether the code has been retired.
func (l *Language) IsRetired() bool {
	return l.Status == StatusRetired
}

// String returns "Name (part3)".
func (l *Language) String() string {
	return l.Name + " (" + l.Part3 + ")"
}

// MarshalJSON encodes the record with the retirement date as YYYY-MM-DD.
func (l Language) MarshalJSON() ([]byte, error) {
	type plain Language

	var retireDate *string
	if l.RetireDate != nil {
		formatted := l.RetireDate.Format(DateLayout)
		retireDate = &formatted
	}

	return json.Marshal(struct {
		plain
		RetireDate *string `json:"retire_date,omitempty"`
	}{
		plain:      plain(l),
		RetireDate: retireDate,
	})
}
