// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "fmt"

// File names of the ISO 639-3 tables as published by the registration authority.
const (
	CodesFile          = "iso-639-3.tab"
	NameIndexFile      = "iso-639-3_Name_Index.tab"
	MacrolanguagesFile = "iso-639-3-macrolanguages.tab"
	RetirementsFile    = "iso-639-3_Retirements.tab"
)

// # Raw Rows

// CodeRow is one row of the codes table. Empty strings mean "absent".
type CodeRow struct {
	Part3   string
	Part2B  string
	Part2T  string
	Part1   string
	Scope   string
	Type    string
	RefName string
	Comment string
}

// NameRow is one row of the name index table.
type NameRow struct {
	Part3    string
	Print    string
	Inverted string
}

// MacrolanguageRow links an individual language to its macrolanguage.
type MacrolanguageRow struct {
	Macrolanguage string
	Part3         string
	Status        string
}

// RetirementRow is one row of the retirements table.
type RetirementRow struct {
	Part3     string
	RefName   string
	Reason    string
	ChangeTo  string
	Remedy    string
	Effective string
}

// Rows holds the four tables in source order.
type Rows struct {
	Codes          []CodeRow
	Names          []NameRow
	Macrolanguages []MacrolanguageRow
	Retirements    []RetirementRow
}

// # Indexed Tables

// Collision records a reverse-index key claimed by more than one code.
// The later row (Current) wins.
type Collision struct {
	Field    Field
	Key      string
	Previous string
	Current  string
}

// Tables are the four ISO 639-3 tables keyed by part3, plus the reverse
// indices used for exact matching. Tables are read-only once built.
type Tables struct {
	codes          map[string]CodeRow
	names          map[string][]NameRow
	macrolanguages map[string]MacrolanguageRow
	retirements    map[string]RetirementRow

	// codeOrder and retiredOrder keep source order for deterministic iteration.
	codeOrder    []string
	retiredOrder []string

	part2B       map[string]string
	part2T       map[string]string
	part1        map[string]string
	refName      map[string]string
	printName    map[string]string
	invertedName map[string]string

	collisions []Collision
}

// NewTables indexes rows and validates the cross-table invariants.
//
// It fails with a [*DataFormatError] when a part3 code is repeated within the
// codes or retirements table, appears in both, or when a name or
// macrolanguage row refers to a code that exists in neither.
func NewTables(rows Rows) (*Tables, error) {
	t := &Tables{
		codes:          make(map[string]CodeRow, len(rows.Codes)),
		names:          make(map[string][]NameRow, len(rows.Codes)),
		macrolanguages: make(map[string]MacrolanguageRow, len(rows.Macrolanguages)),
		retirements:    make(map[string]RetirementRow, len(rows.Retirements)),
		part2B:         make(map[string]string),
		part2T:         make(map[string]string),
		part1:          make(map[string]string),
		refName:        make(map[string]string, len(rows.Codes)),
		printName:      make(map[string]string, len(rows.Names)),
		invertedName:   make(map[string]string, len(rows.Names)),
	}

	// 1. Codes and retirements partition the part3 space
	for _, row := range rows.Codes {
		if _, dup := t.codes[row.Part3]; dup {
			return nil, &DataFormatError{Table: CodesFile, Err: fmt.Errorf("duplicate code %q", row.Part3)}
		}
		t.codes[row.Part3] = row
		t.codeOrder = append(t.codeOrder, row.Part3)
	}

	for _, row := range rows.Retirements {
		if _, dup := t.retirements[row.Part3]; dup {
			return nil, &DataFormatError{Table: RetirementsFile, Err: fmt.Errorf("duplicate code %q", row.Part3)}
		}
		if _, active := t.codes[row.Part3]; active {
			return nil, &DataFormatError{Table: RetirementsFile, Err: fmt.Errorf("code %q is both active and retired", row.Part3)}
		}
		t.retirements[row.Part3] = row
		t.retiredOrder = append(t.retiredOrder, row.Part3)
	}

	// 2. Child tables must reference a known code
	for _, row := range rows.Names {
		if !t.known(row.Part3) {
			return nil, &DataFormatError{Table: NameIndexFile, Err: fmt.Errorf("unknown code %q", row.Part3)}
		}
		t.names[row.Part3] = append(t.names[row.Part3], row)
	}

	for _, row := range rows.Macrolanguages {
		if !t.known(row.Part3) {
			return nil, &DataFormatError{Table: MacrolanguagesFile, Err: fmt.Errorf("unknown code %q", row.Part3)}
		}
		t.macrolanguages[row.Part3] = row
	}

	// 3. Reverse indices, last write wins
	for _, row := range rows.Codes {
		t.index(FieldPart2B, t.part2B, row.Part2B, row.Part3)
		t.index(FieldPart2T, t.part2T, row.Part2T, row.Part3)
		t.index(FieldPart1, t.part1, row.Part1, row.Part3)
		t.index(FieldRefName, t.refName, row.RefName, row.Part3)
	}

	for _, row := range rows.Names {
		t.index(FieldPrintName, t.printName, row.Print, row.Part3)
		t.index(FieldInvertedName, t.invertedName, row.Inverted, row.Part3)
	}

	return t, nil
}

// Collisions returns the reverse-index keys that more than one code claimed,
// in the order they were overwritten.
func (t *Tables) Collisions() []Collision {
	return append([]Collision(nil), t.collisions...)
}

// known reports whether part3 is an active or retired code.
func (t *Tables) known(part3 string) bool {
	_, active := t.codes[part3]
	_, retired := t.retirements[part3]
	return active || retired
}

// index stores key -> part3, recording a collision when another code held the key.
func (t *Tables) index(field Field, target map[string]string, key, part3 string) {
	if key == "" {
		return
	}
	if previous, taken := target[key]; taken && previous != part3 {
		t.collisions = append(t.collisions, Collision{Field: field, Key: key, Previous: previous, Current: part3})
	}
	target[key] = part3
}

// lookup returns the part3 code that key maps to under field.
func (t *Tables) lookup(field Field, key string) (string, bool) {
	var (
		part3 string
		ok    bool
	)

	switch field {
	case FieldPart3:
		_, ok = t.codes[key]
		part3 = key
	case FieldPart2B:
		part3, ok = t.part2B[key]
	case FieldPart2T:
		part3, ok = t.part2T[key]
	case FieldPart1:
		part3, ok = t.part1[key]
	case FieldRetiredPart3:
		_, ok = t.retirements[key]
		part3 = key
	case FieldRefName:
		part3, ok = t.refName[key]
	case FieldPrintName:
		part3, ok = t.printName[key]
	case FieldInvertedName:
		part3, ok = t.invertedName[key]
	default:
		panic(fmt.Sprintf("language: unknown lookup field %v", field))
	}

	return part3, ok
}
