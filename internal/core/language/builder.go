// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"fmt"
	"time"

	"github.com/taibuivan/iso639/pkg/pointer"
	"github.com/taibuivan/iso639/pkg/slice"
)

// build joins the four tables into the record for part3.
//
// part3 must be a key of the codes or the retirements table.
func build(tables *Tables, part3 string) (*Language, error) {
	code, active := tables.codes[part3]
	retirement, retired := tables.retirements[part3]

	if !active && !retired {
		panic(fmt.Sprintf("language: build called with unknown code %q", part3))
	}

	name := code.RefName
	if !active {
		name = retirement.RefName
	}

	lang := &Language{
		Part3:      part3,
		Name:       name,
		OtherNames: otherNames(tables.names[part3], name),
	}

	if macro, ok := tables.macrolanguages[part3]; ok {
		lang.Macrolanguage = pointer.NonZero(macro.Macrolanguage)
	}

	if retired {
		effective, err := time.Parse(DateLayout, retirement.Effective)
		if err != nil {
			return nil, &DataFormatError{
				Table: RetirementsFile,
				Err:   fmt.Errorf("code %q: invalid effective date %q: %w", part3, retirement.Effective, err),
			}
		}

		lang.RetireReason = pointer.NonZero(retirement.Reason)
		lang.RetireChangeTo = pointer.NonZero(retirement.ChangeTo)
		lang.RetireRemedy = pointer.NonZero(retirement.Remedy)
		lang.RetireDate = &effective
	}

	if active {
		lang.Part2B = pointer.NonZero(code.Part2B)
		lang.Part2T = pointer.NonZero(code.Part2T)
		lang.Part1 = pointer.NonZero(code.Part1)
		lang.Scope = Scope(code.Scope)
		lang.Type = pointer.NonZero(Type(code.Type))
		lang.Status = StatusActive
		lang.Comment = pointer.NonZero(code.Comment)
	} else {
		lang.Scope = ScopeSpecial
		lang.Status = StatusRetired
	}

	return lang, nil
}

// otherNames drops the row that only repeats the canonical name.
// It returns nil when nothing else is left.
func otherNames(rows []NameRow, canonical string) []Name {
	kept := slice.Filter(rows, func(row NameRow) bool {
		return !(row.Print == canonical && row.Inverted == canonical)
	})

	return slice.Map(kept, func(row NameRow) Name {
		return Name{Print: row.Print, Inverted: row.Inverted}
	})
}
