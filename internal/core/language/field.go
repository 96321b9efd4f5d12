// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "fmt"

// Field selects one reverse index of the dataset.
//
// The set is closed: every value is handled by [Tables.lookup], which panics
// on anything else.
type Field int

const (
	FieldPart3 Field = iota + 1
	FieldPart2B
	FieldPart2T
	FieldPart1
	FieldRetiredPart3
	FieldRefName
	FieldPrintName
	FieldInvertedName
)

var fieldNames = map[Field]string{
	FieldPart3:        "part3",
	FieldPart2B:       "part2b",
	FieldPart2T:       "part2t",
	FieldPart1:        "part1",
	FieldRetiredPart3: "retired_part3",
	FieldRefName:      "ref_name",
	FieldPrintName:    "print_name",
	FieldInvertedName: "inverted_name",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Query orders. Fields are tried left to right and the first hit wins.
var (
	matchOrder = []Field{
		FieldPart3,
		FieldPart2B,
		FieldPart2T,
		FieldPart1,
		FieldRetiredPart3,
		FieldRefName,
		FieldPrintName,
		FieldInvertedName,
	}
	part3Order  = []Field{FieldPart3, FieldRetiredPart3}
	part2BOrder = []Field{FieldPart2B}
	part2TOrder = []Field{FieldPart2T}
	part1Order  = []Field{FieldPart1}
	nameOrder   = []Field{FieldRefName, FieldPrintName, FieldInvertedName}
)
