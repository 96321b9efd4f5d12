package schema

import "github.com/taibuivan/iso639/internal/platform/constants"

// ISO639CodeTable represents the 'iso639.code' table (iso-639-3.tab)
type ISO639CodeTable struct {
	Schema   string
	Name     string
	Position string
	ID       string
	Part2B   string
	Part2T   string
	Part1    string
	Scope    string
	Type     string
	RefName  string
	Comment  string
}

// ISO639Code is the schema definition for iso639.code
var ISO639Code = ISO639CodeTable{
	Schema:   constants.SchemaISO639,
	Name:     "code",
	Position: "position",
	ID:       "id",
	Part2B:   "part2b",
	Part2T:   "part2t",
	Part1:    "part1",
	Scope:    "scope",
	Type:     "language_type",
	RefName:  "ref_name",
	Comment:  "comment",
}

func (t ISO639CodeTable) Table() string { return t.Schema + "." + t.Name }

// Columns lists the data columns in file order (position excluded).
func (t ISO639CodeTable) Columns() []string {
	return []string{t.ID, t.Part2B, t.Part2T, t.Part1, t.Scope, t.Type, t.RefName, t.Comment}
}

// ISO639NameIndexTable represents the 'iso639.name_index' table (iso-639-3_Name_Index.tab)
type ISO639NameIndexTable struct {
	Schema       string
	Name         string
	Position     string
	ID           string
	PrintName    string
	InvertedName string
}

// ISO639NameIndex is the schema definition for iso639.name_index
var ISO639NameIndex = ISO639NameIndexTable{
	Schema:       constants.SchemaISO639,
	Name:         "name_index",
	Position:     "position",
	ID:           "id",
	PrintName:    "print_name",
	InvertedName: "inverted_name",
}

func (t ISO639NameIndexTable) Table() string { return t.Schema + "." + t.Name }

func (t ISO639NameIndexTable) Columns() []string {
	return []string{t.ID, t.PrintName, t.InvertedName}
}

// ISO639MacrolanguageTable represents the 'iso639.macrolanguage' table (iso-639-3-macrolanguages.tab)
type ISO639MacrolanguageTable struct {
	Schema   string
	Name     string
	Position string
	MID      string
	IID      string
	IStatus  string
}

// ISO639Macrolanguage is the schema definition for iso639.macrolanguage
var ISO639Macrolanguage = ISO639MacrolanguageTable{
	Schema:   constants.SchemaISO639,
	Name:     "macrolanguage",
	Position: "position",
	MID:      "m_id",
	IID:      "i_id",
	IStatus:  "i_status",
}

func (t ISO639MacrolanguageTable) Table() string { return t.Schema + "." + t.Name }

func (t ISO639MacrolanguageTable) Columns() []string {
	return []string{t.MID, t.IID, t.IStatus}
}

// ISO639RetirementTable represents the 'iso639.retirement' table (iso-639-3_Retirements.tab)
type ISO639RetirementTable struct {
	Schema    string
	Name      string
	Position  string
	ID        string
	RefName   string
	Reason    string
	ChangeTo  string
	Remedy    string
	Effective string
}

// ISO639Retirement is the schema definition for iso639.retirement
var ISO639Retirement = ISO639RetirementTable{
	Schema:    constants.SchemaISO639,
	Name:      "retirement",
	Position:  "position",
	ID:        "id",
	RefName:   "ref_name",
	Reason:    "ret_reason",
	ChangeTo:  "change_to",
	Remedy:    "ret_remedy",
	Effective: "effective",
}

func (t ISO639RetirementTable) Table() string { return t.Schema + "." + t.Name }

func (t ISO639RetirementTable) Columns() []string {
	return []string{t.ID, t.RefName, t.Reason, t.ChangeTo, t.Remedy, t.Effective}
}
