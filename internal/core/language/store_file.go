// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Expected header rows of the published tables.
var (
	codesHeader          = []string{"Id", "Part2b", "Part2t", "Part1", "Scope", "Language_Type", "Ref_Name", "Comment"}
	nameIndexHeader      = []string{"Id", "Print_Name", "Inverted_Name"}
	macrolanguagesHeader = []string{"M_Id", "I_Id", "I_Status"}
	retirementsHeader    = []string{"Id", "Ref_Name", "Ret_Reason", "Change_To", "Ret_Remedy", "Effective"}
)

// FileSource reads the four tab-separated tables from a file system, such as
// the embedded copy in data/iso639 or os.DirFS of a downloaded release.
type FileSource struct {
	fsys fs.FS
}

// NewFileSource creates a [FileSource] over fsys.
func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

/*
ReadRows parses the four tables in source order.

Description: Each file must start with its published header row. Blank lines
are skipped, CRLF line endings and a leading byte order mark are accepted.
Rows with fewer cells than the header are padded with empty strings.

Returns:
  - *Rows: The raw tables
  - error: [*DataFormatError] for malformed content, or I/O failures
*/
func (source *FileSource) ReadRows(ctx context.Context) (*Rows, error) {
	rows := &Rows{}

	err := source.readTable(ctx, CodesFile, codesHeader, func(cells []string) {
		rows.Codes = append(rows.Codes, CodeRow{
			Part3:   cells[0],
			Part2B:  cells[1],
			Part2T:  cells[2],
			Part1:   cells[3],
			Scope:   cells[4],
			Type:    cells[5],
			RefName: cells[6],
			Comment: cells[7],
		})
	})
	if err != nil {
		return nil, err
	}

	err = source.readTable(ctx, NameIndexFile, nameIndexHeader, func(cells []string) {
		rows.Names = append(rows.Names, NameRow{Part3: cells[0], Print: cells[1], Inverted: cells[2]})
	})
	if err != nil {
		return nil, err
	}

	err = source.readTable(ctx, MacrolanguagesFile, macrolanguagesHeader, func(cells []string) {
		rows.Macrolanguages = append(rows.Macrolanguages, MacrolanguageRow{
			Macrolanguage: cells[0],
			Part3:         cells[1],
			Status:        cells[2],
		})
	})
	if err != nil {
		return nil, err
	}

	err = source.readTable(ctx, RetirementsFile, retirementsHeader, func(cells []string) {
		rows.Retirements = append(rows.Retirements, RetirementRow{
			Part3:     cells[0],
			RefName:   cells[1],
			Reason:    cells[2],
			ChangeTo:  cells[3],
			Remedy:    cells[4],
			Effective: cells[5],
		})
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (source *FileSource) readTable(ctx context.Context, name string, header []string, emit func([]string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := source.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("language_open_table_failed: %s: %w", name, err)
	}
	defer file.Close()

	return parseTable(name, file, header, emit)
}

// parseTable splits r into tab-separated cells. Quotes carry no meaning in
// these files, so names such as `"Ancient" Greek` pass through verbatim.
func parseTable(table string, r io.Reader, header []string, emit func([]string)) error {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		if line == 1 {
			if got := strings.Split(text, "\t"); !slices.Equal(got, header) {
				return &DataFormatError{Table: table, Line: line, Err: fmt.Errorf("unexpected header %q", got)}
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		cells := strings.Split(text, "\t")
		if len(cells) > len(header) {
			return &DataFormatError{
				Table: table,
				Line:  line,
				Err:   fmt.Errorf("expected %d columns, got %d", len(header), len(cells)),
			}
		}
		for len(cells) < len(header) {
			cells = append(cells, "")
		}
		if cells[0] == "" {
			return &DataFormatError{Table: table, Line: line, Err: errors.New("empty key column")}
		}

		emit(cells)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("language_read_table_failed: %s: %w", table, err)
	}

	if line == 0 {
		return &DataFormatError{Table: table, Err: errors.New("missing header")}
	}

	return nil
}
