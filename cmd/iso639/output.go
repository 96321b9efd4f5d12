// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/iso639/internal/core/language"
)

// OutputFormatter handles output in JSON or human-readable format
type OutputFormatter struct {
	jsonMode bool
	w        io.Writer
}

// newOutputFormatter creates a new formatter based on the command's --json flag
func newOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &OutputFormatter{jsonMode: jsonMode, w: cmd.OutOrStdout()}
}

// Print writes data as indented JSON.
func (f *OutputFormatter) Print(data any) error {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(jsonBytes))
	return err
}

// Language prints one record, as JSON or as a short description.
func (f *OutputFormatter) Language(lang *language.Language) error {
	if f.jsonMode {
		return f.Print(lang)
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, lang.String())

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "  %s:\t%s\n", label, value)
		}
	}

	row("Part 2B", deref(lang.Part2B))
	row("Part 2T", deref(lang.Part2T))
	row("Part 1", deref(lang.Part1))
	row("Scope", lang.Scope.Description())
	if lang.Type != nil {
		row("Type", lang.Type.Description())
	}
	row("Status", lang.Status.Description())
	row("Macrolanguage", deref(lang.Macrolanguage))
	row("Comment", deref(lang.Comment))

	if len(lang.OtherNames) > 0 {
		names := make([]string, 0, len(lang.OtherNames))
		for _, name := range lang.OtherNames {
			names = append(names, name.Print)
		}
		row("Other names", strings.Join(names, "; "))
	}

	if lang.IsRetired() {
		if lang.RetireReason != nil {
			row("Retired because", language.RetireReasonDescription(*lang.RetireReason))
		}
		if lang.RetireDate != nil {
			row("Retired on", lang.RetireDate.Format(language.DateLayout))
		}
		row("Changed to", deref(lang.RetireChangeTo))
		row("Remedy", deref(lang.RetireRemedy))
	}

	return tw.Flush()
}

// Languages prints records as a JSON array or an aligned table.
func (f *OutputFormatter) Languages(langs []*language.Language) error {
	if f.jsonMode {
		if langs == nil {
			langs = []*language.Language{}
		}
		return f.Print(langs)
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PART3\tPART1\tSCOPE\tSTATUS\tNAME")
	for _, lang := range langs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			lang.Part3, deref(lang.Part1), lang.Scope, lang.Status, lang.Name)
	}
	return tw.Flush()
}

// Line prints a plain message, or {key: message} in JSON mode.
func (f *OutputFormatter) Line(key, message string) error {
	if f.jsonMode {
		return f.Print(map[string]string{key: message})
	}
	_, err := fmt.Fprintln(f.w, message)
	return err
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
