// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/iso639/data/iso639"
	"github.com/taibuivan/iso639/internal/core/language"
)

// loadRegistry reads the dataset named by --dir, or the embedded sample.
func loadRegistry(cmd *cobra.Command) (*language.Registry, error) {
	dir, _ := cmd.Flags().GetString("dir")

	source := language.NewFileSource(iso639.FS)
	if dir != "" {
		source = language.NewFileSource(os.DirFS(dir))
	}

	registry, err := language.Load(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return registry, nil
}

func newMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <input>",
		Short: "Resolve any ISO 639 code or name",
		Long: `Resolve any ISO 639 code or name.

Fields are tried in priority order: ISO 639-3, ISO 639-2B, ISO 639-2T,
ISO 639-1, retired ISO 639-3, reference name, print name, inverted name.`,
		Args: cobra.ExactArgs(1),
		RunE: runMatch,
	}
	cmd.Flags().BoolP("ignore-case", "i", false, "Retry with lowercase and title-case input")
	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	mode := language.CaseSensitive
	if ignoreCase, _ := cmd.Flags().GetBool("ignore-case"); ignoreCase {
		mode = language.CaseInsensitive
	}

	lang, err := registry.Match(args[0], mode)
	if err != nil {
		return err
	}

	return newOutputFormatter(cmd).Language(lang)
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "get <field> <value>",
		Short:     "Resolve one kind of identifier (" + strings.Join(language.LookupFields, ", ") + ")",
		Args:      cobra.ExactArgs(2),
		ValidArgs: language.LookupFields,
		RunE:      runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	lang, err := registry.Lookup(args[0], args[1])
	if err != nil {
		return err
	}

	return newOutputFormatter(cmd).Language(lang)
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, optionally filtered by classification",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().String("scope", "", "Scope code (I, M, S, C)")
	cmd.Flags().String("type", "", "Language type code (A, C, E, H, L, S)")
	cmd.Flags().String("status", "", "Status code (A, R)")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	scope, _ := cmd.Flags().GetString("scope")
	langType, _ := cmd.Flags().GetString("type")
	status, _ := cmd.Flags().GetString("status")

	langs := registry.Filter(language.Filter{
		Scope:  language.Scope(strings.ToUpper(scope)),
		Type:   language.Type(strings.ToUpper(langType)),
		Status: language.Status(strings.ToUpper(status)),
	})

	return newOutputFormatter(cmd).Languages(langs)
}

func newSuccessorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "successor <part3>",
		Short: "Follow a retired code to its active replacement",
		Args:  cobra.ExactArgs(1),
		RunE:  runSuccessor,
	}
}

func runSuccessor(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	lang, err := registry.FromPart3(args[0])
	if err != nil {
		return err
	}

	successor, err := registry.Successor(lang)
	if err != nil {
		return fmt.Errorf("%s has no single active replacement: %w", lang, err)
	}

	return newOutputFormatter(cmd).Language(successor)
}
