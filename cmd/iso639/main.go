// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command iso639 is the operator CLI: it resolves codes and names offline,
// imports the ISO 639-3 tables into PostgreSQL and mints operator tokens.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "iso639",
		Short:         "Resolve ISO 639 language codes and names",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Bool("json", false, "Output in JSON format")
	root.PersistentFlags().String("dir", "", "Directory holding the ISO 639-3 .tab files (default: embedded sample)")

	root.AddCommand(
		newMatchCommand(),
		newGetCommand(),
		newListCommand(),
		newSuccessorCommand(),
		newImportCommand(),
		newTokenCommand(),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
