// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mdwire/mdwire/cmd/mdwire/cli"
	"github.com/mdwire/mdwire/lib/codec"
	"github.com/mdwire/mdwire/lib/markdown"
)

func validateCommand() *cli.Command {
	var (
		quiet    bool
		maxDepth int
	)

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that a wire document is well-formed",
		Usage:   "mdwire validate [flags] [file]",
		Description: `Parse and decode a Markdown wire document without producing output,
then cross-check with a full CommonMark parser that the text contains
nothing outside the wire subset (lists, plain text, links).

Exit status is 0 for a valid document and 1 for an invalid one, with
the reason on stderr.`,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flags.BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics, report by exit status only")
			flags.IntVar(&maxDepth, "max-depth", 0, "nesting depth limit (0 for the default)")
			return flags
		},
		Run: func(args []string) error {
			data, remaining, err := readInput(args, false)
			if err != nil {
				return err
			}
			if err := rejectArgs(remaining); err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "validate")

			if _, err := codec.UnmarshalWithOptions(data, codec.Options{MaxDepth: maxDepth}); err != nil {
				if !quiet {
					logger.Error("invalid wire document", "error", err)
				}
				return &cli.ExitError{Code: 1}
			}
			if err := markdown.CheckSubset(string(data)); err != nil {
				if !quiet {
					logger.Error("document strays outside the wire subset", "error", err)
				}
				return &cli.ExitError{Code: 1}
			}

			if !quiet {
				fmt.Println("valid")
			}
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Validate a document",
				Command:     "mdwire validate document.md",
			},
			{
				Description: "Use the exit status in a script",
				Command:     "mdwire validate -q document.md && echo ok",
			},
		},
	}
}
