// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Command mdwire transcodes between the Markdown wire form and peer
// formats (JSON, YAML, CBOR) on stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/mdwire/mdwire/cmd/mdwire/cli"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own diagnostics (like validate)
		// return an ExitError with the desired exit code. Don't print
		// a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "mdwire",
		Summary: "Transcode between Markdown wire documents and JSON, YAML, or CBOR",
		Description: `mdwire converts structured data to and from a constrained Markdown
encoding: nested lists carry structure, links carry values, and every
link's URI names the value's type in the serde data model.

All subcommands read from stdin, or from a file named by a trailing
positional argument, and write to stdout.`,
		Subcommands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			validateCommand(),
			viewCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Encode JSON to a wire document",
				Command:     `echo '{"count":42}' | mdwire encode`,
			},
			{
				Description: "Decode a wire document back to JSON",
				Command:     "mdwire decode document.md",
			},
			{
				Description: "Check a document without producing output",
				Command:     "mdwire validate document.md",
			},
			{
				Description: "Inspect a document's structure in color",
				Command:     "mdwire view document.md",
			},
		},
	}
}
