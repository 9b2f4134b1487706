// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mdwire/mdwire/cmd/mdwire/cli"
	"github.com/mdwire/mdwire/lib/codec"
	"github.com/mdwire/mdwire/lib/transcode"
	"github.com/mdwire/mdwire/lib/value"
)

func encodeCommand() *cli.Command {
	var (
		from     string
		hexInput bool
		maxDepth int
	)

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode JSON, YAML, or CBOR into a wire document",
		Usage:   "mdwire encode [flags] [file]",
		Description: `Read a peer-format document and write its Markdown wire form.

JSON input may contain comments and trailing commas (JSONC). With
--from cbor the input is raw binary unless --hex is given, in which
case it is hex-encoded with optional whitespace.`,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flags.StringVar(&from, "from", "json", "input format: json, yaml, or cbor")
			flags.BoolVarP(&hexInput, "hex", "x", false, "treat input as hex-encoded CBOR")
			flags.IntVar(&maxDepth, "max-depth", 0, "nesting depth limit (0 for the default)")
			return flags
		},
		Run: func(args []string) error {
			data, remaining, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			if err := rejectArgs(remaining); err != nil {
				return err
			}

			var v value.Value
			switch from {
			case "json":
				v, err = transcode.FromJSON(data)
			case "yaml":
				v, err = transcode.FromYAML(data)
			case "cbor":
				v, err = transcode.FromCBOR(data)
			default:
				return fmt.Errorf("unknown input format %q (want json, yaml, or cbor)", from)
			}
			if err != nil {
				return err
			}

			return codec.MarshalTo(os.Stdout, v, codec.Options{MaxDepth: maxDepth})
		},
		Examples: []cli.Example{
			{
				Description: "Encode a JSON file",
				Command:     "mdwire encode config.json",
			},
			{
				Description: "Encode YAML from stdin",
				Command:     "mdwire encode --from yaml < config.yaml",
			},
			{
				Description: "Encode hex-dumped CBOR",
				Command:     "echo 'a1 63 6b 65 79 01' | mdwire encode --from cbor --hex",
			},
		},
	}
}
