// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mdwire/mdwire/cmd/mdwire/cli"
	"github.com/mdwire/mdwire/lib/codec"
	"github.com/mdwire/mdwire/lib/transcode"
)

func decodeCommand() *cli.Command {
	var (
		to        string
		compact   bool
		hexOutput bool
		maxDepth  int
	)

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a wire document into JSON, YAML, or CBOR",
		Usage:   "mdwire decode [flags] [file]",
		Description: `Read a Markdown wire document and write it in a peer format.

JSON output is indented unless --compact is given. CBOR output is raw
binary unless --hex is given.`,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flags.StringVar(&to, "to", "json", "output format: json, yaml, or cbor")
			flags.BoolVarP(&compact, "compact", "c", false, "compact JSON output (no indentation)")
			flags.BoolVarP(&hexOutput, "hex", "x", false, "hex-encode CBOR output")
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

			v, err := codec.UnmarshalWithOptions(data, codec.Options{MaxDepth: maxDepth})
			if err != nil {
				return err
			}

			var out []byte
			switch to {
			case "json":
				out, err = transcode.ToJSON(v, compact)
				if err == nil {
					out = append(out, '\n')
				}
			case "yaml":
				out, err = transcode.ToYAML(v)
			case "cbor":
				out, err = transcode.ToCBOR(v)
				if err == nil && hexOutput {
					out = append([]byte(hex.EncodeToString(out)), '\n')
				}
			default:
				return fmt.Errorf("unknown output format %q (want json, yaml, or cbor)", to)
			}
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(out)
			return err
		},
		Examples: []cli.Example{
			{
				Description: "Decode to pretty JSON",
				Command:     "mdwire decode document.md",
			},
			{
				Description: "Decode to compact JSON",
				Command:     "mdwire decode -c document.md",
			},
			{
				Description: "Decode to hex-dumped CBOR",
				Command:     "mdwire decode --to cbor --hex document.md",
			},
			{
				Description: "Round-trip: encode then decode",
				Command:     `echo '{"count":42}' | mdwire encode | mdwire decode -c`,
			},
		},
	}
}
