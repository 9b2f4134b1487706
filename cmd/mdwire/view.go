// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/mdwire/mdwire/cmd/mdwire/cli"
	"github.com/mdwire/mdwire/lib/markdown"
)

func viewCommand() *cli.Command {
	var (
		width   int
		noColor bool
	)

	return &cli.Command{
		Name:    "view",
		Summary: "Render a wire document for human inspection",
		Usage:   "mdwire view [flags] [file]",
		Description: `Parse a Markdown wire document and print its structure with the
bullets, value labels, and type URIs styled for readability. The
document is only parsed, not decoded: view works on documents that
fail type-level validation, which makes it useful for debugging them.`,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("view", pflag.ContinueOnError)
			flags.IntVarP(&width, "width", "w", 0, "wrap width (0 for terminal width)")
			flags.BoolVar(&noColor, "no-color", false, "disable styling")
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

			node, err := markdown.Parse(string(data))
			if err != nil {
				return err
			}

			viewer := newViewer(os.Stdout, width, noColor)
			viewer.node(node, 0, false)
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Inspect a document",
				Command:     "mdwire view document.md",
			},
			{
				Description: "Narrow, uncolored output for a pager",
				Command:     "mdwire view --width 72 --no-color document.md | less",
			},
		},
	}
}

// viewer renders a node tree with per-role styles. Marker links (the
// first item of a list) are styled differently from value links so
// the composite structure stands out.
type viewer struct {
	out   io.Writer
	width int

	bullet lipgloss.Style
	marker lipgloss.Style
	label  lipgloss.Style
	uri    lipgloss.Style
	text   lipgloss.Style
}

func newViewer(out io.Writer, width int, noColor bool) *viewer {
	if width <= 0 {
		width = 100
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	profile := termenv.ANSI256
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		profile = termenv.Ascii
	}
	// lipgloss.NewStyle() would re-detect the profile from the global
	// renderer; pin it so --no-color and piped output stay plain.
	renderer := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &viewer{
		out:    out,
		width:  width,
		bullet: renderer.NewStyle().Foreground(lipgloss.Color("240")),
		marker: renderer.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		label:  renderer.NewStyle().Foreground(lipgloss.Color("36")),
		uri:    renderer.NewStyle().Foreground(lipgloss.Color("244")),
		text:   renderer.NewStyle().Foreground(lipgloss.Color("178")),
	}
}

func (v *viewer) node(node *markdown.Node, depth int, isMarker bool) {
	if node.Kind != markdown.NodeList {
		v.line("", node, isMarker)
		return
	}
	indent := strings.Repeat(" ", markdown.IndentWidth*depth)
	for i, item := range node.Items {
		bulletText := "* "
		if node.Ordered {
			bulletText = strconv.Itoa(i+1) + ". "
		}
		prefix := indent + v.bullet.Render(bulletText)

		if item.Kind == markdown.NodeList {
			fmt.Fprintln(v.out, indent+v.bullet.Render(strings.TrimRight(bulletText, " ")))
			v.node(item, depth+1, false)
			continue
		}
		v.line(prefix, item, i == 0)
	}
}

// line prints one leaf or link with wrapping. Continuation lines are
// padded past the bullet so the content column stays aligned.
func (v *viewer) line(prefix string, node *markdown.Node, isMarker bool) {
	var content string
	switch node.Kind {
	case markdown.NodeText:
		content = v.text.Render(node.Text)
	case markdown.NodeAnchor:
		labelStyle := v.label
		if isMarker {
			labelStyle = v.marker
		}
		content = labelStyle.Render(node.Label) + " " + v.uri.Render("("+node.URI+")")
	}

	padding := lipgloss.Width(prefix)
	available := v.width - padding
	if available < 20 {
		available = 20
	}

	wrapped := ansi.Wrap(content, available, " ,.;-+|")
	for i, contentLine := range strings.Split(wrapped, "\n") {
		if i == 0 {
			fmt.Fprintln(v.out, prefix+contentLine)
			continue
		}
		fmt.Fprintln(v.out, strings.Repeat(" ", padding)+contentLine)
	}
}
