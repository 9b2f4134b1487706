// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package typeuri parses and formats the serde:// type URIs that tag
// every anchor in a wire document with the data-model shape it
// represents.
//
// Parsing here is purely syntactic: the scheme is validated and the
// remainder is split into a domain and an ordered list of path
// segments. Segment semantics (names, variant tags, declared lengths)
// are interpreted by the codec per domain.
package typeuri

import (
	"fmt"
	"strings"
)

// Scheme is the URI scheme prefix every type URI must carry.
const Scheme = "serde://"

// URI is a parsed type URI: serde://Domain/Segments[0]/Segments[1]...
type URI struct {
	Domain   string
	Segments []string
}

// SchemeError reports a malformed type URI, or one whose domain the
// decoder does not recognize. Match with errors.As:
//
//	var schemeErr *typeuri.SchemeError
//	if errors.As(err, &schemeErr) { ... }
type SchemeError struct {
	// URI is the offending type URI as it appeared on the wire.
	URI string
	// Message describes what is wrong with it.
	Message string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("type uri %q: %s", e.URI, e.Message)
}

// Parse splits a type URI into its domain and path segments. The
// scheme prefix must be present, the domain must be non-empty, and no
// segment except a trailing one may be empty. A single trailing empty
// segment ("serde://seq/") is dropped: some writers spell an
// unknown-length seq or map with a trailing slash.
func Parse(s string) (URI, error) {
	rest, ok := strings.CutPrefix(s, Scheme)
	if !ok {
		return URI{}, &SchemeError{URI: s, Message: "missing serde:// scheme"}
	}
	if rest == "" {
		return URI{}, &SchemeError{URI: s, Message: "empty domain"}
	}

	parts := strings.Split(rest, "/")
	domain := parts[0]
	segments := parts[1:]

	if domain == "" {
		return URI{}, &SchemeError{URI: s, Message: "empty domain"}
	}
	if n := len(segments); n > 0 && segments[n-1] == "" {
		segments = segments[:n-1]
	}
	for _, segment := range segments {
		if segment == "" {
			return URI{}, &SchemeError{URI: s, Message: "empty path segment"}
		}
	}
	if len(segments) == 0 {
		segments = nil
	}
	return URI{Domain: domain, Segments: segments}, nil
}

// Format assembles a type URI from a domain and path segments.
func Format(domain string, segments ...string) string {
	if len(segments) == 0 {
		return Scheme + domain
	}
	return Scheme + domain + "/" + strings.Join(segments, "/")
}

// String renders the URI back to its wire form.
func (u URI) String() string {
	return Format(u.Domain, u.Segments...)
}
