// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

package typeuri_test

import (
	"errors"
	"testing"

	"github.com/mdwire/mdwire/lib/typeuri"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		domain   string
		segments []string
		wantErr  bool
	}{
		{name: "bare-domain", input: "serde://bool", domain: "bool"},
		{name: "one-segment", input: "serde://unit_struct/Marker", domain: "unit_struct", segments: []string{"Marker"}},
		{name: "two-segments", input: "serde://unit_variant/Shape/Circle", domain: "unit_variant", segments: []string{"Shape", "Circle"}},
		{name: "three-segments", input: "serde://struct_variant/Shape/Rect/2", domain: "struct_variant", segments: []string{"Shape", "Rect", "2"}},
		{name: "trailing-slash-dropped", input: "serde://seq/", domain: "seq"},
		{name: "numeric-segment", input: "serde://tuple/3", domain: "tuple", segments: []string{"3"}},
		{name: "missing-scheme", input: "http://bool", wantErr: true},
		{name: "no-scheme", input: "bool", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "scheme-only", input: "serde://", wantErr: true},
		{name: "empty-domain", input: "serde:///seq", wantErr: true},
		{name: "interior-empty-segment", input: "serde://struct//2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := typeuri.Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", uri)
				}
				var schemeErr *typeuri.SchemeError
				if !errors.As(err, &schemeErr) {
					t.Fatalf("error is %T, want *SchemeError", err)
				}
				if schemeErr.URI != tt.input {
					t.Errorf("SchemeError.URI = %q, want %q", schemeErr.URI, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if uri.Domain != tt.domain {
				t.Errorf("Domain = %q, want %q", uri.Domain, tt.domain)
			}
			if len(uri.Segments) != len(tt.segments) {
				t.Fatalf("Segments = %q, want %q", uri.Segments, tt.segments)
			}
			for i := range tt.segments {
				if uri.Segments[i] != tt.segments[i] {
					t.Errorf("Segments[%d] = %q, want %q", i, uri.Segments[i], tt.segments[i])
				}
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"serde://u64",
		"serde://option/some",
		"serde://newtype_variant/Shape/Circle",
		"serde://struct/Point/2",
	}
	for _, input := range inputs {
		uri, err := typeuri.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if got := uri.String(); got != input {
			t.Errorf("Parse(%q).String() = %q", input, got)
		}
	}
}
