// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argspec/pkg/argspec"
)

func TestParseDecl(t *testing.T) {
	tests := []struct {
		text     string
		optional bool
		want     argspec.Spec
	}{
		{"name", false, argspec.Spec{Name: "name", Kind: argspec.KindString}},
		{"name:", false, argspec.Spec{Name: "name", Kind: argspec.KindString}},
		{"port:int", false, argspec.Spec{Name: "port", Kind: argspec.KindInt}},
		{"debug:bool", false, argspec.Spec{Name: "debug", Kind: argspec.KindBoolean}},
		{"pattern:regex", false, argspec.Spec{Name: "pattern", Kind: argspec.KindRegex}},
		{"env:enum(dev|prod)", false, argspec.Spec{Name: "env", Kind: argspec.KindString, Enum: []string{"dev", "prod"}}},
		{"region=us-east", true, argspec.Spec{Name: "region", Kind: argspec.KindString, Default: argspec.StringValue("us-east")}},
		{"count:int=-2", true, argspec.Spec{Name: "count", Kind: argspec.KindInt, Default: argspec.IntValue(-2)}},
		{"tags:csv=a,b", true, argspec.Spec{Name: "tags", Kind: argspec.KindCSV, Default: argspec.ListValue("a", "b")}},
		{"dry-run:boolean=F", true, argspec.Spec{Name: "dry-run", Kind: argspec.KindBoolean, Default: argspec.BoolValue(false)}},
		{"note=", true, argspec.Spec{Name: "note", Kind: argspec.KindString, Default: argspec.StringValue("")}},
		{"url=http://x?a=b", true, argspec.Spec{Name: "url", Kind: argspec.KindString, Default: argspec.StringValue("http://x?a=b")}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDecl(tt.text, tt.optional)
			if err != nil {
				t.Fatalf("ParseDecl failed: %v", err)
			}
			if diff := cmp.Diff(tt.want.Name, got.Name); diff != "" {
				t.Fatalf("Name mismatch (-want +got):\n%s", diff)
			}
			if got.EffectiveKind() != tt.want.EffectiveKind() {
				t.Fatalf("kind = %q, want %q", got.EffectiveKind(), tt.want.EffectiveKind())
			}
			if diff := cmp.Diff(tt.want.Enum, got.Enum); diff != "" {
				t.Fatalf("Enum mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want.Default, got.Default); diff != "" {
				t.Fatalf("Default mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDeclEnumDefault(t *testing.T) {
	got, err := ParseDecl("env:enum(dev|prod)=prod", true)
	if err != nil {
		t.Fatalf("ParseDecl failed: %v", err)
	}
	s, err := got.Default.AsString()
	if err != nil || s != "prod" {
		t.Fatalf("Default = %#v, %v", got.Default, err)
	}
	if _, err := ParseDecl("env:enum(dev|prod)=qa", true); err == nil {
		t.Fatalf("ParseDecl accepted a default outside the enum")
	}
}

func TestParseDeclErrors(t *testing.T) {
	tests := []struct {
		text     string
		optional bool
	}{
		{"", false},
		{":int", false},
		{"-name", false},
		{"na me", false},
		{"port:float", false},
		{"env:enum", false},
		{"env:enum(dev|prod", false},
		{"env:enum(dev)x", false},
		{"name=x", false},
		{"debug:bool=maybe", true},
	}
	for _, tt := range tests {
		if _, err := ParseDecl(tt.text, tt.optional); err == nil {
			t.Errorf("ParseDecl(%q, %v) succeeded, want error", tt.text, tt.optional)
		}
	}
}

func TestParseDecls(t *testing.T) {
	specs, err := ParseDecls("  a  b:int\tc:csv ", false)
	if err != nil {
		t.Fatalf("ParseDecls failed: %v", err)
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if specs, err := ParseDecls("", true); err != nil || len(specs) != 0 {
		t.Fatalf("ParseDecls(\"\") = %v, %v", specs, err)
	}
}

func TestUsage(t *testing.T) {
	reg := argspec.NewRegistry(
		[]argspec.Spec{{Name: "name", Kind: argspec.KindString}, {Name: "env", Enum: []string{"dev", "prod"}}},
		[]argspec.Spec{{Name: "count", Kind: argspec.KindInt, Default: argspec.IntValue(3)}, {Name: "tags", Kind: argspec.KindCSV}},
	)
	want := "--name=<string> --env=<dev|prod> [--count=<int> (default 3)] [--tags=<csv>]"
	if got := Usage(reg); got != want {
		t.Fatalf("Usage = %q, want %q", got, want)
	}
}
