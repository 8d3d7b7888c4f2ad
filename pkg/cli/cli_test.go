// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/yeetrun/argspec/pkg/argspec"
)

func TestParseParseFlagsAndArgv(t *testing.T) {
	args := []string{
		"--required", "name env:enum(dev|prod)",
		"-o", "count:int=3 tags:csv",
		"--format", "json",
		"--prefix=ARG_",
		"--", "--name=web", "--env", "prod", "extra",
	}

	flags, argv, err := ParseParse(args)
	if err != nil {
		t.Fatalf("ParseParse failed: %v", err)
	}
	if flags.Format != "json" {
		t.Errorf("Format = %q, want %q", flags.Format, "json")
	}
	if flags.Prefix != "ARG_" {
		t.Errorf("Prefix = %q, want %q", flags.Prefix, "ARG_")
	}
	if got := len(flags.Required); got != 2 {
		t.Fatalf("len(Required) = %d, want 2", got)
	}
	if flags.Required[1].Name != "env" || !reflect.DeepEqual(flags.Required[1].Enum, []string{"dev", "prod"}) {
		t.Errorf("Required[1] = %#v", flags.Required[1])
	}
	if got := len(flags.Optional); got != 2 {
		t.Fatalf("len(Optional) = %d, want 2", got)
	}
	if !flags.Optional[0].Default.Equal(argspec.IntValue(3)) {
		t.Errorf("Optional[0].Default = %#v, want int 3", flags.Optional[0].Default)
	}
	if got := strings.Join(argv, " "); got != "--name=web --env prod extra" {
		t.Errorf("argv = %q, want %q", got, "--name=web --env prod extra")
	}

	reg := flags.Registry()
	if got, want := reg.Names(), []string{"name", "env", "count", "tags"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Registry().Names() = %v, want %v", got, want)
	}
}

func TestParseParseRejectsPositional(t *testing.T) {
	if _, _, err := ParseParse([]string{"-r", "name", "stray", "--", "--name=x"}); err == nil {
		t.Fatalf("ParseParse succeeded, want error for stray positional")
	}
}

func TestParseParseBadDeclaration(t *testing.T) {
	if _, _, err := ParseParse([]string{"-r", "name=x"}); err == nil {
		t.Fatalf("ParseParse succeeded, want error for default on required")
	}
}

func TestParseGet(t *testing.T) {
	flags, name, argv, err := ParseGet([]string{"region", "-o", "region", "--default", "us-east", "--", "--x"})
	if err != nil {
		t.Fatalf("ParseGet failed: %v", err)
	}
	if name != "region" {
		t.Errorf("name = %q, want %q", name, "region")
	}
	if flags.Default == nil || *flags.Default != "us-east" {
		t.Errorf("Default = %v, want us-east", flags.Default)
	}
	if !reflect.DeepEqual(argv, []string{"--x"}) {
		t.Errorf("argv = %v, want [--x]", argv)
	}

	flags, _, _, err = ParseGet([]string{"region", "-o", "region"})
	if err != nil {
		t.Fatalf("ParseGet failed: %v", err)
	}
	if flags.Default != nil {
		t.Errorf("Default = %q, want nil when --default is absent", *flags.Default)
	}
}

func TestParseGetRequiresName(t *testing.T) {
	if _, _, _, err := ParseGet([]string{"-o", "region"}); err == nil {
		t.Fatalf("ParseGet succeeded, want error without NAME")
	}
	if _, _, _, err := ParseGet([]string{"a", "b"}); err == nil {
		t.Fatalf("ParseGet succeeded, want error with two names")
	}
}

func TestParseSpecified(t *testing.T) {
	flags, name, argv, err := ParseSpecified([]string{"verbose", "-o", "verbose:bool=false", "--", "--verbose=1"})
	if err != nil {
		t.Fatalf("ParseSpecified failed: %v", err)
	}
	if name != "verbose" {
		t.Errorf("name = %q, want verbose", name)
	}
	if len(flags.Optional) != 1 || flags.Optional[0].EffectiveKind() != argspec.KindBoolean {
		t.Errorf("Optional = %#v", flags.Optional)
	}
	if !reflect.DeepEqual(argv, []string{"--verbose=1"}) {
		t.Errorf("argv = %v", argv)
	}
}

func TestHelpConfigCoversCommands(t *testing.T) {
	cfg := HelpConfig()
	for _, name := range CommandNames() {
		info, ok := cfg.SubCommands[name]
		if !ok {
			t.Errorf("HelpConfig missing %q", name)
			continue
		}
		if info.Description == "" {
			t.Errorf("%q has no description", name)
		}
	}
}
