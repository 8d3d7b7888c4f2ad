// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes parsed arguments in the output formats of argcheck.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argspec/pkg/argspec"
	"github.com/yeetrun/argspec/pkg/tui"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatEnv   Format = "env"
)

// Formats lists the accepted output formats.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatEnv}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("invalid format %q (expected %s)", s, strings.Join(names, "|"))
}

// Entry is one resolved argument.
type Entry struct {
	Name      string
	Kind      argspec.Kind
	Value     argspec.Value
	Specified bool
}

// Collect resolves every declared argument of args in declaration order.
// Arguments that were not supplied and have no spec-level default are
// left out.
func Collect(args *argspec.Args) ([]Entry, error) {
	reg := args.Registry()
	var entries []Entry
	for _, name := range reg.Names() {
		v, err := args.Value(name)
		if errors.Is(err, argspec.ErrNoDefault) {
			continue
		}
		if err != nil {
			return nil, err
		}
		kind, _ := reg.Kind(name)
		entries = append(entries, Entry{
			Name:      name,
			Kind:      kind,
			Value:     v,
			Specified: args.Specified(name),
		})
	}
	return entries, nil
}

// Options tune the env and table formats.
type Options struct {
	// Prefix is prepended to variable names in env output.
	Prefix string
	Color  tui.Colorizer
}

// Write renders entries to w in format f.
func Write(w io.Writer, f Format, entries []Entry, opts Options) error {
	switch f {
	case FormatTable:
		return writeTable(w, entries, opts.Color)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(asMap(entries))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(asMap(entries)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(asMap(entries)); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case FormatEnv:
		return writeEnv(w, entries, opts.Prefix)
	}
	return fmt.Errorf("unsupported format %q", f)
}

func asMap(entries []Entry) map[string]any {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Value.Interface()
	}
	return m
}

func writeTable(w io.Writer, entries []Entry, c tui.Colorizer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVALUE\tSOURCE")
	for _, e := range entries {
		// Only the last column is coloured; escape codes would skew alignment.
		source := c.Dim("default")
		if e.Specified {
			source = c.Green("argv")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Kind, e.Value.String(), source)
	}
	return tw.Flush()
}

func writeEnv(w io.Writer, entries []Entry, prefix string) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s=%s\n", EnvName(prefix, e.Name), ShellQuote(e.Value.String())); err != nil {
			return err
		}
	}
	return nil
}

// EnvName maps an argument name to a shell variable name: upper case, with
// every character outside [A-Z0-9_] replaced by "_".
func EnvName(prefix, name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(prefix + name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// ShellQuote single-quotes s for POSIX shells.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
