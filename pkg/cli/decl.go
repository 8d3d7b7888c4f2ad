// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/yeetrun/argspec/pkg/argspec"
)

// ParseDecl parses one argument declaration:
//
//	NAME[:KIND][=DEFAULT]
//
// KIND is string (the default), boolean (or bool), int, csv, regex, or
// enum(a|b|c). DEFAULT is only accepted when optional is true and must
// coerce to KIND.
func ParseDecl(text string, optional bool) (argspec.Spec, error) {
	name, rest := text, ""
	if idx := strings.IndexAny(text, ":="); idx != -1 {
		name, rest = text[:idx], text[idx:]
	}
	if err := validateName(name); err != nil {
		return argspec.Spec{}, fmt.Errorf("invalid declaration %q: %w", text, err)
	}

	spec := argspec.Spec{Name: name, Kind: argspec.KindString}
	if strings.HasPrefix(rest, ":") {
		kindText := rest[1:]
		rest = ""
		if strings.HasPrefix(kindText, "enum(") {
			end := strings.Index(kindText, ")")
			if end == -1 {
				return argspec.Spec{}, fmt.Errorf("invalid declaration %q: unterminated enum", text)
			}
			spec.Enum = strings.Split(kindText[len("enum("):end], "|")
			rest = kindText[end+1:]
			if rest != "" && !strings.HasPrefix(rest, "=") {
				return argspec.Spec{}, fmt.Errorf("invalid declaration %q: unexpected %q after enum", text, rest)
			}
		} else {
			if idx := strings.Index(kindText, "="); idx != -1 {
				kindText, rest = kindText[:idx], kindText[idx:]
			}
			kind, err := parseKind(kindText)
			if err != nil {
				return argspec.Spec{}, fmt.Errorf("invalid declaration %q: %w", text, err)
			}
			spec.Kind = kind
		}
	}

	if defText, ok := strings.CutPrefix(rest, "="); ok {
		if !optional {
			return argspec.Spec{}, fmt.Errorf("invalid declaration %q: required arguments cannot have a default", text)
		}
		def, err := spec.Coerce(defText)
		if err != nil {
			return argspec.Spec{}, fmt.Errorf("invalid default in %q: %w", text, err)
		}
		spec.Default = def
	}
	return spec, nil
}

// ParseDecls parses a whitespace-separated list of declarations.
func ParseDecls(text string, optional bool) ([]argspec.Spec, error) {
	var specs []argspec.Spec
	for _, field := range strings.Fields(text) {
		spec, err := ParseDecl(field, optional)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseKind(s string) (argspec.Kind, error) {
	switch s {
	case "":
		return argspec.KindString, nil
	case "bool":
		return argspec.KindBoolean, nil
	case "enum":
		return "", fmt.Errorf("enum needs its values, e.g. enum(dev|prod)")
	}
	k := argspec.Kind(s)
	if !k.Known() {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("name %q must not start with '-'", name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("name %q contains %q", name, r)
		}
	}
	return nil
}

// Usage returns a one-line synopsis of the declared arguments, e.g.
//
//	--name=<string> --env=<dev|prod> [--count=<int> (default 3)]
func Usage(reg *argspec.Registry) string {
	parts := make([]string, 0, len(reg.Names()))
	for _, spec := range reg.Specs() {
		placeholder := string(spec.EffectiveKind())
		if spec.Enum != nil {
			placeholder = strings.Join(spec.Enum, "|")
		}
		part := fmt.Sprintf("--%s=<%s>", spec.Name, placeholder)
		if reg.IsOptional(spec.Name) {
			if def, ok := reg.Default(spec.Name); ok {
				part += fmt.Sprintf(" (default %s)", def)
			}
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
