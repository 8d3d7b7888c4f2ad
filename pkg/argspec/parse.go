// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
)

// New builds a Registry from required and optional and parses argv with it.
// argv should not include the binary name.
func New(required, optional []Spec, argv []string) (*Args, error) {
	return Parse(NewRegistry(required, optional), argv)
}

// FromOS is New applied to os.Args[1:].
func FromOS(required, optional []Spec) (*Args, error) {
	return New(required, optional, os.Args[1:])
}

// Parse reads argv against reg, checks that every required argument is
// present and coerces each supplied value to its declared kind.
//
// Parsing is all or nothing: on error no Args is returned. A
// *MissingArgumentsError names every absent required argument; problems
// with a single option are reported as *OptionError.
func Parse(reg *Registry, argv []string) (*Args, error) {
	raw, err := readArgs(argv, reg.Has)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range reg.order {
		if _, ok := raw.values[name]; ok {
			continue
		}
		if reg.IsOptional(name) {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return nil, &MissingArgumentsError{Names: missing}
	}

	values := make(map[string]Value, len(raw.order))
	for _, name := range raw.order {
		s, ok := reg.specs[name]
		if !ok {
			return nil, &OptionError{Option: name, Err: ErrInternal}
		}
		v, err := coerce(s, reading(raw.values[name]))
		if err != nil {
			return nil, err
		}
		values[name] = v
	}

	return &Args{
		reg:    reg,
		values: values,
		rest:   raw.rest,
	}, nil
}

// reading is what the reader hands to coercion: the token for a single
// occurrence, or all tokens when the option was repeated.
func reading(tokens []string) any {
	if len(tokens) == 1 {
		return tokens[0]
	}
	return slices.Clone(tokens)
}

// Coerce converts raw to s's kind exactly as Parse does for a supplied
// option.
func (s Spec) Coerce(raw string) (Value, error) {
	return coerce(s, raw)
}

func coerce(s Spec, raw any) (Value, error) {
	if _, ok := raw.([]string); ok {
		return Value{}, &OptionError{Option: s.Name, Kind: s.EffectiveKind(), Err: ErrMultipleValues}
	}

	kind := s.EffectiveKind()
	fail := func(err error) (Value, error) {
		return Value{}, &OptionError{Option: s.Name, Kind: kind, Value: rawText(raw), Allowed: cloneEnum(s.Enum), Err: err}
	}

	switch kind {
	case KindEnum:
		str, ok := raw.(string)
		if ok && slices.Contains(s.Enum, str) {
			return stringValueOf(KindEnum, str), nil
		}
		return fail(ErrInvalidEnumValue)

	case KindBoolean:
		str, _ := raw.(string)
		switch strings.ToLower(str) {
		case "1", "true", "t":
			return BoolValue(true), nil
		case "0", "false", "f":
			return BoolValue(false), nil
		}
		return fail(ErrInvalidBooleanValue)

	case KindString, KindRegex:
		str, ok := raw.(string)
		if !ok {
			return fail(ErrInternal)
		}
		return stringValueOf(kind, str), nil

	case KindInt:
		switch r := raw.(type) {
		case int, int64:
			return fail(ErrInvalidIntegerSource)
		case string:
			return IntValue(leadingInt(r)), nil
		}
		return fail(ErrInternal)

	case KindCSV:
		str, ok := raw.(string)
		if !ok {
			return fail(ErrInternal)
		}
		return ListValue(strings.Split(str, ",")...), nil
	}

	return fail(ErrUnhandledType)
}

func rawText(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

// leadingInt converts the base-10 integer prefix of s, after optional
// leading whitespace and sign. Input without digits converts to 0 and
// out-of-range values saturate at the int64 bounds; it never fails.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n uint64
	const limit = uint64(math.MaxInt64) + 1
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			break
		}
		n = n*10 + d
	}

	if neg {
		if n == limit {
			return math.MinInt64
		}
		return -int64(n)
	}
	if n >= limit {
		return math.MaxInt64
	}
	return int64(n)
}
