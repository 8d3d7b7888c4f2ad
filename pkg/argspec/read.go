// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import "strings"

// rawArgs is the result of reading the argument vector: every occurrence of
// each declared option, in command-line order, plus the unconsumed tokens.
type rawArgs struct {
	order  []string // first appearance
	values map[string][]string
	rest   []string
}

// readArgs collects the values of declared options from args.
// It handles formats: --name=value and --name value.
//
// Tokens that do not name a declared option are left in rest untouched,
// as is everything after "--".
func readArgs(args []string, declared func(string) bool) (*rawArgs, error) {
	raw := &rawArgs{
		values: make(map[string][]string),
		rest:   []string{},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			raw.rest = append(raw.rest, args[i+1:]...)
			break
		}

		name, ok := longOptionName(arg)
		if !ok || !declared(name) {
			raw.rest = append(raw.rest, arg)
			continue
		}

		value, consumedNext, ok := optionValue(arg, args, i)
		if !ok {
			return nil, &OptionError{Option: name, Err: ErrMissingValue}
		}
		if _, seen := raw.values[name]; !seen {
			raw.order = append(raw.order, name)
		}
		raw.values[name] = append(raw.values[name], value)
		if consumedNext {
			i++
		}
	}

	return raw, nil
}

// longOptionName returns the name of a "--name" or "--name=value" token.
func longOptionName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
		return "", false
	}
	name := arg[2:]
	if idx := strings.Index(name, "="); idx != -1 {
		name = name[:idx]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// optionValue returns the value for the option at args[currentIndex],
// either inline after "=" or from the following token.
//
// The following token is consumed unless it looks like an option; negative
// numbers ("-10", "-3.5") and a lone "-" are still taken as values.
func optionValue(arg string, args []string, currentIndex int) (value string, consumedNext, ok bool) {
	if _, value, found := strings.Cut(arg, "="); found {
		return value, false, true
	}
	if currentIndex+1 < len(args) {
		next := args[currentIndex+1]
		if !strings.HasPrefix(next, "-") || next == "-" || isNumeric(next) {
			return next, true, true
		}
	}
	return "", false, false
}

// isNumeric checks if a string is a number (e.g., "10", "-10", "3.14", "-3.14")
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.' && !hasDot:
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
