// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argspec validates a program's long options against a declarative
// list of required and optional arguments.
//
// Each argument is declared with a Spec carrying its name, its Kind (or an
// enum set) and, for optional arguments, a default Value. Parse reads the
// argument vector, rejects missing and repeated options, coerces every
// supplied value to its kind and returns an immutable Args store:
//
//	args, err := argspec.FromOS(
//	    []argspec.Spec{
//	        {Name: "name", Kind: argspec.KindString},
//	    },
//	    []argspec.Spec{
//	        {Name: "env", Enum: []string{"dev", "prod"}, Default: argspec.StringValue("dev")},
//	        {Name: "tags", Kind: argspec.KindCSV},
//	        {Name: "verbose", Kind: argspec.KindBoolean, Default: argspec.BoolValue(false)},
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	env, _ := args.String("env")
//
// # Argument Syntax
//
// Options are read in long form only:
//   - --name=value
//   - --name value (the next token is taken unless it starts with "-"; negative
//     numbers and a lone "-" are still taken)
//
// Every declared option takes a value, booleans included (--verbose=true).
// Tokens after "--", undeclared options, single-dash tokens and bare words are
// not consumed and are available from Args.Rest.
//
// # Kinds
//
//   - string, regex: kept as supplied (regex is a label only, nothing is compiled)
//   - boolean: 1, true, t and 0, false, f, case-insensitively
//   - int: base-10, leading whitespace and sign allowed; text without a numeric
//     prefix yields 0 rather than an error
//   - csv: split on "," with no trimming or quoting; an empty value is [""]
//   - enum: the value must equal one of the declared strings
//
// # Defaults
//
// Args.Value returns a supplied value first, then the spec-level default.
// Args.ValueOr lets the caller pass a per-call default that takes precedence
// over the spec-level one. Defaults are returned as given; they are not
// coerced or checked against the declared kind.
package argspec
