// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	// ErrMissingArguments is matched by a MissingArgumentsError.
	ErrMissingArguments = errors.New("missing arguments")

	// ErrMissingValue is returned when a declared option is the last token,
	// or is followed by another option, and so has no value.
	ErrMissingValue = errors.New("option requires a value")

	// ErrMultipleValues is returned when an option appears more than once.
	ErrMultipleValues = errors.New("option specified multiple times")

	ErrInvalidEnumValue     = errors.New("value not in allowed set")
	ErrInvalidBooleanValue  = errors.New("unhandled boolean value")
	ErrInvalidIntegerSource = errors.New("integer option received a pre-typed integer")
	ErrUnhandledType        = errors.New("unhandled argument type")

	// ErrUnrecognizedArgument is returned when a name that no spec declares
	// is queried.
	ErrUnrecognizedArgument = errors.New("unrecognized argument")

	// ErrNoDefault is returned when a declared argument was not supplied and
	// neither the call nor the spec provides a default.
	ErrNoDefault = errors.New("no default value")

	// ErrInternal marks a broken invariant between the reader and the
	// registry. It is not reachable through the exported API.
	ErrInternal = errors.New("internal inconsistency")

	// ErrKindMismatch is matched by a KindMismatchError.
	ErrKindMismatch = errors.New("value kind mismatch")
)

// MissingArgumentsError lists every required argument absent from the
// argument vector, in declaration order.
type MissingArgumentsError struct {
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("missing arguments: %s", strings.Join(e.Names, ", "))
}

func (e *MissingArgumentsError) Unwrap() error {
	return ErrMissingArguments
}

// OptionError reports a problem with one supplied option.
// Err is one of the sentinel errors above and is returned by Unwrap.
type OptionError struct {
	Option  string
	Kind    Kind
	Value   string   // raw token, if any
	Allowed []string // set for ErrInvalidEnumValue
	Err     error
}

func (e *OptionError) Error() string {
	switch e.Err {
	case ErrInvalidEnumValue:
		return fmt.Sprintf("invalid value %q for --%s: must be one of %s", e.Value, e.Option, strings.Join(e.Allowed, ", "))
	case ErrInvalidBooleanValue:
		return fmt.Sprintf("unhandled boolean value %q for --%s", e.Value, e.Option)
	case ErrUnhandledType:
		return fmt.Sprintf("unhandled argument type %q for --%s", e.Kind, e.Option)
	case ErrMultipleValues:
		return fmt.Sprintf("option --%s specified multiple times", e.Option)
	case ErrMissingValue:
		return fmt.Sprintf("option --%s requires a value", e.Option)
	case ErrNoDefault:
		return fmt.Sprintf("no default value for argument %q", e.Option)
	}
	return fmt.Sprintf("--%s: %v", e.Option, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// UnrecognizedArgumentError is returned by the accessors for a name that no
// spec declares. Known holds the names supplied on the command line, as a hint.
type UnrecognizedArgumentError struct {
	Name  string
	Known []string
}

func (e *UnrecognizedArgumentError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unrecognized argument %q", e.Name)
	}
	return fmt.Sprintf("unrecognized argument %q (parsed options: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnrecognizedArgumentError) Unwrap() error {
	return ErrUnrecognizedArgument
}

// KindMismatchError is returned by the typed accessors when the stored value
// has another shape than requested.
type KindMismatchError struct {
	Name string // argument name, empty when raised by a Value method
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	got := string(e.Got)
	if got == "" {
		got = "empty"
	}
	if e.Name == "" {
		return fmt.Sprintf("value is %s, not %s", got, e.Want)
	}
	return fmt.Sprintf("argument %q is %s, not %s", e.Name, got, e.Want)
}

func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}
