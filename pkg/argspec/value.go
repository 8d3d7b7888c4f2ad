// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the declared value type of an argument.
type Kind string

const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindInt     Kind = "int"
	KindCSV     Kind = "csv"
	KindRegex   Kind = "regex"
	KindEnum    Kind = "enum"
)

// Kinds lists every kind the parser can coerce.
func Kinds() []Kind {
	return []Kind{KindString, KindBoolean, KindInt, KindCSV, KindRegex, KindEnum}
}

// Known reports whether k is one of the kinds returned by Kinds.
func (k Kind) Known() bool {
	return slices.Contains(Kinds(), k)
}

// shape is the storage variant of a Value.
type shape uint8

const (
	shapeNone shape = iota
	shapeString
	shapeBool
	shapeInt
	shapeList
)

// Value is a coerced argument value. Exactly one variant is set: a string
// (string, regex and enum kinds), a bool, an int64 or a list of strings (csv).
// The zero Value holds nothing and reports IsZero.
type Value struct {
	kind  Kind
	shape shape
	str   string
	b     bool
	n     int64
	list  []string
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, shape: shapeString, str: s}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBoolean, shape: shapeBool, b: b}
}

// IntValue returns an int Value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, shape: shapeInt, n: n}
}

// ListValue returns a csv Value holding a copy of items.
func ListValue(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindCSV, shape: shapeList, list: slices.Clone(items)}
}

func stringValueOf(k Kind, s string) Value {
	v := StringValue(s)
	v.kind = k
	return v
}

// IsZero reports whether v holds no value.
func (v Value) IsZero() bool {
	return v.shape == shapeNone
}

// Kind returns the kind v was coerced as, or built for.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the value of a string, regex or enum Value.
func (v Value) AsString() (string, error) {
	if v.shape != shapeString {
		return "", &KindMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

// AsBool returns the value of a boolean Value.
func (v Value) AsBool() (bool, error) {
	if v.shape != shapeBool {
		return false, &KindMismatchError{Want: KindBoolean, Got: v.kind}
	}
	return v.b, nil
}

// AsInt returns the value of an int Value.
func (v Value) AsInt() (int64, error) {
	if v.shape != shapeInt {
		return 0, &KindMismatchError{Want: KindInt, Got: v.kind}
	}
	return v.n, nil
}

// AsList returns a copy of the items of a csv Value.
func (v Value) AsList() ([]string, error) {
	if v.shape != shapeList {
		return nil, &KindMismatchError{Want: KindCSV, Got: v.kind}
	}
	return slices.Clone(v.list), nil
}

// Interface returns the value as string, bool, int64 or []string, and nil
// for the zero Value. It is the form handed to encoders.
func (v Value) Interface() any {
	switch v.shape {
	case shapeString:
		return v.str
	case shapeBool:
		return v.b
	case shapeInt:
		return v.n
	case shapeList:
		return slices.Clone(v.list)
	}
	return nil
}

// String formats v for display; csv items are joined with ",".
func (v Value) String() string {
	switch v.shape {
	case shapeString:
		return v.str
	case shapeBool:
		return strconv.FormatBool(v.b)
	case shapeInt:
		return strconv.FormatInt(v.n, 10)
	case shapeList:
		return strings.Join(v.list, ",")
	}
	return ""
}

// GoString implements fmt.GoStringer so test failures print the variant.
func (v Value) GoString() string {
	switch v.shape {
	case shapeString:
		return fmt.Sprintf("argspec.Value{%s: %q}", v.kind, v.str)
	case shapeBool:
		return fmt.Sprintf("argspec.Value{%s: %t}", v.kind, v.b)
	case shapeInt:
		return fmt.Sprintf("argspec.Value{%s: %d}", v.kind, v.n)
	case shapeList:
		return fmt.Sprintf("argspec.Value{%s: %q}", v.kind, v.list)
	}
	return "argspec.Value{}"
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.shape != o.shape {
		return false
	}
	switch v.shape {
	case shapeString:
		return v.str == o.str
	case shapeBool:
		return v.b == o.b
	case shapeInt:
		return v.n == o.n
	case shapeList:
		return slices.Equal(v.list, o.list)
	}
	return true
}
