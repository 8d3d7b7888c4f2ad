// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"errors"
	"reflect"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	if s, err := StringValue("x").AsString(); err != nil || s != "x" {
		t.Fatalf("AsString = %q, %v", s, err)
	}
	if b, err := BoolValue(true).AsBool(); err != nil || !b {
		t.Fatalf("AsBool = %v, %v", b, err)
	}
	if n, err := IntValue(-3).AsInt(); err != nil || n != -3 {
		t.Fatalf("AsInt = %d, %v", n, err)
	}
	if l, err := ListValue("a", "b").AsList(); err != nil || !reflect.DeepEqual(l, []string{"a", "b"}) {
		t.Fatalf("AsList = %v, %v", l, err)
	}

	_, err := IntValue(1).AsString()
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("AsString on int: err = %v, want ErrKindMismatch", err)
	}
	if _, err := (Value{}).AsBool(); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("AsBool on zero: err = %v, want ErrKindMismatch", err)
	}
}

func TestValueInterfaceAndString(t *testing.T) {
	tests := []struct {
		v       Value
		want    any
		wantStr string
	}{
		{StringValue("s"), "s", "s"},
		{BoolValue(false), false, "false"},
		{IntValue(12), int64(12), "12"},
		{ListValue("a", "", "c"), []string{"a", "", "c"}, "a,,c"},
		{ListValue(), []string{}, ""},
		{Value{}, nil, ""},
	}
	for _, tt := range tests {
		if got := tt.v.Interface(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%#v.Interface() = %#v, want %#v", tt.v, got, tt.want)
		}
		if got := tt.v.String(); got != tt.wantStr {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.wantStr)
		}
	}
}

func TestValueListIsCopied(t *testing.T) {
	items := []string{"a", "b"}
	v := ListValue(items...)
	items[0] = "changed"
	got, _ := v.AsList()
	got[1] = "changed"
	if again, _ := v.AsList(); !reflect.DeepEqual(again, []string{"a", "b"}) {
		t.Fatalf("AsList() = %v, Value must not share its slice", again)
	}
}

func TestValueEqual(t *testing.T) {
	if !StringValue("a").Equal(StringValue("a")) {
		t.Fatalf("equal strings reported unequal")
	}
	if StringValue("a").Equal(stringValueOf(KindEnum, "a")) {
		t.Fatalf("string and enum values reported equal")
	}
	if ListValue("a").Equal(ListValue("a", "b")) {
		t.Fatalf("different lists reported equal")
	}
	if !(Value{}).IsZero() || StringValue("").IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestKindKnown(t *testing.T) {
	for _, k := range Kinds() {
		if !k.Known() {
			t.Errorf("%q.Known() = false", k)
		}
	}
	if Kind("date").Known() {
		t.Errorf(`"date".Known() = true`)
	}
}
