// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import "slices"

// Args holds the validated arguments of one Parse call. It is read-only.
type Args struct {
	reg    *Registry
	values map[string]Value // explicitly supplied only
	rest   []string
}

// Registry returns the registry the arguments were parsed with.
func (a *Args) Registry() *Registry {
	return a.reg
}

// Specified reports whether name was supplied on the command line.
// Defaulted arguments are not specified.
func (a *Args) Specified(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Names returns the supplied argument names in declaration order.
func (a *Args) Names() []string {
	names := make([]string, 0, len(a.values))
	for _, name := range a.reg.order {
		if _, ok := a.values[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Rest returns the tokens that were not consumed as declared options.
func (a *Args) Rest() []string {
	return slices.Clone(a.rest)
}

// Value returns the supplied value of name, or its spec-level default.
func (a *Args) Value(name string) (Value, error) {
	return a.lookup(name, nil)
}

// ValueOr is like Value, but def is returned in preference to the spec-level
// default when name was not supplied. def is not checked against the kind.
func (a *Args) ValueOr(name string, def Value) (Value, error) {
	return a.lookup(name, &def)
}

func (a *Args) lookup(name string, def *Value) (Value, error) {
	if v, ok := a.values[name]; ok {
		return v, nil
	}
	if !a.reg.Has(name) {
		return Value{}, &UnrecognizedArgumentError{Name: name, Known: a.Names()}
	}
	if def != nil {
		return *def, nil
	}
	if v, ok := a.reg.Default(name); ok {
		return v, nil
	}
	return Value{}, &OptionError{Option: name, Kind: a.reg.specs[name].EffectiveKind(), Err: ErrNoDefault}
}

// String returns name's value as a string. It works for string, regex and
// enum arguments.
func (a *Args) String(name string) (string, error) {
	v, err := a.Value(name)
	if err != nil {
		return "", err
	}
	s, err := v.AsString()
	if err != nil {
		return "", named(name, err)
	}
	return s, nil
}

// Bool returns name's value as a bool.
func (a *Args) Bool(name string) (bool, error) {
	v, err := a.Value(name)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, named(name, err)
	}
	return b, nil
}

// Int returns name's value as an int64.
func (a *Args) Int(name string) (int64, error) {
	v, err := a.Value(name)
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt()
	if err != nil {
		return 0, named(name, err)
	}
	return n, nil
}

// List returns name's csv items.
func (a *Args) List(name string) ([]string, error) {
	v, err := a.Value(name)
	if err != nil {
		return nil, err
	}
	l, err := v.AsList()
	if err != nil {
		return nil, named(name, err)
	}
	return l, nil
}

func named(name string, err error) error {
	if km, ok := err.(*KindMismatchError); ok {
		km.Name = name
	}
	return err
}
