// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"slices"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Spec declares one argument.
type Spec struct {
	Name string
	Kind Kind
	// Enum, when non-nil, makes the argument an enum of these values and
	// overrides Kind.
	Enum []string
	// Default is used by the accessors when the argument is not supplied.
	// It is only honored for optional specs and is never coerced.
	Default Value
}

// EffectiveKind returns KindEnum for enum specs and Kind otherwise.
func (s Spec) EffectiveKind() Kind {
	if s.Enum != nil {
		return KindEnum
	}
	return s.Kind
}

// Registry is the immutable type and default table built from the declared
// specs. Use NewRegistry to build one.
type Registry struct {
	order    []string // declaration order, first occurrence
	specs    map[string]Spec
	defaults map[string]Value
	optional set.Set[string]
}

// NewRegistry builds a Registry from required and optional specs.
//
// Specs are applied required first, then optional. When a name is declared
// more than once the last declaration defines its kind, enum set and
// default, and a name declared anywhere in optional is optional. Defaults on
// required specs are ignored.
func NewRegistry(required, optional []Spec) *Registry {
	r := &Registry{
		specs:    make(map[string]Spec, len(required)+len(optional)),
		optional: make(set.Set[string]),
	}
	for _, s := range required {
		s.Default = Value{}
		r.add(s)
	}
	for _, s := range optional {
		r.add(s)
		r.optional.Add(s.Name)
	}
	return r
}

func (r *Registry) add(s Spec) {
	if _, ok := r.specs[s.Name]; !ok {
		r.order = append(r.order, s.Name)
	}
	s.Enum = cloneEnum(s.Enum)
	r.specs[s.Name] = s
	if s.Default.IsZero() {
		delete(r.defaults, s.Name)
		return
	}
	mak.Set(&r.defaults, s.Name, s.Default)
}

func cloneEnum(vals []string) []string {
	if vals == nil {
		return nil
	}
	return append([]string{}, vals...)
}

// Names returns every declared name in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Specs returns the resolved spec of every declared name in declaration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		s := r.specs[name]
		s.Enum = cloneEnum(s.Enum)
		out = append(out, s)
	}
	return out
}

// Spec returns the resolved spec for name.
func (r *Registry) Spec(name string) (Spec, bool) {
	s, ok := r.specs[name]
	if ok {
		s.Enum = cloneEnum(s.Enum)
	}
	return s, ok
}

// Kind returns the effective kind of name.
func (r *Registry) Kind(name string) (Kind, bool) {
	s, ok := r.specs[name]
	if !ok {
		return "", false
	}
	return s.EffectiveKind(), true
}

// Enum returns the allowed values of an enum argument.
func (r *Registry) Enum(name string) ([]string, bool) {
	s, ok := r.specs[name]
	if !ok || s.Enum == nil {
		return nil, false
	}
	return cloneEnum(s.Enum), true
}

// Default returns the spec-level default of name, if one was declared.
func (r *Registry) Default(name string) (Value, bool) {
	v, ok := r.defaults[name]
	return v, ok
}

// Has reports whether name is declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// IsOptional reports whether name was declared in the optional list.
func (r *Registry) IsOptional(name string) bool {
	return r.optional.Contains(name)
}
