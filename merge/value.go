// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merge

import (
	"fmt"
	"reflect"
)

// Kind identifies the variant of a [Value].
type Kind uint8

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one of [Scalar], [Sequence] or [Mapping].
type Value interface {
	Kind() Kind
}

// Scalar holds an opaque value. Anything that is not a plain sequence or
// mapping is a scalar, including nil and functions.
type Scalar struct {
	V any
}

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a string-keyed collection of values.
type Mapping map[string]Value

func (Scalar) Kind() Kind   { return KindScalar }
func (Sequence) Kind() Kind { return KindSequence }
func (Mapping) Kind() Kind  { return KindMapping }

// S wraps v as a [Scalar].
func S(v any) Scalar {
	return Scalar{V: v}
}

// From lifts plain Go data into the value model.
//
// Maps keyed by strings become a [Mapping] and slices or arrays become a
// [Sequence], whatever their element type, with elements converted
// recursively. A Value is returned as is. Byte slices and everything else
// become a [Scalar].
func From(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case map[string]any:
		return FromMap(t)
	case []any:
		seq := make(Sequence, len(t))
		for i, e := range t {
			seq[i] = From(e)
		}
		return seq
	case []string:
		seq := make(Sequence, len(t))
		for i, e := range t {
			seq[i] = Scalar{V: e}
		}
		return seq
	default:
		return fromReflect(v)
	}
}

// fromReflect lifts typed containers such as []int or map[string]string so
// that no caller-owned container ends up shared inside a Scalar.
func fromReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = From(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		seq := make(Sequence, rv.Len())
		for i := range seq {
			seq[i] = From(rv.Index(i).Interface())
		}
		return seq
	}
	return Scalar{V: v}
}

// FromMap lifts m into a [Mapping]. A nil map yields an empty mapping.
func FromMap(m map[string]any) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = From(v)
	}
	return out
}

// Plain lowers v back to plain Go data: mappings become map[string]any,
// sequences []any, scalars their wrapped value.
func Plain(v Value) any {
	switch t := v.(type) {
	case Mapping:
		return t.Plain()
	case Sequence:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	case Scalar:
		return t.V
	default:
		return nil
	}
}

// Plain returns m as a map[string]any. A nil mapping yields nil.
func (m Mapping) Plain() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Plain(v)
	}
	return out
}

// Get returns the scalar stored at key and whether it was present as a scalar.
func (m Mapping) Get(key string) (any, bool) {
	s, ok := m[key].(Scalar)
	if !ok {
		return nil, false
	}
	return s.V, true
}

// Lookup follows a path of keys through nested mappings.
func (m Mapping) Lookup(keys ...string) (Value, bool) {
	var cur Value = m
	for _, k := range keys {
		mm, ok := cur.(Mapping)
		if !ok {
			return nil, false
		}
		if cur, ok = mm[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}
