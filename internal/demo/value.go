package demo

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Value is a scalar (number, string, bool) or an ordered list of values.
// Values are immutable; constructors and accessors copy list storage.
type Value struct {
	kind  Kind
	num   float64
	str   string
	flag  bool
	items []Value
}

func Num(f float64) Value { return Value{kind: KindNumber, num: f} }
func Str(s string) Value { return Value{kind: KindString, str: s} }
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }
func Int(i int) Value { return Num(float64(i)) }
func List(vs ...Value) Value { return Value{kind: KindList, items: cloneValues(vs)} }

// Ints builds a flat list of numbers.
func Ints(xs ...int) Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = Int(x)
	}
	return Value{kind: KindList, items: vs}
}

// Strs builds a flat list of strings.
func Strs(xs ...string) Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = Str(x)
	}
	return Value{kind: KindList, items: vs}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsList() bool { return v.kind == KindList }
func (v Value) Number() float64 { return v.num }
func (v Value) Text() string { return v.str }
func (v Value) Truth() bool { return v.flag }
func (v Value) Len() int { return len(v.items) }
func (v Value) Items() []Value { return cloneValues(v.items) }
func (v Value) At(i int) (Value, bool) {
	if i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Numbers returns the list's elements as float64s. ok is false when the value
// is not a flat list of numbers.
func (v Value) Numbers() (out []float64, ok bool) {
	if v.kind != KindList {
		return nil, false
	}
	out = make([]float64, len(v.items))
	for i, it := range v.items {
		if it.kind != KindNumber {
			return nil, false
		}
		out[i] = it.num
	}
	return out, true
}

// Equal reports deep structural equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.flag == o.flag
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// String formats the value the way the walkthrough displays it: strings are
// quoted and nested lists are rendered inline.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	parts := make([]string, len(v.items))
	for i, it := range v.items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Plain formats the value without quoting strings.
func (v Value) Plain() string {
	if v.kind == KindString {
		return v.str
	}
	return v.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.flag)
	}
	items := v.items
	if items == nil {
		items = []Value{}
	}
	return json.Marshal(items)
}

// FormatNumber drops the fractional part of integral values.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func cloneValues(vs []Value) []Value {
	if vs == nil {
		return []Value{}
	}
	c := make([]Value, len(vs))
	copy(c, vs)
	return c
}
