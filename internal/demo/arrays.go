package demo

import (
	"sort"
	"strings"
)

// array is the working form of a list while a generator runs. Helpers named
// after in-place built-ins mutate the receiver; the others return new arrays.
type array []Value

func newArray(v Value) array { return array(v.Items()) }

func (a array) value() Value { return List(a...) }

func (a array) clone() array {
	c := make(array, len(a))
	copy(c, a)
	return c
}

// relToIdx resolves a possibly negative index against length l.
func relToIdx(rel, l int) int {
	if rel >= 0 {
		return min(rel, l)
	}
	return max(l+rel, 0)
}

func (a *array) push(vs ...Value) int {
	*a = append(*a, vs...)
	return len(*a)
}

func (a *array) pop() (Value, bool) {
	if len(*a) == 0 {
		return Value{}, false
	}
	last := (*a)[len(*a)-1]
	*a = (*a)[:len(*a)-1]
	return last, true
}

func (a *array) unshift(vs ...Value) int {
	*a = append(append(make(array, 0, len(*a)+len(vs)), vs...), *a...)
	return len(*a)
}

func (a *array) shift() (Value, bool) {
	if len(*a) == 0 {
		return Value{}, false
	}
	first := (*a)[0]
	*a = (*a)[1:].clone()
	return first, true
}

// splice removes deleteCount elements at start, inserts items there and
// returns the removed elements.
func (a *array) splice(start, deleteCount int, items ...Value) array {
	l := len(*a)
	start = relToIdx(start, l)
	deleteCount = min(max(deleteCount, 0), l-start)

	removed := (*a)[start : start+deleteCount].clone()
	out := make(array, 0, l-deleteCount+len(items))
	out = append(out, (*a)[:start]...)
	out = append(out, items...)
	out = append(out, (*a)[start+deleteCount:]...)
	*a = out
	return removed
}

func (a *array) reverse() {
	s := *a
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// sortDefault orders elements by their string form, which is what the
// built-in does without a comparator.
func (a *array) sortDefault() {
	sort.SliceStable(*a, func(i, j int) bool {
		return (*a)[i].Plain() < (*a)[j].Plain()
	})
}

func (a *array) fill(v Value, start, end int) {
	l := len(*a)
	start, end = relToIdx(start, l), relToIdx(end, l)
	for i := start; i < end; i++ {
		(*a)[i] = v
	}
}

func (a array) concat(others ...array) array {
	out := a.clone()
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

func (a array) slice(start, end int) array {
	l := len(a)
	start, end = relToIdx(start, l), relToIdx(end, l)
	if start >= end {
		return array{}
	}
	return a[start:end].clone()
}

func (a array) mapped(fn func(Value) Value) array {
	out := make(array, len(a))
	for i, v := range a {
		out[i] = fn(v)
	}
	return out
}

func (a array) filter(pred func(Value) bool) array {
	out := make(array, 0, len(a))
	for _, v := range a {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (a array) reduce(fn func(acc, v Value) Value, initial Value) Value {
	acc := initial
	for _, v := range a {
		acc = fn(acc, v)
	}
	return acc
}

func (a array) forEach(fn func(Value)) {
	for _, v := range a {
		fn(v)
	}
}

func (a array) findIndex(pred func(Value) bool) int {
	for i, v := range a {
		if pred(v) {
			return i
		}
	}
	return -1
}

func (a array) find(pred func(Value) bool) (Value, bool) {
	if i := a.findIndex(pred); i >= 0 {
		return a[i], true
	}
	return Value{}, false
}

func (a array) indexOf(v Value) int {
	return a.findIndex(v.Equal)
}

func (a array) includes(v Value) bool {
	return a.indexOf(v) >= 0
}

func (a array) some(pred func(Value) bool) bool {
	return a.findIndex(pred) >= 0
}

func (a array) every(pred func(Value) bool) bool {
	for _, v := range a {
		if !pred(v) {
			return false
		}
	}
	return true
}

func (a array) join(sep string) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.Plain()
	}
	return strings.Join(parts, sep)
}

// flat concatenates sub-lists into a new array, recursing up to depth levels.
func (a array) flat(depth int) array {
	out := make(array, 0, len(a))
	return flattenInto(out, a, depth)
}

func flattenInto(target, source array, depth int) array {
	for _, v := range source {
		if v.IsList() && depth > 0 {
			target = flattenInto(target, newArray(v), depth-1)
			continue
		}
		target = append(target, v)
	}
	return target
}

func (a array) flatMap(fn func(Value) Value) array {
	return a.mapped(fn).flat(1)
}
