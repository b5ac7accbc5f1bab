package demo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when a catalog lookup finds no entry.
var ErrUnknownOperation = errors.New("demo: unknown operation")

// Field is one labelled value of a snapshot. Order is display order.
type Field struct {
	Label string `json:"label"`
	Value Value  `json:"value"`
}

// Snapshot is the before/after state produced by one entry's generator.
type Snapshot struct {
	Before      []Field `json:"before"`
	After       []Field `json:"after"`
	Code        string  `json:"code"`
	Explanation string  `json:"explanation"`
}

// Lookup finds a field by label, searching After first.
func (s Snapshot) Lookup(label string) (Value, bool) {
	for _, fields := range [][]Field{s.After, s.Before} {
		for _, f := range fields {
			if f.Label == label {
				return f.Value, true
			}
		}
	}
	return Value{}, false
}

// Entry describes one demonstrated operation.
type Entry struct {
	Name        string
	Description string
	Mutates     bool
	generate    func() Snapshot
}

// NewEntry builds an entry around gen. gen must not retain state between calls.
func NewEntry(name, description string, mutates bool, gen func() Snapshot) Entry {
	return Entry{Name: name, Description: description, Mutates: mutates, generate: gen}
}

// Generate runs the demonstration from scratch and returns a new snapshot.
func (e Entry) Generate() Snapshot {
	if e.generate == nil {
		return Snapshot{Before: []Field{}, After: []Field{}}
	}
	return e.generate()
}

// Catalog is the fixed, ordered list of demonstrations.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

func New(entries ...Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		key := normalizeName(e.Name)
		if _, dup := c.index[key]; !dup {
			c.index[key] = i
		}
	}
	return c
}

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of the catalog's entries in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the index of the named entry. The "()" suffix and letter
// case are ignored.
func (c *Catalog) Lookup(name string) (int, error) {
	i, ok := c.index[normalizeName(name)]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return i, nil
}

// Names lists entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, "()")
	return strings.ToLower(name)
}

func field(label string, v Value) Field {
	return Field{Label: label, Value: v}
}
