package demo

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()
	want := []string{
		"concat()", "push()", "pop()", "unshift()", "shift()", "splice()", "slice()",
		"map()", "filter()", "reduce()", "find()", "findIndex()", "indexOf()", "includes()",
		"some()", "every()", "sort()", "reverse()", "join()", "flat()", "flatMap()", "fill()", "forEach()",
	}
	require.Equal(t, len(want), c.Len())
	assert.Equal(t, want, c.Names())
}

func TestGenerateIsRepeatable(t *testing.T) {
	for _, e := range Default().Entries() {
		t.Run(e.Name, func(t *testing.T) {
			first, second := e.Generate(), e.Generate()
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("snapshots differ (-first +second):\n%s", diff)
			}
		})
	}
}

func TestPushSnapshot(t *testing.T) {
	c := Default()
	i, err := c.Lookup("push")
	require.NoError(t, err)
	e, ok := c.Entry(i)
	require.True(t, ok)
	assert.True(t, e.Mutates)

	for n := 0; n < 3; n++ {
		s := e.Generate()
		want := Snapshot{
			Before:      []Field{{"arr", Ints(1, 2, 3)}},
			After:       []Field{{"arr", Ints(1, 2, 3, 4, 5)}, {"length", Int(5)}},
			Code:        "arr.push(4, 5); // Returns: 5",
			Explanation: "Adds elements to the end and returns the new array length.",
		}
		if diff := cmp.Diff(want, s); diff != "" {
			t.Fatalf("push snapshot mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSnapshotResults(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Value
	}{
		{"concat", "result", Ints(1, 2, 3, 4, 5, 6)},
		{"pop", "removed", Int(5)},
		{"pop", "arr", Ints(1, 2, 3, 4)},
		{"unshift", "arr", Ints(1, 2, 3, 4, 5)},
		{"shift", "removed", Int(1)},
		{"shift", "arr", Ints(2, 3, 4, 5)},
		{"splice", "arr", Ints(1, 2, 7, 8, 9, 4, 5)},
		{"splice", "removed", Ints(3)},
		{"slice", "result", Ints(2, 3, 4)},
		{"slice", "originalUnchanged", Ints(1, 2, 3, 4, 5)},
		{"map", "result", Ints(2, 4, 6, 8, 10)},
		{"filter", "result", Ints(2, 4, 6, 8)},
		{"reduce", "sum", Int(15)},
		{"find", "result", Int(8)},
		{"findIndex", "index", Int(3)},
		{"indexOf", "index", Int(3)},
		{"includes", "includes3", Bool(true)},
		{"some", "hasGreaterThan4", Bool(true)},
		{"every", "allEven", Bool(true)},
		{"sort", "arr", Strs("Alicia", "Bert", "Fatiha", "James", "Maria")},
		{"reverse", "arr", Ints(5, 4, 3, 2, 1)},
		{"join", "result", Str("Hello World JavaScript")},
		{"flat", "result", Ints(1, 2, 3, 4, 5, 6, 7)},
		{"flatMap", "result", Ints(1, 2, 2, 4, 3, 6)},
		{"fill", "arr", Ints(0, 0, 7, 7, 7, 0)},
		{"forEach", "sumCalculated", Int(15)},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.label, func(t *testing.T) {
			i, err := c.Lookup(tt.name)
			require.NoError(t, err)
			e, _ := c.Entry(i)
			got, ok := e.Generate().Lookup(tt.label)
			require.True(t, ok, "label %q missing", tt.label)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCodeTextCarriesResults(t *testing.T) {
	c := Default()
	codes := map[string]string{
		"pop":     "const removed = arr.pop(); // Returns: 5",
		"unshift": "arr.unshift(1, 2); // Returns: 5",
		"splice":  "arr.splice(2, 1, 7, 8, 9); // Removes: [3]",
	}
	for name, want := range codes {
		i, err := c.Lookup(name)
		require.NoError(t, err)
		e, _ := c.Entry(i)
		assert.Equal(t, want, e.Generate().Code)
	}

	i, _ := c.Lookup("reduce")
	e, _ := c.Entry(i)
	assert.Equal(t, "Sums all array elements: 1 + 2 + 3 + 4 + 5 = 15", e.Generate().Explanation)
}

func TestFlatBeforeIsNested(t *testing.T) {
	c := Default()
	i, _ := c.Lookup("flat()")
	e, _ := c.Entry(i)
	arr, ok := e.Generate().Lookup("arr")
	require.True(t, ok)
	assert.Equal(t, "[1, 2, [3, 4], [5, [6, 7]]]", arr.String())
}

func TestLookup(t *testing.T) {
	c := Default()

	for _, name := range []string{"flatMap()", "flatmap", "  FLATMAP() "} {
		i, err := c.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, 20, i)
	}

	_, err := c.Lookup("toSorted")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestCatalogIsolation(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0] = NewEntry("mutated", "", false, nil)

	e, ok := c.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "concat()", e.Name)

	_, ok = c.Entry(c.Len())
	assert.False(t, ok)
	_, ok = c.Entry(-1)
	assert.False(t, ok)
}

func TestEntryWithoutGenerator(t *testing.T) {
	s := NewEntry("noop()", "", false, nil).Generate()
	assert.Empty(t, s.Before)
	assert.Empty(t, s.After)
}

func TestSnapshotJSON(t *testing.T) {
	c := Default()
	e, _ := c.Entry(1)
	data, err := json.Marshal(e.Generate())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"before": [{"label": "arr", "value": [1, 2, 3]}],
		"after": [{"label": "arr", "value": [1, 2, 3, 4, 5]}, {"label": "length", "value": 5}],
		"code": "arr.push(4, 5); // Returns: 5",
		"explanation": "Adds elements to the end and returns the new array length."
	}`, string(data))
}
