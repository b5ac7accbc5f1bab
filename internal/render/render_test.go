package render

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushEntry(t *testing.T) demo.Entry {
	t.Helper()
	c := demo.Default()
	i, err := c.Lookup("push")
	require.NoError(t, err)
	e, _ := c.Entry(i)
	return e
}

func TestRenderSections(t *testing.T) {
	s := pushEntry(t).Generate()
	tree := Render(s)

	before, ok := tree.Find(RoleBefore)
	require.True(t, ok)
	require.Len(t, before.Children, 2)
	assert.Equal(t, "Before Operation:", before.Children[0].Text)
	assert.Equal(t, "arr: [1, 2, 3]", before.Children[1].Inline())

	after, ok := tree.Find(RoleAfter)
	require.True(t, ok)
	require.Len(t, after.Children, 3)
	assert.Equal(t, "arr: [1, 2, 3, 4, 5]", after.Children[1].Inline())
	assert.Equal(t, "length: 5", after.Children[2].Inline())

	length := after.Children[2].Children[1]
	assert.Equal(t, RoleResult, length.Role)
	assert.Equal(t, KindScalar, length.Children[0].Kind)
}

func TestRenderSequenceNodes(t *testing.T) {
	s := demo.Snapshot{
		Before: []demo.Field{{Label: "arr", Value: demo.List(demo.Str("a"), demo.Ints(1, 2))}},
	}
	seq := Render(s).Root.Children[0].Children[1].Children[1]

	want := Node{
		Kind: KindContainer,
		Role: RoleSequence,
		Children: []Node{
			{Kind: KindBracket, Text: "["},
			{Kind: KindElement, Role: "string", Text: `"a"`},
			{Kind: KindSeparator, Text: ","},
			{Kind: KindElement, Role: "list", Text: "[1, 2]"},
			{Kind: KindBracket, Text: "]"},
		},
	}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmptySequence(t *testing.T) {
	s := demo.Snapshot{After: []demo.Field{{Label: "arr", Value: demo.Ints()}}}
	after, _ := Render(s).Find(RoleAfter)
	assert.Equal(t, "arr: []", after.Children[1].Inline())
}

func TestRenderIsReferentiallyTransparent(t *testing.T) {
	for _, e := range demo.Default().Entries() {
		s := e.Generate()
		first, second := Card(e, s), Card(e, s)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: rendering differs:\n%s", e.Name, diff)
		}
		assert.True(t, cmp.Equal(s, e.Generate()), "%s: snapshot changed by rendering", e.Name)
	}
}

func TestCardText(t *testing.T) {
	e := pushEntry(t)
	want := `push()  [Mutates]
Adds one or more elements to the end of an array and returns the new length.

Before Operation:
  arr: [1, 2, 3]
After Operation:
  arr: [1, 2, 3, 4, 5]
  length: 5

// Adds elements to the end and returns the new array length.
arr.push(4, 5); // Returns: 5
`
	assert.Equal(t, want, Card(e, e.Generate()).Text())
}

func TestCardBadge(t *testing.T) {
	c := demo.Default()
	for _, e := range c.Entries() {
		header, ok := Card(e, e.Generate()).Find(RoleHeader)
		require.True(t, ok)
		badge := header.Children[1]
		if e.Mutates {
			assert.Equal(t, "Mutates", badge.Text, e.Name)
		} else {
			assert.Equal(t, "Returns New", badge.Text, e.Name)
		}
	}
}

func TestTreeJSON(t *testing.T) {
	s := demo.Snapshot{After: []demo.Field{{Label: "ok", Value: demo.Bool(true)}}}
	data, err := json.Marshal(Render(s))
	require.NoError(t, err)

	var decoded struct {
		Root struct {
			Kind     string `json:"kind"`
			Role     string `json:"role"`
			Children []json.RawMessage
		} `json:"root"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "container", decoded.Root.Kind)
	assert.Equal(t, RoleSnapshot, decoded.Root.Role)
	assert.Len(t, decoded.Root.Children, 2)
	assert.Contains(t, string(data), `"text":"true"`)
}
