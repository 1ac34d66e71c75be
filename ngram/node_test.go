package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWordReusesExistingChild(t *testing.T) {
	root := New("root")

	first := root.AddWord("word")
	second := root.AddWord("word")

	assert.Same(t, first, second)
	assert.Equal(t, 1, root.ChildCount())
}

func TestAddWordLowercases(t *testing.T) {
	root := New("root")
	child := root.AddWord("Word")
	assert.Equal(t, "word", child.Word())
}

func TestAddChildReplacesAtKey(t *testing.T) {
	root := New("root")

	old := New("w")
	old.AddWord("under-old")
	root.AddChild(old)

	replacement := New("w")
	root.AddChild(replacement)

	assert.Equal(t, 1, root.ChildCount())
	assert.Same(t, replacement, root.Child("w"))
}

func TestAddNGramSharesPrefixes(t *testing.T) {
	root := New("")
	root.AddNGram([]string{"the", "quick", "brown", "fox"})
	root.AddNGram([]string{"the", "quick", "red", "fox"})

	// root -> the -> quick -> {brown -> fox, red -> fox}
	assert.Equal(t, 7, root.BranchSize())

	quick := root.Child("the").Child("quick")
	require.NotNil(t, quick)
	assert.Equal(t, []string{"brown", "red"}, quick.ChildWords())
}

func TestBranchSize(t *testing.T) {
	root := New("a")
	assert.Equal(t, 1, root.BranchSize())

	root.AddWord("b").AddWord("c")
	root.AddWord("d")
	assert.Equal(t, 4, root.BranchSize())
}

func TestDeepEquals(t *testing.T) {
	build := func(grams ...[]string) *Node {
		root := New("root")
		for _, g := range grams {
			root.AddNGram(g)
		}
		return root
	}

	a := build([]string{"x", "y"}, []string{"x", "z"})
	b := build([]string{"x", "z"}, []string{"x", "y"}) // same tree, different insertion order
	c := build([]string{"x", "y"})

	assert.True(t, a.DeepEquals(b))
	assert.True(t, b.DeepEquals(a))
	assert.False(t, a.DeepEquals(c))
	assert.False(t, a.DeepEquals(New("other")))
}

func TestChildWordsSorted(t *testing.T) {
	root := New("root")
	for _, w := range []string{"pear", "apple", "quince", "banana"} {
		root.AddWord(w)
	}
	assert.Equal(t, []string{"apple", "banana", "pear", "quince"}, root.ChildWords())
}

func TestString(t *testing.T) {
	root := New("a")
	assert.Equal(t, "<Node: a>", root.String())

	root.AddWord("b")
	assert.Equal(t, "<Node: a; Children: <Node: b>>", root.String())
}
