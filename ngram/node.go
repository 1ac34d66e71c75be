// Package ngram implements a rooted, unordered, word-labeled tree in which
// each root-to-node path spells an n-gram. Children are keyed by word, so a
// node has at most one child per distinct word.
package ngram

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is one node of an n-gram tree. The zero value is not usable; use New.
type Node struct {
	word     string
	children map[string]*Node
}

// New returns a childless node labeled with the given word.
func New(word string) *Node {
	return &Node{
		word:     word,
		children: make(map[string]*Node),
	}
}

// Word returns the word associated with this node.
func (n *Node) Word() string {
	return n.word
}

// Children returns the direct children of n in unspecified order.
func (n *Node) Children() []*Node {
	return maps.Values(n.children)
}

// ChildWords returns the words of the direct children of n, sorted.
func (n *Node) ChildWords() []string {
	words := maps.Keys(n.children)
	slices.Sort(words)
	return words
}

// ChildCount returns the number of direct children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the direct child labeled word, or nil.
func (n *Node) Child(word string) *Node {
	return n.children[word]
}

// AddChild attaches child to n. A previous child with the same word is
// replaced.
func (n *Node) AddChild(child *Node) {
	n.children[child.word] = child
}

// AddWord attaches a new child labeled word (lower-cased) and returns it.
// If a child with that word already exists it is returned unchanged.
func (n *Node) AddWord(word string) *Node {
	if child, ok := n.children[word]; ok {
		return child
	}
	child := New(strings.ToLower(word))
	n.AddChild(child)
	return child
}

// AddNGram grows a branch off n with one node per word of the n-gram, in
// order. Prefixes shared with existing branches are reused.
func (n *Node) AddNGram(gram []string) {
	node := n
	for _, word := range gram {
		node = node.AddWord(word)
	}
}

// BranchSize returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) BranchSize() int {
	stack := []*Node{n}

	seen := 0
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range node.children {
			stack = append(stack, child)
		}
		seen++
	}
	return seen
}

// DeepEquals reports whether the subtrees rooted at n and other carry the
// same words in the same structure. Child order is irrelevant; children are
// matched by word.
func (n *Node) DeepEquals(other *Node) bool {
	if n.word != other.word {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for word, child := range n.children {
		otherChild, ok := other.children[word]
		if !ok || !child.DeepEquals(otherChild) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if len(n.children) == 0 {
		return fmt.Sprintf("<Node: %s>", n.word)
	}
	childStrings := make([]string, 0, len(n.children))
	for _, word := range n.ChildWords() {
		childStrings = append(childStrings, n.children[word].String())
	}
	return fmt.Sprintf("<Node: %s; Children: %s>", n.word, strings.Join(childStrings, ", "))
}
