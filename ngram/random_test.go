package ngram

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTreeRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		root := RandomTree(rng, 5, 4, 300)

		assert.LessOrEqual(t, root.BranchSize(), 300)
		assertBounds(t, root, 0, 5, 4)
	}
}

func TestRandomTreeDeterministic(t *testing.T) {
	a := RandomTree(rand.New(rand.NewSource(9)), 6, 3, 500)
	b := RandomTree(rand.New(rand.NewSource(9)), 6, 3, 500)
	require.True(t, a.DeepEquals(b))
}

func assertBounds(t *testing.T, n *Node, depth, maxDepth, maxBranch int) {
	t.Helper()
	assert.LessOrEqual(t, depth, maxDepth)
	assert.LessOrEqual(t, n.ChildCount(), maxBranch)
	for _, child := range n.Children() {
		assertBounds(t, child, depth+1, maxDepth, maxBranch)
	}
}
