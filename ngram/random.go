package ngram

import (
	"math/rand"
)

const randomWordAlphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomTree builds a random tree with depth at most maxDepth, at most
// maxBranch children per node and at most maxNodes nodes in total. Words
// are short lowercase strings, safe for both the binary and the textual
// encodings. The same rng seed yields the same tree.
func RandomTree(rng *rand.Rand, maxDepth, maxBranch, maxNodes int) *Node {
	root := New(randomWord(rng))
	budget := maxNodes - 1

	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 0}}

	for len(stack) > 0 && budget > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth >= maxDepth {
			continue
		}
		for i := rng.Intn(maxBranch + 1); i > 0 && budget > 0; i-- {
			word := randomWord(rng)
			if f.node.Child(word) != nil {
				continue // word collision, no new node
			}
			budget--
			stack = append(stack, frame{f.node.AddWord(word), f.depth + 1})
		}
	}

	return root
}

func randomWord(rng *rand.Rand) string {
	word := make([]byte, rng.Intn(7)+1)
	for i := range word {
		word[i] = randomWordAlphabet[rng.Intn(len(randomWordAlphabet))]
	}
	return string(word)
}
