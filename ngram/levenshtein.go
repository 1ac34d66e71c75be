package ngram

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions and
// substitutions turning one into the other.
func Distance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			substitution := prev[j-1]
			if a[i-1] != b[j-1] {
				substitution++
			}
			curr[j] = min(substitution, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// ClosestString returns the candidate with the minimum edit distance to
// target. Ties go to the earlier candidate. Returns "" when candidates is
// empty.
func ClosestString(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	closest := candidates[0]
	minDistance := Distance(target, closest)
	for _, candidate := range candidates[1:] {
		if d := Distance(target, candidate); d < minDistance {
			closest = candidate
			minDistance = d
		}
	}
	return closest
}

// PredictNextWord walks the tree from n, at each level descending into the
// child whose word is closest in edit distance to the corresponding input
// word, and returns the child words of the node it ends on. The walk stops
// early at a leaf or on an empty input word.
func (n *Node) PredictNextWord(gram []string) []string {
	node := n
	for _, word := range gram {
		if len(node.children) == 0 || len(word) == 0 {
			break
		}
		node = node.children[ClosestString(word, node.ChildWords())]
	}
	return node.ChildWords()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
