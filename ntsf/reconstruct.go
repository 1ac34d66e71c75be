package ntsf

import (
	"fmt"

	"github.com/ngramtext/nts/ngram"
)

// parentFrame is one entry of the reconstruction stack: a decoded node
// still waiting for `remaining` of its children to arrive.
type parentFrame struct {
	node      *ngram.Node
	remaining int
}

// treeBuilder turns the pre-order (word, child count) sequence emitted by
// either decoder back into a tree. Blocks arrive in DFS order, so the
// parent of each new node is always the top frame once completed subtrees
// have been deflated off the stack.
type treeBuilder struct {
	root  *ngram.Node
	stack []parentFrame
}

// add consumes the next decoded block.
func (b *treeBuilder) add(node *ngram.Node, nChildren int) error {
	if b.root == nil {
		b.root = node
		if nChildren > 0 {
			b.stack = append(b.stack, parentFrame{node, nChildren})
		}
		return nil
	}

	if len(b.stack) == 0 {
		return fmt.Errorf("%w: %q", ErrTrailingData, node.Word())
	}

	parent := &b.stack[len(b.stack)-1]
	parent.node.AddChild(node)
	parent.remaining--
	if parent.remaining == 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	if nChildren > 0 {
		b.stack = append(b.stack, parentFrame{node, nChildren})
	}

	// deflate: drop every completed subtree so the top frame is again the
	// live ancestor with outstanding children
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].remaining == 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}

	return nil
}

// finish reports the reconstructed root once the input is exhausted.
func (b *treeBuilder) finish() (*ngram.Node, error) {
	if b.root == nil {
		return nil, fmt.Errorf("%w: no nodes decoded", ErrEmptyStream)
	}
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("%w: %d unfinished subtrees at end of input", ErrTruncatedStream, len(b.stack))
	}
	return b.root, nil
}
