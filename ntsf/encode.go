package ntsf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/ngramtext/nts/ngram"
)

// traceFunc observes one processed node: its index in emission order, the
// dictionary slot involved, and whether the block was a back-reference.
// Used by tests to pin encoder/decoder dictionary lockstep.
type traceFunc func(index, slot int, backref bool)

// Encoder serializes n-gram trees. An Encoder is stateless between calls;
// each Encode run owns a fresh back-reference dictionary.
type Encoder struct {
	codec Codec
	trace traceFunc
}

// NewEncoder returns an encoder writing streams with the given parameters.
func NewEncoder(c Codec) (*Encoder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{codec: c}, nil
}

// Encode flattens the tree rooted at root into its binary form on w:
// the 6-byte header, then one block per node in pre-order.
func (e *Encoder) Encode(root *ngram.Node, w io.Writer) error {
	bw := bitio.NewWriter(w)

	header := Header{Codec: e.codec}
	if _, err := header.WriteTo(bw); err != nil {
		return err
	}

	dict := newDictionary(e.codec.DictSize)
	stack := []*ngram.Node{root}
	scratch := make([]byte, 0, 64)
	index := 0

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		word := node.Word()

		scratch = scratch[:0]
		slot, hit := dict.hit(word)
		if hit {
			scratch = append(scratch, e.codec.BackrefByte, byte(slot))
		} else {
			if err := e.codec.checkWord(word); err != nil {
				return err
			}
			dict.store(word)
			scratch = append(scratch, word...)
		}

		nChildren := node.ChildCount()
		nCountBytes := countByteLen(uint64(nChildren))
		if nCountBytes > e.codec.maxCountBytes() {
			return fmt.Errorf("child count %d needs %d bytes, tag range allows %d", nChildren, nCountBytes, e.codec.maxCountBytes())
		}
		scratch = append(scratch, e.codec.EndWordRangeStart()+byte(nCountBytes))
		scratch = appendCount(scratch, uint64(nChildren))

		bw.TryWrite(scratch)
		if bw.TryError != nil {
			return bw.TryError
		}

		if e.trace != nil {
			e.trace(index, slot, hit)
		}
		index++

		stack = append(stack, node.Children()...)
	}

	return bw.Close()
}

// EncodeToBytes is Encode into a fresh byte slice.
func (e *Encoder) EncodeToBytes(root *ngram.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(root, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode serializes root with the default codec parameters.
func Encode(root *ngram.Node, w io.Writer) error {
	e, err := NewEncoder(DefaultCodec())
	if err != nil {
		return err
	}
	return e.Encode(root, w)
}

// checkWord enforces the binary word invariant: non-empty, no bytes below
// 0x20, and every byte strictly below the backref byte so word content can
// never be mistaken for a tag.
func (c Codec) checkWord(word string) error {
	if len(word) == 0 {
		return fmt.Errorf("%w: empty word", ErrIllegalByte)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < minWordByte || word[i] >= c.BackrefByte {
			return fmt.Errorf("%w: 0x%02x in %q", ErrIllegalByte, word[i], word)
		}
	}
	return nil
}
