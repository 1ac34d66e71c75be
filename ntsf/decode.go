package ntsf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/ngramtext/nts/ngram"
)

// Decoder reconstructs n-gram trees from serialized streams. For the
// binary form the codec parameters come from the stream header; the
// Decoder's own codec is used only by DecodeText, which has no header.
type Decoder struct {
	codec Codec
	trace traceFunc
}

// NewDecoder returns a decoder. c configures the textual form; binary
// streams are self-describing.
func NewDecoder(c Codec) (*Decoder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{codec: c}, nil
}

// Decode reads one complete binary tree from r. The stream is consumed
// byte by byte and never buffered whole; beyond the tree being built,
// memory stays proportional to tree depth plus the dictionary.
func (d *Decoder) Decode(r io.Reader) (*ngram.Node, error) {
	br := bitio.NewReader(r)

	var header Header
	if _, err := header.ReadFrom(br); err != nil {
		return nil, err
	}
	codec := header.Codec

	dict := newDictionary(codec.DictSize)
	var builder treeBuilder
	var wordBuf []byte
	index := 0

	for {
		b := br.TryReadByte()
		if br.TryError != nil {
			break
		}

		if b < codec.BackrefByte {
			// word content
			wordBuf = append(wordBuf, b)
			continue
		}

		// end of a block: resolve the word and the end-word tag
		var word string
		slot := -1
		backref := false
		tag := b
		if b == codec.BackrefByte {
			idx := br.TryReadByte()
			if br.TryError != nil {
				return nil, fmt.Errorf("%w: in back-reference index", ErrTruncatedStream)
			}
			var err error
			if word, err = dict.lookup(int(idx)); err != nil {
				return nil, fmt.Errorf("%w: slot %d", err, idx)
			}
			slot = int(idx)
			backref = true

			tag = br.TryReadByte()
			if br.TryError != nil {
				return nil, fmt.Errorf("%w: in end-word tag", ErrTruncatedStream)
			}
			if tag < codec.EndWordRangeStart() {
				return nil, fmt.Errorf("%w: 0x%02x where an end-word tag was expected", ErrIllegalByte, tag)
			}
		} else {
			word = string(wordBuf)
		}

		nCountBytes := int(tag) - int(codec.EndWordRangeStart())
		if nCountBytes > 8 {
			return nil, fmt.Errorf("unsupported child count spanning %d bytes", nCountBytes)
		}
		var countBuf [8]byte
		for i := 0; i < nCountBytes; i++ {
			countBuf[i] = br.TryReadByte()
		}
		if br.TryError != nil {
			return nil, fmt.Errorf("%w: in child count", ErrTruncatedStream)
		}
		nChildren := decodeCount(countBuf[:nCountBytes])
		wordBuf = wordBuf[:0]

		if !backref {
			slot = rollingHash(word, codec.DictSize)
		}
		dict.store(word)

		if d.trace != nil {
			d.trace(index, slot, backref)
		}
		index++

		if err := builder.add(ngram.New(word), int(nChildren)); err != nil {
			return nil, err
		}
	}

	if br.TryError != io.EOF {
		return nil, br.TryError
	}
	if len(wordBuf) > 0 {
		return nil, fmt.Errorf("%w: %d word bytes with no end-word tag", ErrTruncatedStream, len(wordBuf))
	}
	return builder.finish()
}

// DecodeBytes is Decode over an in-memory stream.
func (d *Decoder) DecodeBytes(data []byte) (*ngram.Node, error) {
	return d.Decode(bytes.NewReader(data))
}

// Decode reads one complete binary tree from r using a default decoder.
func Decode(r io.Reader) (*ngram.Node, error) {
	d, err := NewDecoder(DefaultCodec())
	if err != nil {
		return nil, err
	}
	return d.Decode(r)
}
