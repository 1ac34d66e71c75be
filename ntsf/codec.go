// Package ntsf implements the NTS serialization format for n-gram trees: a
// compact self-describing binary encoding plus a parallel textual one. A
// tree is flattened depth-first into a sequence of per-node blocks; words
// already present in a small hash-indexed dictionary are replaced by
// back-references. Encoder and decoder maintain the dictionary with the
// same update rule, so it never travels on the wire.
package ntsf

import (
	"fmt"
)

const (
	// DefaultBackrefByte marks the start of a back-reference block and is
	// the exclusive upper bound for word bytes.
	DefaultBackrefByte = 0xf0

	// DefaultDictSize is the number of back-reference dictionary slots.
	DefaultDictSize = 255

	// MaxDictSize bounds the dictionary so a slot index fits in one byte.
	MaxDictSize = 255

	minBackrefByte = 0xf0
	maxBackrefByte = 0xfd

	// minWordByte is the lowest byte allowed in a word; the rolling hash
	// is defined relative to it.
	minWordByte = 0x20
)

// Codec carries the two wire parameters of the binary format. Both are
// recorded in the stream header, so any Codec can decode any stream.
type Codec struct {
	// BackrefByte introduces a back-reference block. Bytes above it are
	// end-word tags; bytes below it are word content.
	BackrefByte byte

	// DictSize is the number of slots in the back-reference dictionary,
	// and the modulus of the word hash.
	DictSize int
}

// NewCodec validates the parameters and returns a Codec.
func NewCodec(backrefByte byte, dictSize int) (Codec, error) {
	c := Codec{BackrefByte: backrefByte, DictSize: dictSize}
	if err := c.Validate(); err != nil {
		return Codec{}, err
	}
	return c, nil
}

// DefaultCodec returns the codec every writer should use unless it has a
// reason not to: backref byte 0xf0, 255 dictionary slots.
func DefaultCodec() Codec {
	return Codec{BackrefByte: DefaultBackrefByte, DictSize: DefaultDictSize}
}

// Validate checks that the parameters are representable in the header and
// leave room for at least one end-word tag.
func (c Codec) Validate() error {
	if c.BackrefByte < minBackrefByte || c.BackrefByte > maxBackrefByte {
		return fmt.Errorf("backref byte 0x%02x out of range [0x%02x, 0x%02x]", c.BackrefByte, minBackrefByte, maxBackrefByte)
	}
	if c.DictSize < 1 || c.DictSize > MaxDictSize {
		return fmt.Errorf("dictionary size %d out of range [1, %d]", c.DictSize, MaxDictSize)
	}
	return nil
}

// EndWordRangeStart is the tag byte for a block with zero child-count
// bytes; tag EndWordRangeStart+L announces L count bytes.
func (c Codec) EndWordRangeStart() byte {
	return c.BackrefByte + 1
}

// maxCountBytes is the largest child-count byte length the tag range can
// express.
func (c Codec) maxCountBytes() int {
	return 0xff - int(c.EndWordRangeStart())
}
