package ntsf

import (
	"fmt"
	"io"
)

// HeaderSize is the fixed byte length of the binary stream header.
const HeaderSize = 6

var magic = [4]byte{'n', 't', 's', 'f'}

// HasMagic reports whether data begins with the binary stream magic.
// Callers use it to tell the binary form from the textual one, which is
// headerless.
func HasMagic(data []byte) bool {
	return len(data) >= len(magic) && [4]byte{data[0], data[1], data[2], data[3]} == magic
}

// Header is the leading 6 bytes of a binary stream: the magic 'ntsf'
// followed by the codec parameters used to write the body.
type Header struct {
	Codec Codec
}

func (h *Header) WriteTo(w io.Writer) (int64, error) {
	b := [HeaderSize]byte{
		magic[0], magic[1], magic[2], magic[3],
		h.Codec.BackrefByte,
		byte(h.Codec.DictSize),
	}
	n, err := w.Write(b[:])
	return int64(n), err
}

func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var b [HeaderSize]byte
	n, err := io.ReadFull(r, b[:])
	switch err {
	case nil:
	case io.EOF:
		return 0, fmt.Errorf("%w: no input", ErrEmptyStream)
	case io.ErrUnexpectedEOF:
		return int64(n), fmt.Errorf("%w: only %d header bytes", ErrMalformedHeader, n)
	default:
		return int64(n), err
	}

	if b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return int64(n), fmt.Errorf("%w: no magic 'ntsf' bytes", ErrMalformedHeader)
	}

	h.Codec = Codec{BackrefByte: b[4], DictSize: int(b[5])}
	if err := h.Codec.Validate(); err != nil {
		return int64(n), fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return int64(n), nil
}
