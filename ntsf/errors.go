package ntsf

import "errors"

var (
	// ErrMalformedHeader means the stream does not start with a valid
	// 6-byte ntsf header.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrTruncatedStream means the stream ended in the middle of a block,
	// or with subtrees still missing children.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrEmptyStream means no root node could be decoded.
	ErrEmptyStream = errors.New("empty stream")

	// ErrIllegalByte means a word is empty or contains a byte its form does
	// not allow, or a reserved byte or character appears where the framing
	// expects something else.
	ErrIllegalByte = errors.New("illegal byte in word")

	// ErrIndexOutOfRange means a back-reference names a slot beyond the
	// dictionary, or one that has never been filled.
	ErrIndexOutOfRange = errors.New("back-reference index out of range")

	// ErrTrailingData means blocks follow a completed tree.
	ErrTrailingData = errors.New("trailing data after complete tree")
)
