package ntsf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ngramtext/nts/ngram"
)

// Textual form: a standard block is `word|count]`, a back-reference block
// is `}slot|count]`, with counts and slots in decimal. Same pre-order,
// same hash, same dictionary rule as the binary form; only the framing
// differs. There is no header, so both sides must agree on the dictionary
// size (the default unless arranged otherwise).

const (
	textEndWord  = '|'
	textEndBlock = ']'
	textBackref  = '}'
	maxPrintable = 0x7e
)

// EncodeText serializes the tree rooted at root into the textual form.
func (e *Encoder) EncodeText(root *ngram.Node) (string, error) {
	var flattened strings.Builder
	dict := newDictionary(e.codec.DictSize)
	stack := []*ngram.Node{root}
	index := 0

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		word := node.Word()

		slot, hit := dict.hit(word)
		if hit {
			flattened.WriteByte(textBackref)
			flattened.WriteString(strconv.Itoa(slot))
		} else {
			if err := checkTextWord(word); err != nil {
				return "", err
			}
			dict.store(word)
			flattened.WriteString(word)
		}
		flattened.WriteByte(textEndWord)
		flattened.WriteString(strconv.Itoa(node.ChildCount()))
		flattened.WriteByte(textEndBlock)

		if e.trace != nil {
			e.trace(index, slot, hit)
		}
		index++

		stack = append(stack, node.Children()...)
	}

	return flattened.String(), nil
}

// EncodeText serializes root with the default codec parameters.
func EncodeText(root *ngram.Node) (string, error) {
	e, err := NewEncoder(DefaultCodec())
	if err != nil {
		return "", err
	}
	return e.EncodeText(root)
}

// DecodeText reconstructs a tree from its textual form.
func (d *Decoder) DecodeText(data string) (*ngram.Node, error) {
	dict := newDictionary(d.codec.DictSize)
	var builder treeBuilder

	var buf strings.Builder
	letter := ""
	haveLetter := false
	isBackref := false
	index := 0

	for i := 0; i < len(data); i++ {
		switch c := data[i]; c {
		case textEndWord:
			if haveLetter {
				return nil, fmt.Errorf("%w: second %q in block", ErrIllegalByte, string(textEndWord))
			}
			if isBackref {
				slot, err := strconv.Atoi(buf.String())
				if err != nil {
					return nil, fmt.Errorf("%w: back-reference index %q", ErrIndexOutOfRange, buf.String())
				}
				if letter, err = dict.lookup(slot); err != nil {
					return nil, fmt.Errorf("%w: slot %d", err, slot)
				}
			} else {
				letter = buf.String()
			}
			haveLetter = true
			buf.Reset()

		case textEndBlock:
			if !haveLetter {
				return nil, fmt.Errorf("%w: block closed before %q", ErrTruncatedStream, string(textEndWord))
			}
			nChildren, err := strconv.Atoi(buf.String())
			if err != nil || nChildren < 0 {
				return nil, fmt.Errorf("%w: child count %q", ErrTruncatedStream, buf.String())
			}

			slot := rollingHash(letter, d.codec.DictSize)
			dict.store(letter)
			if d.trace != nil {
				d.trace(index, slot, isBackref)
			}
			index++

			if err := builder.add(ngram.New(letter), nChildren); err != nil {
				return nil, err
			}

			buf.Reset()
			letter = ""
			haveLetter = false
			isBackref = false

		case textBackref:
			isBackref = true

		default:
			buf.WriteByte(c)
		}
	}

	if buf.Len() > 0 || haveLetter || isBackref {
		return nil, fmt.Errorf("%w: unterminated block at end of input", ErrTruncatedStream)
	}
	return builder.finish()
}

// DecodeText reconstructs a tree from its textual form using the default
// codec parameters.
func DecodeText(data string) (*ngram.Node, error) {
	d, err := NewDecoder(DefaultCodec())
	if err != nil {
		return nil, err
	}
	return d.DecodeText(data)
}

// checkTextWord enforces the textual word invariant: non-empty printable
// ASCII free of the three framing characters.
func checkTextWord(word string) error {
	if len(word) == 0 {
		return fmt.Errorf("%w: empty word", ErrIllegalByte)
	}
	for i := 0; i < len(word); i++ {
		switch c := word[i]; {
		case c == textEndWord, c == textEndBlock, c == textBackref:
			return fmt.Errorf("%w: framing character %q in %q", ErrIllegalByte, string(c), word)
		case c < minWordByte || c > maxPrintable:
			return fmt.Errorf("%w: 0x%02x in %q", ErrIllegalByte, c, word)
		}
	}
	return nil
}
