package ntsf

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngramtext/nts/ngram"
)

func testTextRoundTrip(t *testing.T, tree *ngram.Node) {
	t.Helper()

	data, err := EncodeText(tree)
	require.NoError(t, err)

	back, err := DecodeText(data)
	require.NoError(t, err)

	if !tree.DeepEquals(back) {
		t.Fatalf("textual round trip failed:\n  in:   %v\n  out:  %v\n  text: %s", tree, back, data)
	}
}

func TestTextSingleChild(t *testing.T) {
	tree := ngram.New("x")
	tree.AddWord("y")

	data, err := EncodeText(tree)
	require.NoError(t, err)
	require.Equal(t, "x|1]y|0]", data)

	back, err := DecodeText(data)
	require.NoError(t, err)
	assert.Equal(t, "x", back.Word())
	assert.Equal(t, []string{"y"}, back.ChildWords())
}

func TestTextBackreference(t *testing.T) {
	tree := ngram.New("a")
	tree.AddWord("a")
	tree.AddWord("b")

	data, err := EncodeText(tree)
	require.NoError(t, err)
	require.Contains(t, data, "}"+strconv.Itoa(rollingHash("a", DefaultDictSize)))

	testTextRoundTrip(t, tree)
}

func TestTextDecodeLiteralBackreference(t *testing.T) {
	root, err := DecodeText("a|2]}66|0]b|0]")
	require.NoError(t, err)
	assert.Equal(t, "a", root.Word())
	assert.Equal(t, []string{"a", "b"}, root.ChildWords())
}

func TestTextDecodeErrors(t *testing.T) {
	cases := map[string]error{
		"":            ErrEmptyStream,
		"x|1]":        ErrTruncatedStream, // promised child missing
		"x|1]y|0":     ErrTruncatedStream, // unterminated block
		"x|":          ErrTruncatedStream,
		"x|0]y|0]":    ErrTrailingData,
		"x|zz]":       ErrTruncatedStream, // non-numeric count
		"}9|0]":       ErrIndexOutOfRange, // nothing stored yet
		"x|1]}300|0]": ErrIndexOutOfRange, // beyond the dictionary
		"x|a|0]":      ErrIllegalByte,     // second separator
		"x]":          ErrTruncatedStream, // block closed before separator
	}
	for data, want := range cases {
		_, err := DecodeText(data)
		require.ErrorIs(t, err, want, "input %q", data)
	}
}

func TestTextEncodeRejectsFramingCharacters(t *testing.T) {
	for _, word := range []string{"", "a|b", "a]b", "a}b", "a\x01b"} {
		_, err := EncodeText(ngram.New(word))
		require.ErrorIs(t, err, ErrIllegalByte, "word %q", word)
	}
}

func TestTextRandomTreeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		testTextRoundTrip(t, ngram.RandomTree(rng, 10, 6, 10000))
	}
}

func TestCrossCodecAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	tree := ngram.RandomTree(rng, 8, 5, 3000)

	e, err := NewEncoder(DefaultCodec())
	require.NoError(t, err)
	d, err := NewDecoder(DefaultCodec())
	require.NoError(t, err)

	binary, err := e.EncodeToBytes(tree)
	require.NoError(t, err)
	text, err := e.EncodeText(tree)
	require.NoError(t, err)

	fromBinary, err := d.DecodeBytes(binary)
	require.NoError(t, err)
	fromText, err := d.DecodeText(text)
	require.NoError(t, err)

	assert.True(t, fromBinary.DeepEquals(fromText))
	assert.True(t, tree.DeepEquals(fromBinary))
}

func FuzzDecodeText(f *testing.F) {
	f.Add("")
	f.Add("x|1]y|0]")
	f.Add("a|2]}66|0]b|0]")
	f.Add("}}||]]")

	d, err := NewDecoder(DefaultCodec())
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, data string) {
		tree, err := d.DecodeText(data)
		if err == nil && tree == nil {
			t.Fatal("nil tree without error")
		}
	})
}
