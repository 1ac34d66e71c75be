package ntsf

const hashPower = 97

// rollingHash maps a word to a dictionary slot in [0, modulo). Encoder and
// decoder must agree on it byte for byte, so it is fixed by the format:
// h = Σ (c[i] - 0x20 + 1) * 97^i mod N, everything reduced mod N as it
// accumulates.
func rollingHash(word string, modulo int) int {
	hash := 0
	pow := 1
	for i := 0; i < len(word); i++ {
		hash = (hash + (int(word[i])-minWordByte+1)*pow) % modulo
		pow = (pow * hashPower) % modulo
	}
	return hash
}

// dictionary is the back-reference table: one slot per hash value, each
// holding the most recently seen word that hashed there. Both sides of the
// codec run the same update once per node in emission order, which keeps
// the tables in lockstep without ever serializing them.
type dictionary struct {
	slots  []string
	filled []bool
}

func newDictionary(size int) *dictionary {
	return &dictionary{
		slots:  make([]string, size),
		filled: make([]bool, size),
	}
}

// hit reports whether the slot for word currently holds word, returning
// the slot either way.
func (d *dictionary) hit(word string) (int, bool) {
	slot := rollingHash(word, len(d.slots))
	return slot, d.filled[slot] && d.slots[slot] == word
}

// store writes word into its own slot, evicting any colliding occupant.
func (d *dictionary) store(word string) {
	slot := rollingHash(word, len(d.slots))
	d.slots[slot] = word
	d.filled[slot] = true
}

// lookup resolves a back-reference index read off the wire.
func (d *dictionary) lookup(index int) (string, error) {
	if index < 0 || index >= len(d.slots) {
		return "", ErrIndexOutOfRange
	}
	if !d.filled[index] {
		return "", ErrIndexOutOfRange
	}
	return d.slots[index], nil
}
