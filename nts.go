// Package nts loads and saves n-gram trees serialized in the NTS format.
// It picks the binary or textual form by file content on the way in (the
// binary form starts with the 'ntsf' magic) and by file extension on the
// way out.
package nts

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ngramtext/nts/ngram"
	"github.com/ngramtext/nts/ntsf"
)

// Recognized file extensions. Either may hold either form; the extension
// only decides what Save writes.
const (
	ExtBinary = ".nts"
	ExtText   = ".ngrams"
)

// Load reads a serialized tree from path. Files starting with the 'ntsf'
// magic are decoded as binary, anything else as text.
func Load(path string) (*ngram.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if ntsf.HasMagic(data) {
		root, err := ntsf.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Int("bytes", len(data)).Int("nodes", root.BranchSize()).Msg("loaded binary tree")
		return root, nil
	}

	root, err := ntsf.DecodeText(string(data))
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Int("nodes", root.BranchSize()).Msg("loaded textual tree")
	return root, nil
}

// Save writes the tree rooted at root to path: textual for ExtText,
// binary for everything else. The file is written to a temporary in the
// same directory and renamed into place, so a failed save never clobbers
// an existing file.
func Save(path string, root *ngram.Node) error {
	if filepath.Ext(path) == ExtText {
		return SaveText(path, root)
	}
	return SaveBinary(path, root)
}

// SaveBinary writes the binary form regardless of extension.
func SaveBinary(path string, root *ngram.Node) error {
	e, err := ntsf.NewEncoder(ntsf.DefaultCodec())
	if err != nil {
		return err
	}
	data, err := e.EncodeToBytes(root)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// SaveText writes the textual form regardless of extension.
func SaveText(path string, root *ngram.Node) error {
	data, err := ntsf.EncodeText(root)
	if err != nil {
		return err
	}
	return writeAtomic(path, []byte(data))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved tree")
	return nil
}
