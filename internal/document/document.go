// Package document loads and stores the text file being repaired.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrInvalidUTF8 is returned when a UTF-8 document holds malformed bytes.
var ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

// Store reads and overwrites documents on fs using one text encoding.
type Store struct {
	fs       afero.Fs
	enc      encoding.Encoding
	encName  string
	strictU8 bool
}

// NewStore resolves encodingName (a WHATWG label such as "utf-8" or
// "windows-1252") and returns a Store backed by fsys.
func NewStore(fsys afero.Fs, encodingName string) (*Store, error) {
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = encodingName
	}
	return &Store{
		fs:       fsys,
		enc:      enc,
		encName:  name,
		strictU8: name == "utf-8",
	}, nil
}

// Encoding returns the canonical name of the store's encoding.
func (s *Store) Encoding() string {
	return s.encName
}

// Read loads the whole file at path and decodes it. The file is never created.
func (s *Store) Read(path string) (string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "", accessError("read", path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", accessError("read", path, err)
	}

	text, err := s.decode(raw)
	if err != nil {
		return "", &FileAccessError{Op: "decode", Kind: KindEncoding, Path: path, Err: err}
	}
	return text, nil
}

// Write encodes text and replaces the contents of path with it. Encoding
// happens before the file is opened, so an unencodable rune leaves the file
// untouched. A failure while writing may leave the file truncated.
func (s *Store) Write(path, text string) (err error) {
	raw, err := s.encode(text)
	if err != nil {
		return &FileAccessError{Op: "encode", Kind: KindEncoding, Path: path, Err: err}
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return accessError("write", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = accessError("write", path, cerr)
		}
	}()

	if _, err := f.Write(raw); err != nil {
		return accessError("write", path, err)
	}
	return nil
}

func (s *Store) decode(raw []byte) (string, error) {
	if s.strictU8 {
		if !utf8.Valid(raw) {
			return "", ErrInvalidUTF8
		}
		return string(raw), nil
	}
	out, err := s.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *Store) encode(text string) ([]byte, error) {
	if s.strictU8 {
		return []byte(text), nil
	}
	return s.enc.NewEncoder().Bytes([]byte(text))
}
