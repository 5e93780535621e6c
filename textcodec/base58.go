// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textcodec

import (
	"fmt"

	"github.com/decred/base58"
	mrbase58 "github.com/mr-tron/base58"
)

// Base58 encodes bytes with base58.  Base58 never pads its output.
//
// The zero value uses the Bitcoin alphabet.  A custom alphabet may be set via
// NewBase58Alphabet.
type Base58 struct {
	alphabet *mrbase58.Alphabet
	name     string
}

// Ensure Base58 implements the Codec interface.
var _ Codec = Base58{}

// NewBase58Alphabet returns a base58 codec that uses the provided 58 character
// alphabet.
func NewBase58Alphabet(alphabet string) (Base58, error) {
	if err := checkAlphabet(alphabet, 58); err != nil {
		return Base58{}, err
	}
	return Base58{
		alphabet: mrbase58.NewAlphabet(alphabet),
		name:     "base58(" + alphabet[:4] + "...)",
	}, nil
}

// Encode returns the base58 encoding of b.
//
// This is part of the Codec interface implementation.
func (c Base58) Encode(b []byte) string {
	if c.alphabet == nil {
		return base58.Encode(b)
	}
	return mrbase58.EncodeAlphabet(b, c.alphabet)
}

// Decode returns the bytes encoded by the base58 string s.
//
// This is part of the Codec interface implementation.
func (c Base58) Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	if c.alphabet == nil {
		// The decred implementation signals invalid characters by returning
		// no data for non-empty input.
		decoded := base58.Decode(s)
		if len(decoded) == 0 {
			str := fmt.Sprintf("%q is not valid base58", s)
			return nil, makeError(ErrMalformedText, str)
		}
		return decoded, nil
	}

	decoded, err := mrbase58.DecodeAlphabet(s, c.alphabet)
	if err != nil {
		str := fmt.Sprintf("%q is not valid base58: %v", s, err)
		return nil, makeError(ErrMalformedText, str)
	}
	return decoded, nil
}

// MaxEncodedLen returns the maximum number of characters needed to encode n
// bytes.  Each input byte expands to at most log_58(256) ~= 1.37 characters.
//
// This is part of the Codec interface implementation.
func (c Base58) MaxEncodedLen(n int) int {
	return n*138/100 + 1
}

// String is part of the Codec interface implementation.
func (c Base58) String() string {
	if c.name == "" {
		return "base58"
	}
	return c.name
}

// checkAlphabet ensures the alphabet consists of exactly size unique ASCII
// characters that are safe to embed in text.
func checkAlphabet(alphabet string, size int) error {
	if len(alphabet) != size {
		str := fmt.Sprintf("alphabet has %d characters instead of %d",
			len(alphabet), size)
		return makeError(ErrInvalidAlphabet, str)
	}
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c <= ' ' || c > '~' {
			str := fmt.Sprintf("alphabet character %q at index %d is not "+
				"printable ASCII", c, i)
			return makeError(ErrInvalidAlphabet, str)
		}
		if seen[c] {
			str := fmt.Sprintf("alphabet character %q is repeated", c)
			return makeError(ErrInvalidAlphabet, str)
		}
		seen[c] = true
	}
	return nil
}
