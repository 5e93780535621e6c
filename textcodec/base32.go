// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textcodec

import (
	"encoding/base32"
	"fmt"
)

// RFC4648Alphabet is the standard base32 alphabet.
const RFC4648Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Base32 encodes bytes with base32 over a configurable alphabet with optional
// '=' padding.
type Base32 struct {
	enc     *base32.Encoding
	padding bool
}

// Ensure Base32 implements the Codec interface.
var _ Codec = (*Base32)(nil)

// NewBase32 returns a base32 codec for the provided 32 character alphabet.
// An empty alphabet selects RFC4648Alphabet.
func NewBase32(alphabet string, padding bool) (*Base32, error) {
	if alphabet == "" {
		alphabet = RFC4648Alphabet
	}
	if err := checkAlphabet(alphabet, 32); err != nil {
		return nil, err
	}
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == '=' {
			str := "alphabet must not contain the padding character"
			return nil, makeError(ErrInvalidAlphabet, str)
		}
	}

	enc := base32.NewEncoding(alphabet)
	if !padding {
		enc = enc.WithPadding(base32.NoPadding)
	}
	return &Base32{enc: enc, padding: padding}, nil
}

// Encode returns the base32 encoding of b.
//
// This is part of the Codec interface implementation.
func (c *Base32) Encode(b []byte) string {
	return c.enc.EncodeToString(b)
}

// Decode returns the bytes encoded by the base32 string s.
//
// This is part of the Codec interface implementation.
func (c *Base32) Decode(s string) ([]byte, error) {
	decoded, err := c.enc.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("%q is not valid base32: %v", s, err)
		return nil, makeError(ErrMalformedText, str)
	}

	// The decoder skips line breaks and ignores the unused low bits of the
	// final character, so only the canonical encoding is accepted.
	if c.enc.EncodeToString(decoded) != s {
		str := fmt.Sprintf("%q is not the canonical base32 encoding of its "+
			"data", s)
		return nil, makeError(ErrMalformedText, str)
	}
	return decoded, nil
}

// MaxEncodedLen is part of the Codec interface implementation.
func (c *Base32) MaxEncodedLen(n int) int {
	return c.enc.EncodedLen(n)
}

// String is part of the Codec interface implementation.
func (c *Base32) String() string {
	if c.padding {
		return "base32(padded)"
	}
	return "base32"
}
