// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package textcodec provides the reversible text encodings used to render
// binary addresses for humans.
//
// Each codec maps an arbitrary byte sequence to a string over a restricted
// alphabet and back.  Decoding fails for text outside of the alphabet; it never
// returns partially decoded data along with an error.
package textcodec

import "fmt"

// Codec is a bijective mapping between byte sequences and text.
type Codec interface {
	// Encode returns the text encoding of b.
	Encode(b []byte) string

	// Decode returns the bytes encoded by s.  An empty string decodes to an
	// empty slice.
	Decode(s string) ([]byte, error)

	// MaxEncodedLen returns an upper bound on the length of the text encoding
	// of n bytes.
	MaxEncodedLen(n int) int

	// String returns a short name of the codec suitable for display.
	String() string
}

// ByName returns the default configuration of the codec with the provided
// name.  The bech32 codec requires a human-readable part and is therefore
// created with hrp.
func ByName(name, hrp string) (Codec, error) {
	switch name {
	case "base58":
		return Base58{}, nil
	case "base32":
		c, err := NewBase32("", false)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "bech32":
		c, err := NewBech32(hrp)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	str := fmt.Sprintf("unknown codec %q", name)
	return nil, makeError(ErrUnknownCodec, str)
}
