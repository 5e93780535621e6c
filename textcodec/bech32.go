// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textcodec

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/bech32"
)

const (
	// maxBech32Len is the maximum total length of a bech32 string.
	maxBech32Len = 90

	// bech32ChecksumLen is the number of characters in a bech32 checksum.
	bech32ChecksumLen = 6
)

// Bech32 encodes bytes as a bech32 string with a fixed human-readable part.
type Bech32 struct {
	hrp string
}

// Ensure Bech32 implements the Codec interface.
var _ Codec = Bech32{}

// NewBech32 returns a bech32 codec that uses the provided human-readable part.
// The human-readable part is case insensitive and always rendered in lower
// case.
func NewBech32(hrp string) (Bech32, error) {
	if len(hrp) == 0 || len(hrp) > maxBech32Len-bech32ChecksumLen-1 {
		str := fmt.Sprintf("human-readable part length %d is out of range",
			len(hrp))
		return Bech32{}, makeError(ErrInvalidHRP, str)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("human-readable part character %q at index "+
				"%d is out of range", hrp[i], i)
			return Bech32{}, makeError(ErrInvalidHRP, str)
		}
	}
	return Bech32{hrp: strings.ToLower(hrp)}, nil
}

// HRP returns the human-readable part of the codec.
func (c Bech32) HRP() string {
	return c.hrp
}

// Encode returns the bech32 encoding of b.  An empty string is returned when b
// is too long to fit in a bech32 string.
//
// This is part of the Codec interface implementation.
func (c Bech32) Encode(b []byte) string {
	conv, err := bech32.ConvertBits(b, 8, 5, true)
	if err != nil {
		return ""
	}
	encoded, err := bech32.Encode(c.hrp, conv)
	if err != nil {
		return ""
	}
	return encoded
}

// Decode returns the bytes encoded by the bech32 string s after ensuring it
// carries the expected human-readable part.
//
// This is part of the Codec interface implementation.
func (c Bech32) Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	hrp, data, err := bech32.Decode(s)
	if err != nil {
		str := fmt.Sprintf("%q is not valid bech32: %v", s, err)
		return nil, makeError(ErrMalformedText, str)
	}
	if hrp != c.hrp {
		str := fmt.Sprintf("human-readable part %q does not match the "+
			"expected %q", hrp, c.hrp)
		return nil, makeError(ErrMismatchedHRP, str)
	}

	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("%q has invalid data padding: %v", s, err)
		return nil, makeError(ErrMalformedText, str)
	}
	return decoded, nil
}

// MaxEncodedLen is part of the Codec interface implementation.
func (c Bech32) MaxEncodedLen(n int) int {
	return len(c.hrp) + 1 + (n*8+4)/5 + bech32ChecksumLen
}

// String is part of the Codec interface implementation.
func (c Bech32) String() string {
	return "bech32(" + c.hrp + ")"
}
