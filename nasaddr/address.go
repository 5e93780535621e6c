// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nasaddr

import (
	"fmt"

	"github.com/nasutil/nasutil/keys"
)

// Address is an immutable, validated account address of a specific scheme.
//
// The zero value is not a valid address.  Addresses are comparable with == and
// two addresses are equal when they belong to the same scheme and have the
// same bytes.
type Address struct {
	scheme *Scheme

	// raw holds the address bytes.  A string is used so the bytes can not be
	// modified once the address is created.
	raw string
}

// FromPublicKey derives the address of the scheme's default type for the
// provided public key.
//
// The key must be of the type required by the scheme or an error with the
// kind ErrInvalidKeyType is returned.
func (s *Scheme) FromPublicKey(pubKey keys.PublicKey) (Address, error) {
	if pubKey.Type() != s.keyType {
		str := fmt.Sprintf("%s addresses require a %v public key instead of "+
			"%v", s.name, s.keyType, pubKey.Type())
		return Address{}, makeError(ErrInvalidKeyType, str)
	}

	// The body of the address is:
	//   prefix || default type || hash of the serialized public key
	header := []byte{s.prefix, s.defaultType}
	body := s.hasher.KeyHash(header, pubKey.Serialize())
	if len(body) != s.size-ChecksumSize {
		str := fmt.Sprintf("%s key hash is %d bytes vs required %d bytes",
			s.name, len(body)-headerSize, s.size-ChecksumSize-headerSize)
		return Address{}, makeError(ErrInvalidHashLen, str)
	}
	return s.assemble(body), nil
}

// FromKeyHash returns the address of the provided type for an existing key
// hash.  This is useful to construct addresses of types other than the default
// one, such as contract addresses.
func (s *Scheme) FromKeyHash(addrType byte, keyHash []byte) (Address, error) {
	if _, ok := s.types[addrType]; !ok {
		str := fmt.Sprintf("%s address type %#02x is not recognized", s.name,
			addrType)
		return Address{}, makeError(ErrInvalidTypeTag, str)
	}
	if len(keyHash) != s.hasher.KeyHashSize() {
		str := fmt.Sprintf("%s key hash is %d bytes vs required %d bytes",
			s.name, len(keyHash), s.hasher.KeyHashSize())
		return Address{}, makeError(ErrInvalidHashLen, str)
	}

	body := make([]byte, 0, s.size-ChecksumSize)
	body = append(body, s.prefix, addrType)
	body = append(body, keyHash...)
	return s.assemble(body), nil
}

// FromBytes returns the address encoded by b after ensuring it is well formed.
// The length, prefix, type, and checksum are verified in that order and the
// returned error has the kind of the first check that failed.
//
// The address holds its own copy of the bytes.
func (s *Scheme) FromBytes(b []byte) (Address, error) {
	if err := s.check(b); err != nil {
		return Address{}, err
	}
	return Address{scheme: s, raw: string(b)}, nil
}

// Decode parses the text encoding of an address of the scheme.
//
// Text that the scheme's codec can not decode, or that decodes to no data,
// results in an error with the kind ErrMalformedEncoding.  Otherwise the
// decoded bytes are verified the same way as FromBytes.
func (s *Scheme) Decode(text string) (Address, error) {
	// The text must not be longer than the longest possible encoding of an
	// address so that arbitrarily large input is rejected before decoding.
	if len(text) > s.maxTextLen {
		str := fmt.Sprintf("failed to decode %s address %q...: len %d exceeds "+
			"max allowed %d", s.name, text[:s.maxTextLen], len(text),
			s.maxTextLen)
		return Address{}, makeError(ErrMalformedEncoding, str)
	}

	decoded, err := s.codec.Decode(text)
	if err != nil {
		str := fmt.Sprintf("failed to decode %s address %q: %v", s.name, text,
			err)
		return Address{}, makeError(ErrMalformedEncoding, str)
	}
	if len(decoded) == 0 {
		str := fmt.Sprintf("%s address %q decoded data is empty", s.name, text)
		return Address{}, makeError(ErrMalformedEncoding, str)
	}

	return s.FromBytes(decoded)
}

// IsValid returns whether the provided text is the encoding of a well-formed
// address of the scheme.  It never fails; the reason for rejecting the text is
// only logged at the trace level.
func (s *Scheme) IsValid(text string) bool {
	if _, err := s.Decode(text); err != nil {
		log.Tracef("Rejected %s address text %q: %v", s.name, text, err)
		return false
	}
	return true
}

// IsValidBytes returns whether b is a well-formed address of the scheme.
func (s *Scheme) IsValidBytes(b []byte) bool {
	if err := s.check(b); err != nil {
		log.Tracef("Rejected %s address bytes %x: %v", s.name, b, err)
		return false
	}
	return true
}

// Scheme returns the scheme the address belongs to.
func (a Address) Scheme() *Scheme {
	return a.scheme
}

// IsZero returns whether the address is the zero value.
func (a Address) IsZero() bool {
	return a.scheme == nil
}

// String returns the text encoding of the address using its scheme's codec.
// The zero address encodes to an empty string.
func (a Address) String() string {
	if a.scheme == nil {
		return ""
	}
	return a.scheme.codec.Encode([]byte(a.raw))
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	return []byte(a.raw)
}

// Prefix returns the family prefix byte of the address.
func (a Address) Prefix() byte {
	if a.scheme == nil {
		return 0
	}
	return a.raw[0]
}

// Type returns the type tag of the address.
func (a Address) Type() byte {
	if a.scheme == nil {
		return 0
	}
	return a.raw[1]
}

// TypeName returns the name the scheme gives to the address type.
func (a Address) TypeName() string {
	if a.scheme == nil {
		return ""
	}
	name, _ := a.scheme.TypeName(a.raw[1])
	return name
}

// KeyHash returns a copy of the key hash of the address.
func (a Address) KeyHash() []byte {
	if a.scheme == nil {
		return nil
	}
	return []byte(a.raw[headerSize : len(a.raw)-ChecksumSize])
}

// Checksum returns the checksum of the address.
func (a Address) Checksum() [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	if a.scheme != nil {
		copy(sum[:], a.raw[len(a.raw)-ChecksumSize:])
	}
	return sum
}
