// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nasaddr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/nasutil/nasutil/hashes"
	"github.com/nasutil/nasutil/keys"
	"github.com/nasutil/nasutil/textcodec"
)

const (
	// ChecksumSize is the number of digest bytes appended to an address.
	ChecksumSize = 4

	// headerSize is the number of bytes occupied by the prefix and type.
	headerSize = 2
)

// SchemeParams defines the parameters of an address family.
type SchemeParams struct {
	// Name is a human-readable name of the family used in error messages.
	Name string

	// Prefix is the leading byte every address of the family carries.
	Prefix byte

	// Types maps the recognized type tags to human-readable names.
	Types map[byte]string

	// DefaultType is the type tag assigned to addresses derived from public
	// keys.  It must be one of Types.
	DefaultType byte

	// KeyType is the only public key type addresses may be derived from.
	KeyType keys.Type

	// Hasher provides the key hash and checksum digest.
	Hasher hashes.Provider

	// Codec renders addresses as text.
	Codec textcodec.Codec
}

// Scheme describes one address family and provides every operation on its
// addresses.  A Scheme is immutable once created and is safe for concurrent
// use.
type Scheme struct {
	name        string
	prefix      byte
	types       map[byte]string
	defaultType byte
	keyType     keys.Type
	hasher      hashes.Provider
	codec       textcodec.Codec

	// size is the total length of an address and maxTextLen is the longest
	// text the codec can produce for it.
	size       int
	maxTextLen int
}

// NewScheme returns a scheme for the provided parameters after ensuring they
// describe a usable address family.
func NewScheme(params SchemeParams) (*Scheme, error) {
	if params.Hasher == nil {
		str := fmt.Sprintf("scheme %q has no hasher", params.Name)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if params.Codec == nil {
		str := fmt.Sprintf("scheme %q has no text codec", params.Name)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if len(params.Types) == 0 {
		str := fmt.Sprintf("scheme %q recognizes no address types",
			params.Name)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if _, ok := params.Types[params.DefaultType]; !ok {
		str := fmt.Sprintf("scheme %q default type %#02x is not a recognized "+
			"type", params.Name, params.DefaultType)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if !params.KeyType.IsValid() {
		str := fmt.Sprintf("scheme %q requires unsupported key type %v",
			params.Name, params.KeyType)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if params.Hasher.DigestSize() < ChecksumSize {
		str := fmt.Sprintf("scheme %q digest is %d bytes which is shorter "+
			"than the %d byte checksum", params.Name,
			params.Hasher.DigestSize(), ChecksumSize)
		return nil, makeError(ErrInvalidScheme, str)
	}
	if params.Hasher.KeyHashSize() <= 0 {
		str := fmt.Sprintf("scheme %q key hash has no content", params.Name)
		return nil, makeError(ErrInvalidScheme, str)
	}

	types := make(map[byte]string, len(params.Types))
	for tag, name := range params.Types {
		types[tag] = name
	}
	size := headerSize + params.Hasher.KeyHashSize() + ChecksumSize
	s := &Scheme{
		name:        params.Name,
		prefix:      params.Prefix,
		types:       types,
		defaultType: params.DefaultType,
		keyType:     params.KeyType,
		hasher:      params.Hasher,
		codec:       params.Codec,
		size:        size,
		maxTextLen:  params.Codec.MaxEncodedLen(size),
	}
	if err := s.probeCodec(); err != nil {
		return nil, err
	}
	return s, nil
}

// probeCodec ensures the codec round-trips an address of the scheme's size.
func (s *Scheme) probeCodec() error {
	body := make([]byte, s.size-ChecksumSize)
	body[0], body[1] = s.prefix, s.defaultType
	probe := s.assemble(body)

	text := s.codec.Encode([]byte(probe.raw))
	decoded, err := s.codec.Decode(text)
	if err != nil || text == "" || !bytes.Equal(decoded, []byte(probe.raw)) {
		str := fmt.Sprintf("scheme %q codec %v can not round-trip %d byte "+
			"addresses", s.name, s.codec, s.size)
		return makeError(ErrInvalidScheme, str)
	}
	if len(text) > s.maxTextLen {
		str := fmt.Sprintf("scheme %q codec %v underestimates its encoded "+
			"length (%d > %d)", s.name, s.codec, len(text), s.maxTextLen)
		return makeError(ErrInvalidScheme, str)
	}
	return nil
}

// WithCodec returns a copy of the scheme that renders addresses with the
// provided codec instead.
func (s *Scheme) WithCodec(codec textcodec.Codec) (*Scheme, error) {
	return NewScheme(SchemeParams{
		Name:        s.name,
		Prefix:      s.prefix,
		Types:       s.types,
		DefaultType: s.defaultType,
		KeyType:     s.keyType,
		Hasher:      s.hasher,
		Codec:       codec,
	})
}

// Name returns the name of the address family.
func (s *Scheme) Name() string {
	return s.name
}

// String returns the name of the address family.
func (s *Scheme) String() string {
	return s.name
}

// Prefix returns the leading byte of every address of the family.
func (s *Scheme) Prefix() byte {
	return s.prefix
}

// DefaultType returns the type tag assigned to derived addresses.
func (s *Scheme) DefaultType() byte {
	return s.defaultType
}

// Types returns the recognized type tags in ascending order.
func (s *Scheme) Types() []byte {
	tags := make([]byte, 0, len(s.types))
	for tag := range s.types {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// TypeName returns the name of the provided type tag and whether it is
// recognized by the scheme.
func (s *Scheme) TypeName(tag byte) (string, bool) {
	name, ok := s.types[tag]
	return name, ok
}

// KeyType returns the public key type addresses are derived from.
func (s *Scheme) KeyType() keys.Type {
	return s.keyType
}

// Hasher returns the hash compositions of the family.
func (s *Scheme) Hasher() hashes.Provider {
	return s.hasher
}

// Codec returns the text codec of the family.
func (s *Scheme) Codec() textcodec.Codec {
	return s.codec
}

// Size returns the length in bytes of every address of the family.
func (s *Scheme) Size() int {
	return s.size
}

// checksum returns the checksum of the provided address content.
func (s *Scheme) checksum(content []byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	copy(sum[:], s.hasher.Digest(content))
	return sum
}

// assemble returns the address made of the provided body followed by its
// checksum.  The body must be exactly the size of the address without the
// checksum.
func (s *Scheme) assemble(body []byte) Address {
	buf := make([]byte, s.size)
	copy(buf, body)
	sum := s.checksum(body)
	copy(buf[len(body):], sum[:])
	return Address{scheme: s, raw: string(buf)}
}

// check ensures b is a well-formed address of the scheme.  The length, prefix,
// type, and checksum are checked in that order and the first failing check
// determines the returned error.
func (s *Scheme) check(b []byte) error {
	if len(b) != s.size {
		str := fmt.Sprintf("%s address is %d bytes vs required %d bytes",
			s.name, len(b), s.size)
		return makeError(ErrInvalidLength, str)
	}
	if b[0] != s.prefix {
		str := fmt.Sprintf("%s address prefix %#02x is not the required "+
			"%#02x", s.name, b[0], s.prefix)
		return makeError(ErrInvalidPrefix, str)
	}
	if _, ok := s.types[b[1]]; !ok {
		str := fmt.Sprintf("%s address type %#02x is not recognized", s.name,
			b[1])
		return makeError(ErrInvalidTypeTag, str)
	}

	split := s.size - ChecksumSize
	sum := s.checksum(b[:split])
	if !bytes.Equal(sum[:], b[split:]) {
		str := fmt.Sprintf("%s address checksum %x does not match the "+
			"computed checksum %x", s.name, b[split:], sum)
		return makeError(ErrChecksumMismatch, str)
	}
	return nil
}
