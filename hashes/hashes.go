// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashes

import (
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Provider defines the hash functions an address family depends on.
// Implementations must be pure and safe for concurrent use.
type Provider interface {
	// Digest returns the checksum digest of the provided bytes.  The result
	// is always DigestSize bytes.
	Digest(b []byte) []byte

	// DigestSize returns the number of bytes produced by Digest.
	DigestSize() int

	// KeyHash returns the domain prefix followed by the hash of the
	// serialized public key.  The prefix is copied into the result verbatim
	// and is not itself hashed, so the result is always
	// len(prefix)+KeyHashSize bytes.
	KeyHash(prefix, serializedPubKey []byte) []byte

	// KeyHashSize returns the number of bytes the public key hash occupies
	// in the result of KeyHash, excluding the prefix.
	KeyHashSize() int

	// String returns a short human-readable name of the composition.
	String() string
}

// prefixed returns a new slice that holds prefix followed by hash.
func prefixed(prefix, hash []byte) []byte {
	b := make([]byte, 0, len(prefix)+len(hash))
	b = append(b, prefix...)
	return append(b, hash...)
}

// Hash160Sha3 calculates the hash ripemd160(sha3_256(b)).
func Hash160Sha3(b []byte) []byte {
	sha3Hash := sha3.Sum256(b)
	hasher := ripemd160.New()
	hasher.Write(sha3Hash[:])
	return hasher.Sum(nil)
}

// Hash160Blake256 calculates the hash ripemd160(blake256(b)).
func Hash160Blake256(b []byte) []byte {
	b256Hash := blake256.Sum256(b)
	hasher := ripemd160.New()
	hasher.Write(b256Hash[:])
	return hasher.Sum(nil)
}

// sha3Ripemd160 implements Provider with SHA3-256 checksums and
// RIPEMD-160(SHA3-256) key hashes.
type sha3Ripemd160 struct{}

// Sha3Ripemd160 is the provider used by Nebulas account addresses.
var Sha3Ripemd160 Provider = sha3Ripemd160{}

// Digest returns the SHA3-256 digest of b.
//
// This is part of the Provider interface implementation.
func (sha3Ripemd160) Digest(b []byte) []byte {
	digest := sha3.Sum256(b)
	return digest[:]
}

// DigestSize is part of the Provider interface implementation.
func (sha3Ripemd160) DigestSize() int {
	return 32
}

// KeyHash returns prefix || ripemd160(sha3_256(serializedPubKey)).
//
// This is part of the Provider interface implementation.
func (sha3Ripemd160) KeyHash(prefix, serializedPubKey []byte) []byte {
	return prefixed(prefix, Hash160Sha3(serializedPubKey))
}

// KeyHashSize is part of the Provider interface implementation.
func (sha3Ripemd160) KeyHashSize() int {
	return ripemd160.Size
}

// String is part of the Provider interface implementation.
func (sha3Ripemd160) String() string {
	return "sha3-256/ripemd160"
}

// blake256Ripemd160 implements Provider with BLAKE-256 checksums and
// RIPEMD-160(BLAKE-256) key hashes.
type blake256Ripemd160 struct{}

// Blake256Ripemd160 is a provider that composes the hashes the same way
// Decred does for its pubkey hash addresses.
var Blake256Ripemd160 Provider = blake256Ripemd160{}

// Digest returns the BLAKE-256 digest of b.
//
// This is part of the Provider interface implementation.
func (blake256Ripemd160) Digest(b []byte) []byte {
	digest := blake256.Sum256(b)
	return digest[:]
}

// DigestSize is part of the Provider interface implementation.
func (blake256Ripemd160) DigestSize() int {
	return blake256.Size
}

// KeyHash returns prefix || ripemd160(blake256(serializedPubKey)).
//
// This is part of the Provider interface implementation.
func (blake256Ripemd160) KeyHash(prefix, serializedPubKey []byte) []byte {
	return prefixed(prefix, Hash160Blake256(serializedPubKey))
}

// KeyHashSize is part of the Provider interface implementation.
func (blake256Ripemd160) KeyHashSize() int {
	return ripemd160.Size
}

// String is part of the Provider interface implementation.
func (blake256Ripemd160) String() string {
	return "blake256/ripemd160"
}
