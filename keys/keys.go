// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys provides typed public keys for address derivation.
//
// A PublicKey couples a serialized key with the curve and serialization format
// it was validated against, so address schemes can reject keys of any other
// type before hashing them.
package keys

import (
	"crypto/ed25519"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Type identifies the curve and serialization format of a public key.
type Type uint8

// These constants define the supported key types.
const (
	// TypeUnknown is the zero value and is never valid.
	TypeUnknown Type = iota

	// TypeSecp256k1 is a secp256k1 public key in the 33-byte compressed
	// format.
	TypeSecp256k1

	// TypeSecp256k1Extended is a secp256k1 public key in the 65-byte
	// uncompressed format.
	TypeSecp256k1Extended

	// TypeEd25519 is a 32-byte Ed25519 public key.
	TypeEd25519
)

// typeStrings maps key types to their human-readable names.
var typeStrings = map[Type]string{
	TypeSecp256k1:         "secp256k1",
	TypeSecp256k1Extended: "secp256k1-extended",
	TypeEd25519:           "ed25519",
}

// String returns the Type as a human-readable name.
func (t Type) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Type (%d)", uint8(t))
}

// IsValid returns whether t is one of the supported key types.
func (t Type) IsValid() bool {
	_, ok := typeStrings[t]
	return ok
}

// ParseType returns the key type with the provided name.
func ParseType(name string) (Type, error) {
	for t, s := range typeStrings {
		if s == name {
			return t, nil
		}
	}
	str := fmt.Sprintf("unknown key type %q", name)
	return TypeUnknown, makeError(ErrUnsupportedKeyType, str)
}

// PublicKey is a validated public key along with its type.  The zero value is
// not a valid key.
type PublicKey struct {
	typ  Type
	data []byte
}

// ParsePublicKey parses a serialized public key and ensures it is both a valid
// point on the curve associated with typ and serialized in the format typ
// requires.
func ParsePublicKey(serialized []byte, typ Type) (PublicKey, error) {
	switch typ {
	case TypeSecp256k1, TypeSecp256k1Extended:
		// Attempt to parse the provided public key to ensure it is both a
		// valid serialization and that it is a valid point on the secp256k1
		// curve.
		pubKey, err := secp256k1.ParsePubKey(serialized)
		if err != nil {
			str := fmt.Sprintf("failed to parse public key: %v", err)
			return PublicKey{}, makeError(ErrInvalidPubKey, str)
		}

		// The pubkey is known to be valid since it parsed above, so it's safe
		// to examine the leading byte to get the format.  Hybrid keys are
		// rejected by the parser, so the key is either compressed or
		// uncompressed here.
		wantUncompressed := typ == TypeSecp256k1Extended
		isUncompressed := serialized[0] == secp256k1.PubKeyFormatUncompressed
		if wantUncompressed != isUncompressed {
			str := fmt.Sprintf("serialized public key %x is not a valid %v "+
				"format", serialized, typ)
			return PublicKey{}, makeError(ErrInvalidPubKeyFormat, str)
		}

		if typ == TypeSecp256k1Extended {
			return PublicKey{typ: typ, data: pubKey.SerializeUncompressed()}, nil
		}
		return PublicKey{typ: typ, data: pubKey.SerializeCompressed()}, nil

	case TypeEd25519:
		if len(serialized) != ed25519.PublicKeySize {
			str := fmt.Sprintf("ed25519 public key is %d bytes vs required "+
				"%d bytes", len(serialized), ed25519.PublicKeySize)
			return PublicKey{}, makeError(ErrInvalidPubKeyFormat, str)
		}
		pubKey, err := edwards.ParsePubKey(serialized)
		if err != nil {
			str := fmt.Sprintf("failed to parse public key: %v", err)
			return PublicKey{}, makeError(ErrInvalidPubKey, str)
		}
		return PublicKey{typ: typ, data: pubKey.Serialize()}, nil
	}

	str := fmt.Sprintf("key type %v is not supported", typ)
	return PublicKey{}, makeError(ErrUnsupportedKeyType, str)
}

// PublicKeyFromPrivate derives the public key of the requested type from
// private key material.  For secp256k1 types the material is the 32-byte
// scalar.  For Ed25519 it is the 32-byte seed.
func PublicKeyFromPrivate(privKey []byte, typ Type) (PublicKey, error) {
	switch typ {
	case TypeSecp256k1, TypeSecp256k1Extended:
		if len(privKey) != secp256k1.PrivKeyBytesLen {
			str := fmt.Sprintf("private key is %d bytes vs required %d bytes",
				len(privKey), secp256k1.PrivKeyBytesLen)
			return PublicKey{}, makeError(ErrInvalidPrivKey, str)
		}
		priv := secp256k1.PrivKeyFromBytes(privKey)
		defer priv.Zero()
		if priv.Key.IsZero() {
			str := "private key is zero modulo the group order"
			return PublicKey{}, makeError(ErrInvalidPrivKey, str)
		}
		pubKey := priv.PubKey()
		if typ == TypeSecp256k1Extended {
			return PublicKey{typ: typ, data: pubKey.SerializeUncompressed()}, nil
		}
		return PublicKey{typ: typ, data: pubKey.SerializeCompressed()}, nil

	case TypeEd25519:
		if len(privKey) != ed25519.SeedSize {
			str := fmt.Sprintf("ed25519 seed is %d bytes vs required %d bytes",
				len(privKey), ed25519.SeedSize)
			return PublicKey{}, makeError(ErrInvalidPrivKey, str)
		}
		expanded := ed25519.NewKeyFromSeed(privKey)
		defer zero(expanded)
		return ParsePublicKey(expanded.Public().(ed25519.PublicKey), typ)
	}

	str := fmt.Sprintf("key type %v is not supported", typ)
	return PublicKey{}, makeError(ErrUnsupportedKeyType, str)
}

// GeneratePrivateKey returns new random private key material suitable for
// PublicKeyFromPrivate with the provided key type.
func GeneratePrivateKey(typ Type) ([]byte, error) {
	if !typ.IsValid() {
		str := fmt.Sprintf("key type %v is not supported", typ)
		return nil, makeError(ErrUnsupportedKeyType, str)
	}

	var buf [32]byte
	for {
		rand.Read(buf[:])
		if typ == TypeEd25519 {
			break
		}

		// Reject the negligible chance of a scalar that is zero or overflows
		// the group order.
		var scalar secp256k1.ModNScalar
		overflow := scalar.SetByteSlice(buf[:])
		if !overflow && !scalar.IsZero() {
			break
		}
	}
	priv := make([]byte, len(buf))
	copy(priv, buf[:])
	zero(buf[:])
	return priv, nil
}

// Type returns the type of the key.
func (k PublicKey) Type() Type {
	return k.typ
}

// Serialize returns a copy of the canonical serialization of the key for its
// type.
func (k PublicKey) Serialize() []byte {
	b := make([]byte, len(k.data))
	copy(b, k.data)
	return b
}

// String returns the key type and hex-encoded serialization.
func (k PublicKey) String() string {
	return fmt.Sprintf("%v:%x", k.typ, k.data)
}

// zero overwrites the provided slice with zeros.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
