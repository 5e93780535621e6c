// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const (
	// secp256k1 key pair used throughout the tests.
	testPrivKeyHex = "d2fd0ec9f6268fc8d1f563e3e976436936708bdf0dc60c66f35890f5967a8d2b"
	testPubKeyHex  = "04fdd7d4ea6447fbe666eb0daabbabedf0d5cff058f07c1a154d28c2f5a" +
		"fed6ed845a2ae0f28796388c2f9bfea2692dbbb2346efa3f9d814030123d950fdccf1e6"
	testPubKeyCompHex = "02fdd7d4ea6447fbe666eb0daabbabedf0d5cff058f07c1a154d28c" +
		"2f5afed6ed8"

	// Well-known Ed25519 test account.
	aliceSeedHex   = "413f42575f7f26fad3317a778771212fdb80245850981e48b58a4f25e344e8f9"
	alicePubKeyHex = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
)

// TestParsePublicKey ensures public keys are validated against their declared
// type and that the canonical serialization is retained.
func TestParsePublicKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		typ  Type
		want string
		err  error
	}{{
		name: "uncompressed as extended",
		key:  testPubKeyHex,
		typ:  TypeSecp256k1Extended,
		want: testPubKeyHex,
	}, {
		name: "compressed as secp256k1",
		key:  testPubKeyCompHex,
		typ:  TypeSecp256k1,
		want: testPubKeyCompHex,
	}, {
		name: "compressed as extended",
		key:  testPubKeyCompHex,
		typ:  TypeSecp256k1Extended,
		err:  ErrInvalidPubKeyFormat,
	}, {
		name: "uncompressed as secp256k1",
		key:  testPubKeyHex,
		typ:  TypeSecp256k1,
		err:  ErrInvalidPubKeyFormat,
	}, {
		name: "not on curve",
		key:  "02" + "0000000000000000000000000000000000000000000000000000000000000005",
		typ:  TypeSecp256k1,
		err:  ErrInvalidPubKey,
	}, {
		name: "empty secp256k1",
		key:  "",
		typ:  TypeSecp256k1Extended,
		err:  ErrInvalidPubKey,
	}, {
		name: "ed25519",
		key:  alicePubKeyHex,
		typ:  TypeEd25519,
		want: alicePubKeyHex,
	}, {
		name: "ed25519 short",
		key:  alicePubKeyHex[:62],
		typ:  TypeEd25519,
		err:  ErrInvalidPubKeyFormat,
	}, {
		name: "unknown type",
		key:  testPubKeyHex,
		typ:  TypeUnknown,
		err:  ErrUnsupportedKeyType,
	}}

	for _, test := range tests {
		pk, err := ParsePublicKey(hexToBytes(test.key), test.typ)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			if pk.Type() != TypeUnknown {
				t.Errorf("%s: returned key %v along with an error", test.name,
					pk)
			}
			continue
		}
		if pk.Type() != test.typ {
			t.Errorf("%s: mismatched type -- got %v, want %v", test.name,
				pk.Type(), test.typ)
			continue
		}
		if got := hex.EncodeToString(pk.Serialize()); got != test.want {
			t.Errorf("%s: mismatched serialization -- got %s, want %s",
				test.name, got, test.want)
		}
	}
}

// TestPublicKeyFromPrivate ensures public keys are derived from private key
// material as expected.
func TestPublicKeyFromPrivate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		priv string
		typ  Type
		want string
		err  error
	}{{
		name: "secp256k1 extended",
		priv: testPrivKeyHex,
		typ:  TypeSecp256k1Extended,
		want: testPubKeyHex,
	}, {
		name: "secp256k1 compressed",
		priv: testPrivKeyHex,
		typ:  TypeSecp256k1,
		want: testPubKeyCompHex,
	}, {
		name: "ed25519 seed",
		priv: aliceSeedHex,
		typ:  TypeEd25519,
		want: alicePubKeyHex,
	}, {
		name: "short secp256k1 key",
		priv: testPrivKeyHex[:62],
		typ:  TypeSecp256k1Extended,
		err:  ErrInvalidPrivKey,
	}, {
		name: "zero secp256k1 key",
		priv: "0000000000000000000000000000000000000000000000000000000000000000",
		typ:  TypeSecp256k1Extended,
		err:  ErrInvalidPrivKey,
	}, {
		name: "secp256k1 key equal to group order",
		priv: "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		typ:  TypeSecp256k1,
		err:  ErrInvalidPrivKey,
	}, {
		name: "short ed25519 seed",
		priv: aliceSeedHex[:30],
		typ:  TypeEd25519,
		err:  ErrInvalidPrivKey,
	}, {
		name: "unknown type",
		priv: testPrivKeyHex,
		typ:  Type(99),
		err:  ErrUnsupportedKeyType,
	}}

	for _, test := range tests {
		pk, err := PublicKeyFromPrivate(hexToBytes(test.priv), test.typ)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			continue
		}
		if got := hex.EncodeToString(pk.Serialize()); got != test.want {
			t.Errorf("%s: mismatched public key -- got %s, want %s",
				test.name, got, test.want)
		}
	}
}

// TestGeneratePrivateKey ensures generated private keys are usable for every
// supported key type and that consecutive keys differ.
func TestGeneratePrivateKey(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TypeSecp256k1, TypeSecp256k1Extended, TypeEd25519} {
		priv1, err := GeneratePrivateKey(typ)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", typ, err)
		}
		priv2, err := GeneratePrivateKey(typ)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", typ, err)
		}
		if bytes.Equal(priv1, priv2) {
			t.Fatalf("%v: generated identical keys", typ)
		}
		pk, err := PublicKeyFromPrivate(priv1, typ)
		if err != nil {
			t.Fatalf("%v: unable to derive public key: %v", typ, err)
		}
		if _, err := ParsePublicKey(pk.Serialize(), typ); err != nil {
			t.Fatalf("%v: derived key does not parse: %v", typ, err)
		}
	}

	if _, err := GeneratePrivateKey(TypeUnknown); !errors.Is(err, ErrUnsupportedKeyType) {
		t.Fatalf("unknown type: got %v, want %v", err, ErrUnsupportedKeyType)
	}
}

// TestSerializeCopies ensures callers can not modify a parsed key through the
// returned serialization.
func TestSerializeCopies(t *testing.T) {
	t.Parallel()

	pk, err := ParsePublicKey(hexToBytes(testPubKeyHex), TypeSecp256k1Extended)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := pk.Serialize()
	b[1] ^= 0xff
	if hex.EncodeToString(pk.Serialize()) != testPubKeyHex {
		t.Fatal("public key modified through its serialization")
	}
}

// TestTypeStringer tests the stringized output and parsing of key types.
func TestTypeStringer(t *testing.T) {
	tests := []struct {
		in   Type
		want string
	}{
		{TypeSecp256k1, "secp256k1"},
		{TypeSecp256k1Extended, "secp256k1-extended"},
		{TypeEd25519, "ed25519"},
		{TypeUnknown, "Unknown Type (0)"},
		{Type(42), "Unknown Type (42)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
		if !test.in.IsValid() {
			continue
		}
		parsed, err := ParseType(result)
		if err != nil || parsed != test.in {
			t.Errorf("#%d: ParseType(%q) = %v, %v", i, result, parsed, err)
		}
	}

	if _, err := ParseType("rsa"); !errors.Is(err, ErrUnsupportedKeyType) {
		t.Errorf("ParseType(rsa): got %v, want %v", err, ErrUnsupportedKeyType)
	}
}
