// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hashes provides the digest compositions used to derive and checksum
account addresses.

An address family fixes two hash-based computations: the key hash, which
condenses a serialized public key into the address payload, and the checksum
digest, which is truncated and appended to the address to detect
transcription errors.  Both are bundled behind the Provider interface so a
family selects them together.  Substituting either one breaks compatibility
with every address previously issued by the family.

Two providers are available:

  - Sha3Ripemd160: checksum digest SHA3-256, key hash
    RIPEMD-160(SHA3-256(pubkey)).  This is the Nebulas composition.
  - Blake256Ripemd160: checksum digest BLAKE-256, key hash
    RIPEMD-160(BLAKE-256(pubkey)).  This is the Decred Hash160 composition.
*/
package hashes
