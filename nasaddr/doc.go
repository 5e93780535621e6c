// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package nasaddr provides facilities for deriving, encoding, and validating
checksummed account addresses.

# Address Layout

An address is a fixed-size byte sequence made up of, from left to right:

	prefix (1 byte) || type (1 byte) || key hash || checksum (4 bytes)

The prefix identifies the address family, the type distinguishes kinds of
accounts within the family (for example normal and contract accounts), the key
hash is the hash of the public key that controls the account, and the checksum
is the first four bytes of the digest of everything before it.

# Schemes

A Scheme holds the parameters of one address family: the prefix, the
recognized type tags, the required public key type, the hash compositions, and
the text codec.  Every operation is a method on a Scheme, so supporting another
family only requires another set of parameters.  The chaincfg package provides
the parameters of the Nebulas networks.

# Derivation and Validation

Scheme.FromPublicKey derives an address from a public key and computes its
checksum.  Scheme.Decode and Scheme.FromBytes parse an address from text or
bytes and verify the length, prefix, type, and checksum in that order,
returning an Error whose kind identifies the first check that failed.
Scheme.IsValid and Scheme.IsValidBytes answer the same question as a boolean.
Both forms are backed by the same checks, so they never disagree.

Schemes and addresses are immutable and safe for concurrent use.
*/
package nasaddr
