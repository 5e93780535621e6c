// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/nasutil/nasutil/hashes"
	"github.com/nasutil/nasutil/keys"
	"github.com/nasutil/nasutil/nasaddr"
	"github.com/nasutil/nasutil/textcodec"
)

const (
	// AddressPrefix is the leading byte of every Nebulas account address.  It
	// causes the base58 encoding of an address to start with "n".
	AddressPrefix = 0x19

	// NormalAddrType is the type tag of addresses controlled by a key pair.
	NormalAddrType = 0x57

	// ContractAddrType is the type tag of smart contract addresses.
	ContractAddrType = 0x58
)

// Params defines a Nebulas network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// ChainID is the identifier embedded in transactions to prevent replay
	// across networks.
	ChainID uint32

	// Address encoding parameters
	AddressPrefix    byte
	NormalAddrType   byte
	ContractAddrType byte
	AddressKeyType   keys.Type
	AddressHasher    hashes.Provider

	// AddressCodec is the codec addresses are rendered with.  Base58 with the
	// Bitcoin alphabet is used when it is nil.
	AddressCodec textcodec.Codec

	// Bech32HRP is the human-readable part used when addresses are rendered
	// as bech32 instead.
	Bech32HRP string
}

// AddressScheme returns the address scheme described by the parameters.
func (p *Params) AddressScheme() (*nasaddr.Scheme, error) {
	codec := p.AddressCodec
	if codec == nil {
		codec = textcodec.Base58{}
	}
	return nasaddr.NewScheme(nasaddr.SchemeParams{
		Name:   p.Name,
		Prefix: p.AddressPrefix,
		Types: map[byte]string{
			p.NormalAddrType:   "normal",
			p.ContractAddrType: "contract",
		},
		DefaultType: p.NormalAddrType,
		KeyType:     p.AddressKeyType,
		Hasher:      p.AddressHasher,
		Codec:       codec,
	})
}

// ParamsByName returns the parameters of the standard network with the
// provided name.
func ParamsByName(name string) (*Params, error) {
	for _, params := range []*Params{MainNetParams(), TestNetParams(),
		LocalNetParams()} {

		if params.Name == name {
			return params, nil
		}
	}
	return nil, fmt.Errorf("unknown network %q", name)
}

// nebulasParams returns the address parameters shared by every standard
// network.
func nebulasParams(name string, chainID uint32) *Params {
	return &Params{
		Name:             name,
		ChainID:          chainID,
		AddressPrefix:    AddressPrefix,
		NormalAddrType:   NormalAddrType,
		ContractAddrType: ContractAddrType,
		AddressKeyType:   keys.TypeSecp256k1Extended,
		AddressHasher:    hashes.Sha3Ripemd160,
		Bech32HRP:        "nas",
	}
}
