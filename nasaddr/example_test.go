// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nasaddr_test

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nasutil/nasutil/chaincfg"
	"github.com/nasutil/nasutil/keys"
	"github.com/nasutil/nasutil/nasaddr"
	"github.com/nasutil/nasutil/textcodec"
)

// This example demonstrates deriving the main network address of a public key.
func ExampleScheme_FromPublicKey() {
	scheme, err := chaincfg.MainNetParams().AddressScheme()
	if err != nil {
		fmt.Println(err)
		return
	}

	// Uncompressed secp256k1 public key.
	serialized, _ := hex.DecodeString("04fdd7d4ea6447fbe666eb0daabbabedf0" +
		"d5cff058f07c1a154d28c2f5afed6ed845a2ae0f28796388c2f9bfea2692dbbb2" +
		"346efa3f9d814030123d950fdccf1e6")
	pubKey, err := keys.ParsePublicKey(serialized, scheme.KeyType())
	if err != nil {
		fmt.Println(err)
		return
	}

	addr, err := scheme.FromPublicKey(pubKey)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(addr)
	fmt.Println(addr.TypeName())

	// Output:
	// n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wLY
	// normal
}

// This example demonstrates validating address text and determining the reason
// it is rejected.
func ExampleScheme_Decode() {
	scheme, err := chaincfg.MainNetParams().AddressScheme()
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, text := range []string{
		"n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wLY",
		"n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wLZ",
		"n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wL0",
	} {
		_, err := scheme.Decode(text)
		switch {
		case err == nil:
			fmt.Println("valid")
		case errors.Is(err, nasaddr.ErrChecksumMismatch):
			fmt.Println("checksum mismatch")
		case errors.Is(err, nasaddr.ErrMalformedEncoding):
			fmt.Println("malformed")
		default:
			fmt.Println(err)
		}
	}

	// Output:
	// valid
	// checksum mismatch
	// malformed
}

// This example demonstrates rendering the same address with a bech32 codec.
func ExampleScheme_WithCodec() {
	params := chaincfg.MainNetParams()
	scheme, err := params.AddressScheme()
	if err != nil {
		fmt.Println(err)
		return
	}
	codec, err := textcodec.NewBech32(params.Bech32HRP)
	if err != nil {
		fmt.Println(err)
		return
	}
	bech32Scheme, err := scheme.WithCodec(codec)
	if err != nil {
		fmt.Println(err)
		return
	}

	addr, err := scheme.Decode("n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wLY")
	if err != nil {
		fmt.Println(err)
		return
	}
	converted, err := bech32Scheme.FromBytes(addr.Bytes())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(converted)

	// Output:
	// nas1r9telskuxm0sz2rw5qud8lk6yvzq0qs3z0z8u2lmn5h97zny
}
