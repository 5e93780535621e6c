// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main Nebulas network, there also exist the public test
// network and local development networks.  Addresses share the same format on
// every network, so the networks are distinguished by their chain identifiers
// which are embedded in signed transactions rather than in addresses.
//
// For main packages, a (typically global) var may be assigned one of the
// standard Params for use as the application's "active" network.  When an
// address needs to be derived or checked, the address scheme is obtained from
// the active parameters.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/nasutil/nasutil/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on testnet.
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// later...
//
//		scheme, err := chainParams.AddressScheme()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(scheme.IsValid("n1V5bB2tbaM3FUiL4eRwpBLgEredS5C2wLY"))
//	}
//
// If an application does not use one of the standard networks, a new Params
// struct may be created which defines the parameters for the non-standard
// network.
package chaincfg
