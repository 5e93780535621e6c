// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the network parameters for the public Nebulas test
// network.
func TestNetParams() *Params {
	return nebulasParams("testnet", 1001)
}

// LocalNetParams returns the network parameters for private development
// networks run on a single machine.
func LocalNetParams() *Params {
	return nebulasParams("localnet", 100)
}
