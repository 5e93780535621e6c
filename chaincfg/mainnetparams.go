// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Nebulas network.
func MainNetParams() *Params {
	return nebulasParams("mainnet", 1)
}
