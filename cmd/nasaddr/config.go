// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/nasutil/nasutil/chaincfg"
	"github.com/nasutil/nasutil/nasaddr"
	"github.com/nasutil/nasutil/textcodec"
)

const (
	defaultNetwork    = "mainnet"
	defaultCodec      = "base58"
	defaultLogLevel   = "info"
	defaultMaxLogRoll = 3

	// defaultLogRollKB is the size a log file grows to before it is rotated.
	defaultLogRollKB = 10 * 1024
)

// config defines the global options shared by every command.
type config struct {
	Network    string `short:"n" long:"network" description:"Network the addresses belong to {mainnet, testnet, localnet}"`
	Codec      string `short:"c" long:"codec" description:"Text encoding of addresses {base58, base32, bech32}"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile    string `long:"logfile" description:"Also write log output to this file and rotate it as it grows"`
}

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() config {
	return config{
		Network:    defaultNetwork,
		Codec:      defaultCodec,
		DebugLevel: defaultLogLevel,
	}
}

// addressScheme returns the address scheme of the configured network rendered
// with the configured codec.
func (cfg *config) addressScheme() (*nasaddr.Scheme, error) {
	params, err := chaincfg.ParamsByName(cfg.Network)
	if err != nil {
		return nil, err
	}
	codec, err := textcodec.ByName(cfg.Codec, params.Bech32HRP)
	if err != nil {
		return nil, err
	}
	params.AddressCodec = codec
	return params.AddressScheme()
}
