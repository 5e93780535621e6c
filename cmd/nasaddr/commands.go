// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nasutil/nasutil/internal/version"
	"github.com/nasutil/nasutil/keys"
	"golang.org/x/term"
)

// unexpectedArgs returns the error for arguments left over after parsing.
func unexpectedArgs(args []string) error {
	return fmt.Errorf("unexpected arguments %q", args)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0x00
	}
}

// decodeHex decodes the hex string s and describes what failed to decode in
// the error.
func decodeHex(what string, s []byte) ([]byte, error) {
	b := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b, s); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", what, err)
	}
	return b, nil
}

// promptSecret reads a secret from stdin.  Terminal input is not echoed.
func (a *app) promptSecret(prompt string) ([]byte, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.stderr, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprint(a.stderr, "\n")
		if err != nil {
			return nil, fmt.Errorf("unable to read secret: %w", err)
		}
		return secret, nil
	}

	line, err := bufio.NewReader(a.stdin).ReadBytes('\n')
	if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
		return nil, fmt.Errorf("unable to read secret: %w", err)
	}
	secret := bytes.TrimSpace(line)
	if len(secret) == 0 {
		zero(line)
		return nil, errors.New("unable to read secret: empty input")
	}
	return secret, nil
}

// deriveCmd derives the address of a public or private key.
type deriveCmd struct {
	app *app

	PubKey  string `long:"pubkey" description:"Hex-encoded public key in the format required by the network"`
	PrivKey string `long:"privkey" description:"Hex-encoded private key"`
	Prompt  bool   `long:"prompt" description:"Read the hex-encoded private key from the terminal without echo"`
}

// Execute derives and prints the address.
func (c *deriveCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}
	var sources int
	for _, set := range []bool{c.PubKey != "", c.PrivKey != "", c.Prompt} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("exactly one of --pubkey, --privkey, or --prompt " +
			"is required")
	}

	scheme := c.app.scheme
	var pubKey keys.PublicKey
	if c.PubKey != "" {
		serialized, err := decodeHex("public key", []byte(c.PubKey))
		if err != nil {
			return err
		}
		pubKey, err = keys.ParsePublicKey(serialized, scheme.KeyType())
		if err != nil {
			return err
		}
	} else {
		secret := []byte(c.PrivKey)
		if c.Prompt {
			var err error
			secret, err = c.app.promptSecret("Private key: ")
			if err != nil {
				return err
			}
		}
		privKey, err := decodeHex("private key", secret)
		zero(secret)
		if err != nil {
			return err
		}
		pubKey, err = keys.PublicKeyFromPrivate(privKey, scheme.KeyType())
		zero(privKey)
		if err != nil {
			return err
		}
	}

	addr, err := scheme.FromPublicKey(pubKey)
	if err != nil {
		return err
	}
	log.Debugf("Derived %s address from public key %v", addr.TypeName(),
		pubKey)
	fmt.Fprintln(c.app.stdout, addr)
	return nil
}

// fromHashCmd assembles the address of an existing key hash.
type fromHashCmd struct {
	app *app

	KeyHash string `long:"keyhash" description:"Hex-encoded key hash" required:"true"`
	Type    string `long:"type" description:"Address type {normal, contract}"`
}

// Execute assembles and prints the address.
func (c *fromHashCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}

	scheme := c.app.scheme
	var addrType byte
	var found bool
	for _, tag := range scheme.Types() {
		if name, _ := scheme.TypeName(tag); name == c.Type {
			addrType, found = tag, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown address type %q", c.Type)
	}

	keyHash, err := decodeHex("key hash", []byte(c.KeyHash))
	if err != nil {
		return err
	}
	addr, err := scheme.FromKeyHash(addrType, keyHash)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.app.stdout, addr)
	return nil
}

// validateCmd reports whether addresses are valid.
type validateCmd struct {
	app *app

	Args struct {
		Addresses []string `positional-arg-name:"address" required:"1"`
	} `positional-args:"true"`
}

// Execute validates every address.  An error is returned when any of them is
// invalid.
func (c *validateCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}

	var numInvalid int
	for _, text := range c.Args.Addresses {
		if _, err := c.app.scheme.Decode(text); err != nil {
			numInvalid++
			fmt.Fprintf(c.app.stdout, "%s: invalid (%v)\n", text, err)
			continue
		}
		fmt.Fprintf(c.app.stdout, "%s: valid\n", text)
	}
	if numInvalid != 0 {
		return fmt.Errorf("%d of %d addresses are invalid", numInvalid,
			len(c.Args.Addresses))
	}
	return nil
}

// decodeCmd shows the fields of an address.
type decodeCmd struct {
	app *app

	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"true" required:"true"`
}

// Execute decodes the address and prints its fields.
func (c *decodeCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}

	scheme := c.app.scheme
	addr, err := scheme.Decode(c.Args.Address)
	if err != nil {
		return err
	}
	sum := addr.Checksum()
	w := c.app.stdout
	fmt.Fprintf(w, "address:  %s\n", addr)
	fmt.Fprintf(w, "network:  %s\n", scheme)
	fmt.Fprintf(w, "codec:    %v\n", scheme.Codec())
	fmt.Fprintf(w, "prefix:   %#02x\n", addr.Prefix())
	fmt.Fprintf(w, "type:     %#02x (%s)\n", addr.Type(), addr.TypeName())
	fmt.Fprintf(w, "key hash: %x\n", addr.KeyHash())
	fmt.Fprintf(w, "checksum: %x\n", sum[:])
	fmt.Fprintf(w, "bytes:    %x\n", addr.Bytes())
	return nil
}

// generateCmd generates new keys along with their addresses.
type generateCmd struct {
	app *app

	Count uint `long:"count" description:"Number of keys to generate"`
}

// Execute generates the keys and prints each private key with its address.
func (c *generateCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}

	scheme := c.app.scheme
	for i := uint(0); i < c.Count; i++ {
		privKey, err := keys.GeneratePrivateKey(scheme.KeyType())
		if err != nil {
			return err
		}
		pubKey, err := keys.PublicKeyFromPrivate(privKey, scheme.KeyType())
		if err != nil {
			zero(privKey)
			return err
		}
		addr, err := scheme.FromPublicKey(pubKey)
		if err != nil {
			zero(privKey)
			return err
		}
		fmt.Fprintf(c.app.stdout, "%x %s\n", privKey, addr)
		zero(privKey)
	}
	log.Debugf("Generated %d %s keys", c.Count, scheme.KeyType())
	return nil
}

// versionCmd shows the version of the utility.
type versionCmd struct {
	app *app
}

// Execute prints the version.
func (c *versionCmd) Execute(args []string) error {
	if len(args) != 0 {
		return unexpectedArgs(args)
	}
	fmt.Fprintf(c.app.stdout, "nasaddr version %s\n", version.String())
	return nil
}
