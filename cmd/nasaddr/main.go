// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/nasutil/nasutil/nasaddr"
)

// app houses the parsed options and the streams shared by all commands.
type app struct {
	cfg    config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// scheme is the address scheme of the configured network.  It is set
	// before any command executes.
	scheme *nasaddr.Scheme
}

// newParser returns a parser for the global options and all commands.
func newParser(a *app) (*flags.Parser, error) {
	parser := flags.NewParser(&a.cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "nasaddr"
	parser.CommandHandler = a.runCommand

	commands := []struct {
		name  string
		short string
		long  string
		data  any
	}{{
		name:  "derive",
		short: "Derive the address of a key",
		long: "Derive the address of a public key, or of the public key " +
			"that belongs to a private key",
		data: &deriveCmd{app: a},
	}, {
		name:  "fromhash",
		short: "Assemble the address of a key hash",
		long: "Assemble the address of the given type for an existing key " +
			"hash",
		data: &fromHashCmd{app: a, Type: "normal"},
	}, {
		name:  "validate",
		short: "Validate addresses",
		long: "Report whether each address is valid and the reason invalid " +
			"addresses are rejected",
		data: &validateCmd{app: a},
	}, {
		name:  "decode",
		short: "Show the fields of an address",
		long:  "Decode an address and show each of its fields",
		data:  &decodeCmd{app: a},
	}, {
		name:  "generate",
		short: "Generate new keys and their addresses",
		long:  "Generate random private keys and show them with their addresses",
		data:  &generateCmd{app: a, Count: 1},
	}, {
		name:  "version",
		short: "Show the version",
		long:  "Show the version of the utility",
		data:  &versionCmd{app: a},
	}}
	for _, cmd := range commands {
		_, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data)
		if err != nil {
			return nil, err
		}
	}
	return parser, nil
}

// runCommand applies the global options and then executes the command.
func (a *app) runCommand(cmd flags.Commander, args []string) error {
	if cmd == nil {
		return nil
	}

	closeLog, err := a.initLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	scheme, err := a.cfg.addressScheme()
	if err != nil {
		return err
	}
	a.scheme = scheme
	log.Debugf("Using %s addresses encoded as %v", scheme, scheme.Codec())

	return cmd.Execute(args)
}

// run parses the arguments and executes the requested command.  Errors are
// written to stderr and returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{
		cfg:    defaultConfig(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	parser, err := newParser(a)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	_, err = parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return nil
		}
		fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
