// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package main

import (
	"flag"
	"fmt"
	"os"
)

const usage = `Usage:
    ringsig-cli prove <message-file>
    ringsig-cli verify <message-file>
    ringsig-cli is-secret-key [<key-file>]
    ringsig-cli keygen [-o FILE]

prove reads a JSON bundle {"authors": [{"keys": [...], ...}], "secret-key": <path>}
from -bundle (default stdin) naming the ring and the signer's secret key PEM
path, and <message-file> as the message bytes ("-" for stdin). It writes the
hex proof to stdout.

verify reads the same bundle shape plus "proof": <hex>, and <message-file> as
the message bytes. It exits 0 and prints nothing on success, or prints the
failure reason to stderr and exits 1.

is-secret-key reads PEM text from <key-file> (default stdin) and exits 0 if it
parses as an unencrypted OpenSSH ed25519 secret key, 1 otherwise.

keygen writes a fresh OpenSSH ed25519 keypair to FILE and FILE.pub (default
"ringsig-key" and "ringsig-key.pub").`

func main() {
	flag.Usage = func() { fmt.Fprintf(os.Stderr, "%s\n", usage) }

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "prove":
		runProve(args)
	case "verify":
		runVerify(args)
	case "is-secret-key":
		runIsSecretKey(args)
	case "keygen":
		runKeygen(args)
	case "-h", "--help", "help":
		flag.Usage()
	default:
		fmt.Fprintf(os.Stderr, "ringsig-cli: unknown subcommand %q\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
}
