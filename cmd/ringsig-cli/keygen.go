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

	"github.com/credible-confessions/ringsig/internal/logger"
	"github.com/credible-confessions/ringsig/internal/ring/sshkey"
	"github.com/credible-confessions/ringsig/internal/term"
)

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	outFlag := fs.String("o", "ringsig-key", "write the keypair to `FILE` and FILE.pub")
	commentFlag := fs.String("C", "", "comment embedded in the private key")
	forceFlag := fs.Bool("f", false, "overwrite FILE and FILE.pub without prompting")
	fs.Parse(args)

	pubPath := *outFlag + ".pub"
	if !*forceFlag && (fileExists(*outFlag) || fileExists(pubPath)) {
		if !term.IsTerminal(os.Stdin) {
			logger.Global.Errorf("%s or %s already exists, use -f to overwrite", *outFlag, pubPath)
		}
		c, err := term.ReadCharacter(fmt.Sprintf("%s or %s already exists, overwrite? (y/N)", *outFlag, pubPath))
		if err != nil || (c != 'y' && c != 'Y') {
			logger.Global.Errorf("not overwriting existing key files")
		}
	}

	publicLine, secretPEM, err := sshkey.Generate(*commentFlag)
	if err != nil {
		logger.Global.Errorf("generating key: %v", err)
	}

	if err := os.WriteFile(*outFlag, secretPEM, 0600); err != nil {
		logger.Global.Errorf("writing %s: %v", *outFlag, err)
	}
	if err := os.WriteFile(pubPath, []byte(publicLine+"\n"), 0644); err != nil {
		logger.Global.Errorf("writing %s: %v", pubPath, err)
	}

	if term.IsTerminal(os.Stdout) {
		fmt.Fprintf(os.Stderr, "Public key: %s\n", publicLine)
		fmt.Fprintf(os.Stderr, "%s and %s written\n", *outFlag, pubPath)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
