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

	"github.com/credible-confessions/ringsig"
	"github.com/credible-confessions/ringsig/envelope"
	"github.com/credible-confessions/ringsig/internal/logger"
)

func runProve(args []string) {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	bundlePath := fs.String("bundle", "", "path to the JSON ring bundle (default stdin)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		logger.Global.Errorf("prove takes exactly one <message-file> argument")
	}

	b, err := readBundle(*bundlePath)
	if err != nil {
		logger.Global.Errorf("reading bundle: %v", err)
	}
	message, err := readMessage(fs.Arg(0))
	if err != nil {
		logger.Global.Errorf("reading message: %v", err)
	}
	secretKeyPEM, err := os.ReadFile(b.SecretKeyPath)
	if err != nil {
		logger.Global.Errorf("reading secret key %s: %v", b.SecretKeyPath, err)
	}

	ring := envelope.FlattenKeys(b.Authors)
	proof, errStr := ringsig.Prove(ring, message, secretKeyPEM)
	if errStr != "" {
		logger.Global.Errorf("%s", errStr)
	}
	fmt.Println(proof)
}
