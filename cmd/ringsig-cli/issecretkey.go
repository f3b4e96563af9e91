// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package main

import (
	"flag"
	"io"
	"os"

	"github.com/credible-confessions/ringsig"
	"github.com/credible-confessions/ringsig/internal/logger"
)

func runIsSecretKey(args []string) {
	fs := flag.NewFlagSet("is-secret-key", flag.ExitOnError)
	fs.Parse(args)

	path := ""
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	} else if fs.NArg() > 1 {
		logger.Global.Errorf("is-secret-key takes at most one <key-file> argument")
	}

	r, err := openInput(path)
	if err != nil {
		logger.Global.Errorf("reading key: %v", err)
	}
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		logger.Global.Errorf("reading key: %v", err)
	}

	if !ringsig.IsSecretKey(string(text)) {
		os.Exit(1)
	}
}
