// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/credible-confessions/ringsig/envelope"
)

// bundle is the JSON shape prove and verify read from -bundle: the
// envelope's authors (flattened into the ring) plus a path to the
// signer's secret key, and, for verify, the proof to check.
type bundle struct {
	Authors       []envelope.Author `json:"authors"`
	SecretKeyPath string            `json:"secret-key"`
	Proof         string            `json:"proof"`
}

func readBundle(path string) (*bundle, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var b bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func readMessage(path string) ([]byte, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
