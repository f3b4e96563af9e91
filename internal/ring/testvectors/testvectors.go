// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package testvectors names deterministic test fixtures for the ring
// signature test suites. Each fixture is identified by a short BLAKE2b
// digest of its defining inputs, the way filippo.io/age's internal/testkit
// stamps its generated test files, so that regenerating the same fixture
// twice produces the same name and two different fixtures never collide.
package testvectors

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Name derives a stable fixture identifier from ring order, message and
// signer index: blake2b-256 of their concatenation, hex-encoded and
// truncated to nameLength bytes' worth of hex digits.
const nameLength = 8

// Name returns a short, stable identifier for a fixture defined by the
// given ring (in order), message, and signer index within that ring.
func Name(ring []string, message []byte, signerIndex int) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for a too-long key, and nil is never
		// too long.
		panic("testvectors: internal error constructing hasher: " + err.Error())
	}
	for _, member := range ring {
		fmt.Fprintf(h, "%d:%s;", len(member), member)
	}
	fmt.Fprintf(h, "|%d|%d", len(message), signerIndex)
	h.Write(message)

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:nameLength])
}
