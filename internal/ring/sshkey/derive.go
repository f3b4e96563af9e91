// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package sshkey

import "github.com/credible-confessions/ringsig/internal/ring/curve"

// derivedPublicKey computes A = clamp(SHA-512(seed)[0:32])*B, the public
// point a seed derives, used to cross-check the embedded public key in an
// OpenSSH private key blob.
func derivedPublicKey(seed []byte) ([]byte, error) {
	a, err := curve.ClampedScalarFromSeed(seed)
	if err != nil {
		return nil, err
	}
	A := curve.ScalarBaseMult(a)
	return A.Bytes(), nil
}
