// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package testvectors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/credible-confessions/ringsig/internal/ring/testvectors"
)

func TestNameIsDeterministic(t *testing.T) {
	ring := []string{"ssh-ed25519 AAAA one", "ssh-ed25519 AAAA two"}
	a := testvectors.Name(ring, []byte("hello"), 0)
	b := testvectors.Name(ring, []byte("hello"), 0)
	require.Equal(t, a, b)
	require.Len(t, a, 16)
}

func TestNameDistinguishesSignerIndex(t *testing.T) {
	ring := []string{"ssh-ed25519 AAAA one", "ssh-ed25519 AAAA two"}
	a := testvectors.Name(ring, []byte("hello"), 0)
	b := testvectors.Name(ring, []byte("hello"), 1)
	require.NotEqual(t, a, b)
}

func TestNameDistinguishesRingOrder(t *testing.T) {
	a := testvectors.Name([]string{"x", "y"}, []byte("m"), 0)
	b := testvectors.Name([]string{"y", "x"}, []byte("m"), 0)
	require.NotEqual(t, a, b)
}

func TestNameDistinguishesMessage(t *testing.T) {
	ring := []string{"ssh-ed25519 AAAA one"}
	a := testvectors.Name(ring, []byte("hello"), 0)
	b := testvectors.Name(ring, []byte("hellp"), 0)
	require.NotEqual(t, a, b)
}
