// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/credible-confessions/ringsig/internal/ring/curve"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := curve.RandomScalar()
	require.NoError(t, err)

	decoded, err := curve.DecodeScalar(s.Bytes())
	require.NoError(t, err)
	require.Equal(t, s.Bytes(), decoded.Bytes())
}

func TestDecodeScalarNonCanonical(t *testing.T) {
	// l = 2^252 + 27742317777372353535851937790883648493; encoding l itself
	// (one past the largest canonical scalar) must be rejected.
	nonCanonical := []byte{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	_, err := curve.DecodeScalar(nonCanonical)
	require.Error(t, err)
}

func TestPointRoundTrip(t *testing.T) {
	s, err := curve.RandomScalar()
	require.NoError(t, err)
	p := curve.ScalarBaseMult(s)

	decoded, err := curve.DecodePoint(p.Bytes())
	require.NoError(t, err)
	require.Equal(t, p.Bytes(), decoded.Bytes())
}

func TestDecodePointInvalid(t *testing.T) {
	bad := make([]byte, 32)
	for i := range bad {
		bad[i] = 0xff
	}
	_, err := curve.DecodePoint(bad)
	require.Error(t, err)
}

func TestRejectSmallOrder(t *testing.T) {
	// The identity point has order 1, which divides 8.
	err := curve.RejectSmallOrder(curve.IdentityPoint())
	require.Error(t, err)
}

func TestRejectSmallOrderAcceptsFullOrderPoint(t *testing.T) {
	err := curve.RejectSmallOrder(curve.BasePoint())
	require.NoError(t, err)
}

func TestCommitmentClosesAroundClampedKey(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 7
	a, err := curve.ClampedScalarFromSeed(seed)
	require.NoError(t, err)
	A := curve.ScalarBaseMult(a)

	u, err := curve.RandomScalar()
	require.NoError(t, err)
	R := curve.ScalarBaseMult(u)

	c := curve.HashToScalar([]byte("ring"), []byte("message"), R.Bytes())

	// s = u + c*a (mod l), closing the chain: s*B - c*A should equal R.
	s := curve.NewScalar().MultiplyAdd(c, a, u)
	got := curve.Commitment(s, c, A)
	require.Equal(t, R.Bytes(), got.Bytes())
}

func TestHashToScalarDeterministic(t *testing.T) {
	c1 := curve.HashToScalar([]byte("a"), []byte("b"), []byte("c"))
	c2 := curve.HashToScalar([]byte("a"), []byte("b"), []byte("c"))
	require.Equal(t, c1.Bytes(), c2.Bytes())

	c3 := curve.HashToScalar([]byte("a"), []byte("bc"))
	require.NotEqual(t, c1.Bytes(), c3.Bytes())
}
