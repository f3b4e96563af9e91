// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/credible-confessions/ringsig/internal/ring/curve"
	"github.com/credible-confessions/ringsig/internal/ring/wire"
)

func randomScalars(t *testing.T, n int) []*curve.Scalar {
	t.Helper()
	out := make([]*curve.Scalar, n)
	for i := range out {
		s, err := curve.RandomScalar()
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func TestHexRoundTrip(t *testing.T) {
	c0 := randomScalars(t, 1)[0]
	responses := randomScalars(t, 3)

	encoded := wire.EncodeHex(c0, responses)
	require.Len(t, encoded, 2*32*4)

	gotC0, gotResponses, err := wire.DecodeHex(encoded)
	require.NoError(t, err)
	require.Equal(t, c0.Bytes(), gotC0.Bytes())
	require.Len(t, gotResponses, 3)
	for i, r := range responses {
		require.Equal(t, r.Bytes(), gotResponses[i].Bytes())
	}
}

func TestDecodeHexRejectsBadLength(t *testing.T) {
	_, _, err := wire.DecodeHex("aabb")
	require.Error(t, err)
}

func TestDecodeHexRejectsWhitespace(t *testing.T) {
	c0 := randomScalars(t, 1)[0]
	encoded := wire.EncodeHex(c0, nil)
	_, _, err := wire.DecodeHex(encoded + "\n")
	require.Error(t, err)
}

func TestDecodeHexRejectsNonCanonicalScalar(t *testing.T) {
	// l's little-endian encoding, which is one past the largest canonical
	// scalar and therefore must be rejected by DecodeScalar.
	nonCanonical := "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
	_, _, err := wire.DecodeHex(nonCanonical)
	require.Error(t, err)
}

func TestReadableRoundTrip(t *testing.T) {
	c0 := randomScalars(t, 1)[0]
	responses := randomScalars(t, 2)

	encoded, err := wire.EncodeReadable(c0, responses)
	require.NoError(t, err)
	require.Contains(t, encoded, wire.ReadableHRP+"1")

	gotC0, gotResponses, err := wire.DecodeReadable(encoded)
	require.NoError(t, err)
	require.Equal(t, c0.Bytes(), gotC0.Bytes())
	require.Len(t, gotResponses, 2)
}

func TestDecodeReadableRejectsWrongPrefix(t *testing.T) {
	s, err := wire.EncodeReadable(randomScalars(t, 1)[0], nil)
	require.NoError(t, err)
	wrongPrefix := "notringsig" + s[len(wire.ReadableHRP):]
	_, _, err = wire.DecodeReadable(wrongPrefix)
	require.Error(t, err)
}

func TestSingleMemberRingSignatureIs64Bytes(t *testing.T) {
	c0 := randomScalars(t, 1)[0]
	blob := wire.Encode(c0, randomScalars(t, 1))
	require.Len(t, blob, 64)
}
