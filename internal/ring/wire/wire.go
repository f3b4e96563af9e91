// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package wire serialises and parses ring signatures to and from a
// compact byte blob: c0 || s0 || ... || s(n-1), each a 32-byte canonical
// little-endian scalar, hex-encoded for transport. It also offers a
// bech32-style human-readable encoding as additive surface for the CLI,
// not a replacement for the normative hex wire format.
package wire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/credible-confessions/ringsig/internal/bech32"
	"github.com/credible-confessions/ringsig/internal/ring/curve"
)

// Encode serialises a signature as raw bytes: c0 || s0 || ... || s(n-1).
func Encode(c0 *curve.Scalar, responses []*curve.Scalar) []byte {
	out := make([]byte, 0, 32*(len(responses)+1))
	out = append(out, c0.Bytes()...)
	for _, s := range responses {
		out = append(out, s.Bytes()...)
	}
	return out
}

// EncodeHex hex-encodes the signature blob, lower-case, no whitespace: the
// normative wire format.
func EncodeHex(c0 *curve.Scalar, responses []*curve.Scalar) string {
	return hex.EncodeToString(Encode(c0, responses))
}

// Decode parses a raw signature blob into its scalar components. The ring
// size n is deduced as len(blob)/32 - 1; it is the caller's
// responsibility to check n against the ring it intends to verify
// against.
func Decode(blob []byte) (c0 *curve.Scalar, responses []*curve.Scalar, err error) {
	if len(blob) == 0 || len(blob)%curve.ScalarSize != 0 {
		return nil, nil, fmt.Errorf("wire: signature length %d is not a positive multiple of %d", len(blob), curve.ScalarSize)
	}
	count := len(blob) / curve.ScalarSize
	if count < 1 {
		return nil, nil, fmt.Errorf("wire: signature too short")
	}

	c0, err = curve.DecodeScalar(blob[:curve.ScalarSize])
	if err != nil {
		return nil, nil, fmt.Errorf("wire: %w", err)
	}

	n := count - 1
	responses = make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		start := (i + 1) * curve.ScalarSize
		s, err := curve.DecodeScalar(blob[start : start+curve.ScalarSize])
		if err != nil {
			return nil, nil, fmt.Errorf("wire: response %d: %w", i, err)
		}
		responses[i] = s
	}
	return c0, responses, nil
}

// DecodeHex hex-decodes and parses a signature, rejecting malformed hex,
// a length that is not a positive multiple of 32, or any non-canonical
// scalar.
func DecodeHex(s string) (c0 *curve.Scalar, responses []*curve.Scalar, err error) {
	if strings.ContainsAny(s, " \t\r\n") {
		return nil, nil, fmt.Errorf("wire: hex signature must not contain whitespace")
	}
	blob, err := hex.DecodeString(s)
	if err != nil {
		return nil, nil, fmt.Errorf("wire: invalid hex encoding: %w", err)
	}
	return Decode(blob)
}

// ReadableHRP is the bech32 human-readable prefix used by EncodeReadable.
const ReadableHRP = "ringsig"

// EncodeReadable encodes a signature with the same byte layout as Encode,
// wrapped in bech32 with the "ringsig" prefix, for contexts where a
// signature needs to be typed or read aloud. This is additive surface:
// DecodeHex/EncodeHex remain the normative wire format.
func EncodeReadable(c0 *curve.Scalar, responses []*curve.Scalar) (string, error) {
	return bech32.Encode(ReadableHRP, Encode(c0, responses))
}

// DecodeReadable parses a signature encoded with EncodeReadable.
func DecodeReadable(s string) (c0 *curve.Scalar, responses []*curve.Scalar, err error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, nil, fmt.Errorf("wire: invalid bech32 encoding: %w", err)
	}
	if hrp != ReadableHRP {
		return nil, nil, fmt.Errorf("wire: unexpected bech32 prefix %q", hrp)
	}
	return Decode(data)
}
