// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package curve wraps filippo.io/edwards25519 with the handful of
// operations the AOS ring signature scheme needs: canonical scalar
// decoding, wide-reduction hashing to a scalar, and the
// R = s*B - c*P commitment used by both Prove and Verify.
package curve

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// ScalarSize and PointSize are the canonical encoded sizes of a Scalar and
// a Point, per RFC 8032.
const (
	ScalarSize = 32
	PointSize  = 32
)

// Scalar is an element of Z/l, the Ed25519 scalar field.
type Scalar = edwards25519.Scalar

// Point is an element of the Ed25519 group.
type Point = edwards25519.Point

// NewScalar returns the zero Scalar.
func NewScalar() *Scalar { return edwards25519.NewScalar() }

// BasePoint returns the standard Ed25519 base point B.
func BasePoint() *Point { return edwards25519.NewGeneratorPoint() }

// IdentityPoint returns the group identity element.
func IdentityPoint() *Point { return edwards25519.NewIdentityPoint() }

// DecodeScalar decodes a 32-byte canonical little-endian scalar encoding.
// It fails if the encoding is not the canonical representative of its
// residue class, per spec.
func DecodeScalar(b []byte) (*Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("curve: scalar must be %d bytes, got %d", ScalarSize, len(b))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("curve: non-canonical scalar encoding: %w", err)
	}
	return s, nil
}

// DecodePoint decodes a 32-byte Ed25519 point encoding per RFC 8032. It
// rejects non-canonical encodings and encodings that do not lie on the
// curve, but accepts small-order points (the caller decides whether those
// are acceptable in context; see RejectSmallOrder).
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != PointSize {
		return nil, fmt.Errorf("curve: point must be %d bytes, got %d", PointSize, len(b))
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("curve: invalid point encoding: %w", err)
	}
	// SetBytes accepts non-canonical encodings of valid points; a canonical
	// encoding is the one the decoded point re-encodes to.
	if !bytes.Equal(p.Bytes(), b) {
		return nil, fmt.Errorf("curve: non-canonical point encoding")
	}
	return p, nil
}

// RejectSmallOrder reports an error if p has order dividing 8. A point
// with a component of order l passes, even if it also has a small-order
// component. Used to keep a claimed signer's public key honest: a small
// order point carries no discrete log for anyone to know, so claiming to
// sign with one is meaningless, even though such points are harmless as
// decoys elsewhere in a ring.
func RejectSmallOrder(p *Point) error {
	var order8 Point
	order8.MultByCofactor(p)
	if order8.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return fmt.Errorf("curve: point has small order")
	}
	return nil
}

// RandomScalar draws a uniformly random element of Z/l from a
// cryptographically secure source, using 64-byte wide reduction so the
// result is unbiased.
func RandomScalar() (*Scalar, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("curve: RNG failure: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		// SetUniformBytes only fails on wrong-length input, which can't
		// happen here.
		return nil, fmt.Errorf("curve: internal error deriving scalar: %w", err)
	}
	return s, nil
}

// ClampedScalarFromSeed derives the Ed25519 secret scalar a from a 32-byte
// seed, per RFC 8032: a = clamp(SHA-512(seed)[0:32]).
func ClampedScalarFromSeed(seed []byte) (*Scalar, error) {
	if len(seed) != 32 {
		return nil, fmt.Errorf("curve: seed must be 32 bytes, got %d", len(seed))
	}
	h := sha512.Sum512(seed)
	defer zero(h[:])
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, fmt.Errorf("curve: internal error clamping seed: %w", err)
	}
	return s, nil
}

// HashToScalar computes H(data) = SHA-512(data) mod l, the challenge
// function used to chain the ring together. data is the concatenation of
// whatever transcript components the caller has already assembled; this
// function performs no framing of its own.
func HashToScalar(data ...[]byte) *Scalar {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	sum := h.Sum(nil)
	defer zero(sum)
	s, err := edwards25519.NewScalar().SetUniformBytes(sum)
	if err != nil {
		// sha512.Sum is always 64 bytes; SetUniformBytes never fails here.
		panic("curve: internal error reducing hash output: " + err.Error())
	}
	return s
}

// Commitment computes R = s*B - c*P, the per-member commitment used by
// both the decoy path of Prove and every step of Verify. It operates on
// public data only and is not required to be constant-time.
func Commitment(s, c *Scalar, p *Point) *Point {
	negC := edwards25519.NewScalar().Negate(c)
	return edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(negC, p, s)
}

// ScalarBaseMult returns s*B, constant-time with respect to s. Used for
// both key derivation (a*B) and the signer's commitment (u*B).
func ScalarBaseMult(s *Scalar) *Point {
	return edwards25519.NewIdentityPoint().ScalarBaseMult(s)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
