// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package ring implements the Abe-Ohkubo-Suzuki ring signature scheme
// over Ed25519. It is the cryptographic core behind the public
// github.com/credible-confessions/ringsig package; callers outside this
// module should use that package instead of this one.
package ring

import (
	"github.com/credible-confessions/ringsig/internal/ring/curve"
)

// PublicKey is a ring member: an Ed25519 point plus its canonical 32-byte
// encoding, kept alongside the decoded point so the transcript hash never
// has to re-encode it.
type PublicKey struct {
	Point   *curve.Point
	Encoded [32]byte
}

// SecretKey is the signer's key material, live only for the duration of
// Prove. Zero must be called on every exit path.
type SecretKey struct {
	Seed      [32]byte
	Scalar    *curve.Scalar
	PublicKey [32]byte
}

// Zero wipes the seed and the clamped scalar's representation, then drops
// the scalar. The derived PublicKey is not secret and is left alone.
func (k *SecretKey) Zero() {
	for i := range k.Seed {
		k.Seed[i] = 0
	}
	zeroScalar(k.Scalar)
	k.Scalar = nil
}

// zeroScalar overwrites s's representation with the canonical zero
// scalar in place, so no byte of the value it held survives the call.
// Safe to call with nil.
func zeroScalar(s *curve.Scalar) {
	if s != nil {
		s.Set(curve.NewScalar())
	}
}

// Signature is ⟨c0, s0, ..., s(n-1)⟩.
type Signature struct {
	C0        *curve.Scalar
	Responses []*curve.Scalar
}

// ringBytes concatenates the canonical 32-byte encoding of every ring
// member, in ring order. This is the domain separator bound into every
// challenge.
func ringBytes(members []PublicKey) []byte {
	out := make([]byte, 0, 32*len(members))
	for _, m := range members {
		out = append(out, m.Encoded[:]...)
	}
	return out
}

// Prove produces an AOS ring signature over message under ringMembers,
// using the secret scalar and public key in sk. It locates the signer's
// position by comparing encoded public keys; SIGNER_NOT_IN_RING is
// returned if none match.
//
// sk is zeroed before Prove returns, on every exit path.
func Prove(ringMembers []PublicKey, message []byte, sk *SecretKey) (*Signature, error) {
	defer sk.Zero()

	n := len(ringMembers)
	if n == 0 {
		return nil, newError(SignerNotInRing, "ring is empty")
	}

	signerIndex := -1
	for i, m := range ringMembers {
		if m.Encoded == sk.PublicKey {
			signerIndex = i
			break
		}
	}
	if signerIndex < 0 {
		return nil, newError(SignerNotInRing, "signer's public key is not a member of the ring")
	}
	if err := curve.RejectSmallOrder(ringMembers[signerIndex].Point); err != nil {
		return nil, newError(InvalidPoint, "signer's public key: "+err.Error())
	}

	rb := ringBytes(ringMembers)

	u, err := curve.RandomScalar()
	if err != nil {
		return nil, newError(RNGFailure, err.Error())
	}
	defer zeroScalar(u)
	R := curve.ScalarBaseMult(u)

	responses := make([]*curve.Scalar, n)
	challenges := make([]*curve.Scalar, n) // challenges[i] is the challenge entering position i

	c := curve.HashToScalar(rb, message, R.Bytes())
	idx := (signerIndex + 1) % n
	challenges[idx] = c

	for idx != signerIndex {
		s, err := curve.RandomScalar()
		if err != nil {
			return nil, newError(RNGFailure, err.Error())
		}
		responses[idx] = s

		Ri := curve.Commitment(s, c, ringMembers[idx].Point)
		c = curve.HashToScalar(rb, message, Ri.Bytes())
		idx = (idx + 1) % n
		challenges[idx] = c
	}

	// c now holds the challenge entering the signer's own position, the
	// value the secret closes against: s_pi = u + c*a (mod l).
	responses[signerIndex] = curve.NewScalar().MultiplyAdd(c, sk.Scalar, u)

	return &Signature{C0: challenges[0], Responses: responses}, nil
}

// Verify recomputes the challenge chain for sig under ringMembers and
// message, accepting iff it closes.
func Verify(sig *Signature, ringMembers []PublicKey, message []byte) error {
	n := len(ringMembers)
	if n == 0 {
		return newError(SigMismatch, "ring is empty")
	}
	if len(sig.Responses) != n {
		return newError(ParseSig, "response count does not match ring size")
	}

	rb := ringBytes(ringMembers)
	c := sig.C0
	for i := 0; i < n; i++ {
		Ri := curve.Commitment(sig.Responses[i], c, ringMembers[i].Point)
		c = curve.HashToScalar(rb, message, Ri.Bytes())
	}

	if c.Equal(sig.C0) != 1 {
		return newError(SigMismatch, "ring closure equation does not hold")
	}
	return nil
}
