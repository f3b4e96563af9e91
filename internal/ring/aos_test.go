// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package ring_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/credible-confessions/ringsig/internal/ring"
	"github.com/credible-confessions/ringsig/internal/ring/curve"
	"github.com/credible-confessions/ringsig/internal/ring/testvectors"
)

// ringLines renders a ring's public keys as strings suitable for naming a
// test fixture; the actual content doesn't need to round-trip, only to
// differ between distinct rings.
func ringLines(members []ring.PublicKey) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = string(m.Encoded[:])
	}
	return out
}

// testMember is a generated ed25519 keypair, decoded into the types the
// ring package operates on.
type testMember struct {
	pub ring.PublicKey
	sk  ed25519.PrivateKey
}

func genMember(t *testing.T) testMember {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	p, err := curve.DecodePoint(pub)
	require.NoError(t, err)

	var m testMember
	m.pub.Point = p
	copy(m.pub.Encoded[:], pub)
	m.sk = priv
	return m
}

func secretKeyFor(t *testing.T, m testMember) *ring.SecretKey {
	t.Helper()
	seed := m.sk.Seed()
	a, err := curve.ClampedScalarFromSeed(seed)
	require.NoError(t, err)

	sk := &ring.SecretKey{Scalar: a}
	copy(sk.Seed[:], seed)
	copy(sk.PublicKey[:], m.pub.Encoded[:])
	return sk
}

func ringOf(members ...testMember) []ring.PublicKey {
	out := make([]ring.PublicKey, len(members))
	for i, m := range members {
		out[i] = m.pub
	}
	return out
}

func TestCompletenessAcrossRingSizes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		members := make([]testMember, n)
		for i := range members {
			members[i] = genMember(t)
		}
		for signer := 0; signer < n; signer++ {
			r := ringOf(members...)
			name := testvectors.Name(ringLines(r), []byte("hello"), signer)
			t.Run(name, func(t *testing.T) {
				sk := secretKeyFor(t, members[signer])
				sig, err := ring.Prove(r, []byte("hello"), sk)
				require.NoError(t, err)
				require.NoError(t, ring.Verify(sig, r, []byte("hello")))
			})
		}
	}
}

// S1: ring = [A], message = "".
func TestS1SingleMemberEmptyMessage(t *testing.T) {
	a := genMember(t)
	r := ringOf(a)
	sig, err := ring.Prove(r, []byte(""), secretKeyFor(t, a))
	require.NoError(t, err)
	require.NoError(t, ring.Verify(sig, r, []byte("")))
	require.Len(t, sig.Responses, 1)
}

// S2: ring = [P1, A, P3]; swapping P1 and P3 must invalidate the signature.
func TestS2RingOrderSensitivity(t *testing.T) {
	p1, a, p3 := genMember(t), genMember(t), genMember(t)
	r := ringOf(p1, a, p3)
	sig, err := ring.Prove(r, []byte("msg"), secretKeyFor(t, a))
	require.NoError(t, err)
	require.NoError(t, ring.Verify(sig, r, []byte("msg")))

	swapped := ringOf(p3, a, p1)
	err = ring.Verify(sig, swapped, []byte("msg"))
	require.Error(t, err)
}

// S3: flipping the message invalidates the signature.
func TestS3MessageSensitivity(t *testing.T) {
	a := genMember(t)
	r := ringOf(a)
	sig, err := ring.Prove(r, []byte("hello"), secretKeyFor(t, a))
	require.NoError(t, err)
	err = ring.Verify(sig, r, []byte("hellp"))
	require.Error(t, err)
}

// S4: signer's key absent from the ring.
func TestS4SignerNotInRing(t *testing.T) {
	p1, p2, outsider := genMember(t), genMember(t), genMember(t)
	r := ringOf(p1, p2)
	_, err := ring.Prove(r, []byte("msg"), secretKeyFor(t, outsider))
	require.Error(t, err)

	var ringErr interface{ Error() string }
	require.ErrorAs(t, err, &ringErr)
}

func TestSignatureBitSensitivity(t *testing.T) {
	a := genMember(t)
	r := ringOf(a)
	sig, err := ring.Prove(r, []byte("msg"), secretKeyFor(t, a))
	require.NoError(t, err)

	b := sig.C0.Bytes()
	b[0] ^= 0x01
	mutated, err := curve.DecodeScalar(b)
	require.NoError(t, err)

	flipped := *sig
	flipped.C0 = mutated

	err = ring.Verify(&flipped, r, []byte("msg"))
	require.Error(t, err)
}

func TestSecretKeyZeroedAfterProve(t *testing.T) {
	a := genMember(t)
	r := ringOf(a)
	sk := secretKeyFor(t, a)
	scalarBeforeZero := sk.Scalar

	_, err := ring.Prove(r, []byte("msg"), sk)
	require.NoError(t, err)

	var zeroSeed [32]byte
	require.Equal(t, zeroSeed, sk.Seed)
	require.Nil(t, sk.Scalar)
	// Zero overwrites the scalar's representation in place before dropping
	// the reference, so the pointer captured before Prove still observes
	// the wipe.
	require.Equal(t, make([]byte, 32), scalarBeforeZero.Bytes())
}

func TestSecretKeyZeroedAfterProveError(t *testing.T) {
	p1, p2, outsider := genMember(t), genMember(t), genMember(t)
	r := ringOf(p1, p2)
	sk := secretKeyFor(t, outsider)
	scalarBeforeZero := sk.Scalar

	_, err := ring.Prove(r, []byte("msg"), sk)
	require.Error(t, err)

	var zeroSeed [32]byte
	require.Equal(t, zeroSeed, sk.Seed)
	require.Nil(t, sk.Scalar)
	require.Equal(t, make([]byte, 32), scalarBeforeZero.Bytes())
}

// A small-order public key carries no discrete log for anyone to know, so
// claiming to sign with one must be rejected rather than silently accepted.
func TestProveRejectsSmallOrderSignerKey(t *testing.T) {
	var signer ring.PublicKey
	signer.Point = curve.IdentityPoint()
	copy(signer.Encoded[:], signer.Point.Bytes())

	other := genMember(t)
	r := []ring.PublicKey{signer, other.pub}

	sk := &ring.SecretKey{Scalar: curve.NewScalar(), PublicKey: signer.Encoded}
	_, err := ring.Prove(r, []byte("msg"), sk)
	require.Error(t, err)
}

func TestSigParsingRejectsWrongResponseCount(t *testing.T) {
	a, b := genMember(t), genMember(t)
	r := ringOf(a, b)
	sig, err := ring.Prove(r, []byte("msg"), secretKeyFor(t, a))
	require.NoError(t, err)

	truncated := *sig
	truncated.Responses = sig.Responses[:1]
	err = ring.Verify(&truncated, r, []byte("msg"))
	require.Error(t, err)
}

// Anonymity (structural): signatures produced by different signer
// indices in the same ring and over the same message carry no
// index-identifying field. The only way a verifier tells them apart is
// that both verify; nothing about the wire shape reveals π.
func TestAnonymityStructural(t *testing.T) {
	members := []testMember{genMember(t), genMember(t), genMember(t)}
	r := ringOf(members...)

	for signer := range members {
		sig, err := ring.Prove(r, []byte("msg"), secretKeyFor(t, members[signer]))
		require.NoError(t, err)
		require.NoError(t, ring.Verify(sig, r, []byte("msg")))
		require.Len(t, sig.Responses, len(members))
		for _, s := range sig.Responses {
			require.NotNil(t, s)
		}
	}
}
