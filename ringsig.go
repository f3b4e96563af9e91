// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package ringsig implements linkable-free anonymous ring signatures over
// Ed25519 keys in OpenSSH format. A ring signature over a message and a
// list of public keys proves that whoever produced it holds the secret key
// for one of those public keys, without revealing which one.
//
// This is a narrow public surface over internal/ring, internal/ring/sshkey
// and internal/ring/wire, in the spirit of filippo.io/age's split between
// its root package and internal/age.
package ringsig

import (
	"github.com/credible-confessions/ringsig/internal/ring"
	"github.com/credible-confessions/ringsig/internal/ring/curve"
	"github.com/credible-confessions/ringsig/internal/ring/sshkey"
	"github.com/credible-confessions/ringsig/internal/ring/wire"
)

// decodeRing parses each authorized_keys-style line in publicKeys into a
// ring member, preserving order: ring order is significant to both Prove
// and Verify.
func decodeRing(publicKeys []string) ([]ring.PublicKey, error) {
	members := make([]ring.PublicKey, len(publicKeys))
	for i, line := range publicKeys {
		raw, err := sshkey.ParsePublicKey(line)
		if err != nil {
			return nil, err
		}
		p, err := curve.DecodePoint(raw)
		if err != nil {
			return nil, err
		}
		var m ring.PublicKey
		m.Point = p
		copy(m.Encoded[:], raw)
		members[i] = m
	}
	return members, nil
}

// secretKeyFromSSHKey derives the scalar behind an sshkey.SecretKey's seed
// and assembles the internal/ring.SecretKey Prove expects.
func secretKeyFromSSHKey(sk *sshkey.SecretKey) (*ring.SecretKey, error) {
	a, err := curve.ClampedScalarFromSeed(sk.Seed[:])
	if err != nil {
		sk.Zero()
		return nil, err
	}
	out := &ring.SecretKey{Scalar: a}
	out.Seed = sk.Seed
	out.PublicKey = sk.PublicKey
	sk.Zero()
	return out, nil
}

// Prove produces a ring signature proving that the holder of secretKeyPEM
// controls one of the keys in publicKeys, over message. secretKeyPEM must
// be an unencrypted OpenSSH ed25519 private key, PEM-encapsulated; the
// corresponding public key must appear somewhere in publicKeys, in its
// one-line authorized_keys form.
//
// On success proof is the normative hex encoding of the signature and err
// is empty. On failure proof is empty and err holds a human-readable
// description of what went wrong; Prove never panics on malformed input.
func Prove(publicKeys []string, message []byte, secretKeyPEM []byte) (proof string, err string) {
	members, decodeErr := decodeRing(publicKeys)
	if decodeErr != nil {
		return "", decodeErr.Error()
	}

	sk, parseErr := sshkey.ParseSecretKey(secretKeyPEM)
	if parseErr != nil {
		return "", parseErr.Error()
	}
	ringSK, convErr := secretKeyFromSSHKey(sk)
	if convErr != nil {
		return "", convErr.Error()
	}

	sig, proveErr := ring.Prove(members, message, ringSK)
	if proveErr != nil {
		return "", proveErr.Error()
	}
	return wire.EncodeHex(sig.C0, sig.Responses), ""
}

// Verify checks that proof is a valid ring signature over message under
// publicKeys. It returns an empty string on success, or a human-readable
// description of the failure otherwise.
func Verify(proof string, publicKeys []string, message []byte) (err string) {
	members, decodeErr := decodeRing(publicKeys)
	if decodeErr != nil {
		return decodeErr.Error()
	}

	c0, responses, decodeSigErr := wire.DecodeHex(proof)
	if decodeSigErr != nil {
		return decodeSigErr.Error()
	}
	sig := &ring.Signature{C0: c0, Responses: responses}

	if verifyErr := ring.Verify(sig, members, message); verifyErr != nil {
		return verifyErr.Error()
	}
	return ""
}

// IsSecretKey reports whether text parses as an unencrypted OpenSSH
// ed25519 private key: a PEM block in the shape ParseSecretKey accepts,
// whose seed derives the public key it embeds. It never panics on
// malformed input.
func IsSecretKey(text string) bool {
	return sshkey.IsSecretKey([]byte(text))
}
