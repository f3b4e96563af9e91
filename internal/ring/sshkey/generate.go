// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"encoding/pem"
	"fmt"
)

// Generate creates a fresh Ed25519 keypair and encodes it as an
// authorized_keys public-key line and an unencrypted OpenSSH private key
// PEM block, the same shapes ParsePublicKey and ParseSecretKey consume.
func Generate(comment string) (publicLine string, secretKeyPEM []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", nil, fmt.Errorf("sshkey: %w", err)
	}
	defer zeroBytes(priv)

	publicLine, err = EncodePublicKey(pub)
	if err != nil {
		return "", nil, err
	}

	secretKeyPEM, err = encodeSecretKey(pub, priv, comment)
	if err != nil {
		return "", nil, err
	}
	return publicLine, secretKeyPEM, nil
}

// encodeSecretKey serialises pub/priv into the unencrypted OpenSSH
// private key wire format ParseSecretKey reads: a single ed25519 key, no
// cipher, no KDF, incrementing padding to an 8-byte boundary.
func encodeSecretKey(pub ed25519.PublicKey, priv ed25519.PrivateKey, comment string) ([]byte, error) {
	var pubBlob []byte
	pubBlob = appendString(pubBlob, []byte("ssh-ed25519"))
	pubBlob = appendString(pubBlob, pub)

	seed := priv.Seed()
	defer zeroBytes(seed)
	secretBlob := append(append([]byte{}, seed...), pub...)
	defer zeroBytes(secretBlob)

	var checkBytes [4]byte
	if _, err := rand.Read(checkBytes[:]); err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	check := binary.BigEndian.Uint32(checkBytes[:])

	var section []byte
	section = appendUint32(section, check)
	section = appendUint32(section, check)
	section = appendString(section, []byte("ssh-ed25519"))
	section = appendString(section, pub)
	section = appendString(section, secretBlob)
	section = appendString(section, []byte(comment))
	for i := 1; len(section)%8 != 0; i++ {
		section = append(section, byte(i))
	}
	defer zeroBytes(section)

	var blob []byte
	blob = append(blob, []byte(authMagic)...)
	blob = appendString(blob, []byte("none"))
	blob = appendString(blob, []byte("none"))
	blob = appendString(blob, []byte(""))
	blob = appendUint32(blob, 1)
	blob = appendString(blob, pubBlob)
	blob = appendString(blob, section)
	defer zeroBytes(blob)

	return pem.EncodeToMemory(&pem.Block{Type: pemBlockType, Bytes: blob}), nil
}
