// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package sshkey

import (
	"bytes"
	"encoding/pem"
	"fmt"
)

const (
	pemBlockType = "OPENSSH PRIVATE KEY"
	authMagic    = "openssh-key-v1\x00"
)

// SecretKey holds the 32-byte seed and matching 32-byte public point
// decoded from an unencrypted OpenSSH ed25519 private key. Every buffer
// that ever held the seed must be zeroed by the caller once the key is no
// longer needed; Zero does this for the SecretKey's own storage.
type SecretKey struct {
	Seed      [32]byte
	PublicKey [32]byte
}

// Zero overwrites the seed and public key with zero bytes. Safe to call
// more than once.
func (k *SecretKey) Zero() {
	for i := range k.Seed {
		k.Seed[i] = 0
	}
	for i := range k.PublicKey {
		k.PublicKey[i] = 0
	}
}

// ParseSecretKey decodes the PEM-encapsulated, unencrypted OpenSSH
// ed25519 private key format produced by `ssh-keygen -t ed25519` without
// a passphrase. It fails closed on anything else: wrong PEM type,
// encrypted keys (non-"none" cipher/kdf), wrong key count, wrong key
// type, mismatched check integers, or a key whose seed doesn't derive
// the embedded public key.
//
// Every intermediate buffer that touches the seed is zeroed before
// return, on every exit path, success or failure.
func ParseSecretKey(pemBytes []byte) (*SecretKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("sshkey: not a PEM file")
	}
	if block.Type != pemBlockType {
		return nil, fmt.Errorf("sshkey: unexpected PEM block type %q", block.Type)
	}
	defer zeroBytes(block.Bytes)

	data := block.Bytes
	if len(data) < len(authMagic) || string(data[:len(authMagic)]) != authMagic {
		return nil, fmt.Errorf("sshkey: invalid openssh-key-v1 magic")
	}
	data = data[len(authMagic):]

	cipherName, data, err := readString(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	kdfName, data, err := readString(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	kdfOptions, data, err := readString(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if string(cipherName) != "none" || string(kdfName) != "none" || len(kdfOptions) != 0 {
		return nil, fmt.Errorf("sshkey: encrypted or passphrase-protected key is not supported")
	}

	nkeys, data, err := readUint32(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if nkeys != 1 {
		return nil, fmt.Errorf("sshkey: expected exactly 1 key, got %d", nkeys)
	}

	publicKeyBlob, data, err := readString(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	pkAlgo, pkRest, err := readString(publicKeyBlob)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if string(pkAlgo) != "ssh-ed25519" {
		return nil, fmt.Errorf("sshkey: unsupported key type %q", pkAlgo)
	}
	outerPublicKey, _, err := readString(pkRest)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if len(outerPublicKey) != 32 {
		return nil, fmt.Errorf("sshkey: invalid public key size %d", len(outerPublicKey))
	}

	encryptedSection, _, err := readString(data)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	defer zeroBytes(encryptedSection)

	return parsePrivateSection(encryptedSection, outerPublicKey)
}

func parsePrivateSection(section, outerPublicKey []byte) (*SecretKey, error) {
	check1, section, err := readUint32(section)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	check2, section, err := readUint32(section)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if check1 != check2 {
		return nil, fmt.Errorf("sshkey: mismatched check integers")
	}

	keyType, section, err := readString(section)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if string(keyType) != "ssh-ed25519" {
		return nil, fmt.Errorf("sshkey: unsupported key type %q", keyType)
	}

	publicKey, section, err := readString(section)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if len(publicKey) != 32 {
		return nil, fmt.Errorf("sshkey: invalid public key size %d", len(publicKey))
	}
	if !bytes.Equal(publicKey, outerPublicKey) {
		return nil, fmt.Errorf("sshkey: public key blob mismatch")
	}

	secretBlob, section, err := readString(section)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	defer zeroBytes(secretBlob)
	if len(secretBlob) != 64 {
		return nil, fmt.Errorf("sshkey: invalid secret blob size %d", len(secretBlob))
	}
	seed := secretBlob[:32]
	embeddedPublicKey := secretBlob[32:]
	if !bytes.Equal(embeddedPublicKey, publicKey) {
		return nil, fmt.Errorf("sshkey: secret blob public key mismatch")
	}

	_, section, err = readString(section) // comment
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	for i, b := range section {
		if int(b) != i+1 {
			return nil, fmt.Errorf("sshkey: invalid padding")
		}
	}

	k := &SecretKey{}
	copy(k.Seed[:], seed)
	copy(k.PublicKey[:], publicKey)

	derived, err := derivedPublicKey(k.Seed[:])
	if err != nil {
		k.Zero()
		return nil, err
	}
	if !bytes.Equal(derived, k.PublicKey[:]) {
		k.Zero()
		return nil, fmt.Errorf("sshkey: seed does not derive the embedded public key")
	}

	return k, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsSecretKey reports whether pemBytes parses as an unencrypted OpenSSH
// ed25519 secret key. It never panics.
func IsSecretKey(pemBytes []byte) (ok bool) {
	k, err := ParseSecretKey(pemBytes)
	if err != nil {
		return false
	}
	k.Zero()
	return true
}
