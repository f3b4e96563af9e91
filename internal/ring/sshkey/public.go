// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package sshkey

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// PublicKeyPrefix is the exact OpenSSH one-line prefix ed25519 public keys
// are required to start with.
const PublicKeyPrefix = "ssh-ed25519 "

// fastRejectLen is the length the historical source checked exactly. It is
// kept for reference only: ParsePublicKey never checks it and fully decodes
// lines of any length.
const fastRejectLen = 80

// ParsePublicKey decodes a one-line "ssh-ed25519 <base64> [comment]"
// authorized_keys entry and returns the raw 32-byte Ed25519 point
// encoding. It does not itself validate that the bytes are a valid curve
// point — callers that need that (every caller in this module) should
// follow up with curve.DecodePoint.
func ParsePublicKey(line string) ([]byte, error) {
	if !strings.HasPrefix(line, PublicKeyPrefix) {
		return nil, fmt.Errorf("sshkey: missing %q prefix", PublicKeyPrefix)
	}
	rest := line[len(PublicKeyPrefix):]

	// A trailing comment, if present, is separated from the key blob by
	// whitespace, per OpenSSH syntax. The 80-character check the historical
	// source used rejected any line carrying one; we decode up to the next
	// whitespace run instead, accepting lines of any length.
	blob := rest
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		blob = rest[:i]
	} else {
		blob = strings.TrimRight(rest, "\r\n")
	}
	if blob == "" {
		return nil, fmt.Errorf("sshkey: empty key blob")
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("sshkey: invalid base64 key blob: %w", err)
	}

	algo, rest2, err := readString(raw)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if string(algo) != "ssh-ed25519" {
		return nil, fmt.Errorf("sshkey: unsupported key algorithm %q", algo)
	}

	keyBytes, trailing, err := readString(rest2)
	if err != nil {
		return nil, fmt.Errorf("sshkey: %w", err)
	}
	if len(trailing) != 0 {
		return nil, fmt.Errorf("sshkey: trailing garbage after key blob")
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("sshkey: ed25519 key must be 32 bytes, got %d", len(keyBytes))
	}

	out := make([]byte, 32)
	copy(out, keyBytes)
	return out, nil
}

// EncodePublicKey re-encodes a 32-byte Ed25519 point as a one-line
// "ssh-ed25519 <base64>" authorized_keys entry with no comment, the
// counterpart to ParsePublicKey used by the encode/decode round-trip
// property tests.
func EncodePublicKey(point []byte) (string, error) {
	if len(point) != 32 {
		return "", fmt.Errorf("sshkey: point must be 32 bytes, got %d", len(point))
	}
	var blob []byte
	blob = appendString(blob, []byte("ssh-ed25519"))
	blob = appendString(blob, point)
	return PublicKeyPrefix + base64.StdEncoding.EncodeToString(blob), nil
}
