// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package sshkey decodes OpenSSH ed25519 public and secret keys directly
// from their wire formats. It does not use golang.org/x/crypto/ssh to
// parse the keys themselves — the wire layout
// is simple and fully specified, and decoding it directly keeps exact
// control over which non-ed25519 and malformed inputs are rejected, the
// way sigsum-go's internal/ssh package hand-decodes the same container
// rather than pulling in a general-purpose SSH key parser.
package sshkey

import (
	"encoding/binary"
	"fmt"
)

// readString reads a length-prefixed SSH wire string: a 4-byte big-endian
// length followed by that many bytes.
func readString(b []byte) (s, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, fmt.Errorf("sshkey: truncated length prefix")
	}
	n := binary.BigEndian.Uint32(b[:4])
	b = b[4:]
	if uint64(len(b)) < uint64(n) {
		return nil, nil, fmt.Errorf("sshkey: truncated string field")
	}
	return b[:n], b[n:], nil
}

func readUint32(b []byte) (v uint32, rest []byte, err error) {
	if len(b) < 4 {
		return 0, nil, fmt.Errorf("sshkey: truncated uint32")
	}
	return binary.BigEndian.Uint32(b[:4]), b[4:], nil
}

func appendString(b []byte, s []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(s)))
	b = append(b, length[:]...)
	return append(b, s...)
}

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}
