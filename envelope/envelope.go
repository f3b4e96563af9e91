// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

// Package envelope defines the document shape a signing or verifying UI
// exchanges with the ring signature core, and the flattening rule that
// turns its nested author list into the ordered public-key list Prove and
// Verify expect.
//
// This package has no dependency on the signing core; it is a pure
// data-shape helper matching the documented wire contract, kept separate
// so ringsig-cli and test harnesses can share it without duplicating the
// ordering logic ad hoc.
package envelope

// Author is one contributor's identity and keys, as carried in the
// envelope's "authors" array.
type Author struct {
	Platform string   `json:"platform"`
	Username string   `json:"username"`
	Keys     []string `json:"keys"`
}

// Envelope is the document exchanged between the signing and verifying
// UIs: the message, the authors whose keys make up the ring, and the hex
// proof once signed.
type Envelope struct {
	Message string   `json:"message"`
	Authors []Author `json:"authors"`
	Proof   string   `json:"proof"`
}

// FlattenKeys concatenates each author's Keys array in author order, then
// key order within each author, producing the ring order the core binds
// the signature to. The envelope's JSON array ordering is normative: the
// flattened order used at signing time must exactly equal the flattened
// order used at verification time.
func FlattenKeys(authors []Author) []string {
	var out []string
	for _, a := range authors {
		out = append(out, a.Keys...)
	}
	return out
}

// Ring returns the flattened public-key list this envelope's signature
// was (or will be) bound to.
func (e Envelope) Ring() []string {
	return FlattenKeys(e.Authors)
}
