// Copyright 2019 Google LLC
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package ring

// Kind is one of the closed set of error conditions the core can report.
type Kind string

const (
	ParsePubkey     Kind = "PARSE_PUBKEY"
	ParseSeckey     Kind = "PARSE_SECKEY"
	InvalidPoint    Kind = "INVALID_POINT"
	SignerNotInRing Kind = "SIGNER_NOT_IN_RING"
	ParseSig        Kind = "PARSE_SIG"
	SigMismatch     Kind = "SIG_MISMATCH"
	RNGFailure      Kind = "RNG_FAILURE"
)

// Error is the error type returned by every operation in this package. It
// carries a closed Kind alongside a human-readable detail, so callers that
// care can switch on Kind without parsing strings, while the public
// ringsig entrypoints can still reduce it to a plain error string with
// Error().
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
