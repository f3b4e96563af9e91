// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2019 Google LLC
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

// Package bech32 implements the BIP 173 bech32 format, used by ringsig's
// human-readable signature encoding (see internal/ring/wire).
package bech32

import (
	"fmt"
	"strings"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Decode decodes a bech32 string, returning the human-readable part (the
// "hrp") lowercased and the decoded data, regrouped back into 8-bit bytes.
func Decode(bech string) (string, []byte, error) {
	if len(bech) < 8 || len(bech) > 90 {
		return "", nil, fmt.Errorf("invalid bech32 string length %d", len(bech))
	}
	for i := 0; i < len(bech); i++ {
		if bech[i] < 33 || bech[i] > 126 {
			return "", nil, fmt.Errorf("invalid character in string: %v", bech[i])
		}
	}

	lower := strings.ToLower(bech)
	upper := strings.ToUpper(bech)
	if bech != lower && bech != upper {
		return "", nil, fmt.Errorf("string not all lowercase or all uppercase")
	}
	bech = lower

	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+7 > len(bech) {
		return "", nil, fmt.Errorf("invalid index of 1")
	}

	hrp := bech[:one]
	data := bech[one+1:]

	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed converting data to bytes: %v", err)
	}

	if !bech32VerifyChecksum(hrp, decoded) {
		moreInfo := ""
		checksum := bech[len(bech)-6:]
		expected, err := toChars(bech32Checksum(hrp, decoded[:len(decoded)-6]))
		if err == nil {
			moreInfo = fmt.Sprintf("Expected %v, got %v.", expected, checksum)
		}
		return "", nil, fmt.Errorf("checksum failed. %v", moreInfo)
	}

	regrouped, err := convertBits(decoded[:len(decoded)-6], 5, 8, false)
	if err != nil {
		return "", nil, err
	}

	return hrp, regrouped, nil
}

// Encode encodes a human-readable part and data to a bech32 string.
func Encode(hrp string, data []byte) (string, error) {
	grouped, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("unable to convert data to 5-bit groups: %v", err)
	}

	checksum := bech32Checksum(hrp, grouped)
	combined := append(grouped, checksum...)

	dataChars, err := toChars(combined)
	if err != nil {
		return "", fmt.Errorf("unable to convert data to string: %v", err)
	}
	return hrp + "1" + dataChars, nil
}

func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		index := strings.IndexByte(charset, chars[i])
		if index < 0 {
			return nil, fmt.Errorf("invalid character not part of charset: %v", chars[i])
		}
		decoded = append(decoded, byte(index))
	}
	return decoded, nil
}

func toChars(data []byte) (string, error) {
	var result strings.Builder
	result.Grow(len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", fmt.Errorf("invalid data byte: %v", b)
		}
		result.WriteByte(charset[b])
	}
	return result.String(), nil
}

// convertBits regroups a byte slice from groups of fromBits bits to groups of
// toBits bits, adding padding if pad is true and required by the source data.
func convertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("only bit groups between 1 and 8 allowed")
	}

	var regrouped []byte
	nextByte := byte(0)
	filledBits := uint8(0)

	for _, b := range data {
		b = b << (8 - fromBits)

		remFromBits := fromBits
		for remFromBits > 0 {
			remToBits := toBits - filledBits
			toExtract := remFromBits
			if remToBits < toExtract {
				toExtract = remToBits
			}

			nextByte = (nextByte << toExtract) | (b >> (8 - toExtract))

			b = b << toExtract
			remFromBits -= toExtract
			filledBits += toExtract

			if filledBits == toBits {
				regrouped = append(regrouped, nextByte)
				filledBits = 0
				nextByte = 0
			}
		}
	}

	if pad {
		if filledBits > 0 {
			regrouped = append(regrouped, nextByte<<(toBits-filledBits))
		}
	} else if filledBits >= fromBits {
		return nil, fmt.Errorf("invalid incomplete group")
	} else if nextByte != 0 {
		return nil, fmt.Errorf("non-zero padding")
	}

	return regrouped, nil
}

func bech32Checksum(hrp string, data []byte) []byte {
	values := append(bech32HrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	polymod := bech32Polymod(values) ^ 1
	var result []byte
	for i := 0; i < 6; i++ {
		result = append(result, byte((polymod>>uint(5*(5-i)))&31))
	}
	return result
}

func bech32VerifyChecksum(hrp string, data []byte) bool {
	values := append(bech32HrpExpand(hrp), data...)
	return bech32Polymod(values) == 1
}

func bech32HrpExpand(hrp string) []byte {
	v := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]>>5)
	}
	v = append(v, 0)
	for i := 0; i < len(hrp); i++ {
		v = append(v, hrp[i]&31)
	}
	return v
}

func bech32Polymod(values []byte) uint32 {
	gen := []uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}
