// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

// Package percent provides the percent-encoding pair used for purl components.
//
// Encoding follows RFC 3986 rather than form encoding: spaces become %20, and
// '~' stays literal. Decoding is tolerant: input that cannot be decoded is
// returned unchanged rather than rejected.
package percent

import (
	"net/url"
	"strings"
)

// Encode percent-encodes s in conformance with RFC 3986.
func Encode(s string) string {
	// QueryEscape emits form encoding ('+' for space); purl wants %20.
	// '~' is already left unescaped by QueryEscape.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Decode percent-decodes s if it is decodable and the decoded form differs
// from the input. Otherwise the original string is returned unchanged, so a
// literal '%' that does not introduce a valid escape is not an error.
func Decode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil || decoded == s {
		return s
	}
	return decoded
}
