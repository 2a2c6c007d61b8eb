// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

package purl

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Parse interprets raw as a purl string and returns the validated value.
//
// The components are carved off the string in strict precedence order:
// subpath at the last '#', qualifiers at the last '?', version at the last
// '@', and the remaining path split on '/' into type, optional namespace
// segments, and name. All failures wrap ErrMalformed.
func Parse(raw string) (*PackageURL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.Wrap(ErrMalformed, "empty input")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "not a valid URI: %v", err)
	}
	// A purl has no authority: user-info and port are never permitted.
	if u.User != nil || u.Port() != "" {
		return nil, errors.Wrap(ErrMalformed, "authority components are not permitted")
	}
	// url.Parse lowercases the scheme; the spec requires a case-sensitive
	// match, so check the raw prefix.
	scheme, _, found := strings.Cut(raw, ":")
	if !found || scheme != Scheme {
		return nil, errors.Wrapf(ErrMalformed, "scheme must be %q", Scheme)
	}

	p := &PackageURL{}
	remainder := raw[len(Scheme)+1:]

	if i := strings.LastIndex(remainder, "#"); i >= 0 {
		p.subpath = normalizeSubpath(remainder[i+1:])
		remainder = remainder[:i]
	}
	if i := strings.LastIndex(remainder, "?"); i >= 0 {
		if p.qualifiers, err = parseQualifiers(remainder[i+1:]); err != nil {
			return nil, err
		}
		remainder = remainder[:i]
	}
	if i := strings.LastIndex(remainder, "@"); i >= 0 {
		p.version = normalizeVersion(remainder[i+1:])
		remainder = remainder[:i]
	}

	// What remains is type, optional namespace segments, and name.
	remainder = strings.TrimLeft(remainder, "/")
	segments := strings.Split(remainder, "/")
	if len(segments) < 2 {
		return nil, errors.Wrap(ErrMalformed, "must contain at least a type and a name")
	}
	if p.typ, err = normalizeType(segments[0]); err != nil {
		return nil, err
	}
	if p.name, err = normalizeName(p.typ, segments[len(segments)-1]); err != nil {
		return nil, err
	}
	if middle := segments[1 : len(segments)-1]; len(middle) > 0 {
		p.namespace = normalizeNamespace(p.typ, strings.Join(middle, ","))
	}
	return p, nil
}
