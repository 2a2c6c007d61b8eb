// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

// Package purl implements the package URL (purl) identifier format:
//
//	pkg:type/namespace/name@version?qualifiers#subpath
//
// A purl identifies a software package across ecosystems. It is URL-shaped
// but must not carry a URL authority: there is no username, password, host,
// or port. A PackageURL is an immutable value validated once at construction,
// either by Parse from the string form or by New from discrete components,
// and is safe to share across goroutines.
//
// SPEC: https://github.com/package-url/purl-spec
package purl

import (
	"slices"
	"strings"

	"github.com/ossforge/purl/internal/percent"
	"github.com/pkg/errors"
)

// Scheme is the constant URL scheme of every purl.
const Scheme = "pkg"

// ErrMalformed reports a string or component set that does not form a valid
// purl. Every validation failure wraps this sentinel with a reason.
var ErrMalformed = errors.New("malformed package URL")

// PackageURL is an immutable purl value. The zero value is not valid; use
// Parse or New.
type PackageURL struct {
	typ        string
	namespace  string
	name       string
	version    string
	qualifiers Qualifiers
	subpath    string
}

// New constructs a PackageURL from discrete components, applying the same
// validation and normalization as Parse but without string splitting. The
// components are treated as already percent-decoded except where a component
// happens to contain decodable escapes, which are decoded as in Parse.
// Optional components may be empty; qualifiers may be nil.
func New(typ, namespace, name, version string, qualifiers map[string]string, subpath string) (*PackageURL, error) {
	p := &PackageURL{}
	var err error
	if p.typ, err = normalizeType(typ); err != nil {
		return nil, err
	}
	p.namespace = normalizeNamespace(p.typ, namespace)
	if p.name, err = normalizeName(p.typ, name); err != nil {
		return nil, err
	}
	p.version = normalizeVersion(version)
	if p.qualifiers, err = newQualifiers(qualifiers); err != nil {
		return nil, err
	}
	p.subpath = normalizeSubpath(subpath)
	return p, nil
}

// NewPackage constructs a minimal PackageURL from just a type and a name.
func NewPackage(typ, name string) (*PackageURL, error) {
	return New(typ, "", name, "", nil, "")
}

// Scheme returns the purl scheme, always "pkg".
func (p *PackageURL) Scheme() string { return Scheme }

// Type returns the package type, e.g. "maven", "npm", "pypi". Never empty.
func (p *PackageURL) Type() string { return p.typ }

// Namespace returns the type-specific name prefix, such as a Maven group id
// or a GitHub organization. Empty when absent.
func (p *PackageURL) Namespace() string { return p.namespace }

// Name returns the package name. Never empty.
func (p *PackageURL) Name() string { return p.name }

// Version returns the package version. Empty when absent.
func (p *PackageURL) Version() string { return p.version }

// Qualifiers returns a copy of the qualifier pairs, sorted by key. The
// result is empty, not nil-distinguished, when there are none.
func (p *PackageURL) Qualifiers() Qualifiers {
	return slices.Clone(p.qualifiers)
}

// Subpath returns the path within the package, relative to the package root.
// Empty when absent.
func (p *PackageURL) Subpath() string { return p.subpath }

// Canonicalize returns the canonical string form of the purl. Namespace,
// name, version, and qualifier values are percent-encoded per RFC 3986;
// the subpath is emitted in its decoded form.
func (p *PackageURL) Canonicalize() string {
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteByte(':')
	b.WriteString(p.typ)
	b.WriteByte('/')
	if p.namespace != "" {
		b.WriteString(percent.Encode(p.namespace))
		b.WriteByte('/')
	}
	b.WriteString(percent.Encode(p.name))
	if p.version != "" {
		b.WriteByte('@')
		b.WriteString(percent.Encode(p.version))
	}
	if len(p.qualifiers) > 0 {
		b.WriteByte('?')
		for i, q := range p.qualifiers {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(q.Key)
			b.WriteByte('=')
			b.WriteString(percent.Encode(q.Value))
		}
	}
	if p.subpath != "" {
		b.WriteByte('#')
		b.WriteString(p.subpath)
	}
	return b.String()
}

// String implements fmt.Stringer as the canonical form.
func (p *PackageURL) String() string {
	return p.Canonicalize()
}

// Equal reports component-wise equality with o.
func (p *PackageURL) Equal(o *PackageURL) bool {
	return o != nil &&
		p.typ == o.typ &&
		p.namespace == o.namespace &&
		p.name == o.name &&
		p.version == o.version &&
		p.subpath == o.subpath &&
		slices.Equal(p.qualifiers, o.qualifiers)
}

// MarshalText implements encoding.TextMarshaler as the canonical form.
func (p *PackageURL) MarshalText() ([]byte, error) {
	return []byte(p.Canonicalize()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the purl
// string form.
func (p *PackageURL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}
