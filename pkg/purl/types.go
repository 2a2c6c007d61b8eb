// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

package purl

import (
	"regexp"
	"strings"

	"github.com/ossforge/purl/internal/percent"
	"github.com/pkg/errors"
)

// Well-known purl type constants. The type component is open-ended; these
// cover the ecosystems with defined normalization behavior plus the common
// ones callers reach for.
const (
	TypeBitbucket = "bitbucket"
	TypeComposer  = "composer"
	TypeDebian    = "deb"
	TypeDocker    = "docker"
	TypeGem       = "gem"
	TypeGeneric   = "generic"
	TypeGithub    = "github"
	TypeGolang    = "golang"
	TypeMaven     = "maven"
	TypeNPM       = "npm"
	TypeNuget     = "nuget"
	TypePyPI      = "pypi"
	TypeRPM       = "rpm"
)

// A type starts with a letter followed by at least one letter, digit, '.',
// '+', or '-'.
var typeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9.+-]+$`)

// normalizeRule is the type-specific folding applied to the namespace and
// name components before percent-decoding.
type normalizeRule struct {
	foldNamespace bool // lowercase the namespace
	foldName      bool // lowercase the name
	dashName      bool // replace '_' with '-' in the name
}

// normalizeRules is the closed set of types with non-default normalization.
// Types not listed here pass namespace and name through unchanged (aside from
// percent-decoding).
var normalizeRules = map[string]normalizeRule{
	TypeBitbucket: {foldNamespace: true, foldName: true},
	TypeDebian:    {foldNamespace: true, foldName: true},
	TypeGithub:    {foldNamespace: true, foldName: true},
	TypeGolang:    {foldNamespace: true, foldName: true},
	TypeNPM:       {foldNamespace: true, foldName: true},
	TypePyPI:      {foldName: true, dashName: true},
	TypeRPM:       {foldNamespace: true},
}

// normalizeType validates the type grammar and lowercases the result.
func normalizeType(typ string) (string, error) {
	if !typeRE.MatchString(typ) {
		return "", errors.Wrapf(ErrMalformed, "invalid type %q", typ)
	}
	return strings.ToLower(typ), nil
}

// normalizeNamespace applies the type's folding rule and percent-decodes.
// An empty result means the namespace is absent.
func normalizeNamespace(typ, namespace string) string {
	if namespace == "" {
		return ""
	}
	if normalizeRules[typ].foldNamespace {
		namespace = strings.ToLower(namespace)
	}
	return percent.Decode(namespace)
}

// normalizeName applies the type's folding and substitution rules and
// percent-decodes. The name component is required.
func normalizeName(typ, name string) (string, error) {
	if name == "" {
		return "", errors.Wrap(ErrMalformed, "missing name")
	}
	rule := normalizeRules[typ]
	if rule.dashName {
		name = strings.ReplaceAll(name, "_", "-")
	}
	if rule.foldName {
		name = strings.ToLower(name)
	}
	return percent.Decode(name), nil
}

// normalizeVersion percent-decodes only; no folding for any type. An empty
// result means the version is absent.
func normalizeVersion(version string) string {
	return percent.Decode(version)
}

// normalizeSubpath strips at most one leading and one trailing '/', then
// percent-decodes. An empty result means the subpath is absent.
func normalizeSubpath(subpath string) string {
	subpath = strings.TrimPrefix(subpath, "/")
	subpath = strings.TrimSuffix(subpath, "/")
	return percent.Decode(subpath)
}
