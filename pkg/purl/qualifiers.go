// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

package purl

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ossforge/purl/internal/percent"
	"github.com/pkg/errors"
)

// A qualifier key starts with a letter followed by at least one letter,
// digit, '.', '-', or '_'.
var qualifierKeyRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]+$`)

// Qualifier is a single key/value pair of package metadata.
type Qualifier struct {
	Key   string
	Value string
}

// Qualifiers holds a purl's qualifier pairs with lowercased keys, sorted by
// key. Keys are unique: case variants of the same key collapse to one entry.
type Qualifiers []Qualifier

// Map returns the qualifiers as a fresh map. The map is never nil.
func (qs Qualifiers) Map() map[string]string {
	m := make(map[string]string, len(qs))
	for _, q := range qs {
		m[q.Key] = q.Value
	}
	return m
}

// Get returns the value for key, compared case-insensitively.
func (qs Qualifiers) Get(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, q := range qs {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}

// parseQualifiers interprets the raw qualifiers portion of a purl string.
//
// Pairs are split on '&', then on the first '='. A pair missing either side
// is dropped without error; a retained pair whose key fails the key grammar
// aborts the parse. When a key repeats (case-insensitively), the last
// occurrence wins.
func parseQualifiers(raw string) (Qualifiers, error) {
	m := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			continue
		}
		if !qualifierKeyRE.MatchString(key) {
			return nil, errors.Wrapf(ErrMalformed, "invalid qualifier key %q", key)
		}
		m[strings.ToLower(key)] = percent.Decode(value)
	}
	return qualifiersFromMap(m), nil
}

// newQualifiers validates a directly-supplied qualifier mapping. Values are
// assumed already decoded. When two supplied keys collide case-insensitively,
// the byte-wise larger key's value wins, so the result is deterministic.
func newQualifiers(qualifiers map[string]string) (Qualifiers, error) {
	keys := make([]string, 0, len(qualifiers))
	for key := range qualifiers {
		if !qualifierKeyRE.MatchString(key) {
			return nil, errors.Wrapf(ErrMalformed, "invalid qualifier key %q", key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ToLower(key)] = qualifiers[key]
	}
	return qualifiersFromMap(m), nil
}

func qualifiersFromMap(m map[string]string) Qualifiers {
	if len(m) == 0 {
		return nil
	}
	qs := make(Qualifiers, 0, len(m))
	for key, value := range m {
		qs = append(qs, Qualifier{Key: key, Value: value})
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].Key < qs[j].Key })
	return qs
}
