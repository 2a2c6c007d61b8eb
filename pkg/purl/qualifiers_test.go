// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

package purl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQualifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected map[string]string
		wantErr  bool
	}{
		{input: "pkg:generic/name?foo=bar", expected: map[string]string{"foo": "bar"}},                                   // Single pair
		{input: "pkg:generic/name?foo=bar&baz=qux", expected: map[string]string{"baz": "qux", "foo": "bar"}},             // Multiple pairs
		{input: "pkg:generic/name?foo=bar&broken&baz=qux", expected: map[string]string{"baz": "qux", "foo": "bar"}},      // Pair without '=' dropped
		{input: "pkg:generic/name?foo=bar&=value", expected: map[string]string{"foo": "bar"}},                            // Empty key dropped
		{input: "pkg:generic/name?foo=bar&empty=", expected: map[string]string{"foo": "bar"}},                            // Empty value dropped
		{input: "pkg:generic/name?", expected: map[string]string{}},                                                      // Empty qualifier string
		{input: "pkg:generic/name?FOO=bar", expected: map[string]string{"foo": "bar"}},                                   // Keys lowercased
		{input: "pkg:generic/name?arch=x86%2064", expected: map[string]string{"arch": "x86 64"}},                         // Values percent-decoded
		{input: "pkg:generic/name?checksum=sha256=abc", expected: map[string]string{"checksum": "sha256=abc"}},           // Split at first '=' only
		{input: "pkg:generic/name?1bad=val", wantErr: true},                                                              // Key must start with a letter
		{input: "pkg:generic/name?f=val", wantErr: true},                                                                 // Key too short for the grammar
		{input: "pkg:generic/name?bad%20key=val", wantErr: true},                                                         // Key character outside the grammar
		{input: "pkg:generic/name?broken&1bad", expected: map[string]string{}},                                           // Dropped pairs are never key-validated
	}

	for _, tt := range tests {
		p, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if diff := cmp.Diff(tt.expected, p.Qualifiers().Map()); diff != "" {
			t.Errorf("Parse(%q) qualifiers diff (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseQualifierDuplicates(t *testing.T) {
	// Case-insensitive duplicates collapse to one entry; the last pair wins.
	p, err := Parse("pkg:generic/name?Arch=amd64&arch=arm64")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(map[string]string{"arch": "arm64"}, p.Qualifiers().Map()); diff != "" {
		t.Errorf("qualifiers diff (-want +got):\n%s", diff)
	}
}

func TestQualifierOrdering(t *testing.T) {
	p, err := Parse("pkg:generic/name?zz=1&mm=2&aa=3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	expected := Qualifiers{{Key: "aa", Value: "3"}, {Key: "mm", Value: "2"}, {Key: "zz", Value: "1"}}
	if diff := cmp.Diff(expected, p.Qualifiers()); diff != "" {
		t.Errorf("qualifiers diff (-want +got):\n%s", diff)
	}
}

func TestQualifiersGet(t *testing.T) {
	p, err := Parse("pkg:rpm/fedora/curl?arch=i386&distro=fedora-25")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, ok := p.Qualifiers().Get("ARCH"); !ok || v != "i386" {
		t.Errorf("Get(\"ARCH\") = %q, %v, expected \"i386\", true", v, ok)
	}
	if _, ok := p.Qualifiers().Get("missing"); ok {
		t.Error("Get(\"missing\") = true, expected false")
	}
}

func TestQualifiersMapIsACopy(t *testing.T) {
	p, err := Parse("pkg:generic/name?foo=bar")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m := p.Qualifiers().Map()
	m["foo"] = "mutated"
	if v, _ := p.Qualifiers().Get("foo"); v != "bar" {
		t.Errorf("qualifier value = %q after mutating the returned map, expected %q", v, "bar")
	}
}

func TestNewQualifierValidation(t *testing.T) {
	tests := []struct {
		qualifiers map[string]string
		expected   map[string]string
		wantErr    bool
	}{
		{qualifiers: nil, expected: map[string]string{}},                                                   // Nil mapping permitted
		{qualifiers: map[string]string{"arch": "i386"}, expected: map[string]string{"arch": "i386"}},       // Simple pair
		{qualifiers: map[string]string{"Arch": "i386"}, expected: map[string]string{"arch": "i386"}},       // Keys lowercased
		{qualifiers: map[string]string{"empty": ""}, expected: map[string]string{"empty": ""}},             // Empty value permitted on direct construction
		{qualifiers: map[string]string{"a b": "x"}, wantErr: true},                                         // Key grammar enforced
		{qualifiers: map[string]string{"1bad": "x"}, wantErr: true},                                        // Key must start with a letter
	}

	for _, tt := range tests {
		p, err := New("generic", "", "name", "", tt.qualifiers, "")
		if (err != nil) != tt.wantErr {
			t.Errorf("New(qualifiers=%v) error = %v, wantErr %v", tt.qualifiers, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if diff := cmp.Diff(tt.expected, p.Qualifiers().Map()); diff != "" {
			t.Errorf("New(qualifiers=%v) diff (-want +got):\n%s", tt.qualifiers, diff)
		}
	}
}

func TestNewQualifierValuesNotDecoded(t *testing.T) {
	// Direct construction assumes already-decoded values; Parse decodes.
	p, err := New("generic", "", "name", "", map[string]string{"note": "100%zz"}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if v, _ := p.Qualifiers().Get("note"); v != "100%zz" {
		t.Errorf("qualifier value = %q, expected %q", v, "100%zz")
	}
}
