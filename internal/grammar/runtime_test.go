/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grammar

import (
	"testing"

	"github.com/corvid-systems/rid/internal/ladder"
	"github.com/corvid-systems/rid/param"
)

func genericBinding(t *testing.T) *param.Binding {
	t.Helper()
	b, err := param.Bind(param.Descriptor{
		Name:         "generic-test",
		Kind:         ladder.KindGeneric,
		FieldMapping: param.IdentityMapping(ladder.KindGeneric),
	})
	if err != nil {
		t.Fatalf("param.Bind() error = %v", err)
	}
	return b
}

func TestParseGenericAuthorityForm(t *testing.T) {
	b := genericBinding(t)
	r, err := Parse(b, "HTTP://Example.COM:80/a/b?q=1#frag", false)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if scheme := r.Fields["scheme"][ladder.Raw]; scheme != "HTTP" {
		t.Errorf("scheme Raw = %q, want HTTP", scheme)
	}
	if scheme := r.Fields["scheme"][ladder.CaseNormalized]; scheme != "http" {
		t.Errorf("scheme CaseNormalized = %q, want http", scheme)
	}
	if host := r.Fields["host"][ladder.CaseNormalized]; host != "example.com" {
		t.Errorf("host CaseNormalized = %q, want example.com", host)
	}
	if !r.Has["query"] || r.Fields["query"][ladder.Raw] != "q=1" {
		t.Errorf("query not parsed correctly: %+v", r.Fields["query"])
	}
	if !r.Has["fragment"] || r.Fields["fragment"][ladder.Raw] != "frag" {
		t.Errorf("fragment not parsed correctly: %+v", r.Fields["fragment"])
	}
}

func TestParseGenericRejectsMissingScheme(t *testing.T) {
	b := genericBinding(t)
	if _, err := Parse(b, "//example.com/path", false); err == nil {
		t.Fatal("expected an error parsing an absolute-only grammar without a scheme")
	}
}

func TestParseReferenceAllowsRelative(t *testing.T) {
	b := genericBinding(t)
	r, err := ParseReference(b, "/a/b?q=1", false)
	if err != nil {
		t.Fatalf("ParseReference() error = %v", err)
	}
	if r.Has["scheme"] {
		t.Error("relative reference should not have a scheme")
	}
	if path := r.Fields["path"][ladder.Raw]; path != "/a/b" {
		t.Errorf("path = %q, want /a/b", path)
	}
}

func TestParseReferenceRejectsAmbiguousRootless(t *testing.T) {
	b := genericBinding(t)
	if _, err := ParseReference(b, "a:b/c", false); err == nil {
		t.Fatal("expected GrammarAmbiguous-shaped error for scheme:rootless-path as a relative reference")
	}
}

func TestParseCommon(t *testing.T) {
	b, err := param.Bind(param.Descriptor{
		Name:         "common-test",
		Kind:         ladder.KindCommon,
		FieldMapping: param.IdentityMapping(ladder.KindCommon),
	})
	if err != nil {
		t.Fatalf("param.Bind() error = %v", err)
	}
	r, err := Parse(b, "urn:example:a123#frag", false)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if scheme := r.Fields["scheme"][ladder.Raw]; scheme != "urn" {
		t.Errorf("scheme = %q, want urn", scheme)
	}
	if opaque := r.Fields["opaque"][ladder.Raw]; opaque != "example:a123" {
		t.Errorf("opaque = %q, want example:a123", opaque)
	}
}
