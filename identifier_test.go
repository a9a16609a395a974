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

package rid

import "testing"

func TestNewHTTPDefaultPortElided(t *testing.T) {
	id, err := New("http", "HTTP://Example.COM:80/a/b")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !id.Abs() {
		t.Fatal("expected an absolute identifier")
	}
	normalized := id.String()
	if normalized != "http://example.com/a/b" {
		t.Errorf("String() = %q, want http://example.com/a/b", normalized)
	}
}

func TestNewHTTPNonDefaultPortKept(t *testing.T) {
	id, err := New("http", "http://example.com:8080/a")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if id.String() != "http://example.com:8080/a" {
		t.Errorf("String() = %q, want port preserved", id.String())
	}
}

func TestEqualUnderNormalization(t *testing.T) {
	a, err := New("http", "HTTP://EXAMPLE.com:80/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New("http", "http://example.com/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("%q and %q should compare equal after normalization", a.String(), b.String())
	}
}

func TestOutputByType(t *testing.T) {
	id, err := New("generic", "http://example.com/a/./b/../c")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := id.OutputByType("PATH_SEGMENT_NORMALIZED")
	if err != nil {
		t.Fatalf("OutputByType() error = %v", err)
	}
	if out != "http://example.com/a/c" {
		t.Errorf("OutputByType(PATH_SEGMENT_NORMALIZED) = %q, want http://example.com/a/c", out)
	}
}

func TestOutputByTypeUnknownIndice(t *testing.T) {
	id, err := New("generic", "http://example.com/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := id.OutputByType("NOT_A_STAGE"); err == nil {
		t.Fatal("expected IndiceUnknown error for an unrecognized stage name")
	}
}

func TestResolveReference(t *testing.T) {
	base, err := New("generic", "http://example.com/a/b/c")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	resolved, err := base.ResolveReference("../g")
	if err != nil {
		t.Fatalf("ResolveReference() error = %v", err)
	}
	if resolved.String() != "http://example.com/a/g" {
		t.Errorf("ResolveReference(../g) = %q, want http://example.com/a/g", resolved.String())
	}
}

func TestResolveReferenceRejectsNonAbsoluteBase(t *testing.T) {
	rel, err := NewReference("generic", "/a/b")
	if err != nil {
		t.Fatalf("NewReference() error = %v", err)
	}
	if _, err := rel.ResolveReference("c"); err == nil {
		t.Fatal("expected NotAbsolute error resolving against a relative base")
	}
}

func TestAbsoluteReference(t *testing.T) {
	generic := func(s string) (*Identifier, error) { return New("generic", s) }

	abs, err := generic("http://example.com/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !AbsoluteReference(abs) {
		t.Error("expected http://example.com/ to be an absolute reference")
	}

	rel, err := NewReference("generic", "/a/b")
	if err != nil {
		t.Fatalf("NewReference() error = %v", err)
	}
	if AbsoluteReference(rel) {
		t.Error("expected /a/b not to be an absolute reference")
	}

	if got := StringifiedAbsoluteReference("http://example.com/", generic); got == "" {
		t.Error("expected StringifiedAbsoluteReference to return a normalized form")
	}
	if got := StringifiedAbsoluteReference("/a/b", generic); got != "" {
		t.Errorf("StringifiedAbsoluteReference(%q) = %q, want empty", "/a/b", got)
	}
}

func TestSchemeLike(t *testing.T) {
	cases := map[string]bool{
		"http":  true,
		"a+b-c": true,
		"":      false,
		"1http": false,
		"ht tp": false,
	}
	for in, want := range cases {
		if got := SchemeLike(in); got != want {
			t.Errorf("SchemeLike(%q) = %v, want %v", in, got, want)
		}
	}
}
