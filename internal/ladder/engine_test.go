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

package ladder

import (
	"strings"
	"testing"
)

func TestEngineReduceChainsNormalizers(t *testing.T) {
	e := NewEngine()
	e.Normalize[CaseNormalized].Set("host", strings.ToLower)
	e.Normalize[CharacterNormalized].Set("host", func(s string) string { return s + "!" })

	snap := e.ReduceLiteral("host", "EXAMPLE.COM")
	if snap[Raw] != "EXAMPLE.COM" {
		t.Errorf("Raw = %q, want unchanged input", snap[Raw])
	}
	if snap[CaseNormalized] != "example.com" {
		t.Errorf("CaseNormalized = %q, want lowercase", snap[CaseNormalized])
	}
	if snap[CharacterNormalized] != "example.com!" {
		t.Errorf("CharacterNormalized = %q, want chained onto CaseNormalized", snap[CharacterNormalized])
	}
	if snap[PercentEncodingNormalized] != snap[CharacterNormalized] {
		t.Errorf("unregistered stage should pass through unchanged from the previous stage")
	}
}

func TestEngineReduceConvertIndependentFromNormalize(t *testing.T) {
	e := NewEngine()
	e.Normalize[CaseNormalized].Set("scheme", strings.ToLower)
	e.Convert[URIConverted].Set("scheme", func(s string) (string, error) { return strings.ToUpper(s), nil })

	snap := e.ReduceLiteral("scheme", "HTTP")
	if snap[CaseNormalized] != "http" {
		t.Errorf("CaseNormalized = %q, want lowercase", snap[CaseNormalized])
	}
	if snap[URIConverted] != "HTTP" {
		t.Errorf("URIConverted = %q, want uppercase derived from Raw, independent of normalize chain", snap[URIConverted])
	}
}

func TestTableExtendComposesOverParent(t *testing.T) {
	parent := NewTable[NormalizeFunc]()
	parent.Set("host", strings.ToLower)

	child := parent.Extend()
	child.Set("port", func(s string) string { return s })

	if _, ok := child.Lookup("host"); !ok {
		t.Error("child table should see parent's entries")
	}
	if _, ok := child.Lookup("port"); !ok {
		t.Error("child table should see its own entries")
	}
	if _, ok := parent.Lookup("port"); ok {
		t.Error("parent table should not see child's entries")
	}
}
