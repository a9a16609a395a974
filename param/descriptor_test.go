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

package param

import (
	"testing"

	"github.com/corvid-systems/rid/internal/ladder"
)

func TestBindRejectsUnwrappedSymbol(t *testing.T) {
	d := Descriptor{
		Name:         "bad",
		Kind:         ladder.KindCommon,
		FieldMapping: map[string]string{"scheme": "scheme", "<opaque>": "opaque", "<fragment>": "fragment", "<output>": "output"},
	}
	if _, err := Bind(d); err == nil {
		t.Fatal("expected BindingInvalid for an unwrapped mapping key")
	}
}

func TestBindRejectsDuplicateField(t *testing.T) {
	d := Descriptor{
		Name: "dup",
		Kind: ladder.KindCommon,
		FieldMapping: map[string]string{
			"<scheme>":   "scheme",
			"<opaque>":   "scheme",
			"<fragment>": "fragment",
			"<output>":   "output",
		},
	}
	if _, err := Bind(d); err == nil {
		t.Fatal("expected BindingInvalid for a field mapped twice")
	}
}

func TestBindRejectsIncompleteMapping(t *testing.T) {
	d := Descriptor{
		Name:         "incomplete",
		Kind:         ladder.KindCommon,
		FieldMapping: map[string]string{"<scheme>": "scheme"},
	}
	if _, err := Bind(d); err == nil {
		t.Fatal("expected BindingInvalid for a mapping missing required fields")
	}
}

func TestBindAcceptsIdentityMapping(t *testing.T) {
	d := Descriptor{
		Name:         "ok",
		Kind:         ladder.KindGeneric,
		FieldMapping: IdentityMapping(ladder.KindGeneric),
	}
	b, err := Bind(d)
	if err != nil {
		t.Fatalf("Bind() error = %v, want nil", err)
	}
	if b.Kind != ladder.KindGeneric {
		t.Errorf("Kind = %v, want Generic", b.Kind)
	}
}

func TestBindCachedBindsOnce(t *testing.T) {
	c := newBindCache()
	d := Descriptor{Name: "cached", Kind: ladder.KindCommon, FieldMapping: IdentityMapping(ladder.KindCommon)}

	b1, err := c.BindCached(d)
	if err != nil {
		t.Fatalf("first BindCached() error = %v", err)
	}
	b2, err := c.BindCached(d)
	if err != nil {
		t.Fatalf("second BindCached() error = %v", err)
	}
	if b1 != b2 {
		t.Error("BindCached should return the same *Binding for repeated calls")
	}
}
