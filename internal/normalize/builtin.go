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

package normalize

import (
	"regexp"

	"github.com/corvid-systems/rid/internal/ladder"
)

// textFieldsGeneric are every Generic-kind field whose value is ordinary
// percent-encodable text, as opposed to a host-shaped field.
var textFieldsGeneric = []string{
	"userinfo", "path", "segments", "segment",
	"query", "fragment", "opaque",
}

var hostFieldsGeneric = []string{"host", "reg_name"}

// commonHexFields are the two fields a Common-kind record carries that can
// hold percent-encoded text ("output"/"scheme" never do).
var commonHexFields = []string{"opaque", "fragment"}

// genericHexFields are the remaining Generic-kind fields needing the
// pct_encoded case rule, beyond the ones commonHexFields already lists.
var genericHexFields = []string{"path", "segments", "segment", "query", "userinfo"}

// redirectToPctEncoded returns a CaseNormalized rule that, at call time,
// looks up whatever function pctEncoded currently names in e's
// CaseNormalized table and applies it. Fields register this indirection
// instead of closing over upperPercentHex directly, so an Overlay that
// later replaces the pctEncoded entry (Overlay.Apply runs after
// BuiltinEngine returns) changes every field that defers to it, matching
// spec's "pct_encoded: optional symbol name" customization point.
func redirectToPctEncoded(e *ladder.Engine, pctEncoded string) func(string) string {
	return func(value string) string {
		if fn, ok := e.Normalize[ladder.CaseNormalized].Lookup(pctEncoded); ok {
			return fn(value)
		}
		return value
	}
}

// BuiltinEngine returns the default ladder.Engine for kind, with the
// normalizer and converter tables Ref.Normalize and ToURI applied as a
// single fixed pipeline, here split per-field so an Overlay can extend any
// one of them by composition. unreserved is the descriptor's
// percent-encoding-normalization unreserved-character regex; pctEncoded is
// the grammar symbol the case_normalizer and percent_encoding_normalizer
// are keyed under.
//
// Common kind gets only the pct_encoded hex-uppercase rule under
// case_normalizer; every other stage stays identity for it, per spec
// Section 4.3's Common-kind defaults.
func BuiltinEngine(kind ladder.Kind, unreserved *regexp.Regexp, pctEncoded string) *ladder.Engine {
	e := ladder.NewEngine()

	e.Normalize[ladder.CaseNormalized].Set(pctEncoded, upperPercentHex)
	redirect := redirectToPctEncoded(e, pctEncoded)
	for _, f := range commonHexFields {
		e.Normalize[ladder.CaseNormalized].Set(f, redirect)
	}

	if kind != ladder.KindGeneric {
		return e
	}

	e.Normalize[ladder.CaseNormalized].Set("scheme", lowerCase)
	lowerFields := []string{"ip_literal", "ipv6_address", "ipv6_addrz", "ipvfuture"}
	for _, f := range lowerFields {
		e.Normalize[ladder.CaseNormalized].Set(f, lowerCase)
	}
	// A host is lowercased only when it is pure US-ASCII; a host holding
	// any non-ASCII character is left as it is.
	lowerASCIIHost := func(value string) string {
		for i := 0; i < len(value); i++ {
			if value[i] >= 0x80 {
				return value
			}
		}
		return lowerCase(value)
	}
	for _, f := range []string{"host", "reg_name"} {
		e.Normalize[ladder.CaseNormalized].Set(f, lowerASCIIHost)
	}
	for _, f := range genericHexFields {
		e.Normalize[ladder.CaseNormalized].Set(f, redirect)
	}

	charFields := []string{"userinfo", "host", "reg_name", "path", "segments", "segment", "query", "fragment", "opaque"}
	for _, f := range charFields {
		e.Normalize[ladder.CharacterNormalized].Set(f, nfc)
	}

	percentFields := []string{"userinfo", "host", "reg_name", "path", "segments", "segment", "query", "fragment", "opaque"}
	for _, f := range percentFields {
		e.Normalize[ladder.PercentEncodingNormalized].Set(f, percentEncodingNormalize(unreserved))
	}

	e.Normalize[ladder.PathSegmentNormalized].Set("path", pathSegmentNormalize)

	for _, f := range hostFieldsGeneric {
		e.Convert[ladder.URIConverted].Set(f, hostToASCII)
		e.Convert[ladder.IRIConverted].Set(f, hostToUnicode)
	}
	for _, f := range textFieldsGeneric {
		e.Convert[ladder.URIConverted].Set(f, textToURI)
		e.Convert[ladder.IRIConverted].Set(f, textToIRI)
	}
	e.Convert[ladder.URIConverted].Set("scheme", func(v string) (string, error) { return v, nil })
	e.Convert[ladder.IRIConverted].Set("scheme", func(v string) (string, error) { return v, nil })

	return e
}
