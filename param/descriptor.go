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

// Package param implements the Parameterization Descriptor and the binding
// step that turns one into a concrete, ready-to-parse identifier type: a
// grammar kind, a symbol-to-field mapping, and the composed normalizer and
// converter engine an Overlay may extend.
package param

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/corvid-systems/rid/internal/ladder"
)

// DefaultUnreserved is the unreserved-character regex a Descriptor uses
// when it leaves Unreserved nil: RFC 3986 Section 2.3's set (ALPHA / DIGIT
// / "-" / "." / "_" / "~"). Grounded on the teacher's own
// percent-encoding-normalization predicate (`iri/encoding.go`'s
// `isUnreserved`, confirmed narrow by `iri/encoding_test.go`'s
// "a%24b%26c" case, which leaves sub-delims percent-encoded) rather than
// the broader unreserved-or-sub-delims set the grammar uses for raw
// character-class validation.
var DefaultUnreserved = regexp.MustCompile(`^[A-Za-z0-9\-._~]$`)

// DefaultReserved is the reserved-character regex (gen-delims plus
// sub-delims, RFC 3986 Section 2.2) a Descriptor uses when it leaves
// Reserved nil.
var DefaultReserved = regexp.MustCompile(`^[:/?#\[\]@!$&'()*+,;=]$`)

// DefaultPctEncoded is the case_normalizer/percent_encoding_normalizer
// criteria key a Descriptor uses when it leaves PctEncoded empty.
const DefaultPctEncoded = "pct_encoded"

// Descriptor declares one concrete identifier type before it is bound.
// Name identifies the type in error messages and in Setup's registry (for
// example "http", "ldap", "generic"). FieldMapping keys are grammar symbol
// names wrapped in angle brackets, e.g. "<host>"; values are the ladder
// record field each symbol's reduction is stored into.
//
// Whoami and BNF are descriptive metadata carried through to the Binding
// for callers that introspect a bound identifier type (a scheme's display
// name and the grammar fragment it was bound from); neither one drives
// parsing. Unreserved is the character class percent_encoding_normalizer
// passes to the percent-codec's Unescape for this descriptor's scheme;
// Reserved is carried through to the Binding, and nothing in this module
// consults it. PctEncoded names the grammar
// symbol the case_normalizer and percent_encoding_normalizer are keyed
// under. All three default (DefaultReserved, DefaultUnreserved,
// DefaultPctEncoded) when left zero, so only a Descriptor customizing one
// of them needs to set it.
type Descriptor struct {
	Name         string
	Kind         ladder.Kind
	FieldMapping map[string]string
	Overlay      Overlay

	Whoami     string
	BNF        string
	Reserved   *regexp.Regexp
	Unreserved *regexp.Regexp
	PctEncoded string
}

// BindingInvalid reports why a Descriptor failed its sanity checks during
// Bind: a field mapping key not wrapped in "<name>", a mapping value that
// is not a known record field, a field mapped more than once, or a field
// never mapped at all.
type BindingInvalid struct {
	Descriptor string
	Reason     string
}

func (e *BindingInvalid) Error() string {
	return fmt.Sprintf("param: descriptor %q is not bindable: %s", e.Descriptor, e.Reason)
}

func knownFields(kind ladder.Kind) []string {
	if kind == ladder.KindGeneric {
		return ladder.GenericFieldNames
	}
	return ladder.CommonFieldNames
}

// validate runs the three sanity checks a Parameterization Descriptor must
// pass before it can be bound: every mapped symbol is wrapped "<name>",
// every mapping value names a known field of the descriptor's Kind, and
// every known field is covered by exactly one mapping entry.
func (d Descriptor) validate() error {
	fields := knownFields(d.Kind)
	fieldSet := make(map[string]bool, len(fields))
	for _, f := range fields {
		fieldSet[f] = false
	}

	for symbol, field := range d.FieldMapping {
		if !strings.HasPrefix(symbol, "<") || !strings.HasSuffix(symbol, ">") || len(symbol) < 3 {
			return &BindingInvalid{Descriptor: d.Name, Reason: fmt.Sprintf("mapping key %q is not wrapped as <name>", symbol)}
		}
		mapped, ok := fieldSet[field]
		if !ok {
			return &BindingInvalid{Descriptor: d.Name, Reason: fmt.Sprintf("mapping value %q for symbol %s is not a known field of kind %s", field, symbol, d.Kind)}
		}
		if mapped {
			return &BindingInvalid{Descriptor: d.Name, Reason: fmt.Sprintf("field %q is mapped by more than one symbol", field)}
		}
		fieldSet[field] = true
	}

	var missing []string
	for field, mapped := range fieldSet {
		if !mapped {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &BindingInvalid{Descriptor: d.Name, Reason: fmt.Sprintf("fields never mapped: %s", strings.Join(missing, ", "))}
	}
	return nil
}

// symbol strips the "<" ">" wrapping from a mapping key, returning the bare
// grammar criteria name the grammar runtime reduces under.
func symbol(wrapped string) string {
	return strings.TrimSuffix(strings.TrimPrefix(wrapped, "<"), ">")
}

// fieldBySymbol returns the unwrapped symbol -> field map for d, assuming
// d already passed validate.
func (d Descriptor) fieldBySymbol() map[string]string {
	out := make(map[string]string, len(d.FieldMapping))
	for k, v := range d.FieldMapping {
		out[symbol(k)] = v
	}
	return out
}

// IdentityMapping returns the trivial Parameterization field mapping for
// kind, where every grammar symbol shares its record field's name. This is
// the mapping the built-in generic and common descriptors use. Bind
// validates any other complete mapping too, but the grammar runtime
// always reduces under the record field names, so a renamed symbol (an
// LDAP-style "dn" feeding the "path" field, for instance) has no effect
// on parsing.
func IdentityMapping(kind ladder.Kind) map[string]string {
	fields := knownFields(kind)
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m["<"+f+">"] = f
	}
	return m
}
