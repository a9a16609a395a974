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

// Package percentcodec implements RFC 3986 percent-encoding and the
// Unicode-safe decode/validate/re-encode cycle RFC 3987 Section 5.3.2.3
// requires for percent-encoding normalization.
package percentcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/corvid-systems/rid/internal/charset"
)

// Predicate reports whether a code point belongs to a character class, such
// as "reserved" or "unreserved", as supplied by a scheme's Parameterization
// Descriptor.
type Predicate func(rune) bool

// Encode percent-encodes every substring of s matched by isReserved, writing
// each byte of its UTF-8 encoding as an uppercase "%HH" triplet.
func Encode(s string, isReserved Predicate) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isReserved != nil && isReserved(r) {
			EncodeRune(r, &b)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EncodeRune writes the uppercase "%HH" percent-encoding of r's UTF-8
// representation to b.
func EncodeRune(r rune, b *strings.Builder) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for i := range n {
		fmt.Fprintf(b, "%%%02X", buf[i])
	}
}

// octetsFromRun decodes a maximal run of "%HH" triplets into its raw bytes.
// ok is false if run is not an exact sequence of well-formed triplets.
func octetsFromRun(run string) (octets []byte, ok bool) {
	if len(run)%3 != 0 {
		return nil, false
	}
	octets = make([]byte, 0, len(run)/3)
	for i := 0; i < len(run); i += 3 {
		if run[i] != '%' || !charset.IsASCIIHexDigit(rune(run[i+1])) || !charset.IsASCIIHexDigit(rune(run[i+2])) {
			return nil, false
		}
		hi := hexVal(run[i+1])
		lo := hexVal(run[i+2])
		octets = append(octets, byte(hi<<4|lo))
	}
	return octets, true
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// Unescape finds each maximal run of "%HH" triplets in value, decodes it,
// validates the decoded bytes as UTF-8, and for each decoded code point:
// substitutes the literal character when it matches isUnreserved, or keeps
// the original percent-encoded bytes otherwise. On any decode or validation
// failure the original run is preserved unchanged, per RFC 3987, Section
// 5.3.2.3 and this module's tolerant-normalizer policy.
func Unescape(value string, isUnreserved Predicate) string {
	var out strings.Builder
	out.Grow(len(value))

	i := 0
	for i < len(value) {
		if value[i] != '%' {
			out.WriteByte(value[i])
			i++
			continue
		}

		start := i
		for i < len(value) && value[i] == '%' {
			if i+2 >= len(value) || !charset.IsASCIIHexDigit(rune(value[i+1])) || !charset.IsASCIIHexDigit(rune(value[i+2])) {
				break
			}
			i += 3
		}
		run := value[start:i]
		if run == "" {
			// Lone '%' not followed by two hex digits: copy verbatim and advance.
			out.WriteByte(value[start])
			i = start + 1
			continue
		}

		octets, ok := octetsFromRun(run)
		if !ok || !utf8.Valid(octets) {
			out.WriteString(run)
			continue
		}

		rewritten, ok := reencodeByCodepoint(run, octets, isUnreserved)
		if !ok {
			out.WriteString(run)
			continue
		}
		out.WriteString(rewritten)
	}
	return out.String()
}

// reencodeByCodepoint walks decoded UTF-8 octets one code point at a time,
// re-encoding each to learn its UTF-8 length and so recover the exact "%HH"
// bytes of run that produced it (per spec's open question: minimal percent
// sequences are required, so the byte length of a code point's UTF-8 form
// is always the percent-run length divided by 3 for that code point).
// Non-minimal sequences fail validation in utf8.DecodeRune and cause this
// function to report ok=false.
func reencodeByCodepoint(run string, octets []byte, isUnreserved Predicate) (string, bool) {
	var out strings.Builder
	for len(octets) > 0 {
		r, size := utf8.DecodeRune(octets)
		if r == utf8.RuneError && size <= 1 {
			return "", false
		}
		if charset.IsForbiddenBidiFormatting(r) {
			return "", false
		}
		if isUnreserved != nil && isUnreserved(r) {
			out.WriteRune(r)
		} else {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			if n != size {
				return "", false
			}
			out.WriteString(run[:3*size])
		}
		octets = octets[size:]
		run = run[3*size:]
	}
	return out.String(), true
}

// DecodeValidated decodes s's percent-encoded octets and confirms the
// result is valid UTF-8 with no forbidden bidi-formatting characters,
// returning the decoded string. It is used by URI-to-IRI conversion, which
// must reject percent-encoded octets that do not form a clean decode.
func DecodeValidated(s string) (string, bool) {
	octets, ok := octetsFromRun(s)
	if !ok || !utf8.Valid(octets) {
		return "", false
	}
	decoded := string(octets)
	for _, r := range decoded {
		if charset.IsForbiddenBidiFormatting(r) {
			return "", false
		}
	}
	return decoded, true
}
