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
	"strings"

	"golang.org/x/net/idna"

	"github.com/corvid-systems/rid/internal/charset"
	"github.com/corvid-systems/rid/internal/percentcodec"
)

// hostToASCII is the URIConverted-stage rule for "host": IDNA ToASCII,
// falling back to the unconverted value when the host is already an IP
// literal or otherwise not IDNA-eligible. An IP literal host (bracketed)
// is left untouched, matching RFC 3987's treatment of ToASCII over
// ireg-name only.
func hostToASCII(value string) (string, error) {
	if strings.HasPrefix(value, "[") {
		return value, nil
	}
	ascii, err := idna.ToASCII(value)
	if err != nil {
		return value, nil
	}
	return ascii, nil
}

// hostToUnicode is the IRIConverted-stage rule for "host": IDNA ToUnicode,
// with the Nameprep-era German Eszett mapping the teacher's authority
// parser applies, since x/net/idna's ToUnicode always maps "ss" back to
// "ß" even with Transitional processing, which RFC 3987's predecessor
// behavior for legacy domains did not.
func hostToUnicode(value string) (string, error) {
	if strings.HasPrefix(value, "[") {
		return value, nil
	}
	unicodeHost, err := idna.ToUnicode(value)
	if err != nil {
		return value, nil
	}
	return strings.ReplaceAll(unicodeHost, "ß", "ss"), nil
}

// textToURI is the URIConverted-stage rule for a plain textual component
// (not host): percent-encode every code point outside the ASCII unreserved,
// reserved and "%" characters, so existing percent-encodings are kept as
// they are, matching RFC 3987 Section 3.1's IRI-to-URI mapping.
func textToURI(value string) (string, error) {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r <= 0x7F && (charset.IsUnreservedOrSubDelims(r) || strings.ContainsRune(":/?#[]@!$&'()*+,;=%", r)) {
			b.WriteRune(r)
			continue
		}
		percentcodec.EncodeRune(r, &b)
	}
	return b.String(), nil
}

// textToIRI is the IRIConverted-stage rule for a plain textual component:
// decode percent-encoded octets back to their literal Unicode character
// whenever that character is a valid iunreserved code point, leaving
// anything else (reserved delimiters, invalid sequences) percent-encoded.
func textToIRI(value string) (string, error) {
	return percentcodec.Unescape(value, charset.IsIUnreservedOrSubDelims), nil
}
