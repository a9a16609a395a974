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

// Package normalize holds the built-in normalizer and converter tables the
// generic and common Parameterization descriptors bind by default, the way
// Ref.Normalize's fixed pipeline and ToURI's conversion did for a single
// hard-coded identifier type.
package normalize

import "strings"

// lowerCase is the CaseNormalized-stage rule for every component RFC
// 3986/3987 treat as case-insensitive: scheme, host, and the textual forms
// of an IP literal. BuiltinEngine applies it to a host only when the host
// is pure US-ASCII.
func lowerCase(value string) string { return strings.ToLower(value) }

// upperPercentHex uppercases only the two hex digits following each "%" so
// that percent-encoded octets compare equal regardless of the source's hex
// case, without touching surrounding letters.
func upperPercentHex(value string) string {
	b := []byte(value)
	for i := 0; i+2 < len(b); i++ {
		if b[i] != '%' {
			continue
		}
		b[i+1] = upperHexByte(b[i+1])
		b[i+2] = upperHexByte(b[i+2])
	}
	return string(b)
}

func upperHexByte(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}
