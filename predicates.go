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

import "github.com/corvid-systems/rid/internal/charset"

// SchemeLike reports whether s is syntactically valid as a URI/IRI
// scheme: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func SchemeLike(s string) bool {
	if s == "" || !charset.IsASCIILetter(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if !charset.IsASCIILetter(r) && !charset.IsASCIIDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// AbsoluteReference reports whether an already-parsed identifier is
// absolute (carries a scheme). It is id.Abs() spelled as a free function,
// for callers composing predicates rather than holding an Identifier.
func AbsoluteReference(id *Identifier) bool {
	return id != nil && id.Abs()
}

// StringifiedAbsoluteReference parses s with constructor and, if the
// result is absolute, returns its normalized form; otherwise "".
// constructor is normally New bound to a specific identifier type name,
// e.g. func(s string) (*Identifier, error) { return New("generic", s) }.
func StringifiedAbsoluteReference(s string, constructor func(string) (*Identifier, error)) string {
	id, err := constructor(s)
	if err != nil || !AbsoluteReference(id) {
		return ""
	}
	return id.String()
}
